package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/testsupport"
)

type renderFlags struct {
	data   string
	mobile bool
	locale string
	admin  bool
	user   string
	page   bool
}

func renderCmd(opts *rootOptions) *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [element]",
		Short: "Render one element (or a full page) to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			name := ""
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			}
			if name == "" {
				if !opts.interactive() {
					return errors.New("render: element name required")
				}
				name, err = opts.picker.Pick(cmd.Context(), "Element to render", a.view.Elements())
				if err != nil {
					return err
				}
			}

			data := model.Data{}
			if flags.data != "" {
				data, err = testsupport.LoadData(flags.data)
				if err != nil {
					return err
				}
			}
			req := model.Request{
				Mobile: flags.mobile,
				User:   strings.TrimSpace(flags.user),
				Locale: flags.locale,
			}
			if flags.admin {
				data[model.KeyAdmin] = true
				token, err := a.tokens.Generate(req.User)
				if err != nil {
					return err
				}
				data[model.KeyCSRFToken] = token
			}

			out := cmd.OutOrStdout()
			if flags.page {
				err = a.view.RenderPage(cmd.Context(), name, data, req, out)
			} else {
				err = a.view.Render(cmd.Context(), name, data, req, out)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", name, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.data, "data", "", "YAML or JSON file with the element data")
	cmd.Flags().BoolVar(&flags.mobile, "mobile", false, "render for a mobile client")
	cmd.Flags().StringVar(&flags.locale, "locale", "", "locale tag, e.g. fr-FR")
	cmd.Flags().BoolVar(&flags.admin, "admin", false, "render as an admin page with a fresh token")
	cmd.Flags().StringVar(&flags.user, "user", "", "signed-in user name")
	cmd.Flags().BoolVar(&flags.page, "page", false, "wrap the element in the page layout")
	return cmd
}
