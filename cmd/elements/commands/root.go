// Package commands implements the elements CLI: rendering single elements
// from fixture data, listing them and running the preview server.
package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	logLevel    string
	picker      Picker
	interactive func() bool
}

// Option customises the root command.
type Option func(*rootOptions)

// WithPicker replaces the interactive element picker.
func WithPicker(p Picker) Option {
	return func(o *rootOptions) {
		if p != nil {
			o.picker = p
		}
	}
}

// WithInteractive overrides terminal detection.
func WithInteractive(fn func() bool) Option {
	return func(o *rootOptions) {
		if fn != nil {
			o.interactive = fn
		}
	}
}

// NewRootCommand builds the elements command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	opts := &rootOptions{
		picker:      surveyPicker{},
		interactive: stdinIsTerminal,
	}
	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	root := &cobra.Command{
		Use:           "elements",
		Short:         "Render admin front-end elements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (defaults plus ELEMENTS_* env when empty)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level")

	root.AddCommand(renderCmd(opts), listCmd(opts), serveCmd(opts))
	return root
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
