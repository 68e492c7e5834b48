package commands

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	goelements "github.com/goliatone/go-elements"
	"github.com/goliatone/go-elements/internal/devreload"
	"github.com/goliatone/go-elements/internal/server"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr, user string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			srv, err := server.New(a.view,
				server.WithDataSource(server.FileDataSource{Dir: a.cfg.Server.DataDir}),
				server.WithTokens(a.tokens, a.cfg.Admin.TokenParam),
				server.WithLocales(a.catalog),
				server.WithAssets(assetsFS(a.cfg.Server.AssetsDir)),
				server.WithDefaultUser(user),
				server.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout),
				server.WithLogger(a.logger.Named("server")),
			)
			if err != nil {
				return err
			}

			if a.cfg.Templates.Watch {
				watcher, err := devreload.New(a.cfg.Templates.Dir, a.view,
					devreload.WithLogger(a.logger.Named("devreload")),
				)
				if err != nil {
					return err
				}
				defer watcher.Close()
				watcher.Start(cmd.Context())
				a.logger.Info("watching templates", zap.String("dir", a.cfg.Templates.Dir))
			}

			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&user, "user", "", "sign every request in as this user")
	return cmd
}

// assetsFS serves dir first and the built-in stylesheet and script after it.
func assetsFS(dir string) fs.FS {
	builtin := goelements.RuntimeAssetsFS()
	if strings.TrimSpace(dir) == "" {
		return builtin
	}
	return overlayFS{os.DirFS(dir), builtin}
}

type overlayFS []fs.FS

func (o overlayFS) Open(name string) (fs.File, error) {
	var firstErr error
	for _, layer := range o {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
