// Package server is the HTTP preview server: it renders elements and whole
// pages from fixture data so templates can be developed and checked in a
// browser.
package server

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goliatone/go-elements/pkg/csrf"
	"github.com/goliatone/go-elements/pkg/i18n"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/urls"
	"github.com/goliatone/go-elements/pkg/view"
)

// LocaleMatcher picks a locale for an Accept-Language header and lists the
// available ones. *i18n.Catalog implements it.
type LocaleMatcher interface {
	Match(acceptLanguage string) string
	Locales() []string
}

// UserHeader names the signed-in user for previews; authentication is the
// host application's concern.
const UserHeader = "X-Elements-User"

// Server routes preview requests to the view.
type Server struct {
	router      *mux.Router
	view        *view.View
	data        DataSource
	tokens      *csrf.Manager
	tokenParam  string
	locales     LocaleMatcher
	detector    model.DeviceDetector
	assets      fs.FS
	defaultUser string
	logger      *zap.Logger

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithDataSource sets where element data comes from.
func WithDataSource(ds DataSource) Option {
	return func(s *Server) {
		if ds != nil {
			s.data = ds
		}
	}
}

// WithTokens enables anti-forgery tokens on admin pages.
func WithTokens(m *csrf.Manager, param string) Option {
	return func(s *Server) {
		s.tokens = m
		if param != "" {
			s.tokenParam = param
		}
	}
}

// WithLocales sets the locale matcher.
func WithLocales(m LocaleMatcher) Option {
	return func(s *Server) {
		if m != nil {
			s.locales = m
		}
	}
}

// WithDeviceDetector overrides the User-Agent based detector.
func WithDeviceDetector(d model.DeviceDetector) Option {
	return func(s *Server) {
		if d != nil {
			s.detector = d
		}
	}
}

// WithAssets serves files under /assets/.
func WithAssets(fsys fs.FS) Option {
	return func(s *Server) {
		s.assets = fsys
	}
}

// WithDefaultUser signs every request in as user unless UserHeader is set.
func WithDefaultUser(user string) Option {
	return func(s *Server) {
		s.defaultUser = user
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeouts sets the HTTP server read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
	}
}

// New builds a server around v.
func New(v *view.View, options ...Option) (*Server, error) {
	if v == nil {
		return nil, errors.New("server: view is required")
	}
	s := &Server{
		router:       mux.NewRouter(),
		view:         v,
		data:         MapDataSource{},
		tokenParam:   urls.DefaultTokenParam,
		detector:     model.UserAgentDetector{},
		logger:       zap.NewNop(),
		readTimeout:  15 * time.Second,
		writeTimeout: 30 * time.Second,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.locales == nil {
		catalog, err := i18n.Default()
		if err != nil {
			return nil, err
		}
		s.locales = catalog
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestID)

	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc("/elements", s.handleList).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc("/elements/{name}", s.handleFragment).Methods(http.MethodGet, http.MethodHead)

	if s.assets != nil {
		s.router.PathPrefix("/assets/").Handler(
			http.StripPrefix("/assets/", http.FileServerFS(s.assets)),
		).Methods(http.MethodGet, http.MethodHead)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type requestIDKey struct{}

// RequestID returns the id assigned to the request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		s.logger.Debug("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
