package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/goliatone/go-elements/pkg/elements"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Query parameters read by the preview routes.
const (
	paramController = "c"
	paramActivity   = "a"
	paramLocale     = "l"
	paramQuery      = "q"
	paramUser       = "user"
)

const (
	controllerSearch = "search"
	controllerAdmin  = "admin"
	defaultActivity  = "manageCrawls"
)

// menuActivities is the admin menu order.
var menuActivities = []string{
	"manageCrawls", "mixCrawls", "manageClassifiers", "manageMachines",
	"queryStats", "appearance", "security",
}

// handlePage serves a full page, or a bare fragment for XMLHttpRequest
// callers such as the status pollers.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := s.buildRequest(r)
	controller := strings.TrimSpace(req.Param(paramController))

	switch controller {
	case "", controllerSearch:
		req.Landing = strings.TrimSpace(req.Param(paramQuery)) == ""
		data, err := s.loadData(ctx, r, req, false, controllerSearch)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		data[model.KeyQuery] = req.Param(paramQuery)
		s.renderPage(w, r, "", data, req)

	case controllerAdmin:
		if !req.LoggedIn() {
			s.fail(w, r, StatusError{Code: http.StatusUnauthorized})
			return
		}
		activity := strings.TrimSpace(req.Param(paramActivity))
		if activity == "" {
			activity = defaultActivity
		}
		element := s.view.Settings().ElementFor(activity)
		if element == "" {
			s.fail(w, r, StatusError{Code: http.StatusNotFound, Err: render.ErrUnknownElement})
			return
		}
		data, err := s.loadData(ctx, r, req, true, element)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		data[model.KeyCurrentActivity] = activity
		if isFragmentRequest(r) {
			s.renderFragment(w, r, element, data, req)
			return
		}
		s.renderPage(w, r, elements.NameAdmin, data, req)

	default:
		if !s.view.Registry().Has(controller) {
			s.fail(w, r, StatusError{Code: http.StatusNotFound, Err: render.ErrUnknownElement})
			return
		}
		data, err := s.loadData(ctx, r, req, false, controller)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if isFragmentRequest(r) {
			s.renderFragment(w, r, controller, data, req)
			return
		}
		s.renderPage(w, r, controller, data, req)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": s.view.Elements()})
}

// handleFragment renders one element without the page layout.
func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !s.view.Registry().Has(name) {
		s.fail(w, r, StatusError{Code: http.StatusNotFound, Err: render.ErrUnknownElement})
		return
	}
	req := s.buildRequest(r)
	admin := req.LoggedIn() && r.URL.Query().Get("admin") != ""
	data, err := s.loadData(r.Context(), r, req, admin, name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.renderFragment(w, r, name, data, req)
}

func (s *Server) buildRequest(r *http.Request) model.Request {
	query := r.URL.Query()
	user := strings.TrimSpace(r.Header.Get(UserHeader))
	if user == "" {
		user = strings.TrimSpace(query.Get(paramUser))
	}
	if user == "" {
		user = s.defaultUser
	}
	return model.Request{
		Mobile: s.detector.IsMobile(r.UserAgent()),
		User:   user,
		Locale: s.resolveLocale(r),
		Path:   r.URL.Path,
		Query:  query,
	}
}

func (s *Server) resolveLocale(r *http.Request) string {
	if l := strings.TrimSpace(r.URL.Query().Get(paramLocale)); l != "" {
		if _, err := language.Parse(l); err == nil {
			return l
		}
	}
	return s.locales.Match(r.Header.Get("Accept-Language"))
}

// loadData merges fixture data with the ambient keys every page needs. A
// token passed in the query must be valid for the user; admin pages then
// get a freshly issued one.
func (s *Server) loadData(ctx context.Context, r *http.Request, req model.Request, admin bool, names ...string) (model.Data, error) {
	if s.tokens != nil {
		if token := r.URL.Query().Get(s.tokenParam); token != "" {
			if err := s.tokens.Validate(req.User, token); err != nil {
				return nil, StatusError{Code: http.StatusForbidden, Err: err}
			}
		}
	}

	data, err := s.data.Load(ctx, names...)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = model.Data{}
	}

	if !data.Has(model.KeyLanguages) {
		data[model.KeyLanguages] = s.languages()
	}
	if req.LoggedIn() && !data.Has(model.KeyUserName) {
		data[model.KeyUserName] = req.User
	}
	if req.LoggedIn() && !data.Has(model.KeyActivities) {
		data[model.KeyActivities] = defaultActivities()
	}
	if controller := req.Param(paramController); controller != "" {
		data["CONTROLLER"] = controller
	}

	if admin {
		data[model.KeyAdmin] = true
		if s.tokens != nil {
			token, err := s.tokens.Generate(req.User)
			if err != nil {
				return nil, err
			}
			data[model.KeyCSRFToken] = token
		}
	}
	return data, nil
}

// languages names every catalog locale in its own language.
func (s *Server) languages() map[string]any {
	out := map[string]any{}
	for _, tag := range s.locales.Locales() {
		parsed, err := language.Parse(tag)
		if err != nil {
			continue
		}
		name := display.Self.Name(parsed)
		if name == "" {
			name = tag
		}
		out[tag] = name
	}
	return out
}

func defaultActivities() []map[string]any {
	out := make([]map[string]any, 0, len(menuActivities))
	for _, method := range menuActivities {
		out = append(out, map[string]any{
			"METHOD_NAME":   method,
			"ACTIVITY_NAME": "activity_" + method,
		})
	}
	return out
}

func isFragmentRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, body string, data model.Data, req model.Request) {
	var buf bytes.Buffer
	if err := s.view.RenderPage(r.Context(), body, data, req, &buf); err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeHTML(w, r, &buf)
}

func (s *Server) renderFragment(w http.ResponseWriter, r *http.Request, name string, data model.Data, req model.Request) {
	var buf bytes.Buffer
	if err := s.view.Render(r.Context(), name, data, req, &buf); err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeHTML(w, r, &buf)
}

func (s *Server) writeHTML(w http.ResponseWriter, r *http.Request, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("write response", zap.String("request_id", RequestID(r.Context())), zap.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Debug("encode response", zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	fields := []zap.Field{
		zap.String("request_id", RequestID(r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
	} else {
		s.logger.Info("request rejected", fields...)
	}
	s.writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"status":  status,
			"message": http.StatusText(status),
		},
	})
}
