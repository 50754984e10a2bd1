// Package web is the server-rendered front end of PrintBee: the public order
// form and the admin pages. It talks to the proxy only through API.
package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/ibeloyar/printbee/internal/client"
	"github.com/ibeloyar/printbee/internal/model"
	"go.uber.org/zap"
)

const (
	sessionName   = "printbee-admin"
	credentialKey = "credential"

	flashError   = "error"
	flashSuccess = "success"
)

// API is the part of the proxy client the pages use. Admin calls take the
// credential from the session explicitly.
type API interface {
	SubmitOrder(ctx context.Context, sub model.OrderSubmission) (string, error)
	Login(ctx context.Context, password string) error
	Orders(ctx context.Context, credential string) ([]model.Order, error)
	Dashboard(ctx context.Context, credential string) (model.DashboardResponse, error)
	CreateOrder(ctx context.Context, credential string, sub model.OrderSubmission) (string, error)
	UpdateOrder(ctx context.Context, credential string, input model.UpdateOrderDTO) error
	ExportOrders(ctx context.Context, credential string) ([]byte, error)
	RenderStatus(ctx context.Context) (model.RenderStatus, error)
}

type Handler struct {
	api       API
	sessions  sessions.Store
	templates *Templates
	lg        *zap.SugaredLogger
}

func New(api API, store sessions.Store, templates *Templates, lg *zap.SugaredLogger) *Handler {
	return &Handler{
		api:       api,
		sessions:  store,
		templates: templates,
		lg:        lg,
	}
}

type flash struct {
	Kind    string
	Message string
}

// page - общие для layout поля
type page struct {
	LoggedIn bool
	Flashes  []flash
}

func (h *Handler) session(r *http.Request) *sessions.Session {
	// при битой или чужой cookie gorilla возвращает новую пустую сессию вместе с ошибкой
	session, err := h.sessions.Get(r, sessionName)
	if err != nil {
		h.lg.Debugf("session decode: %v", err)
	}
	return session
}

func (h *Handler) credential(r *http.Request) string {
	cred, _ := h.session(r).Values[credentialKey].(string)
	return cred
}

// pageData забирает flash-сообщения; сессию надо сохранить до записи ответа
func (h *Handler) pageData(w http.ResponseWriter, r *http.Request) page {
	session := h.session(r)
	cred, _ := session.Values[credentialKey].(string)

	p := page{LoggedIn: cred != ""}
	for _, f := range session.Flashes(flashError) {
		if msg, ok := f.(string); ok {
			p.Flashes = append(p.Flashes, flash{Kind: flashError, Message: msg})
		}
	}
	for _, f := range session.Flashes(flashSuccess) {
		if msg, ok := f.(string); ok {
			p.Flashes = append(p.Flashes, flash{Kind: flashSuccess, Message: msg})
		}
	}

	if err := session.Save(r, w); err != nil {
		h.lg.Errorf("save session: %v", err)
	}
	return p
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, kind, message, to string) {
	session := h.session(r)
	session.AddFlash(message, kind)
	if err := session.Save(r, w); err != nil {
		h.lg.Errorf("save session: %v", err)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, name string, status int, data any) {
	if err := h.templates.Render(w, name, status, data); err != nil {
		h.lg.Errorf("render %s: %v", name, err)
		http.Error(w, model.ErrInternalServerMessage, http.StatusInternalServerError)
	}
}

// AdminOnly пускает дальше только с паролем в сессии
func (h *Handler) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.credential(r) == "" {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// adminFailed разбирает ошибку admin-вызова: устаревший пароль сбрасывает сессию
func (h *Handler) adminFailed(w http.ResponseWriter, r *http.Request, err error, message, to string) {
	if errors.Is(err, client.ErrUnauthorized) {
		delete(h.session(r).Values, credentialKey)
		h.redirectWithFlash(w, r, flashError, "Session expired. Please log in again.", "/admin/login")
		return
	}

	h.lg.Errorf("%s: %v", message, err)
	h.redirectWithFlash(w, r, flashError, message, to)
}
