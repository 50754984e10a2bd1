package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func InitRoutes(r *chi.Mux, h *Handler) *chi.Mux {
	r.Get("/", h.OrderForm)
	r.Post("/order", h.SubmitOrder)
	r.Get("/order/success", h.OrderSuccess)

	r.Get("/admin/login", h.LoginForm)
	r.Post("/admin/login", h.Login)
	r.Post("/admin/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.AdminOnly)

		r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		})
		r.Get("/admin/dashboard", h.Dashboard)
		r.Get("/admin/analytics", h.Analytics)
		r.Get("/admin/orders/export", h.ExportOrders)
		r.Post("/admin/orders/create", h.CreateOrder)
		r.Post("/admin/orders/update", h.UpdateOrder)
	})

	return r
}
