package http

import (
	"github.com/go-chi/chi/v5"
)

func InitRoutes(r *chi.Mux, c *Controller) *chi.Mux {
	r.Get("/ping", c.Ping)
	r.Get("/render-status", c.RenderStatus)

	r.Post("/order", c.CreateOrder)
	r.Post("/admin/login", c.Login)

	r.Route("/admin", func(r chi.Router) {
		r.Use(c.AdminOnly())

		r.Get("/orders", c.GetOrders)
		r.Get("/orders/export", c.ExportOrders)
		r.Get("/dashboard", c.GetDashboard)
		r.Get("/analytics", c.GetAnalytics)
		r.Post("/create-order", c.CreateManualOrder)
		r.Post("/update-order", c.UpdateOrder)
	})

	return r
}
