package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ibeloyar/printbee/internal/analytics"
	"github.com/ibeloyar/printbee/internal/client"
	"github.com/ibeloyar/printbee/internal/model"
	"github.com/ibeloyar/printbee/internal/order"
	"github.com/ibeloyar/printbee/internal/report"
)

const (
	loginFailedMessage     = "Login failed. Please try again."
	invalidPasswordMessage = "Invalid password"
	updateFailedMessage    = "Failed to update order"
)

type dashboardPage struct {
	page
	Stats          model.DashboardStats
	Orders         []model.Order
	Search         string
	Status         string
	JobStatuses    []model.JobStatus
	PaymentMethods []model.PaymentMethod
}

type analyticsPage struct {
	page
	Total         int
	MonthLabels   []string
	OrderCounts   []int
	Revenue       []float64
	PaymentLabels []string
	PaymentCounts []int
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.credential(r) != "" {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	h.render(w, "login.html", http.StatusOK, h.pageData(w, r))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	if err := h.api.Login(r.Context(), password); err != nil {
		p := h.pageData(w, r)
		status := http.StatusUnauthorized
		message := invalidPasswordMessage
		if !errors.Is(err, client.ErrUnauthorized) {
			h.lg.Errorf("login: %v", err)
			status = http.StatusBadGateway
			message = loginFailedMessage
		}
		p.Flashes = append(p.Flashes, flash{Kind: flashError, Message: message})
		h.render(w, "login.html", status, p)
		return
	}

	session := h.session(r)
	session.Values[credentialKey] = password
	if err := session.Save(r, w); err != nil {
		h.lg.Errorf("save session: %v", err)
		http.Error(w, model.ErrInternalServerMessage, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	delete(session.Values, credentialKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.lg.Errorf("save session: %v", err)
	}

	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, nil, nil)
}

// renderDashboard грузит свежий список; только что созданный заказ ставится наверх,
// даже если хранилище ещё не успело его вернуть
func (h *Handler) renderDashboard(w http.ResponseWriter, r *http.Request, created *model.Order, notice *flash) {
	status := http.StatusOK

	resp, err := h.api.Dashboard(r.Context(), h.credential(r))
	if errors.Is(err, client.ErrUnauthorized) {
		h.adminFailed(w, r, err, model.ErrLoadDashboardMessage, "/admin/login")
		return
	}

	data := dashboardPage{
		page:           h.pageData(w, r),
		Search:         r.URL.Query().Get("search"),
		Status:         r.URL.Query().Get("status"),
		JobStatuses:    model.JobStatuses,
		PaymentMethods: model.PaymentMethods,
	}
	if data.Status == "" {
		data.Status = order.StatusAll
	}

	if err != nil {
		h.lg.Errorf("load dashboard: %v", err)
		status = http.StatusBadGateway
		data.Flashes = append(data.Flashes, flash{Kind: flashError, Message: model.ErrLoadDashboardMessage})
	}

	orders := resp.Orders
	if created != nil {
		orders = order.Prepend(orders, *created)
	}
	if notice != nil {
		data.Flashes = append(data.Flashes, *notice)
	}

	data.Stats = resp.Stats
	data.Orders = order.Filter(orders, data.Search, data.Status)

	h.render(w, "dashboard.html", status, data)
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	// проверка до любого сетевого вызова
	input, err := order.ParseUpdate(r.FormValue("orderId"), r.FormValue("price"), r.FormValue("jobStatus"))
	if err != nil {
		h.redirectWithFlash(w, r, flashError, updateMessage(err), "/admin/dashboard")
		return
	}

	if err := h.api.UpdateOrder(r.Context(), h.credential(r), input); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			h.redirectWithFlash(w, r, flashError, apiErr.Message, "/admin/dashboard")
			return
		}
		h.adminFailed(w, r, err, updateFailedMessage, "/admin/dashboard")
		return
	}

	h.redirectWithFlash(w, r, flashSuccess, model.OrderUpdatedMessage, "/admin/dashboard")
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	price, err := model.ParsePrice(r.FormValue("price"))
	if err != nil {
		h.redirectWithFlash(w, r, flashError, model.ErrPriceRequiredMessage, "/admin/dashboard")
		return
	}

	sub := model.OrderSubmission{
		Name:          strings.TrimSpace(r.FormValue("name")),
		Email:         strings.TrimSpace(r.FormValue("email")),
		Phone:         strings.TrimSpace(r.FormValue("phone")),
		PickupTime:    strings.TrimSpace(r.FormValue("pickupTime")),
		Description:   strings.TrimSpace(r.FormValue("description")),
		PaymentMethod: model.PaymentMethod(r.FormValue("paymentMethod")),
		Price:         price,
	}

	if err := order.ValidateManualOrder(sub); err != nil {
		h.redirectWithFlash(w, r, flashError, manualOrderMessage(err), "/admin/dashboard")
		return
	}

	id, err := h.api.CreateOrder(r.Context(), h.credential(r), sub)
	if err != nil {
		h.adminFailed(w, r, err, model.ErrCreateOrderMessage, "/admin/dashboard")
		return
	}

	created := model.Order{
		OrderID:       id,
		Name:          sub.Name,
		Email:         sub.Email,
		Phone:         sub.Phone,
		PickupTime:    sub.PickupTime,
		Description:   sub.Description,
		PaymentMethod: sub.PaymentMethod,
		Price:         sub.Price,
		JobStatus:     model.JobStatusPending,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	h.renderDashboard(w, r, &created, &flash{Kind: flashSuccess, Message: fmt.Sprintf("Order %s created", id)})
}

func (h *Handler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	data, err := h.api.ExportOrders(r.Context(), h.credential(r))
	if err != nil {
		h.adminFailed(w, r, err, model.ErrExportOrdersMessage, "/admin/dashboard")
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(time.Now())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.lg.Errorf("write export: %v", err)
	}
}

func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK

	orders, err := h.api.Orders(r.Context(), h.credential(r))
	if errors.Is(err, client.ErrUnauthorized) {
		h.adminFailed(w, r, err, model.ErrInternalServerMessage, "/admin/login")
		return
	}

	data := analyticsPage{page: h.pageData(w, r)}
	if err != nil {
		h.lg.Errorf("load analytics: %v", err)
		status = http.StatusBadGateway
		data.Flashes = append(data.Flashes, flash{Kind: flashError, Message: "Failed to load analytics"})
	}

	summary := analytics.Aggregate(orders)
	data.Total = len(orders)
	data.MonthLabels = analytics.Labels(summary.OrdersByMonth)
	data.OrderCounts = analytics.Counts(summary.OrdersByMonth)
	data.Revenue = analytics.Revenues(summary.RevenueByMonth)
	data.PaymentLabels = analytics.Labels(summary.ByPayment)
	data.PaymentCounts = analytics.Counts(summary.ByPayment)

	h.render(w, "analytics.html", status, data)
}

func updateMessage(err error) string {
	switch {
	case errors.Is(err, order.ErrMissingOrderID):
		return model.ErrOrderIDRequiredMessage
	case errors.Is(err, order.ErrInvalidStatus):
		return model.ErrJobStatusInvalidMessage
	}
	return model.ErrPriceRequiredMessage
}

func manualOrderMessage(err error) string {
	switch {
	case errors.Is(err, order.ErrInvalidPrice):
		return model.ErrPriceRequiredMessage
	case errors.Is(err, order.ErrInvalidPaymentMethod):
		return "Please choose a payment method."
	}
	return "Please fill in all required fields."
}
