package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ibeloyar/printbee/internal/model"
	"github.com/ibeloyar/printbee/internal/report"
)

var errInvalidRequest = &model.APIError{
	Code:    http.StatusBadRequest,
	Message: model.ErrInvalidRequestMessage,
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func (c *Controller) RenderStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.lg, c.service.RenderStatus(), http.StatusOK)
}

// CreateOrder - публичная форма заказа
func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.OrderSubmission](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, c.lg, errInvalidRequest)
		return
	}

	orderID, apiErr := c.service.CreateOrder(r.Context(), body)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, model.CreateOrderResponse{Success: true, OrderID: orderID}, http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, c.lg, errInvalidRequest)
		return
	}

	if apiErr := c.service.Login(body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, model.SuccessResponse{Success: true}, http.StatusOK)
}

func (c *Controller) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.GetOrders(r.Context())
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, model.OrdersResponse{Success: true, Orders: orders}, http.StatusOK)
}

func (c *Controller) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, apiErr := c.service.GetDashboard(r.Context())
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, dashboard, http.StatusOK)
}

// GetAnalytics - ответ хранилища как есть, поверх success:true
func (c *Controller) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	data, apiErr := c.service.GetAnalytics(r.Context())
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	response := map[string]json.RawMessage{
		"success": json.RawMessage("true"),
	}
	for k, v := range data {
		response[k] = v
	}

	writeJSON(w, c.lg, response, http.StatusOK)
}

func (c *Controller) CreateManualOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.OrderSubmission](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, c.lg, priceOrInvalid(err))
		return
	}

	orderID, apiErr := c.service.CreateManualOrder(r.Context(), body)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, model.CreateOrderResponse{Success: true, OrderID: orderID}, http.StatusOK)
}

func (c *Controller) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.UpdateOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, c.lg, priceOrInvalid(err))
		return
	}

	if apiErr := c.service.UpdateOrder(r.Context(), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, model.UpdateOrderResponse{
		Success: true,
		Message: model.OrderUpdatedMessage,
	}, http.StatusOK)
}

func (c *Controller) ExportOrders(w http.ResponseWriter, r *http.Request) {
	data, apiErr := c.service.ExportOrders(r.Context())
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// priceOrInvalid - нечисловая цена в теле это ошибка цены, а не формата запроса
func priceOrInvalid(err error) *model.APIError {
	if errors.Is(err, model.ErrPriceNotNumber) {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrPriceRequiredMessage,
		}
	}
	return errInvalidRequest
}
