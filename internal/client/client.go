// Package client is a typed HTTP client of the proxy REST API. The admin
// credential is passed to every admin call explicitly; the client keeps no
// session of its own.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/ibeloyar/printbee/internal/model"
	"github.com/ibeloyar/printbee/pgk/auth"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoOrderID    = errors.New("response carries no order id")
)

// APIError is a non-2xx answer of the proxy.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("proxy answered %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the proxy. The default http.Client has no timeout:
// uploads are bounded by the request context only.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SubmitOrder sends a public order and returns the id the store assigned.
func (c *Client) SubmitOrder(ctx context.Context, sub model.OrderSubmission) (string, error) {
	var resp model.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/order", "", sub, &resp); err != nil {
		return "", err
	}
	if resp.OrderID == "" {
		return "", ErrNoOrderID
	}
	return resp.OrderID, nil
}

func (c *Client) Login(ctx context.Context, password string) error {
	var resp model.SuccessResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", "", model.LoginDTO{Password: password}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return ErrUnauthorized
	}
	return nil
}

func (c *Client) Orders(ctx context.Context, credential string) ([]model.Order, error) {
	var resp model.OrdersResponse
	if err := c.do(ctx, http.MethodGet, "/admin/orders", credential, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) Dashboard(ctx context.Context, credential string) (model.DashboardResponse, error) {
	var resp model.DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", credential, nil, &resp); err != nil {
		return model.DashboardResponse{}, err
	}
	return resp, nil
}

func (c *Client) CreateOrder(ctx context.Context, credential string, sub model.OrderSubmission) (string, error) {
	var resp model.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/admin/create-order", credential, sub, &resp); err != nil {
		return "", err
	}
	if resp.OrderID == "" {
		return "", ErrNoOrderID
	}
	return resp.OrderID, nil
}

func (c *Client) UpdateOrder(ctx context.Context, credential string, input model.UpdateOrderDTO) error {
	var resp model.UpdateOrderResponse
	return c.do(ctx, http.MethodPost, "/admin/update-order", credential, input, &resp)
}

// ExportOrders returns the XLSX workbook bytes.
func (c *Client) ExportOrders(ctx context.Context, credential string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, "/admin/orders/export", credential, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) RenderStatus(ctx context.Context) (model.RenderStatus, error) {
	var resp model.RenderStatus
	if err := c.do(ctx, http.MethodGet, "/render-status", "", nil, &resp); err != nil {
		return model.RenderStatus{}, err
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path, credential string, body, dst any) error {
	resp, err := c.send(ctx, method, path, credential, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, credential string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.RequestIDHeader, uuid.NewString())
	if credential != "" {
		req.Header.Set(auth.AdminHeader, credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body model.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}
	return apiErr
}
