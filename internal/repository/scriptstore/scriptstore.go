// Package scriptstore talks to the spreadsheet-backed script endpoint that
// keeps every order. Reads are GET requests with an action query parameter,
// writes are JSON POSTs carrying the action in the body.
package scriptstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ibeloyar/printbee/internal/model"
	"github.com/ibeloyar/printbee/pgk/retryablehttp"
)

const (
	ActionGetOrders         = "getOrders"
	ActionGetDashboardStats = "getDashboardStats"
	ActionGetAnalytics      = "getAnalytics"
	ActionRenderTask        = "renderTask"
	ActionCreate            = "create"
	ActionUpdate            = "update"
)

var (
	ErrTransport = errors.New("store unreachable")
	ErrUpstream  = errors.New("store rejected request")
	ErrNoOrderID = fmt.Errorf("%w: no order id in reply", ErrUpstream)
)

// UpstreamError carries the message the store answered with.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return "store: " + e.Message
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

type Repository struct {
	storeURL    *url.URL
	retryClient *retryablehttp.RetryableClient
}

func New(storeURL string, retryConfig retryablehttp.RetryConfig) (*Repository, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse store url: %q is not absolute", storeURL)
	}

	return &Repository{
		storeURL:    u,
		retryClient: retryablehttp.NewRetryableClient(retryConfig),
	}, nil
}

type createRequest struct {
	Action string `json:"action"`
	model.OrderSubmission
}

type updateRequest struct {
	Action string `json:"action"`
	model.UpdateOrderDTO
}

type writeReply struct {
	Success *bool           `json:"success"`
	OrderID json.RawMessage `json:"orderId"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// orderID reads the id whether the sheet stored it as text or a number.
func (r writeReply) orderID() string {
	raw := bytes.TrimSpace(r.OrderID)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return strings.TrimSpace(id)
	}
	if raw[0] == '{' || raw[0] == '[' {
		return ""
	}
	return string(raw)
}

func (r writeReply) rejected() bool {
	return r.Success != nil && !*r.Success
}

func (r writeReply) reason(fallback string) string {
	switch {
	case r.Error != "":
		return r.Error
	case r.Message != "":
		return r.Message
	}
	return fallback
}

// GetOrders returns the rows in store order. A reply without an orders
// array is an empty list.
func (r *Repository) GetOrders(ctx context.Context) ([]model.Order, error) {
	var reply struct {
		Orders json.RawMessage `json:"orders"`
	}
	if err := r.read(ctx, ActionGetOrders, &reply); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0)
	if len(reply.Orders) == 0 || reply.Orders[0] != '[' {
		return orders, nil
	}
	if err := json.Unmarshal(reply.Orders, &orders); err != nil {
		return nil, fmt.Errorf("%w: decode orders: %v", ErrTransport, err)
	}

	return orders, nil
}

// GetDashboardStats prefers a nested stats object and falls back to
// top-level fields. Missing values are zero.
func (r *Repository) GetDashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var reply map[string]json.RawMessage
	if err := r.read(ctx, ActionGetDashboardStats, &reply); err != nil {
		return model.DashboardStats{}, err
	}

	if nested, ok := reply["stats"]; ok && len(nested) > 0 && nested[0] == '{' {
		var stats model.DashboardStats
		if err := json.Unmarshal(nested, &stats); err == nil {
			return stats, nil
		}
	}

	return model.StatsFromFields(reply), nil
}

// GetAnalytics returns the store's analytics object untouched.
func (r *Repository) GetAnalytics(ctx context.Context) (map[string]json.RawMessage, error) {
	reply := make(map[string]json.RawMessage)
	if err := r.read(ctx, ActionGetAnalytics, &reply); err != nil {
		return nil, err
	}
	if reply == nil {
		reply = make(map[string]json.RawMessage)
	}
	return reply, nil
}

// Create stores a new order and returns the id the store assigned.
func (r *Repository) Create(ctx context.Context, sub model.OrderSubmission) (string, error) {
	var reply writeReply
	status, err := r.write(ctx, createRequest{Action: ActionCreate, OrderSubmission: sub}, &reply)
	if err != nil {
		return "", err
	}
	if status >= http.StatusBadRequest || reply.rejected() {
		return "", &UpstreamError{Message: reply.reason(http.StatusText(status))}
	}
	id := reply.orderID()
	if id == "" {
		return "", ErrNoOrderID
	}

	return id, nil
}

// Update changes status and price of an existing order.
func (r *Repository) Update(ctx context.Context, dto model.UpdateOrderDTO) error {
	var reply writeReply
	status, err := r.write(ctx, updateRequest{Action: ActionUpdate, UpdateOrderDTO: dto}, &reply)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest || reply.Success == nil || !*reply.Success {
		return &UpstreamError{Message: reply.reason(model.ErrUpdateRejectedMessage)}
	}

	return nil
}

// RenderTask pings the store so the hosting platform keeps it warm.
// One attempt only: the next tick is the retry.
func (r *Repository) RenderTask(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.actionURL(ActionRenderTask), nil)
	if err != nil {
		return err
	}

	resp, err := r.retryClient.DoOnce(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransport, ActionRenderTask, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s answered %s", ErrTransport, ActionRenderTask, resp.Status)
	}
	return nil
}

func (r *Repository) actionURL(action string) string {
	u := *r.storeURL
	q := u.Query()
	q.Set("action", action)
	u.RawQuery = q.Encode()
	return u.String()
}

func (r *Repository) get(ctx context.Context, action string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.actionURL(action), nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.retryClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransport, action, err)
	}
	return resp, nil
}

func (r *Repository) read(ctx context.Context, action string, dst any) error {
	resp, err := r.get(ctx, action)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s answered %s", ErrTransport, action, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s: decode reply: %v", ErrTransport, action, err)
	}
	return nil
}

// write makes a single attempt: a repeated create would duplicate the order.
func (r *Repository) write(ctx context.Context, body any, dst any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.storeURL.String(), bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.retryClient.HTTPClient().Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode reply (%s): %v", ErrTransport, resp.Status, err)
	}
	return resp.StatusCode, nil
}
