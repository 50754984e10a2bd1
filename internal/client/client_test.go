package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/printbee/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(server.URL+"/", server.Client())
}

func TestNew_DefaultClientHasNoTimeout(t *testing.T) {
	c := New("http://proxy.local", nil)
	assert.Zero(t, c.httpClient.Timeout)
}

func TestClient_SlowUploadNotCutOff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{"success":true,"orderId":"ORD-5"}`))
	}))
	defer server.Close()

	id, err := New(server.URL, nil).SubmitOrder(context.Background(), model.OrderSubmission{Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "ORD-5", id)
}

func TestClient_SubmitOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("x-admin-pwd"))

		_, err := uuid.Parse(r.Header.Get("X-Request-Id"))
		assert.NoError(t, err)

		var sub model.OrderSubmission
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "Asha", sub.Name)

		w.Write([]byte(`{"success":true,"orderId":"ORD-3"}`))
	})

	id, err := c.SubmitOrder(context.Background(), model.OrderSubmission{Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "ORD-3", id)
}

func TestClient_SubmitOrder_EmptyID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"orderId":""}`))
	})

	_, err := c.SubmitOrder(context.Background(), model.OrderSubmission{})
	assert.ErrorIs(t, err, ErrNoOrderID)
}

func TestClient_SubmitOrder_ProxyError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"attach a file or provide a link"}`))
	})

	_, err := c.SubmitOrder(context.Background(), model.OrderSubmission{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "attach a file or provide a link", apiErr.Message)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body model.LoginDTO
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
			return
		}
		w.Write([]byte(`{"success":true}`))
	})

	assert.NoError(t, c.Login(context.Background(), "secret"))
	assert.ErrorIs(t, c.Login(context.Background(), "guess"), ErrUnauthorized)
}

func TestClient_AdminCallsCarryCredential(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-admin-pwd") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
			return
		}

		switch r.URL.Path {
		case "/admin/orders":
			w.Write([]byte(`{"success":true,"orders":[{"orderId":"1","fileLink":"https://f/1"}]}`))
		case "/admin/dashboard":
			w.Write([]byte(`{"success":true,"stats":{"totalOrders":1,"todayOrders":0,"totalRevenue":50,"todayRevenue":0},"orders":[{"orderId":"1"}]}`))
		case "/admin/create-order":
			w.Write([]byte(`{"success":true,"orderId":"ORD-8"}`))
		case "/admin/update-order":
			w.Write([]byte(`{"success":true,"message":"Order updated successfully"}`))
		case "/admin/orders/export":
			w.Write([]byte("xlsx-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	orders, err := c.Orders(ctx, "secret")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, []string{"https://f/1"}, orders[0].Files)

	dashboard, err := c.Dashboard(ctx, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), dashboard.Stats.TotalOrders)
	assert.True(t, dashboard.Stats.TotalRevenue.Equal(decimal.NewFromInt(50)))

	id, err := c.CreateOrder(ctx, "secret", model.OrderSubmission{Name: "Walk-in"})
	require.NoError(t, err)
	assert.Equal(t, "ORD-8", id)

	require.NoError(t, c.UpdateOrder(ctx, "secret", model.UpdateOrderDTO{OrderID: "1"}))

	data, err := c.ExportOrders(ctx, "secret")
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(data))

	_, err = c.Orders(ctx, "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.ExportOrders(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_Dashboard_UnknownStatusAsPending(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"stats":{},"orders":[{"orderId":"ORD-1","jobStatus":"Done","price":120}]}`))
	})

	resp, err := c.Dashboard(context.Background(), "secret")
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, model.JobStatusPending, resp.Orders[0].JobStatus)
	assert.True(t, resp.Orders[0].Price.Amount().Equal(decimal.NewFromInt(120)))
}

func TestClient_RenderStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/render-status", r.URL.Path)
		w.Write([]byte(`{"success":true,"active":false,"message":"PrintBee server is resting, back at 08:00","checkedAt":"2025-01-15T23:00:00+05:30"}`))
	})

	status, err := c.RenderStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Equal(t, "PrintBee server is resting, back at 08:00", status.Message)
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(url, nil).Orders(context.Background(), "secret")
	assert.Error(t, err)
}

func TestClient_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})

	_, err := c.Orders(context.Background(), "secret")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode GET /admin/orders")
}
