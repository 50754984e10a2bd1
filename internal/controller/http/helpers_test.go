package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ibeloyar/printbee/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorReader struct{}

func (errorReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestReadBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        model.UpdateOrderDTO
		wantErr     string
	}{
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"orderId":"7","jobStatus":"Finished","price":"12.5"}`,
			want:        model.UpdateOrderDTO{OrderID: "7", JobStatus: model.JobStatusFinished},
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			body:        `{"orderId":"8"}`,
			want:        model.UpdateOrderDTO{OrderID: "8"},
		},
		{
			name: "no content type is json",
			body: `{"orderId":"9"}`,
			want: model.UpdateOrderDTO{OrderID: "9"},
		},
		{
			name:        "broken json",
			contentType: "application/json",
			body:        `{"orderId": "7"`,
			wantErr:     "failed to decode request body",
		},
		{
			name:        "form post",
			contentType: "application/x-www-form-urlencoded",
			body:        "orderId=7",
			wantErr:     "unsupported",
		},
		{
			name:        "plain text",
			contentType: "text/plain",
			body:        "7",
			wantErr:     "unsupported text/plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/update-order", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			got, err := readBody[model.UpdateOrderDTO](req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.OrderID, got.OrderID)
			assert.Equal(t, tt.want.JobStatus, got.JobStatus)
		})
	}
}

func TestReadBody_PriceKeptExact(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/admin/create-order", strings.NewReader(`{"name":"Walk-in","price":"0.10"}`))

	got, err := readBody[model.OrderSubmission](req)

	require.NoError(t, err)
	assert.Equal(t, "0.1", got.Price.Amount().String())
}

func TestReadBody_ReadError(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, "/order", errorReader{})
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	_, err = readBody[model.OrderSubmission](req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, zap.NewNop().Sugar(), model.CreateOrderResponse{Success: true, OrderID: "ORD-1"}, http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"orderId":"ORD-1"}`, w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, zap.NewNop().Sugar(), make(chan int), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, zap.NewNop().Sugar(), &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrUnauthorizedMessage})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, w.Body.String())
}
