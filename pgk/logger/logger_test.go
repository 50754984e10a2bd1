package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bufferLogger пишет в буфер вместо консоли
func bufferLogger() (*zap.SugaredLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(&buf),
		zapcore.InfoLevel,
	)
	return zap.New(core).Sugar(), &buf
}

func TestNew(t *testing.T) {
	lg, err := New()

	require.NoError(t, err)
	require.NotNil(t, lg)
	lg.Info("printbee logger ready")
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
		want    []string
	}{
		{
			name:   "created order",
			method: http.MethodPost,
			target: "/order",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"success":true}`))
			},
			want: []string{"request->", "uri: /order", "method: POST", "status: 201", "size: 16", "duration:"},
		},
		{
			name:   "implicit ok",
			method: http.MethodGet,
			target: "/ping",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("pong"))
			},
			want: []string{"uri: /ping", "status: 200", "size: 4"},
		},
		{
			name:   "several writes are summed",
			method: http.MethodGet,
			target: "/admin/orders/export",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("PK"))
				w.Write([]byte("xlsx"))
			},
			want: []string{"size: 6"},
		},
		{
			name:   "rejected admin call",
			method: http.MethodGet,
			target: "/admin/dashboard?x=1",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			want: []string{"uri: /admin/dashboard?x=1", "status: 401", "size: 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := bufferLogger()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()
			LoggingMiddleware(lg)(tt.handler).ServeHTTP(w, req)

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestLoggingMiddleware_PassesResponseThrough(t *testing.T) {
	lg, _ := bufferLogger()

	handler := LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/analytics", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "upstream down", w.Body.String())
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	lg, buf := bufferLogger()

	handler := middleware.RequestID(LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/render-status", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "request_id: req-42")
}
