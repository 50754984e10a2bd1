package http

//go:generate mockgen -destination=../../service/mocks/mock_service.go -package=mocks github.com/ibeloyar/printbee/internal/controller/http Service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ibeloyar/printbee/internal/model"
	"github.com/ibeloyar/printbee/pgk/auth"
	"go.uber.org/zap"
)

type Service interface {
	CheckAdmin(password string) bool
	Login(input model.LoginDTO) *model.APIError

	CreateOrder(ctx context.Context, sub model.OrderSubmission) (string, *model.APIError)
	CreateManualOrder(ctx context.Context, sub model.OrderSubmission) (string, *model.APIError)
	GetOrders(ctx context.Context) ([]model.Order, *model.APIError)
	GetDashboard(ctx context.Context) (model.DashboardResponse, *model.APIError)
	GetAnalytics(ctx context.Context) (map[string]json.RawMessage, *model.APIError)
	UpdateOrder(ctx context.Context, input model.UpdateOrderDTO) *model.APIError
	ExportOrders(ctx context.Context) ([]byte, *model.APIError)
	RenderStatus() model.RenderStatus
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

// AdminOnly - проверка x-admin-pwd до любого обращения к хранилищу
func (c *Controller) AdminOnly() func(http.Handler) http.Handler {
	return auth.SharedSecretMiddlewareInit(c.service.CheckAdmin, c.unauthorized)
}

func (c *Controller) unauthorized(w http.ResponseWriter, r *http.Request) {
	writeError(w, c.lg, &model.APIError{
		Code:    http.StatusUnauthorized,
		Message: model.ErrUnauthorizedMessage,
	})
}
