package service

//go:generate mockgen -destination=../repository/scriptstore/mocks/mock_store.go -package=mocks github.com/ibeloyar/printbee/internal/service StoreRepo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ibeloyar/printbee/internal/keepalive"
	"github.com/ibeloyar/printbee/internal/model"
	"github.com/ibeloyar/printbee/internal/order"
	"github.com/ibeloyar/printbee/internal/report"
	"github.com/ibeloyar/printbee/internal/repository/scriptstore"
	"github.com/ibeloyar/printbee/pgk/auth"
	"go.uber.org/zap"
)

type StoreRepo interface {
	GetOrders(ctx context.Context) ([]model.Order, error)
	GetDashboardStats(ctx context.Context) (model.DashboardStats, error)
	GetAnalytics(ctx context.Context) (map[string]json.RawMessage, error)
	Create(ctx context.Context, sub model.OrderSubmission) (string, error)
	Update(ctx context.Context, input model.UpdateOrderDTO) error
}

type Service struct {
	store         StoreRepo
	adminPassword string
	window        keepalive.Window
	lg            *zap.SugaredLogger

	now func() time.Time
}

func New(store StoreRepo, adminPassword string, window keepalive.Window, lg *zap.SugaredLogger) *Service {
	return &Service{
		store:         store,
		adminPassword: adminPassword,
		window:        window,
		lg:            lg,
		now:           time.Now,
	}
}

// CheckAdmin сравнивает пароль с настроенным секретом; пустой секрет не совпадает ни с чем
func (s *Service) CheckAdmin(password string) bool {
	return auth.SecretMatches(password, s.adminPassword)
}

func (s *Service) Login(input model.LoginDTO) *model.APIError {
	if !s.CheckAdmin(input.Password) {
		return &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrUnauthorizedMessage,
		}
	}

	return nil
}

// CreateOrder - публичный заказ с формы
func (s *Service) CreateOrder(ctx context.Context, sub model.OrderSubmission) (string, *model.APIError) {
	if err := order.ValidateSubmission(sub); err != nil {
		return "", validationError(err)
	}

	id, err := s.store.Create(ctx, sub)
	if err != nil {
		s.lg.Errorf("create order error: %v", err)
		return "", storeError(err, model.ErrInternalServerMessage)
	}

	return id, nil
}

// CreateManualOrder - заказ, заведенный администратором без файлов
func (s *Service) CreateManualOrder(ctx context.Context, sub model.OrderSubmission) (string, *model.APIError) {
	if err := order.ValidateManualOrder(sub); err != nil {
		return "", validationError(err)
	}

	id, err := s.store.Create(ctx, sub)
	if err != nil {
		s.lg.Errorf("create manual order error: %v", err)
		return "", storeError(err, model.ErrCreateOrderMessage)
	}

	return id, nil
}

// GetOrders - заказы в порядке хранилища
func (s *Service) GetOrders(ctx context.Context) ([]model.Order, *model.APIError) {
	orders, err := s.store.GetOrders(ctx)
	if err != nil {
		s.lg.Errorf("orders fetch error: %v", err)
		return nil, storeError(err, model.ErrInternalServerMessage)
	}

	return orders, nil
}

// GetDashboard - статистика, затем заказы (последовательно), новые сверху
func (s *Service) GetDashboard(ctx context.Context) (model.DashboardResponse, *model.APIError) {
	stats, err := s.store.GetDashboardStats(ctx)
	if err != nil {
		s.lg.Errorf("dashboard stats error: %v", err)
		return model.DashboardResponse{}, storeError(err, model.ErrLoadDashboardMessage)
	}

	orders, err := s.store.GetOrders(ctx)
	if err != nil {
		s.lg.Errorf("dashboard orders error: %v", err)
		return model.DashboardResponse{}, storeError(err, model.ErrLoadDashboardMessage)
	}

	return model.DashboardResponse{
		Success: true,
		Stats:   stats,
		Orders:  order.NewestFirst(orders),
	}, nil
}

func (s *Service) GetAnalytics(ctx context.Context) (map[string]json.RawMessage, *model.APIError) {
	data, err := s.store.GetAnalytics(ctx)
	if err != nil {
		s.lg.Errorf("analytics error: %v", err)
		return nil, storeError(err, model.ErrInternalServerMessage)
	}

	return data, nil
}

// UpdateOrder - отказ хранилища отдается клиенту как 400 с его сообщением
func (s *Service) UpdateOrder(ctx context.Context, input model.UpdateOrderDTO) *model.APIError {
	if err := order.ValidateUpdate(input); err != nil {
		return validationError(err)
	}

	err := s.store.Update(ctx, input)
	if err != nil {
		s.lg.Errorf("update order %s error: %v", input.OrderID, err)

		var upstream *scriptstore.UpstreamError
		if errors.As(err, &upstream) {
			return &model.APIError{
				Code:    http.StatusBadRequest,
				Message: upstream.Message,
			}
		}
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrUpdateOrderMessage,
		}
	}

	return nil
}

// ExportOrders - xlsx со списком заказов дашборда
func (s *Service) ExportOrders(ctx context.Context) ([]byte, *model.APIError) {
	orders, err := s.store.GetOrders(ctx)
	if err != nil {
		s.lg.Errorf("export orders fetch error: %v", err)
		return nil, storeError(err, model.ErrExportOrdersMessage)
	}

	data, err := report.OrdersXLSX(order.NewestFirst(orders))
	if err != nil {
		s.lg.Errorf("export orders build error: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrExportOrdersMessage,
		}
	}

	return data, nil
}

func (s *Service) RenderStatus() model.RenderStatus {
	return s.window.Status(s.now())
}
