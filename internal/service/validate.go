package service

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ibeloyar/printbee/internal/model"
	"github.com/ibeloyar/printbee/internal/order"
	"github.com/ibeloyar/printbee/internal/repository/scriptstore"
)

// validationError переводит ошибку правил заказа в 400 с понятным сообщением
func validationError(err error) *model.APIError {
	var tooLarge *order.FileTooLargeError

	message := strings.TrimPrefix(err.Error(), order.ErrValidation.Error()+": ")
	switch {
	case errors.As(err, &tooLarge):
		message = tooLarge.Error()
	case errors.Is(err, order.ErrInvalidPrice):
		message = model.ErrPriceRequiredMessage
	case errors.Is(err, order.ErrInvalidStatus):
		message = model.ErrJobStatusInvalidMessage
	case errors.Is(err, order.ErrMissingOrderID):
		message = model.ErrOrderIDRequiredMessage
	}

	return &model.APIError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// storeError - ответ хранилища без id или с отказом это 502, остальное 500
func storeError(err error, message string) *model.APIError {
	code := http.StatusInternalServerError
	if errors.Is(err, scriptstore.ErrUpstream) {
		code = http.StatusBadGateway
	}

	return &model.APIError{
		Code:    code,
		Message: message,
	}
}
