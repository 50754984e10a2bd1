package model

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

const (
	ErrInternalServerMessage   = "Server error"
	ErrUnauthorizedMessage     = "Unauthorized"
	ErrLoadDashboardMessage    = "Failed to load dashboard"
	ErrCreateOrderMessage      = "Failed to create order"
	ErrUpdateOrderMessage      = "Server error while updating order"
	ErrUpdateRejectedMessage   = "Store update failed"
	ErrInvalidRequestMessage   = "Invalid request body"
	ErrExportOrdersMessage     = "Failed to export orders"
	ErrOrderIDRequiredMessage  = "orderId is required"
	ErrPriceRequiredMessage    = "Price must be a valid number >= 0"
	ErrJobStatusInvalidMessage = "Job status must be Pending, In Progress, or Finished"

	OrderUpdatedMessage = "Order updated successfully"
)
