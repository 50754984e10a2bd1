package order

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ibeloyar/printbee/internal/model"
)

// MaxFileSize is the largest file that may be inlined into a submission.
// Anything bigger has to be shared as a link.
const MaxFileSize = 100 * 1024 * 1024

var (
	ErrValidation           = errors.New("validation failed")
	ErrMissingField         = fmt.Errorf("%w: required field is missing", ErrValidation)
	ErrNoFiles              = fmt.Errorf("%w: attach a file or provide a link", ErrValidation)
	ErrFileTooLarge         = fmt.Errorf("%w: file is too large", ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: unknown payment method", ErrValidation)
	ErrInvalidPrice         = fmt.Errorf("%w: %s", ErrValidation, model.ErrPriceRequiredMessage)
	ErrInvalidStatus        = fmt.Errorf("%w: %s", ErrValidation, model.ErrJobStatusInvalidMessage)
	ErrMissingOrderID       = fmt.Errorf("%w: %s", ErrValidation, model.ErrOrderIDRequiredMessage)
)

// Attachment describes a file picked in the order form before it is encoded.
type Attachment struct {
	Name     string
	MimeType string
	Size     int64
}

// FileTooLargeError names the offending file so the user knows what to
// replace with a link.
type FileTooLargeError struct {
	Name string
	Size int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("File %s is larger than 100 MB. Please share it as a link instead.", e.Name)
}

func (e *FileTooLargeError) Unwrap() error {
	return ErrFileTooLarge
}

// CheckAttachments applies the size gate. A file of exactly MaxFileSize bytes
// passes.
func CheckAttachments(files []Attachment) error {
	for _, f := range files {
		if f.Size > MaxFileSize {
			return &FileTooLargeError{Name: f.Name, Size: f.Size}
		}
	}
	return nil
}

// ValidateSubmission checks a public order before it is forwarded.
func ValidateSubmission(sub model.OrderSubmission) error {
	if err := requireFields(map[string]string{
		"name":          sub.Name,
		"email":         sub.Email,
		"phone":         sub.Phone,
		"pickupTime":    sub.PickupTime,
		"description":   sub.Description,
		"paymentMethod": string(sub.PaymentMethod),
	}); err != nil {
		return err
	}

	if !sub.PaymentMethod.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, sub.PaymentMethod)
	}

	if len(sub.Files) == 0 && strings.TrimSpace(sub.Link) == "" {
		return ErrNoFiles
	}

	return CheckAttachments(payloadAttachments(sub.Files))
}

// ValidateManualOrder checks an order typed in by an admin. Walk-in jobs have
// no files, but the price is mandatory.
func ValidateManualOrder(sub model.OrderSubmission) error {
	if err := requireFields(map[string]string{
		"name":          sub.Name,
		"email":         sub.Email,
		"phone":         sub.Phone,
		"pickupTime":    sub.PickupTime,
		"paymentMethod": string(sub.PaymentMethod),
	}); err != nil {
		return err
	}

	if !sub.PaymentMethod.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, sub.PaymentMethod)
	}

	if !sub.Price.IsSet() || sub.Price.IsNegative() {
		return ErrInvalidPrice
	}

	return CheckAttachments(payloadAttachments(sub.Files))
}

// ValidateUpdate checks an admin edit before the update action is sent.
func ValidateUpdate(input model.UpdateOrderDTO) error {
	if strings.TrimSpace(input.OrderID) == "" {
		return ErrMissingOrderID
	}

	if !input.Price.IsSet() || input.Price.IsNegative() {
		return ErrInvalidPrice
	}

	if !input.JobStatus.Valid() {
		return ErrInvalidStatus
	}

	return nil
}

// ParseUpdate builds an update from raw form values, rejecting a blank or
// non-numeric price.
func ParseUpdate(orderID, price, status string) (model.UpdateOrderDTO, error) {
	p, err := model.ParsePrice(price)
	if err != nil {
		return model.UpdateOrderDTO{}, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	input := model.UpdateOrderDTO{
		OrderID:   orderID,
		JobStatus: model.JobStatus(status),
		Price:     p,
	}

	return input, ValidateUpdate(input)
}

// DecodedSize returns the byte length of a base64 payload without decoding it.
func DecodedSize(content string) int64 {
	content = strings.TrimRight(content, "=")
	return int64(base64.RawStdEncoding.DecodedLen(len(content)))
}

func payloadAttachments(files []model.FilePayload) []Attachment {
	attachments := make([]Attachment, 0, len(files))
	for _, f := range files {
		attachments = append(attachments, Attachment{
			Name:     f.Name,
			MimeType: f.MimeType,
			Size:     DecodedSize(f.Content),
		})
	}
	return attachments
}

func requireFields(fields map[string]string) error {
	for _, name := range fieldOrder {
		value, ok := fields[name]
		if ok && strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}
	return nil
}

var fieldOrder = []string{"name", "email", "phone", "pickupTime", "description", "paymentMethod"}
