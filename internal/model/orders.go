package model

import (
	"encoding/json"
	"strings"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "Pending"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusFinished   JobStatus = "Finished"
)

// JobStatuses lists the workflow states in display order.
var JobStatuses = []JobStatus{JobStatusPending, JobStatusInProgress, JobStatusFinished}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusFinished:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentUPI    PaymentMethod = "UPI"
	PaymentCard   PaymentMethod = "Card"
	PaymentOnline PaymentMethod = "Online"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentUPI, PaymentCard, PaymentOnline}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentOnline:
		return true
	}
	return false
}

// Order is a row of the external store as presented by the proxy.
type Order struct {
	OrderID       string        `json:"orderId"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	PickupTime    string        `json:"pickupTime"`
	Description   string        `json:"description"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Price         Price         `json:"price"`
	JobStatus     JobStatus     `json:"jobStatus"`
	Files         []string      `json:"files"`
	Timestamp     string        `json:"timestamp"`
}

// storeOrder is the loose shape rows come back in: spreadsheet cells may turn
// phones and ids into numbers, and older rows keep file references in
// fileUrl/fileLink as a comma separated string.
type storeOrder struct {
	OrderID       flexString      `json:"orderId"`
	Name          flexString      `json:"name"`
	Email         flexString      `json:"email"`
	Phone         flexString      `json:"phone"`
	PickupTime    flexString      `json:"pickupTime"`
	Description   flexString      `json:"description"`
	PaymentMethod flexString      `json:"paymentMethod"`
	Price         json.RawMessage `json:"price"`
	JobStatus     flexString      `json:"jobStatus"`
	Files         []flexString    `json:"files"`
	FileURL       flexString      `json:"fileUrl"`
	FileLink      flexString      `json:"fileLink"`
	Link          flexString      `json:"link"`
	Timestamp     flexString      `json:"timestamp"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var raw storeOrder
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Order{
		OrderID:       string(raw.OrderID),
		Name:          string(raw.Name),
		Email:         string(raw.Email),
		Phone:         string(raw.Phone),
		PickupTime:    string(raw.PickupTime),
		Description:   string(raw.Description),
		PaymentMethod: PaymentMethod(raw.PaymentMethod),
		Price:         ParsePriceLenient(raw.Price),
		JobStatus:     JobStatus(raw.JobStatus),
		Timestamp:     string(raw.Timestamp),
	}

	// Статус вне списка (пусто, "Done", другой регистр) показываем как Pending
	if !o.JobStatus.Valid() {
		o.JobStatus = JobStatusPending
	}

	for _, f := range raw.Files {
		o.Files = append(o.Files, SplitFileRefs(string(f))...)
	}
	if len(o.Files) == 0 {
		for _, legacy := range []flexString{raw.FileURL, raw.FileLink, raw.Link} {
			if refs := SplitFileRefs(string(legacy)); len(refs) > 0 {
				o.Files = refs
				break
			}
		}
	}

	return nil
}

// SplitFileRefs splits a comma separated list of file references, dropping
// blanks.
func SplitFileRefs(s string) []string {
	var refs []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			refs = append(refs, part)
		}
	}
	return refs
}

// FilePayload is an uploaded file inlined into a create request.
type FilePayload struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"` // base64
}

// OrderSubmission is the body of POST /order and POST /admin/create-order.
type OrderSubmission struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	PickupTime    string        `json:"pickupTime"`
	Description   string        `json:"description"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Price         Price         `json:"price,omitzero"`
	Files         []FilePayload `json:"files,omitempty"`
	Link          string        `json:"link,omitempty"`
}

type UpdateOrderDTO struct {
	OrderID   string    `json:"orderId"`
	JobStatus JobStatus `json:"jobStatus"`
	Price     Price     `json:"price"`
}

type LoginDTO struct {
	Password string `json:"password"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

type DashboardResponse struct {
	Success bool           `json:"success"`
	Stats   DashboardStats `json:"stats"`
	Orders  []Order        `json:"orders"`
}

type UpdateOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type RenderStatus struct {
	Success   bool   `json:"success"`
	Active    bool   `json:"active"`
	Message   string `json:"message"`
	CheckedAt string `json:"checkedAt"`
}
