package web

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/ibeloyar/printbee/internal/model"
	"github.com/ibeloyar/printbee/internal/order"
	"github.com/skip2/go-qrcode"
)

const (
	// файлы сверх этого объёма multipart складывает во временные файлы
	maxUploadMemory = 32 << 20
	qrCodeSize      = 256

	submitFailedMessage = "Failed to submit order. Please try again."
)

type orderPage struct {
	page
	Status         *model.RenderStatus
	Form           model.OrderSubmission
	PaymentMethods []model.PaymentMethod
}

type successPage struct {
	page
	OrderID string
	QRCode  template.URL
}

func (h *Handler) OrderForm(w http.ResponseWriter, r *http.Request) {
	h.renderOrderForm(w, r, http.StatusOK, model.OrderSubmission{PaymentMethod: model.PaymentCash}, "")
}

func (h *Handler) renderOrderForm(w http.ResponseWriter, r *http.Request, status int, form model.OrderSubmission, errMessage string) {
	data := orderPage{
		page:           h.pageData(w, r),
		Form:           form,
		PaymentMethods: model.PaymentMethods,
	}
	if errMessage != "" {
		data.Flashes = append(data.Flashes, flash{Kind: flashError, Message: errMessage})
	}

	if st, err := h.api.RenderStatus(r.Context()); err != nil {
		h.lg.Debugf("render status: %v", err)
	} else {
		data.Status = &st
	}

	h.render(w, "order.html", status, data)
}

func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.lg.Errorf("parse order form: %v", err)
		h.renderOrderForm(w, r, http.StatusBadRequest, model.OrderSubmission{}, submitFailedMessage)
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	sub := model.OrderSubmission{
		Name:          strings.TrimSpace(r.FormValue("name")),
		Email:         strings.TrimSpace(r.FormValue("email")),
		Phone:         strings.TrimSpace(r.FormValue("phone")),
		PickupTime:    strings.TrimSpace(r.FormValue("pickupTime")),
		Description:   strings.TrimSpace(r.FormValue("description")),
		PaymentMethod: model.PaymentMethod(r.FormValue("paymentMethod")),
		Link:          strings.TrimSpace(r.FormValue("link")),
	}

	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File["files"]
	}

	// размер проверяется до чтения файлов
	if err := order.CheckAttachments(attachments(headers)); err != nil {
		h.renderOrderForm(w, r, http.StatusBadRequest, sub, err.Error())
		return
	}

	files, err := encodeFiles(headers)
	if err != nil {
		h.lg.Errorf("encode order files: %v", err)
		h.renderOrderForm(w, r, http.StatusBadRequest, sub, submitFailedMessage)
		return
	}
	sub.Files = files

	if err := order.ValidateSubmission(sub); err != nil {
		sub.Files = nil
		h.renderOrderForm(w, r, http.StatusBadRequest, sub, submissionMessage(err))
		return
	}

	id, err := h.api.SubmitOrder(r.Context(), sub)
	if err != nil {
		h.lg.Errorf("submit order: %v", err)
		sub.Files = nil
		h.renderOrderForm(w, r, http.StatusBadGateway, sub, submitFailedMessage)
		return
	}

	http.Redirect(w, r, "/order/success?id="+url.QueryEscape(id), http.StatusSeeOther)
}

func (h *Handler) OrderSuccess(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := successPage{page: h.pageData(w, r), OrderID: id}

	png, err := qrcode.Encode(id, qrcode.Medium, qrCodeSize)
	if err != nil {
		h.lg.Errorf("qr code for order %s: %v", id, err)
	} else {
		data.QRCode = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	}

	h.render(w, "success.html", http.StatusOK, data)
}

func attachments(headers []*multipart.FileHeader) []order.Attachment {
	result := make([]order.Attachment, 0, len(headers))
	for _, fh := range headers {
		result = append(result, order.Attachment{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Size:     fh.Size,
		})
	}
	return result
}

func encodeFiles(headers []*multipart.FileHeader) ([]model.FilePayload, error) {
	files := make([]model.FilePayload, 0, len(headers))
	for _, fh := range headers {
		content, err := readFile(fh)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}

		mimeType := fh.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		files = append(files, model.FilePayload{
			Name:     fh.Filename,
			MimeType: mimeType,
			Content:  base64.StdEncoding.EncodeToString(content),
		})
	}
	return files, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func submissionMessage(err error) string {
	var tooLarge *order.FileTooLargeError
	switch {
	case errors.As(err, &tooLarge):
		return tooLarge.Error()
	case errors.Is(err, order.ErrNoFiles):
		return "Please attach a file or provide a link."
	case errors.Is(err, order.ErrMissingField):
		return "Please fill in all required fields."
	case errors.Is(err, order.ErrInvalidPaymentMethod):
		return "Please choose a payment method."
	}
	return submitFailedMessage
}
