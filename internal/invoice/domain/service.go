package domain

import (
	"context"
	"errors"
)

// CreateInvoiceRequest carries client-supplied invoice data. Numeric fields
// are used as given; a missing item list is treated as empty, not an error.
type CreateInvoiceRequest struct {
	Number          string     `json:"number"`
	CustomerName    string     `json:"customer_name"`
	CustomerAddress string     `json:"customer_address"`
	CustomerGST     string     `json:"customer_gst"`
	Date            string     `json:"date"`
	Items           []LineItem `json:"items"`
	GSTPercent      float64    `json:"gst_percent"`
}

type CreateInvoiceResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	PDF    string `json:"pdf"`
}

type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (CreateInvoiceResponse, error)
	List(ctx context.Context) ([]InvoiceSummary, error)
	DocumentPath(ctx context.Context, id string) (string, error)
}

var (
	ErrInvoiceNotFound = errors.New("invoice_not_found")
	ErrRenderFailed    = errors.New("pdf_render_failed")
	ErrStoreFailed     = errors.New("invoice_store_failed")
)
