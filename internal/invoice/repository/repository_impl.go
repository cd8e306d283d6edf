package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/billd/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO invoices (id, number, customer_name, customer_address, customer_gst, date, items, subtotal, gst_percent, gst_amount, total, pdf_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.Number,
		invoice.CustomerName,
		invoice.CustomerAddress,
		invoice.CustomerGST,
		invoice.Date,
		invoice.Items,
		invoice.Subtotal,
		invoice.GSTPercent,
		invoice.GSTAmount,
		invoice.Total,
		invoice.PDFPath,
		invoice.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, number, customer_name, customer_address, customer_gst, date, items, subtotal, gst_percent, gst_amount, total, pdf_path, created_at
		 FROM invoices WHERE id = ?`,
		id,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

// ListSummaries returns every invoice, newest date first. Snowflake IDs are
// time-ordered, so the id tie-break keeps equal-date rows deterministic.
func (r *repo) ListSummaries(ctx context.Context, db *gorm.DB) ([]domain.InvoiceSummary, error) {
	summaries := []domain.InvoiceSummary{}
	err := db.WithContext(ctx).Raw(
		`SELECT id, number, customer_name, date, subtotal, gst_percent, total
		 FROM invoices ORDER BY date DESC, id DESC`,
	).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
