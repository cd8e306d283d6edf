// Package domain contains persistence models for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// LineItem is one billable entry on an invoice. Order is display-significant.
type LineItem struct {
	Description string  `json:"desc"`
	Quantity    float64 `json:"qty"`
	Rate        float64 `json:"rate"`
}

// Invoice represents a billed transaction. Subtotal, GSTAmount and Total are
// always derived from Items and GSTPercent on the server, never client input.
type Invoice struct {
	ID              snowflake.ID   `gorm:"column:id;primaryKey" json:"id"`
	Number          string         `gorm:"column:number;type:text" json:"number"`
	CustomerName    string         `gorm:"column:customer_name;type:text" json:"customer_name"`
	CustomerAddress string         `gorm:"column:customer_address;type:text" json:"customer_address"`
	CustomerGST     string         `gorm:"column:customer_gst;type:text" json:"customer_gst"`
	Date            string         `gorm:"column:date;type:text;index" json:"date"`
	Items           datatypes.JSON `gorm:"column:items" json:"items"`
	Subtotal        float64        `gorm:"column:subtotal;not null;default:0" json:"subtotal"`
	GSTPercent      float64        `gorm:"column:gst_percent;not null;default:0" json:"gst_percent"`
	GSTAmount       float64        `gorm:"column:gst_amount;not null;default:0" json:"gst_amount"`
	Total           float64        `gorm:"column:total;not null;default:0" json:"total"`
	PDFPath         string         `gorm:"column:pdf_path;type:text" json:"pdf_path"`
	CreatedAt       time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceSummary is the listing projection. It deliberately carries neither
// the item list nor the PDF path.
type InvoiceSummary struct {
	ID           snowflake.ID `gorm:"column:id" json:"id"`
	Number       string       `gorm:"column:number" json:"number"`
	CustomerName string       `gorm:"column:customer_name" json:"customer_name"`
	Date         string       `gorm:"column:date" json:"date"`
	Subtotal     float64      `gorm:"column:subtotal" json:"subtotal"`
	GSTPercent   float64      `gorm:"column:gst_percent" json:"gst_percent"`
	Total        float64      `gorm:"column:total" json:"total"`
}
