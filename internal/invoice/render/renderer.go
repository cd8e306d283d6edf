// Package render produces the paginated PDF representation of an invoice.
package render

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appconfig "github.com/smallbiznis/billd/internal/config"
	"github.com/smallbiznis/billd/internal/invoice/domain"
)

// Document is everything the renderer needs for one invoice. Totals arrive
// precomputed; the renderer formats values as-is and validates nothing.
type Document struct {
	Number string
	Date   string

	CustomerName    string
	CustomerAddress string
	CustomerGST     string

	Items []domain.LineItem

	Subtotal   float64
	GSTPercent float64
	GSTAmount  float64
	Total      float64
}

type Renderer interface {
	Render(doc Document) ([]byte, error)
}

type pdfRenderer struct {
	business appconfig.BusinessConfig
}

func NewRenderer(cfg appconfig.Config) Renderer {
	return &pdfRenderer{business: cfg.Business}
}

func (r *pdfRenderer) Render(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Business header
	m.AddRow(10,
		text.NewCol(12, r.business.Name, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, r.business.Tagline, props.Text{Size: 10}),
	)
	m.AddRow(10,
		col.New(12).Add(
			text.New(r.business.Address, props.Text{Size: 9}),
			text.New(fmt.Sprintf("Phone: %s | Email: %s", r.business.Phone, r.business.Email), props.Text{Size: 9, Top: 4}),
		),
	)

	// Invoice meta, right-aligned
	m.AddRow(12,
		col.New(12).Add(
			text.New("Invoice #: "+doc.Number, props.Text{Size: 12, Align: align.Right}),
			text.New("Date: "+doc.Date, props.Text{Size: 12, Align: align.Right, Top: 6}),
		),
	)

	// Customer block: address and GSTIN only when present
	customer := col.New(12).Add(text.New("Bill To: "+doc.CustomerName, props.Text{Size: 10}))
	top := 4.0
	if doc.CustomerAddress != "" {
		customer.Add(text.New(doc.CustomerAddress, props.Text{Size: 10, Top: top}))
		top += 4
	}
	if doc.CustomerGST != "" {
		customer.Add(text.New("GSTIN: "+doc.CustomerGST, props.Text{Size: 10, Top: top}))
		top += 4
	}
	m.AddRow(top+8, customer)

	// Item table
	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))

	for _, item := range doc.Items {
		amount := item.Quantity * item.Rate
		m.AddRow(7,
			text.NewCol(6, item.Description, props.Text{Size: 10}),
			text.NewCol(2, formatQty(item.Quantity), props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, r.money(item.Rate), props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, r.money(amount), props.Text{Size: 10, Align: align.Right}),
		)
	}

	// Summary, right-aligned
	m.AddRow(7,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 10, Align: align.Right}),
		text.NewCol(2, r.money(doc.Subtotal), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(7,
		col.New(8),
		text.NewCol(2, fmt.Sprintf("GST (%s%%)", formatQty(doc.GSTPercent)), props.Text{Size: 10, Align: align.Right}),
		text.NewCol(2, r.money(doc.GSTAmount), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(7,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
		text.NewCol(2, r.money(doc.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	m.AddRow(14,
		text.NewCol(12, "Notes: This is a computer generated invoice.", props.Text{Size: 9, Top: 6}),
	)

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return generated.GetBytes(), nil
}

func (r *pdfRenderer) money(v float64) string {
	return fmt.Sprintf("%s %.2f", r.business.CurrencySymbol, v)
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
