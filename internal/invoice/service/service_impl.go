package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bwmarrin/snowflake"
	appconfig "github.com/smallbiznis/billd/internal/config"
	"github.com/smallbiznis/billd/internal/invoice/domain"
	"github.com/smallbiznis/billd/internal/invoice/render"
	obsmetrics "github.com/smallbiznis/billd/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Cfg      appconfig.Config
	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Renderer render.Renderer
	Metrics  *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	dir      string
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	renderer render.Renderer
	metrics  *obsmetrics.Metrics
}

func New(p Params) (domain.Service, error) {
	if err := os.MkdirAll(p.Cfg.InvoiceDir, 0o755); err != nil {
		return nil, fmt.Errorf("create invoice dir: %w", err)
	}

	return &Service{
		dir:      p.Cfg.InvoiceDir,
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		renderer: p.Renderer,
		metrics:  p.Metrics,
	}, nil
}

// Create runs the invoice pipeline in order: compute totals, render the PDF,
// write it to disk, then insert the row. The row is only written after the
// file is fully on disk, so every persisted invoice has its document.
func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.CreateInvoiceResponse, error) {
	items := req.Items
	if items == nil {
		items = []domain.LineItem{}
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Quantity * item.Rate
	}
	gstAmount := subtotal * req.GSTPercent / 100
	total := subtotal + gstAmount

	id := s.genID.Generate()
	pdfPath := filepath.Join(s.dir, id.String()+".pdf")

	pdfBytes, err := s.renderer.Render(render.Document{
		Number:          req.Number,
		Date:            req.Date,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerGST:     req.CustomerGST,
		Items:           items,
		Subtotal:        subtotal,
		GSTPercent:      req.GSTPercent,
		GSTAmount:       gstAmount,
		Total:           total,
	})
	if err != nil {
		s.metrics.RecordRenderFailure(ctx)
		s.log.Error("pdf render failed", zap.String("invoice_id", id.String()), zap.Error(err))
		return domain.CreateInvoiceResponse{}, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		s.metrics.RecordRenderFailure(ctx)
		s.log.Error("pdf write failed", zap.String("pdf_path", pdfPath), zap.Error(err))
		return domain.CreateInvoiceResponse{}, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return domain.CreateInvoiceResponse{}, fmt.Errorf("%w: %v", domain.ErrStoreFailed, err)
	}

	invoice := domain.Invoice{
		ID:              id,
		Number:          req.Number,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerGST:     req.CustomerGST,
		Date:            req.Date,
		Items:           itemsJSON,
		Subtotal:        subtotal,
		GSTPercent:      req.GSTPercent,
		GSTAmount:       gstAmount,
		Total:           total,
		PDFPath:         pdfPath,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		s.metrics.RecordStoreFailure(ctx)
		// The rendered file stays on disk; there is no compensating delete.
		s.log.Warn("invoice insert failed, pdf left on disk",
			zap.String("invoice_id", id.String()),
			zap.String("pdf_path", pdfPath),
			zap.Error(err),
		)
		return domain.CreateInvoiceResponse{}, fmt.Errorf("%w: %v", domain.ErrStoreFailed, err)
	}

	s.metrics.RecordInvoiceCreated(ctx)
	s.log.Info("invoice created",
		zap.String("invoice_id", id.String()),
		zap.String("number", req.Number),
		zap.Float64("total", total),
	)

	return domain.CreateInvoiceResponse{
		ID:     id.String(),
		Number: req.Number,
		PDF:    "/invoices/" + id.String() + ".pdf",
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	summaries, err := s.repo.ListSummaries(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailed, err)
	}
	return summaries, nil
}

// DocumentPath resolves the stored PDF location for an invoice. Identifiers
// that do not parse are reported the same as absent rows.
func (s *Service) DocumentPath(ctx context.Context, id string) (string, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return "", domain.ErrInvoiceNotFound
	}

	invoice, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStoreFailed, err)
	}
	if invoice == nil {
		return "", domain.ErrInvoiceNotFound
	}

	return invoice.PDFPath, nil
}
