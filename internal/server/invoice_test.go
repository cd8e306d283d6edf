package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	appconfig "github.com/smallbiznis/billd/internal/config"
	"github.com/smallbiznis/billd/internal/invoice/domain"
	"github.com/smallbiznis/billd/internal/invoice/render"
	"github.com/smallbiznis/billd/internal/invoice/repository"
	"github.com/smallbiznis/billd/internal/invoice/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Invoice{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	dir := t.TempDir()
	cfg := appconfig.Config{
		Port:       "4000",
		InvoiceDir: dir,
		Business: appconfig.BusinessConfig{
			Name:           "JMD Ayurveda",
			Tagline:        "Ayurvedic Remedies & Wellness",
			CurrencySymbol: "Rs.",
		},
	}

	svc, err := service.New(service.Params{
		Cfg:      cfg,
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     repository.Provide(),
		Renderer: render.NewRenderer(cfg),
	})
	require.NoError(t, err)

	engine := NewEngine(zap.NewNop())
	srv := NewServer(ServerParams{
		Gin:        engine,
		Cfg:        cfg,
		DB:         db,
		InvoiceSvc: svc,
	})

	return srv, dir
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func createInvoice(t *testing.T, srv *Server, number, date string) map[string]any {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/invoices", map[string]any{
		"number":        number,
		"customer_name": "Asha",
		"date":          date,
		"items": []map[string]any{
			{"desc": "Oil", "qty": 2, "rate": 150},
			{"desc": "Soap", "qty": 1, "rate": 50},
		},
		"gst_percent": 18,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateInvoiceEndpoint(t *testing.T) {
	srv, dir := newTestServer(t)

	resp := createInvoice(t, srv, "INV-1", "2024-01-01")

	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "INV-1", resp["number"])
	assert.Equal(t, "/invoices/"+id+".pdf", resp["pdf"])

	_, err := os.Stat(filepath.Join(dir, id+".pdf"))
	assert.NoError(t, err)
}

func TestListInvoicesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	createInvoice(t, srv, "INV-OLD", "2024-01-01")
	createInvoice(t, srv, "INV-NEW", "2024-03-01")

	rec := doJSON(t, srv, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)

	assert.Equal(t, "INV-NEW", listed[0]["number"])
	assert.Equal(t, "INV-OLD", listed[1]["number"])

	for _, entry := range listed {
		assert.NotContains(t, entry, "items")
		assert.NotContains(t, entry, "pdf_path")
		assert.Contains(t, entry, "subtotal")
		assert.Contains(t, entry, "gst_percent")
		assert.Contains(t, entry, "total")
		assert.Contains(t, entry, "customer_name")
	}
}

func TestGetInvoicePDFEndpoint(t *testing.T) {
	srv, dir := newTestServer(t)

	resp := createInvoice(t, srv, "INV-1", "2024-01-01")
	id := resp["id"].(string)

	rec := doJSON(t, srv, http.MethodGet, "/api/invoices/"+id+"/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	onDisk, err := os.ReadFile(filepath.Join(dir, id+".pdf"))
	require.NoError(t, err)
	assert.Equal(t, onDisk, rec.Body.Bytes())
}

func TestGetInvoicePDF_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/invoices/999999999999999999/pdf", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Not found", payload["error"])
}

func TestStaticInvoiceFile(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := createInvoice(t, srv, "INV-1", "2024-01-01")
	id := resp["id"].(string)

	rec := doJSON(t, srv, http.MethodGet, "/invoices/"+id+".pdf", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestRootBanner(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "JMD Ayurveda Billing Server running", payload["msg"])
}

func TestDistinctCreatesProduceDistinctFilesAndRows(t *testing.T) {
	srv, dir := newTestServer(t)

	first := createInvoice(t, srv, "INV-1", "2024-01-01")
	second := createInvoice(t, srv, "INV-2", "2024-01-01")

	assert.NotEqual(t, first["id"], second["id"])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	rec := doJSON(t, srv, http.MethodGet, "/api/invoices", nil)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}
