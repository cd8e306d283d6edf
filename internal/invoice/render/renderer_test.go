package render

import (
	"testing"

	appconfig "github.com/smallbiznis/billd/internal/config"
	"github.com/smallbiznis/billd/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() appconfig.Config {
	return appconfig.Config{
		Business: appconfig.BusinessConfig{
			Name:           "JMD Ayurveda",
			Tagline:        "Ayurvedic Remedies & Wellness",
			Address:        "Address: Your Shop Address, Kota, Rajasthan",
			Phone:          "+91-XXXXXXXXXX",
			Email:          "contact@jmdayurveda.in",
			CurrencySymbol: "Rs.",
		},
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	renderer := NewRenderer(testConfig())

	out, err := renderer.Render(Document{
		Number:          "INV-1",
		Date:            "2024-01-01",
		CustomerName:    "Asha",
		CustomerAddress: "12 Market Road, Kota",
		CustomerGST:     "08ABCDE1234F1Z5",
		Items: []domain.LineItem{
			{Description: "Oil", Quantity: 2, Rate: 150},
			{Description: "Soap", Quantity: 1, Rate: 50},
		},
		Subtotal:   350,
		GSTPercent: 18,
		GSTAmount:  63,
		Total:      413,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_OptionalCustomerFieldsAndNoItems(t *testing.T) {
	renderer := NewRenderer(testConfig())

	out, err := renderer.Render(Document{
		Number:       "INV-2",
		Date:         "2024-02-01",
		CustomerName: "Ravi",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_NegativeValuesRenderAsIs(t *testing.T) {
	renderer := NewRenderer(testConfig())

	out, err := renderer.Render(Document{
		Number:       "INV-3",
		Date:         "2024-02-02",
		CustomerName: "Ravi",
		Items: []domain.LineItem{
			{Description: "Return", Quantity: -1, Rate: 50},
		},
		Subtotal: -50,
		Total:    -50,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
