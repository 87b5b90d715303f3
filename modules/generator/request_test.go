package generator_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myrcvr/onboardmail/handler"
	"github.com/myrcvr/onboardmail/modules/generator"
	"github.com/myrcvr/onboardmail/pkg/catalog"
	"github.com/myrcvr/onboardmail/pkg/onboarding"
)

func TestSelectionRequest_Selection(t *testing.T) {
	t.Parallel()

	t.Run("empty request is the default selection", func(t *testing.T) {
		t.Parallel()

		sel, err := generator.SelectionRequest{}.Selection()
		require.NoError(t, err)
		assert.Equal(t, onboarding.NewSelection(), sel)
	})

	t.Run("client name is flattened and capped", func(t *testing.T) {
		t.Parallel()

		sel, err := generator.SelectionRequest{ClientName: "Acme\nCorp\x00"}.Selection()
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", sel.DisplayName())

		sel, err = generator.SelectionRequest{ClientName: strings.Repeat("é", 150)}.Selection()
		require.NoError(t, err)
		assert.Equal(t, generator.MaxClientNameLength, utf8.RuneCountInString(sel.ClientName))
	})

	t.Run("signal maps", func(t *testing.T) {
		t.Parallel()

		sel, err := generator.SelectionRequest{
			ClientName: " Acme ",
			CRMMode:    "self",
			Products:   map[string]bool{"ethoca": true, "rdr": false, "cbRepsFull": true},
			Guides:     map[string]bool{"sticky": true, "knk": false},
		}.Selection()
		require.NoError(t, err)
		assert.Equal(t, " Acme ", sel.DisplayName())
		assert.False(t, sel.ManagedCRM)
		assert.Equal(t, []catalog.Product{catalog.CBRepsFull, catalog.Ethoca}, sel.OrderedProducts())
		assert.Equal(t, catalog.NewGuideSet(catalog.Sticky), sel.Guides)
	})

	t.Run("query display names", func(t *testing.T) {
		t.Parallel()

		sel, err := generator.SelectionRequest{
			CRMMode:      "Managed",
			ProductNames: []string{"CB Partials", "OI"},
			GuideNames:   []string{"knk"},
		}.Selection()
		require.NoError(t, err)
		assert.True(t, sel.ManagedCRM)
		assert.Equal(t, []catalog.Product{catalog.CBPartials, catalog.OI}, sel.OrderedProducts())
		assert.True(t, sel.Guides.Has(catalog.KNK))
	})

	t.Run("unknown values are reported per field", func(t *testing.T) {
		t.Parallel()

		_, err := generator.SelectionRequest{
			CRMMode:      "outsourced",
			Products:     map[string]bool{"paypal": true},
			ProductNames: []string{"Stripe"},
			Guides:       map[string]bool{"shopify": true},
			GuideNames:   []string{"Woo"},
		}.Selection()

		var verr handler.ValidationError
		require.ErrorAs(t, err, &verr)
		for _, field := range []string{"crmMode", "products", "product", "guides", "guide"} {
			assert.True(t, verr.Has(field), field)
		}
	})
}

func TestSignalsFor(t *testing.T) {
	t.Parallel()

	sel := onboarding.NewSelection().
		WithClientName("Acme").
		ToggleProduct(catalog.MCX).
		ToggleGuide(catalog.KNK)
	s := generator.SignalsFor(sel)

	assert.Equal(t, "Acme", s.ClientName)
	assert.Equal(t, generator.CRMManaged, s.CRMMode)
	assert.Len(t, s.Products, len(catalog.Products()))
	assert.True(t, s.Products["mcx"])
	assert.False(t, s.Products["ethoca"])
	assert.Equal(t, map[string]bool{"knk": true, "sticky": false}, s.Guides)
	assert.True(t, s.CanCopy)

	assert.Equal(t, generator.CRMSelf, generator.SignalsFor(sel.WithManagedCRM(false)).CRMMode)
}
