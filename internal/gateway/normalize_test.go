package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeItems_BareArray(t *testing.T) {
	raw := []byte(`[{"sku":"A","name":"Runner","unitPrice":199.5}]`)

	products, err := NormalizeItems(raw)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A", products[0].SKU)
	assert.Equal(t, 199.5, products[0].UnitPrice)
}

func TestNormalizeItems_ItemsWrapper(t *testing.T) {
	raw := []byte(`{"items":[{"sku":"A"},{"sku":"B"}]}`)

	products, err := NormalizeItems(raw)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "B", products[1].SKU)
}

func TestNormalizeItems_ContentEnvelope(t *testing.T) {
	raw := []byte(`{"content":[{"sku":"A"}],"page":0,"totalElements":41}`)

	products, err := NormalizeItems(raw)
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestNormalizeItems_LegacyPriceField(t *testing.T) {
	raw := []byte(`[{"sku":"A","price":79.99},{"sku":"B","unitPrice":120,"price":99}]`)

	products, err := NormalizeItems(raw)
	require.NoError(t, err)
	assert.Equal(t, 79.99, products[0].UnitPrice)
	// unitPrice wins when both are present
	assert.Equal(t, 120.0, products[1].UnitPrice)
}

func TestNormalizeItems_EmptyShapes(t *testing.T) {
	for _, raw := range []string{`[]`, `{"items":[]}`, `{"content":[]}`} {
		products, err := NormalizeItems([]byte(raw))
		require.NoError(t, err, raw)
		assert.Empty(t, products, raw)
	}
}

func TestNormalizeItems_UnrecognizedShape(t *testing.T) {
	_, err := NormalizeItems([]byte(`"just a string"`))
	assert.Error(t, err)
}
