package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_EffectivePrice(t *testing.T) {
	product := &Product{Price: 2000}
	assert.Equal(t, float64(2000), product.EffectivePrice())

	product.DiscountPrice = floatPtr(1500)
	assert.Equal(t, float64(1500), product.EffectivePrice())
}

func TestProduct_CoverImage(t *testing.T) {
	product := &Product{}
	assert.Equal(t, "", product.CoverImage())

	product.Images = []string{"first.jpg", "second.jpg"}
	assert.Equal(t, "first.jpg", product.CoverImage())
}

func TestProduct_FindVariant(t *testing.T) {
	product := &Product{
		ID: uuid.New(),
		Variants: []Variant{
			{Size: "M", Color: "Blue", Stock: 5, SKU: "SKU-M-BLU"},
			{Size: "L", Color: "Black", Stock: 2, SKU: "SKU-L-BLK"},
		},
	}

	variant := product.FindVariant("L", "Black")
	require.NotNil(t, variant)
	assert.Equal(t, "SKU-L-BLK", variant.SKU)

	assert.Nil(t, product.FindVariant("XL", "Black"))
	assert.Nil(t, product.FindVariant("M", "Red"))
}

func TestVariant_Key(t *testing.T) {
	productID := uuid.New()
	variant := Variant{Size: "M", Color: "Blue"}

	key := variant.Key(productID)
	assert.Equal(t, VariantKey{ProductID: productID, Size: "M", Color: "Blue"}, key)
}
