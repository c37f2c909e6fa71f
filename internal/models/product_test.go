package models_test

import (
	"testing"

	"kartu/internal/models"

	"github.com/stretchr/testify/assert"
)

func validProduct() *models.Product {
	return &models.Product{
		ProductName: "Amazon Gift Card",
		BrandName:   "Amazon",
		Category:    "gift-card",
		Images:      []string{"amazon-front.png", "amazon-back.png"},
		Pricing: []models.CurrencyTier{
			{
				Currency: "USD",
				FaceValues: []models.FaceValue{
					{FaceValue: "25", SellingPrice: 20, Description: "receipt required"},
					{FaceValue: "50", SellingPrice: 41},
				},
			},
			{
				Currency: "EUR",
				FaceValues: []models.FaceValue{
					{FaceValue: "50", SellingPrice: 38},
				},
			},
		},
	}
}

func TestProductValidate(t *testing.T) {
	product := validProduct()
	assert.NoError(t, product.Validate())
}

func TestProductValidate_DuplicateCurrency(t *testing.T) {
	product := validProduct()
	product.Pricing = append(product.Pricing, models.CurrencyTier{Currency: "USD"})

	err := product.Validate()
	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDuplicateCurrencyTier)
}

func TestProductValidate_DuplicateCurrencyIgnoresCase(t *testing.T) {
	product := validProduct()
	product.Pricing = append(product.Pricing, models.CurrencyTier{Currency: "usd"})

	err := product.Validate()
	assert.ErrorIs(t, err, models.ErrDuplicateCurrencyTier)
}

func TestProductValidate_NegativeSellingPrice(t *testing.T) {
	product := validProduct()
	product.Pricing[0].FaceValues[1].SellingPrice = -1

	err := product.Validate()
	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvariantViolation)
}

func TestProductValidate_ZeroSellingPriceIsAllowed(t *testing.T) {
	product := validProduct()
	product.Pricing[0].FaceValues[0].SellingPrice = 0
	assert.NoError(t, product.Validate())
}

func TestProductValidate_MissingDenominationLabel(t *testing.T) {
	product := validProduct()
	product.Pricing[0].FaceValues[0].FaceValue = ""

	err := product.Validate()
	assert.ErrorIs(t, err, models.ErrInvariantViolation)
}

func TestProductValidate_KeepsFaceValueOrder(t *testing.T) {
	product := validProduct()
	assert.NoError(t, product.Validate())

	// Validation must not reorder the canonical display order.
	labels := make([]string, 0, len(product.Pricing[0].FaceValues))
	for _, fv := range product.Pricing[0].FaceValues {
		labels = append(labels, fv.FaceValue)
	}
	assert.Equal(t, []string{"25", "50"}, labels)
}

func TestProductTier(t *testing.T) {
	product := validProduct()

	tier := product.Tier("USD")
	assert.NotNil(t, tier)
	assert.Equal(t, "USD", tier.Currency)
	assert.Len(t, tier.FaceValues, 2)

	// Case-insensitive lookup
	assert.NotNil(t, product.Tier("usd"))

	// Currency not offered
	assert.Nil(t, product.Tier("GBP"))
}

func TestProductApply(t *testing.T) {
	product := validProduct()

	newName := "Amazon Gift Card (US)"
	newPricing := []models.CurrencyTier{
		{Currency: "USD", FaceValues: []models.FaceValue{{FaceValue: "100", SellingPrice: 80}}},
	}
	product.Apply(models.ProductPatch{
		ProductName: &newName,
		Pricing:     &newPricing,
	})

	assert.Equal(t, "Amazon Gift Card (US)", product.ProductName)
	assert.Equal(t, "Amazon", product.BrandName) // untouched
	assert.Len(t, product.Pricing, 1)            // replaced wholesale
	assert.Equal(t, "100", product.Pricing[0].FaceValues[0].FaceValue)
}
