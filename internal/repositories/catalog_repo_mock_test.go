package repositories_test

import (
	"testing"

	"kartu/internal/models"
	"kartu/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func giftCard(brand, category string, tiers ...models.CurrencyTier) *models.Product {
	return &models.Product{
		ProductName: brand + " Gift Card",
		BrandName:   brand,
		Category:    category,
		Pricing:     tiers,
	}
}

func usdTier(faceValues ...models.FaceValue) models.CurrencyTier {
	return models.CurrencyTier{Currency: "USD", FaceValues: faceValues}
}

func TestMockCatalogRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	product := giftCard("Amazon", "gift-card", usdTier(models.FaceValue{FaceValue: "25", SellingPrice: 20}))
	err := repo.Create(product)

	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)
}

func TestMockCatalogRepository_CreateRejectsDuplicateCurrency(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	product := giftCard("Amazon", "gift-card",
		usdTier(models.FaceValue{FaceValue: "25", SellingPrice: 20}),
		models.CurrencyTier{Currency: "USD"},
	)
	err := repo.Create(product)

	assert.ErrorIs(t, err, models.ErrDuplicateCurrencyTier)

	// Nothing was stored
	products, listErr := repo.List(repositories.CatalogFilter{})
	assert.NoError(t, listErr)
	assert.Empty(t, products)
}

func TestMockCatalogRepository_CreateRejectsNegativePrice(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	product := giftCard("Steam", "crypto-voucher", usdTier(models.FaceValue{FaceValue: "10", SellingPrice: -5}))
	err := repo.Create(product)

	assert.ErrorIs(t, err, models.ErrInvariantViolation)
}

func TestMockCatalogRepository_GetByID(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	product := giftCard("Amazon", "gift-card", usdTier(models.FaceValue{FaceValue: "25", SellingPrice: 20}))
	assert.NoError(t, repo.Create(product))

	got, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ProductName, got.ProductName)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMockCatalogRepository_ListFilters(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	assert.NoError(t, repo.Create(giftCard("Amazon", "gift-card", usdTier())))
	assert.NoError(t, repo.Create(giftCard("Steam", "gift-card", usdTier())))
	assert.NoError(t, repo.Create(giftCard("Binance", "crypto-voucher", usdTier())))

	all, err := repo.List(repositories.CatalogFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	giftCards, err := repo.List(repositories.CatalogFilter{Category: "gift-card"})
	assert.NoError(t, err)
	assert.Len(t, giftCards, 2)

	// Filters are case-insensitive and compose
	steam, err := repo.List(repositories.CatalogFilter{Category: "GIFT-CARD", Brand: "steam"})
	assert.NoError(t, err)
	assert.Len(t, steam, 1)
	assert.Equal(t, "Steam", steam[0].BrandName)

	none, err := repo.List(repositories.CatalogFilter{Brand: "Nintendo"})
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestMockCatalogRepository_UpdateMergesPatch(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	product := giftCard("Amazon", "gift-card", usdTier(models.FaceValue{FaceValue: "25", SellingPrice: 20}))
	assert.NoError(t, repo.Create(product))

	newCategory := "voucher"
	updated, err := repo.Update(product.ID, models.ProductPatch{Category: &newCategory})
	assert.NoError(t, err)
	assert.Equal(t, "voucher", updated.Category)
	assert.Equal(t, "Amazon", updated.BrandName)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestMockCatalogRepository_UpdateAdvancesUpdatedAtOnPricingChange(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	product := giftCard("Amazon", "gift-card", usdTier(models.FaceValue{FaceValue: "25", SellingPrice: 20}))
	assert.NoError(t, repo.Create(product))
	createdAt := product.CreatedAt

	newPricing := []models.CurrencyTier{usdTier(models.FaceValue{FaceValue: "25", SellingPrice: 22})}
	updated, err := repo.Update(product.ID, models.ProductPatch{Pricing: &newPricing})
	assert.NoError(t, err)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(createdAt))
	assert.Equal(t, 22.0, updated.Pricing[0].FaceValues[0].SellingPrice)
}

func TestMockCatalogRepository_UpdateFailsAtomically(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	product := giftCard("Amazon", "gift-card", usdTier(models.FaceValue{FaceValue: "25", SellingPrice: 20}))
	assert.NoError(t, repo.Create(product))

	// A merge that introduces a duplicate currency must not write anything.
	badPricing := []models.CurrencyTier{usdTier(), {Currency: "usd"}}
	newName := "Should Not Stick"
	_, err := repo.Update(product.ID, models.ProductPatch{
		ProductName: &newName,
		Pricing:     &badPricing,
	})
	assert.ErrorIs(t, err, models.ErrDuplicateCurrencyTier)

	stored, getErr := repo.GetByID(product.ID)
	assert.NoError(t, getErr)
	assert.Equal(t, "Amazon Gift Card", stored.ProductName)
	assert.Len(t, stored.Pricing, 1)
}

func TestMockCatalogRepository_UpdateUnknownID(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	name := "anything"
	_, err := repo.Update("missing", models.ProductPatch{ProductName: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMockCatalogRepository_DeleteIsIdempotent(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()

	product := giftCard("Amazon", "gift-card", usdTier(models.FaceValue{FaceValue: "25", SellingPrice: 20}))
	assert.NoError(t, repo.Create(product))

	assert.NoError(t, repo.Delete(product.ID))
	_, err := repo.GetByID(product.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Deleting again (or deleting an id that never existed) is a no-op success.
	assert.NoError(t, repo.Delete(product.ID))
	assert.NoError(t, repo.Delete("never-existed"))
}
