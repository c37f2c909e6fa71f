package selection_test

import (
	"testing"

	"kartu/internal/models"
	"kartu/internal/repositories"
	"kartu/internal/selection"
	"kartu/internal/services"

	"github.com/stretchr/testify/assert"
)

// newWorkflowFixture wires a workflow over real services and an in-memory
// catalog seeded with one product.
func newWorkflowFixture(t *testing.T) (*selection.Workflow, *repositories.MockCatalogRepository, string) {
	t.Helper()

	catalogRepo := repositories.NewMockCatalogRepository()
	product := &models.Product{
		ProductName: "Amazon Gift Card",
		BrandName:   "Amazon",
		Category:    "gift-card",
		Pricing: []models.CurrencyTier{
			{
				Currency: "USD",
				FaceValues: []models.FaceValue{
					{FaceValue: "25", SellingPrice: 20, Description: "receipt required"},
					{FaceValue: "50", SellingPrice: 41},
				},
			},
		},
	}
	assert.NoError(t, catalogRepo.Create(product))

	catalogService := services.NewCatalogService(catalogRepo)
	orderService := services.NewSellOrderService(repositories.NewMockSellOrderRepository(), catalogRepo, nil)
	selector := selection.NewFaceValueSelector(40, 200)

	return selection.NewWorkflow(catalogService, orderService, selector), catalogRepo, product.ID
}

func TestWorkflowHappyPath(t *testing.T) {
	workflow, _, productID := newWorkflowFixture(t)

	assert.Equal(t, selection.Browsing, workflow.State())

	assert.NoError(t, workflow.ChooseCurrency(productID, "USD"))
	assert.Equal(t, selection.CurrencyChosen, workflow.State())
	assert.Len(t, workflow.Selector().Rows(), 2)

	assert.NoError(t, workflow.ChooseFaceValue(1))
	assert.Equal(t, selection.FaceValueChosen, workflow.State())

	order, err := workflow.BuildOrder()
	assert.NoError(t, err)
	assert.Equal(t, selection.OrderBuilt, workflow.State())
	assert.Equal(t, productID, order.ProductID)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, "50", order.FaceValue)
	assert.Equal(t, 41.0, order.SellingPriceAtRequest)
	assert.False(t, order.RequestedAt.IsZero())
}

func TestWorkflowRejectsUnknownCurrency(t *testing.T) {
	workflow, _, productID := newWorkflowFixture(t)

	err := workflow.ChooseCurrency(productID, "EUR")
	assert.ErrorIs(t, err, models.ErrCurrencyNotOffered)
	assert.Equal(t, selection.SelectionRejected, workflow.State())
	assert.ErrorIs(t, workflow.Err(), models.ErrCurrencyNotOffered)
}

func TestWorkflowRejectsUnknownProduct(t *testing.T) {
	workflow, _, _ := newWorkflowFixture(t)

	err := workflow.ChooseCurrency("missing", "USD")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, selection.SelectionRejected, workflow.State())
}

func TestWorkflowRejectsOutOfRangeRow(t *testing.T) {
	workflow, _, productID := newWorkflowFixture(t)

	assert.NoError(t, workflow.ChooseCurrency(productID, "USD"))
	err := workflow.ChooseFaceValue(7)
	assert.Error(t, err)
	assert.Equal(t, selection.SelectionRejected, workflow.State())
}

func TestWorkflowRejectsCatalogDriftAtBuildTime(t *testing.T) {
	workflow, catalogRepo, productID := newWorkflowFixture(t)

	assert.NoError(t, workflow.ChooseCurrency(productID, "USD"))
	assert.NoError(t, workflow.ChooseFaceValue(1))

	// The chosen denomination disappears from the catalog before build.
	newPricing := []models.CurrencyTier{
		{Currency: "USD", FaceValues: []models.FaceValue{{FaceValue: "25", SellingPrice: 20}}},
	}
	_, err := catalogRepo.Update(productID, models.ProductPatch{Pricing: &newPricing})
	assert.NoError(t, err)

	_, err = workflow.BuildOrder()
	assert.ErrorIs(t, err, models.ErrFaceValueNotOffered)
	assert.Equal(t, selection.SelectionRejected, workflow.State())
}

func TestWorkflowEnforcesStateOrder(t *testing.T) {
	workflow, _, productID := newWorkflowFixture(t)

	// Cannot pick a row or build before a currency is chosen.
	assert.Error(t, workflow.ChooseFaceValue(0))
	workflow.Reset()
	_, err := workflow.BuildOrder()
	assert.Error(t, err)
	workflow.Reset()

	// Cannot choose a currency twice within one attempt.
	assert.NoError(t, workflow.ChooseCurrency(productID, "USD"))
	assert.Error(t, workflow.ChooseCurrency(productID, "USD"))
}

func TestWorkflowResetRestartsFromTerminalStates(t *testing.T) {
	workflow, _, productID := newWorkflowFixture(t)

	// Terminal failure, then a fresh attempt succeeds.
	_ = workflow.ChooseCurrency(productID, "EUR")
	assert.Equal(t, selection.SelectionRejected, workflow.State())

	workflow.Reset()
	assert.Equal(t, selection.Browsing, workflow.State())
	assert.Nil(t, workflow.Err())
	assert.Empty(t, workflow.Selector().Rows())

	assert.NoError(t, workflow.ChooseCurrency(productID, "USD"))
	assert.NoError(t, workflow.ChooseFaceValue(0))
	order, err := workflow.BuildOrder()
	assert.NoError(t, err)
	assert.Equal(t, "25", order.FaceValue)

	// Terminal success also restarts at Browsing.
	workflow.Reset()
	assert.Equal(t, selection.Browsing, workflow.State())
}
