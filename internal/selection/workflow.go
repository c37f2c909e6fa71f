package selection

import (
	"fmt"

	"kartu/internal/models"
)

// State is the position of one sell attempt in the selection workflow.
type State int

const (
	// Browsing is the initial state: no currency tier chosen yet.
	Browsing State = iota
	// CurrencyChosen means a product's tier is resolved and on the selector.
	CurrencyChosen
	// FaceValueChosen means a denomination row has been picked.
	FaceValueChosen
	// OrderBuilt is the terminal success state of one attempt.
	OrderBuilt
	// SelectionRejected is the terminal failure state of one attempt.
	SelectionRejected
)

// String returns a readable state name for logs.
func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case CurrencyChosen:
		return "currency_chosen"
	case FaceValueChosen:
		return "face_value_chosen"
	case OrderBuilt:
		return "order_built"
	case SelectionRejected:
		return "selection_rejected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TierResolver resolves one product's pricing tier for a currency.
// CatalogService satisfies this.
type TierResolver interface {
	CurrencyTier(productID, currency string) (*models.CurrencyTier, error)
}

// OrderBuilder validates a chosen denomination and constructs a sell order.
// SellOrderService satisfies this.
type OrderBuilder interface {
	Build(productID, currency, faceValue string) (*models.SellOrder, error)
}

// Workflow drives one sell attempt: Browsing -> CurrencyChosen ->
// FaceValueChosen -> OrderBuilt or SelectionRejected. Both terminal states
// restart at Browsing via Reset. The workflow only reads catalog data; the
// built order is the single thing it produces.
type Workflow struct {
	catalog  TierResolver
	builder  OrderBuilder
	selector *FaceValueSelector

	state     State
	productID string
	currency  string
	chosen    models.FaceValue
	err       error
}

// NewWorkflow creates a workflow in the Browsing state.
func NewWorkflow(catalog TierResolver, builder OrderBuilder, selector *FaceValueSelector) *Workflow {
	return &Workflow{
		catalog:  catalog,
		builder:  builder,
		selector: selector,
		state:    Browsing,
	}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	return w.state
}

// Err returns the failure that put the workflow in SelectionRejected.
func (w *Workflow) Err() error {
	return w.err
}

// Selector exposes the selector so the surrounding UI can size it and read rows.
func (w *Workflow) Selector() *FaceValueSelector {
	return w.selector
}

// ChooseCurrency resolves the tier for (productID, currency) and puts it on
// the selector. A failed resolution rejects the attempt.
func (w *Workflow) ChooseCurrency(productID, currency string) error {
	if w.state != Browsing {
		return fmt.Errorf("cannot choose currency in state %s", w.state)
	}
	tier, err := w.catalog.CurrencyTier(productID, currency)
	if err != nil {
		w.reject(err)
		return err
	}
	w.productID = productID
	w.currency = tier.Currency
	w.selector.SetTier(tier)
	w.state = CurrencyChosen
	return nil
}

// ChooseFaceValue picks a denomination row off the selector.
func (w *Workflow) ChooseFaceValue(row int) error {
	if w.state != CurrencyChosen {
		return fmt.Errorf("cannot choose face value in state %s", w.state)
	}
	fv, ok := w.selector.Select(row)
	if !ok {
		err := fmt.Errorf("no face value at row %d", row)
		w.reject(err)
		return err
	}
	w.chosen = fv
	w.state = FaceValueChosen
	return nil
}

// BuildOrder validates the chosen denomination against the catalog and
// constructs the sell order. Success and failure are both terminal for
// this attempt.
func (w *Workflow) BuildOrder() (*models.SellOrder, error) {
	if w.state != FaceValueChosen {
		return nil, fmt.Errorf("cannot build order in state %s", w.state)
	}
	order, err := w.builder.Build(w.productID, w.currency, w.chosen.FaceValue)
	if err != nil {
		w.reject(err)
		return nil, err
	}
	w.state = OrderBuilt
	return order, nil
}

// Reset returns a terminal workflow to Browsing for the next attempt.
func (w *Workflow) Reset() {
	w.state = Browsing
	w.productID = ""
	w.currency = ""
	w.chosen = models.FaceValue{}
	w.err = nil
	w.selector.SetTier(nil)
}

func (w *Workflow) reject(err error) {
	w.state = SelectionRejected
	w.err = err
}
