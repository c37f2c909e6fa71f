package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FaceValue is one sellable denomination within a currency tier. It has no
// identity of its own; it is always addressed through a (product, currency) pair.
type FaceValue struct {
	FaceValue    string  `json:"faceValue" validate:"required"`
	SellingPrice float64 `json:"sellingPrice" validate:"gte=0"`
	Description  string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CurrencyTier groups the face values a product offers in one currency.
// The order of FaceValues is the canonical display order and is preserved
// from storage through to the selector.
type CurrencyTier struct {
	Currency   string      `json:"currency" validate:"required,min=3,max=5"`
	FaceValues []FaceValue `json:"faceValues" validate:"dive"`
}

// Product is a sellable catalog record: a gift card or crypto voucher with
// its multi-currency face-value pricing. Pricing and Images are stored as
// JSON documents on the product row, so every write replaces the whole
// record as a unit.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductName string         `json:"productName" validate:"required,min=2,max=150"`
	BrandName   string         `json:"brandName" validate:"required,min=2,max=100"`
	Category    string         `json:"category" validate:"required,max=100"`
	Images      []string       `json:"images" gorm:"serializer:json"`
	Pricing     []CurrencyTier `json:"pricing" gorm:"serializer:json" validate:"dive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ProductPatch is a partial product update. Nil fields are left untouched;
// Images and Pricing, when present, replace the stored sequences wholesale
// (tiers and face values have no independent lifecycle).
type ProductPatch struct {
	ProductName *string         `json:"productName,omitempty"`
	BrandName   *string         `json:"brandName,omitempty"`
	Category    *string         `json:"category,omitempty"`
	Images      *[]string       `json:"images,omitempty"`
	Pricing     *[]CurrencyTier `json:"pricing,omitempty"`
}

// validate is shared by every repository implementation.
var validate = validator.New()

// Validate checks the product document against the catalog invariants.
// It is called at the repository boundary on create and after a patch merge,
// so a malformed document never reaches storage.
func (p *Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	seen := make(map[string]bool, len(p.Pricing))
	for _, tier := range p.Pricing {
		code := strings.ToUpper(tier.Currency)
		if seen[code] {
			return fmt.Errorf("%w: currency %s appears more than once", ErrDuplicateCurrencyTier, code)
		}
		seen[code] = true
	}
	return nil
}

// Tier returns the pricing tier for the given currency code, or nil when the
// product does not offer that currency. The match is case-insensitive.
func (p *Product) Tier(currency string) *CurrencyTier {
	for i := range p.Pricing {
		if strings.EqualFold(p.Pricing[i].Currency, currency) {
			return &p.Pricing[i]
		}
	}
	return nil
}

// Apply merges the patch into the product. The caller re-validates afterwards.
func (p *Product) Apply(patch ProductPatch) {
	if patch.ProductName != nil {
		p.ProductName = *patch.ProductName
	}
	if patch.BrandName != nil {
		p.BrandName = *patch.BrandName
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Pricing != nil {
		p.Pricing = *patch.Pricing
	}
}
