package models

import "time"

// Sell order statuses. An order is queued at submission; the intake consumer
// moves it forward from there.
const (
	SellOrderStatusQueued     = "queued"
	SellOrderStatusProcessing = "processing"
	SellOrderStatusPaid       = "paid"
	SellOrderStatusRejected   = "rejected"
)

// SellOrder is the payload produced when a seller commits to redeeming one
// face value at its quoted price. SellingPriceAtRequest is a snapshot taken
// when the order was built, so later catalog edits do not change it.
type SellOrder struct {
	ID                    string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID             string    `json:"productId" gorm:"type:varchar(36);index"`
	Currency              string    `json:"currency"`
	FaceValue             string    `json:"faceValue"`
	SellingPriceAtRequest float64   `json:"sellingPriceAtRequest"`
	Status                string    `json:"status"`
	RequestedAt           time.Time `json:"requestedAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// SellOrderRequest is the body of POST /sell-orders: the seller's chosen
// denomination, still unvalidated against the catalog.
type SellOrderRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Currency  string `json:"currency" validate:"required"`
	FaceValue string `json:"faceValue" validate:"required"`
}
