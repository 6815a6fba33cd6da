package request

import "github.com/google/uuid"

// BuyNowRequest places a single-line order without touching the cart.
type BuyNowRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
}
