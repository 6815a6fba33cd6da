package request

import "github.com/google/uuid"

type AddToCartRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
}

type UpdateCartLineRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
