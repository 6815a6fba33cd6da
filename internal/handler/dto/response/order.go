package response

import (
	"time"

	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ItemID         uuid.UUID `json:"itemId"`
	ItemName       string    `json:"itemName"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

type OrderResponse struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"userId"`
	Status      string               `json:"status"`
	TotalCents  int64                `json:"totalCents"`
	Items       []*OrderItemResponse `json:"items"`
	PaidAt      *time.Time           `json:"paidAt,omitempty"`
	CancelledAt *time.Time           `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time           `json:"completedAt,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type OrderListResponse struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	items, err := copyList[OrderItemResponse](v.Items)
	if err != nil {
		return nil, err
	}
	return &OrderResponse{
		ID:          v.ID,
		UserID:      v.UserID,
		Status:      v.Status,
		TotalCents:  v.TotalCents,
		Items:       items,
		PaidAt:      v.PaidAt,
		CancelledAt: v.CancelledAt,
		CompletedAt: v.CompletedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}, nil
}

func FromOrderList(items []*queries.OrderListItem) ([]*OrderListResponse, error) {
	return copyList[OrderListResponse](items)
}
