package response

import (
	"time"

	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ItemID         uuid.UUID `json:"itemId"`
	ItemName       string    `json:"itemName"`
	Kind           string    `json:"kind"`
	ItemStatus     string    `json:"itemStatus"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	SubtotalCents  int64     `json:"subtotalCents"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CartResponse struct {
	UserID     uuid.UUID           `json:"userId"`
	Lines      []*CartLineResponse `json:"lines"`
	TotalCents int64               `json:"totalCents"`
	Available  bool                `json:"available"`
}

func FromCartView(v *queries.CartView) (*CartResponse, error) {
	lines, err := copyList[CartLineResponse](v.Lines)
	if err != nil {
		return nil, err
	}
	return &CartResponse{
		UserID:     v.UserID,
		Lines:      lines,
		TotalCents: v.TotalCents,
		Available:  v.Available,
	}, nil
}
