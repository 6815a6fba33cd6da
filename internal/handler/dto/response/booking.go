package response

import (
	"time"

	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	ItemID         uuid.UUID `json:"itemId"`
	ItemName       string    `json:"itemName"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Rooms          int       `json:"rooms"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	Nights         int       `json:"nights"`
	Guests         int       `json:"guests"`
	TotalCents     int64     `json:"totalCents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	return copyFrom[BookingResponse](v)
}

func FromBookingList(items []*queries.BookingView) ([]*BookingResponse, error) {
	return copyList[BookingResponse](items)
}
