package response

import (
	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemAvailabilityResponse struct {
	ItemID         uuid.UUID `json:"itemId"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	Status         string    `json:"status"`
	Stock          int       `json:"stock"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Available      bool      `json:"available"`
}

type ActivityAvailabilityResponse struct {
	ActivityID      uuid.UUID `json:"activityId"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	MaxParticipants *int      `json:"maxParticipants,omitempty"`
	Registered      int       `json:"registered"`
	Remaining       *int      `json:"remaining,omitempty"`
	Available       bool      `json:"available"`
}

func FromItemAvailability(v *queries.ItemAvailability) (*ItemAvailabilityResponse, error) {
	return copyFrom[ItemAvailabilityResponse](v)
}

func FromActivityAvailability(v *queries.ActivityAvailability) (*ActivityAvailabilityResponse, error) {
	return copyFrom[ActivityAvailabilityResponse](v)
}
