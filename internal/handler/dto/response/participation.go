package response

import (
	"time"

	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ParticipationResponse struct {
	ID           uuid.UUID `json:"id"`
	ActivityID   uuid.UUID `json:"activityId"`
	ActivityName string    `json:"activityName"`
	UserID       uuid.UUID `json:"userId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromParticipationView(v *queries.ParticipationView) (*ParticipationResponse, error) {
	return copyFrom[ParticipationResponse](v)
}

func FromParticipationList(items []*queries.ParticipationView) ([]*ParticipationResponse, error) {
	return copyList[ParticipationResponse](items)
}
