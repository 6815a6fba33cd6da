package converter

import (
	"reservation-engine/internal/domain/activity"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"
)

func ActivityFromRow(row sqlc.Activities) *activity.Activity {
	return activity.ReconstructActivity(
		row.ID,
		row.Name,
		pgconv.IntPtrFromPgtype(row.MaxParticipants),
		activity.Status(row.Status),
	)
}

func ParticipationToCreateParams(p *activity.Participation) sqlc.CreateParticipationParams {
	return sqlc.CreateParticipationParams{
		ID:           p.ID(),
		ActivityID:   p.ActivityID(),
		UserID:       p.UserID(),
		ActivityName: p.ActivityName(),
		Status:       p.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func ParticipationFromRow(row sqlc.Participations) *activity.Participation {
	return activity.ReconstructParticipation(
		row.ID,
		row.ActivityID,
		row.UserID,
		row.ActivityName,
		activity.ParticipationStatus(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
