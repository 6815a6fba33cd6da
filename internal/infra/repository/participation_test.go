//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/infra/repository"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/errs"
	repositorymock "reservation-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var registeredAt = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func activityRow(id uuid.UUID, maxParticipants *int32, status string) sqlc.Activities {
	row := sqlc.Activities{ID: id, Name: "Morning kayak tour", Status: status}
	if maxParticipants != nil {
		row.MaxParticipants = pgtype.Int4{Int32: *maxParticipants, Valid: true}
	}
	return row
}

func limit(n int32) *int32 { return &n }

// =============================================================================
// TryRegister Tests
// =============================================================================

func TestParticipationRepository_TryRegister(t *testing.T) {
	ctx := context.Background()
	activityID, userID := uuid.New(), uuid.New()
	live := sqlc.ExistsLiveParticipationParams{ActivityID: activityID, UserID: userID}

	testCases := []struct {
		name      string
		setupMock func(*repositorymock.MockParticipationQueries)
		wantErr   error
	}{
		{
			name: "success: free slot",
			setupMock: func(mock *repositorymock.MockParticipationQueries) {
				mock.EXPECT().GetActivityForUpdate(ctx, gomock.Any(), activityID).Return(activityRow(activityID, limit(3), "active"), nil)
				mock.EXPECT().ExistsLiveParticipation(ctx, gomock.Any(), live).Return(false, nil)
				mock.EXPECT().CountOccupyingParticipations(ctx, gomock.Any(), activityID).Return(int32(2), nil)
				mock.EXPECT().CreateParticipation(ctx, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "success: unlimited activity",
			setupMock: func(mock *repositorymock.MockParticipationQueries) {
				mock.EXPECT().GetActivityForUpdate(ctx, gomock.Any(), activityID).Return(activityRow(activityID, nil, "active"), nil)
				mock.EXPECT().ExistsLiveParticipation(ctx, gomock.Any(), live).Return(false, nil)
				mock.EXPECT().CountOccupyingParticipations(ctx, gomock.Any(), activityID).Return(int32(500), nil)
				mock.EXPECT().CreateParticipation(ctx, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: full",
			setupMock: func(mock *repositorymock.MockParticipationQueries) {
				mock.EXPECT().GetActivityForUpdate(ctx, gomock.Any(), activityID).Return(activityRow(activityID, limit(3), "active"), nil)
				mock.EXPECT().ExistsLiveParticipation(ctx, gomock.Any(), live).Return(false, nil)
				mock.EXPECT().CountOccupyingParticipations(ctx, gomock.Any(), activityID).Return(int32(3), nil)
			},
			wantErr: errs.ErrFull,
		},
		{
			name: "error: already registered",
			setupMock: func(mock *repositorymock.MockParticipationQueries) {
				mock.EXPECT().GetActivityForUpdate(ctx, gomock.Any(), activityID).Return(activityRow(activityID, limit(3), "active"), nil)
				mock.EXPECT().ExistsLiveParticipation(ctx, gomock.Any(), live).Return(true, nil)
			},
			wantErr: errs.ErrAlreadyRegistered,
		},
		{
			name: "error: unique index catches a racing duplicate",
			setupMock: func(mock *repositorymock.MockParticipationQueries) {
				mock.EXPECT().GetActivityForUpdate(ctx, gomock.Any(), activityID).Return(activityRow(activityID, limit(3), "active"), nil)
				mock.EXPECT().ExistsLiveParticipation(ctx, gomock.Any(), live).Return(false, nil)
				mock.EXPECT().CountOccupyingParticipations(ctx, gomock.Any(), activityID).Return(int32(0), nil)
				mock.EXPECT().CreateParticipation(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			wantErr: errs.ErrAlreadyRegistered,
		},
		{
			name: "error: inactive activity",
			setupMock: func(mock *repositorymock.MockParticipationQueries) {
				mock.EXPECT().GetActivityForUpdate(ctx, gomock.Any(), activityID).Return(activityRow(activityID, limit(3), "inactive"), nil)
				mock.EXPECT().ExistsLiveParticipation(ctx, gomock.Any(), live).Return(false, nil)
				mock.EXPECT().CountOccupyingParticipations(ctx, gomock.Any(), activityID).Return(int32(0), nil)
			},
			wantErr: errs.ErrUnavailable,
		},
		{
			name: "error: unknown activity",
			setupMock: func(mock *repositorymock.MockParticipationQueries) {
				mock.EXPECT().GetActivityForUpdate(ctx, gomock.Any(), activityID).Return(sqlc.Activities{}, pgx.ErrNoRows)
			},
			wantErr: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockParticipationQueries(ctrl)
			repo := repository.NewParticipationRepository(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			p, err := repo.TryRegister(ctx, activityID, userID, registeredAt)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, activityID, p.ActivityID())
			assert.Equal(t, userID, p.UserID())
			assert.Equal(t, activity.ParticipationRegistered, p.Status())
			assert.Equal(t, "Morning kayak tour", p.ActivityName())
		})
	}
}

func TestParticipationRepository_FullErrorCarriesCapacity(t *testing.T) {
	ctx := context.Background()
	activityID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockParticipationQueries(ctrl)
	mockQueries.EXPECT().GetActivityForUpdate(ctx, gomock.Any(), activityID).Return(activityRow(activityID, limit(2), "active"), nil)
	mockQueries.EXPECT().ExistsLiveParticipation(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	mockQueries.EXPECT().CountOccupyingParticipations(ctx, gomock.Any(), activityID).Return(int32(2), nil)

	_, err := repository.NewParticipationRepository(mockQueries, &mockDBTX{}).TryRegister(ctx, activityID, uuid.New(), registeredAt)

	var full *activity.FullError
	require.True(t, errs.As(err, &full))
	assert.Equal(t, activityID, full.ActivityID)
	assert.Equal(t, 2, full.Capacity)
}

// =============================================================================
// Unregister / Complete Tests
// =============================================================================

func TestParticipationRepository_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("success: status is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockParticipationQueries(ctrl)
		p := activity.ReconstructParticipation(uuid.New(), uuid.New(), uuid.New(), "Kayak", activity.ParticipationRegistered, registeredAt, registeredAt)
		now := registeredAt.Add(time.Hour)

		mockQueries.EXPECT().UpdateParticipationStatus(ctx, gomock.Any(), sqlc.UpdateParticipationStatusParams{
			ID:        p.ID(),
			Status:    "cancelled",
			UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		}).Return(int64(1), nil)

		err := repository.NewParticipationRepository(mockQueries, &mockDBTX{}).Unregister(ctx, p, now)

		require.NoError(t, err)
		assert.Equal(t, activity.ParticipationCancelled, p.Status())
	})

	t.Run("error: already cancelled writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockParticipationQueries(ctrl)
		p := activity.ReconstructParticipation(uuid.New(), uuid.New(), uuid.New(), "Kayak", activity.ParticipationCancelled, registeredAt, registeredAt)

		err := repository.NewParticipationRepository(mockQueries, &mockDBTX{}).Unregister(ctx, p, registeredAt)

		assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled))
	})
}

func TestParticipationRepository_Complete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockParticipationQueries(ctrl)
	p := activity.ReconstructParticipation(uuid.New(), uuid.New(), uuid.New(), "Kayak", activity.ParticipationRegistered, registeredAt, registeredAt)

	mockQueries.EXPECT().UpdateParticipationStatus(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

	err := repository.NewParticipationRepository(mockQueries, &mockDBTX{}).Complete(ctx, p, registeredAt)

	assert.ErrorIs(t, err, activity.ErrParticipationNotFound)
}
