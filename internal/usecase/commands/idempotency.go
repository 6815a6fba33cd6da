package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EndpointCheckout = "POST /api/orders/checkout"
	EndpointBuyNow   = "POST /api/orders"
	EndpointBookRoom = "POST /api/bookings"
)

var (
	ErrIdempotencyKeyReused  = errs.Mark(errs.New("idempotency key was used for a different request"), errs.ErrIdempotencyKeyReused)
	ErrIdempotencyInProgress = errs.Mark(errs.New("idempotency key is still being processed"), errs.ErrBusy)
)

// idempotentRequest does nothing when the client sent no key.
type idempotentRequest struct {
	key shared.IdempotencyKey
	ttl time.Duration
}

func newIdempotentRequest(userID, key uuid.UUID, endpoint string, body any, ttl time.Duration) idempotentRequest {
	if key == uuid.Nil {
		return idempotentRequest{}
	}
	return idempotentRequest{
		key: shared.IdempotencyKey{
			UserID:      userID,
			Key:         key,
			Endpoint:    endpoint,
			RequestHash: requestHash(body),
		},
		ttl: ttl,
	}
}

func (r idempotentRequest) enabled() bool {
	return r.key.Key != uuid.Nil
}

// claim returns the id created by an earlier request with the same key, or
// uuid.Nil when this request now owns the key and must do the work.
func (r idempotentRequest) claim(ctx context.Context, tx shared.Tx, now time.Time) (uuid.UUID, error) {
	if !r.enabled() {
		return uuid.Nil, nil
	}
	repo := tx.Idempotency()
	expiresAt := now.Add(r.ttl)

	inserted, err := repo.TryInsert(ctx, r.key, expiresAt)
	if err != nil {
		return uuid.Nil, err
	}
	if inserted {
		return uuid.Nil, nil
	}
	reclaimed, err := repo.ReclaimExpired(ctx, r.key, now, expiresAt)
	if err != nil {
		return uuid.Nil, err
	}
	if reclaimed {
		return uuid.Nil, nil
	}

	existing, err := repo.Get(ctx, r.key.UserID, r.key.Key)
	if err != nil {
		return uuid.Nil, err
	}
	if existing.Endpoint != r.key.Endpoint || existing.RequestHash != r.key.RequestHash {
		return uuid.Nil, ErrIdempotencyKeyReused
	}
	if existing.Status != shared.IdempotencyCompleted || existing.ResultID == nil {
		return uuid.Nil, ErrIdempotencyInProgress
	}
	return *existing.ResultID, nil
}

func (r idempotentRequest) complete(ctx context.Context, tx shared.Tx, resultID uuid.UUID) error {
	if !r.enabled() {
		return nil
	}
	return tx.Idempotency().UpdateStatusCompleted(ctx, r.key.UserID, r.key.Key, resultID)
}

func requestHash(body any) string {
	data, _ := json.Marshal(body)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
