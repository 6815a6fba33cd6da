package converter

import (
	"reservation-engine/internal/domain/booking"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	room := b.Room()
	return sqlc.CreateBookingParams{
		ID:             b.ID(),
		UserID:         b.UserID(),
		ItemID:         room.ItemID,
		ItemName:       room.Name,
		UnitPriceCents: room.UnitPrice.Cents(),
		Rooms:          pgconv.IntToInt32(b.Rooms()),
		CheckIn:        pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:       pgconv.DateToPgtype(b.Stay().CheckOut()),
		Guests:         pgconv.IntToInt32(b.Guests()),
		TotalCents:     b.Total().Cents(),
		Status:         b.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	room := inventory.Snapshot{
		ItemID:    row.ItemID,
		Kind:      inventory.KindRoom,
		Name:      row.ItemName,
		UnitPrice: money.FromCents(row.UnitPriceCents),
	}
	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		room,
		int(row.Rooms),
		booking.ReconstructStay(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut)),
		int(row.Guests),
		money.FromCents(row.TotalCents),
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
