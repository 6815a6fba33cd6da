package request

import (
	"time"

	"reservation-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = time.DateOnly

type BookRoomRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Rooms    int       `json:"rooms" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	Guests   int       `json:"guests" binding:"required"`
}

func (r BookRoomRequest) ToCommand() (commands.BookRoomRequest, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return commands.BookRoomRequest{}, err
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return commands.BookRoomRequest{}, err
	}
	return commands.BookRoomRequest{
		ItemID:   r.ItemID,
		Rooms:    r.Rooms,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   r.Guests,
	}, nil
}
