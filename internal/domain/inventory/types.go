package inventory

type Kind string

const (
	KindTicket Kind = "ticket"
	KindRoom   Kind = "room"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindTicket, KindRoom:
		return true
	default:
		return false
	}
}

// ParentKind identifies what the item is sold for: a spot for tickets, a hotel for rooms.
type ParentKind string

const (
	ParentSpot  ParentKind = "spot"
	ParentHotel ParentKind = "hotel"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
