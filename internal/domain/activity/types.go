package activity

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type ParticipationStatus string

const (
	ParticipationRegistered ParticipationStatus = "registered"
	ParticipationCancelled  ParticipationStatus = "cancelled"
	ParticipationCompleted  ParticipationStatus = "completed"
)

func (s ParticipationStatus) String() string {
	return string(s)
}

func (s ParticipationStatus) IsValid() bool {
	switch s {
	case ParticipationRegistered, ParticipationCancelled, ParticipationCompleted:
		return true
	default:
		return false
	}
}

// OccupiesSlot reports whether a participation in this status counts against capacity.
func (s ParticipationStatus) OccupiesSlot() bool {
	return s == ParticipationRegistered || s == ParticipationCompleted
}
