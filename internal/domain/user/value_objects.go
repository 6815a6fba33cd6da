package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Actor is the identity resolved from a verified token.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

// IsStaff reports whether the actor may act on records owned by other users.
func (a Actor) IsStaff() bool {
	return a.Role.AtLeast(RoleOperator)
}
