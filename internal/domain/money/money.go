package money

import (
	"errors"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in the smallest currency unit.
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromCents is used when reconstructing persisted amounts that were validated on write.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
