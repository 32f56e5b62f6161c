// Package beeper models the pool of physical pagers handed to customers.
// A beeper belongs to at most one active order; the pool is seeded once at
// startup and never grows or shrinks at runtime.
package beeper

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid beeper status")
	ErrInvalidID     = errors.New("beeper id must be positive")
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusInUse     Status = "in_use"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusInUse:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Beeper is identified by its printed pool number (1..N).
type Beeper struct {
	id     int32
	status Status
}

func NewBeeper(id int32, status Status) (*Beeper, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Beeper{id: id, status: status}, nil
}

func (b *Beeper) ID() int32        { return b.id }
func (b *Beeper) Status() Status   { return b.status }
func (b *Beeper) Available() bool  { return b.status == StatusAvailable }
