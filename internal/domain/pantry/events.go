package pantry

import (
	"time"

	"github.com/google/uuid"
)

// Domain events raised by the Lot aggregate

// LotCreatedEvent is raised when a new lot is added to a pantry
type LotCreatedEvent struct {
	LotID     uuid.UUID
	UserID    uuid.UUID
	Name      string
	Quantity  float64
	Unit      string
	CreatedAt time.Time
}

// EventName returns the event name
func (e LotCreatedEvent) EventName() string { return "pantry.lot.created" }

// OccurredAt returns when the event occurred
func (e LotCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// LotDeductedEvent is raised when stock is drawn from a lot
type LotDeductedEvent struct {
	LotID      uuid.UUID
	UserID     uuid.UUID
	Amount     float64
	Remaining  float64
	Unit       string
	DeductedAt time.Time
}

// EventName returns the event name
func (e LotDeductedEvent) EventName() string { return "pantry.lot.deducted" }

// OccurredAt returns when the event occurred
func (e LotDeductedEvent) OccurredAt() time.Time { return e.DeductedAt }

// LotDepletedEvent is raised when a deduction brings a lot to zero
type LotDepletedEvent struct {
	LotID      uuid.UUID
	UserID     uuid.UUID
	Name       string
	DepletedAt time.Time
}

// EventName returns the event name
func (e LotDepletedEvent) EventName() string { return "pantry.lot.depleted" }

// OccurredAt returns when the event occurred
func (e LotDepletedEvent) OccurredAt() time.Time { return e.DepletedAt }
