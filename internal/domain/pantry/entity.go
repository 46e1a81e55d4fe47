// Package pantry contains the core domain logic for pantry stock management.
// This follows Domain-Driven Design principles with rich domain models.
package pantry

import (
	"strings"
	"time"

	"github.com/alchemorsel/pantry/internal/domain/shared"
	"github.com/google/uuid"
)

// Lot represents one physical stock entry in a user's pantry.
// It is the aggregate root for stock mutation: quantity only changes
// through Deduct and Restock, which enforce the non-negative invariant.
type Lot struct {
	shared.AggregateRoot

	id      uuid.UUID
	userID  uuid.UUID
	version int64 // Optimistic locking

	// Matching attributes
	canonicalName string

	// Stock attributes
	quantity float64
	unit     string

	// Lots without an expiration date sort after all dated lots
	expiresAt *time.Time

	status    LotStatus
	createdAt time.Time
	updatedAt time.Time
}

// NewLot creates a new Lot with validation
func NewLot(userID uuid.UUID, canonicalName string, quantity float64, unit string, expiresAt *time.Time) (*Lot, error) {
	canonicalName = strings.TrimSpace(canonicalName)
	if canonicalName == "" {
		return nil, ErrEmptyProductName
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if strings.TrimSpace(unit) == "" {
		return nil, ErrEmptyUnit
	}

	now := time.Now()
	lot := &Lot{
		id:            uuid.New(),
		userID:        userID,
		version:       1,
		canonicalName: canonicalName,
		quantity:      quantity,
		unit:          unit,
		expiresAt:     expiresAt,
		status:        statusFor(quantity),
		createdAt:     now,
		updatedAt:     now,
	}

	lot.AddEvent(LotCreatedEvent{
		LotID:     lot.id,
		UserID:    userID,
		Name:      canonicalName,
		Quantity:  quantity,
		Unit:      unit,
		CreatedAt: now,
	})

	return lot, nil
}

// RestoreLot rebuilds a Lot from persisted state without raising events.
// Used by repository mappers only.
func RestoreLot(
	id, userID uuid.UUID,
	version int64,
	canonicalName string,
	quantity float64,
	unit string,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:            id,
		userID:        userID,
		version:       version,
		canonicalName: canonicalName,
		quantity:      quantity,
		unit:          unit,
		expiresAt:     expiresAt,
		status:        statusFor(quantity),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ID returns the lot's unique identifier
func (l *Lot) ID() uuid.UUID {
	return l.id
}

// UserID returns the owning user's identifier
func (l *Lot) UserID() uuid.UUID {
	return l.userID
}

// Version returns the lot's version
func (l *Lot) Version() int64 {
	return l.version
}

// CanonicalName returns the normalized product name used for matching
func (l *Lot) CanonicalName() string {
	return l.canonicalName
}

// Quantity returns the amount available, in the lot's own unit
func (l *Lot) Quantity() float64 {
	return l.quantity
}

// Unit returns the lot's unit of measure
func (l *Lot) Unit() string {
	return l.unit
}

// ExpiresAt returns the expiration date, or nil when the lot has none
func (l *Lot) ExpiresAt() *time.Time {
	return l.expiresAt
}

// Status returns the lot's stock status
func (l *Lot) Status() LotStatus {
	return l.status
}

// CreatedAt returns the creation timestamp
func (l *Lot) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns the last mutation timestamp
func (l *Lot) UpdatedAt() time.Time {
	return l.updatedAt
}

// Deduct removes amount from the lot's quantity, in the lot's own unit.
// A draw that would take the quantity negative is rejected, not clamped.
func (l *Lot) Deduct(amount float64) error {
	if amount <= 0 {
		return ErrInvalidDeduction
	}
	if amount > l.quantity {
		return ErrInsufficientQuantity
	}

	now := time.Now()
	l.quantity -= amount
	l.status = statusFor(l.quantity)
	l.updatedAt = now
	l.version++

	l.AddEvent(LotDeductedEvent{
		LotID:      l.id,
		UserID:     l.userID,
		Amount:     amount,
		Remaining:  l.quantity,
		Unit:       l.unit,
		DeductedAt: now,
	})

	if l.status == LotStatusDepleted {
		l.AddEvent(LotDepletedEvent{
			LotID:      l.id,
			UserID:     l.userID,
			Name:       l.canonicalName,
			DepletedAt: now,
		})
	}

	return nil
}

// Restock adds amount to the lot's quantity, in the lot's own unit
func (l *Lot) Restock(amount float64) error {
	if amount <= 0 {
		return ErrInvalidRestock
	}

	l.quantity += amount
	l.status = statusFor(l.quantity)
	l.updatedAt = time.Now()
	l.version++

	return nil
}

func statusFor(quantity float64) LotStatus {
	if quantity > 0 {
		return LotStatusStocked
	}
	return LotStatusDepleted
}

// LotStatus represents the lifecycle state of a lot
type LotStatus string

const (
	// LotStatusStocked means the lot has quantity available for allocation
	LotStatusStocked LotStatus = "stocked"
	// LotStatusDepleted means the lot reached zero; it is inert for
	// allocation but its record is kept
	LotStatusDepleted LotStatus = "depleted"
)
