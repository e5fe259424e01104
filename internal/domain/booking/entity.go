package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName      = errors.New("name is required")
	ErrEmptyContact   = errors.New("contact is required")
	ErrInvalidSlot    = errors.New("invalid time slot label")
	ErrInvalidSpace   = errors.New("invalid space")
	ErrInvalidOption  = errors.New("invalid option")
	ErrDuplicateSlots = errors.New("duplicate slot in selection")
)

// Reservation is one booked one-hour slot. A multi-slot submission is
// stored as one Reservation per selected slot, all sharing the same
// name/contact and a per-slot share of the total price.
type Reservation struct {
	id        int64
	date      Date
	slot      string
	space     Space
	people    int
	options   []Option
	price     Money
	name      string
	contact   string
	createdAt time.Time
}

func NewReservation(date Date, slot string, space Space, people int, options []Option, price Money, name, contact string) (*Reservation, error) {
	if !IsValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	if !space.IsValid() {
		return nil, ErrInvalidSpace
	}
	if people <= 0 {
		return nil, ErrInvalidPeople
	}
	for _, option := range options {
		if !option.IsValid() {
			return nil, ErrInvalidOption
		}
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(contact) == "" {
		return nil, ErrEmptyContact
	}

	return &Reservation{
		date:    date,
		slot:    slot,
		space:   space,
		people:  people,
		options: options,
		price:   price,
		name:    strings.TrimSpace(name),
		contact: strings.TrimSpace(contact),
	}, nil
}

func ReconstructReservation(id int64, date Date, slot string, space Space, people int, options []Option, price Money, name, contact string, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		date:      date,
		slot:      slot,
		space:     space,
		people:    people,
		options:   options,
		price:     price,
		name:      name,
		contact:   contact,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() int64           { return r.id }
func (r *Reservation) Date() Date          { return r.date }
func (r *Reservation) Slot() string        { return r.slot }
func (r *Reservation) Space() Space        { return r.space }
func (r *Reservation) People() int         { return r.people }
func (r *Reservation) Options() []Option   { return r.options }
func (r *Reservation) Price() Money        { return r.price }
func (r *Reservation) Name() string        { return r.name }
func (r *Reservation) Contact() string     { return r.contact }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

// BlockedTime is an administrator-imposed unavailability for one slot.
// It shares the (date, slot, space) identity with Reservation and makes
// the slot unavailable independently of any booking.
type BlockedTime struct {
	id        int64
	date      Date
	slot      string
	space     Space
	reason    string
	createdAt time.Time
}

func NewBlockedTime(date Date, slot string, space Space, reason string) (*BlockedTime, error) {
	if !IsValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	if !space.IsValid() {
		return nil, ErrInvalidSpace
	}
	return &BlockedTime{
		date:   date,
		slot:   slot,
		space:  space,
		reason: strings.TrimSpace(reason),
	}, nil
}

func ReconstructBlockedTime(id int64, date Date, slot string, space Space, reason string, createdAt time.Time) *BlockedTime {
	return &BlockedTime{
		id:        id,
		date:      date,
		slot:      slot,
		space:     space,
		reason:    reason,
		createdAt: createdAt,
	}
}

func (b *BlockedTime) ID() int64            { return b.id }
func (b *BlockedTime) Date() Date           { return b.date }
func (b *BlockedTime) Slot() string         { return b.slot }
func (b *BlockedTime) Space() Space         { return b.space }
func (b *BlockedTime) Reason() string       { return b.reason }
func (b *BlockedTime) CreatedAt() time.Time { return b.createdAt }
