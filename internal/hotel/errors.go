package hotel

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")
	// ErrDuplicateID indicates an entity with the same id already exists.
	ErrDuplicateID = errors.New("duplicate entity id")
	// ErrNoRoomsAvailable indicates the hotel has no free rooms left.
	ErrNoRoomsAvailable = errors.New("no rooms available")
	// ErrReservationNotActive indicates a cancel on a non-active reservation.
	ErrReservationNotActive = errors.New("reservation is not active")
)
