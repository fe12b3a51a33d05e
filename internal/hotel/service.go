// Package hotel implements a small reservation system over JSON file
// stores: customers, hotels, and the reservations linking them. Room
// availability is adjusted as reservations are created and cancelled.
package hotel

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Store file names inside the service directory.
const (
	customersFile    = "customers.json"
	hotelsFile       = "hotels.json"
	reservationsFile = "reservations.json"
)

// Service provides reservation operations over a directory of JSON stores.
type Service struct {
	dir      string
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService creates a reservation service storing its data under dir.
func NewService(dir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		dir:      dir,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) customersPath() string    { return filepath.Join(s.dir, customersFile) }
func (s *Service) hotelsPath() string       { return filepath.Join(s.dir, hotelsFile) }
func (s *Service) reservationsPath() string { return filepath.Join(s.dir, reservationsFile) }

// CreateCustomer validates and persists a new customer.
func (s *Service) CreateCustomer(c Customer) (Customer, error) {
	if err := s.validate.Struct(c); err != nil {
		return Customer{}, fmt.Errorf("invalid customer: %w", err)
	}

	customers, err := loadStore[Customer](s.customersPath())
	if err != nil {
		return Customer{}, err
	}
	if _, exists := customers[c.ID]; exists {
		return Customer{}, fmt.Errorf("customer %s: %w", c.ID, ErrDuplicateID)
	}

	customers[c.ID] = c
	if err := saveStore(s.customersPath(), customers); err != nil {
		return Customer{}, err
	}

	s.logger.Info("customer created", slog.String("customer_id", c.ID))
	return c, nil
}

// GetCustomer returns the customer with the given id.
func (s *Service) GetCustomer(id string) (Customer, error) {
	customers, err := loadStore[Customer](s.customersPath())
	if err != nil {
		return Customer{}, err
	}
	c, ok := customers[id]
	if !ok {
		return Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return c, nil
}

// UpdateCustomer replaces an existing customer's details.
func (s *Service) UpdateCustomer(c Customer) error {
	if err := s.validate.Struct(c); err != nil {
		return fmt.Errorf("invalid customer: %w", err)
	}

	customers, err := loadStore[Customer](s.customersPath())
	if err != nil {
		return err
	}
	if _, ok := customers[c.ID]; !ok {
		return fmt.Errorf("customer %s: %w", c.ID, ErrNotFound)
	}

	customers[c.ID] = c
	return saveStore(s.customersPath(), customers)
}

// DeleteCustomer removes a customer from the store.
func (s *Service) DeleteCustomer(id string) error {
	customers, err := loadStore[Customer](s.customersPath())
	if err != nil {
		return err
	}
	if _, ok := customers[id]; !ok {
		return fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}

	delete(customers, id)
	s.logger.Info("customer deleted", slog.String("customer_id", id))
	return saveStore(s.customersPath(), customers)
}

// CreateHotel validates and persists a new hotel with all rooms available.
func (s *Service) CreateHotel(h Hotel) (Hotel, error) {
	h.AvailableRooms = h.TotalRooms
	if err := s.validate.Struct(h); err != nil {
		return Hotel{}, fmt.Errorf("invalid hotel: %w", err)
	}

	hotels, err := loadStore[Hotel](s.hotelsPath())
	if err != nil {
		return Hotel{}, err
	}
	if _, exists := hotels[h.ID]; exists {
		return Hotel{}, fmt.Errorf("hotel %s: %w", h.ID, ErrDuplicateID)
	}

	hotels[h.ID] = h
	if err := saveStore(s.hotelsPath(), hotels); err != nil {
		return Hotel{}, err
	}

	s.logger.Info("hotel created",
		slog.String("hotel_id", h.ID),
		slog.Int("total_rooms", h.TotalRooms))
	return h, nil
}

// GetHotel returns the hotel with the given id.
func (s *Service) GetHotel(id string) (Hotel, error) {
	hotels, err := loadStore[Hotel](s.hotelsPath())
	if err != nil {
		return Hotel{}, err
	}
	h, ok := hotels[id]
	if !ok {
		return Hotel{}, fmt.Errorf("hotel %s: %w", id, ErrNotFound)
	}
	return h, nil
}

// UpdateHotel replaces an existing hotel's details, keeping the current
// room availability when the total room count is unchanged.
func (s *Service) UpdateHotel(h Hotel) error {
	hotels, err := loadStore[Hotel](s.hotelsPath())
	if err != nil {
		return err
	}
	current, ok := hotels[h.ID]
	if !ok {
		return fmt.Errorf("hotel %s: %w", h.ID, ErrNotFound)
	}

	if h.TotalRooms == current.TotalRooms {
		h.AvailableRooms = current.AvailableRooms
	} else {
		reserved := current.TotalRooms - current.AvailableRooms
		h.AvailableRooms = h.TotalRooms - reserved
	}
	if err := s.validate.Struct(h); err != nil {
		return fmt.Errorf("invalid hotel: %w", err)
	}

	hotels[h.ID] = h
	return saveStore(s.hotelsPath(), hotels)
}

// DeleteHotel removes a hotel from the store.
func (s *Service) DeleteHotel(id string) error {
	hotels, err := loadStore[Hotel](s.hotelsPath())
	if err != nil {
		return err
	}
	if _, ok := hotels[id]; !ok {
		return fmt.Errorf("hotel %s: %w", id, ErrNotFound)
	}

	delete(hotels, id)
	s.logger.Info("hotel deleted", slog.String("hotel_id", id))
	return saveStore(s.hotelsPath(), hotels)
}

// CreateReservation books one room for a customer. The reservation id is
// generated when empty. The referenced customer and hotel must exist and
// the hotel must have a room available.
func (s *Service) CreateReservation(r Reservation) (Reservation, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.Status = StatusActive
	if err := s.validate.Struct(r); err != nil {
		return Reservation{}, fmt.Errorf("invalid reservation: %w", err)
	}

	if _, err := s.GetCustomer(r.CustomerID); err != nil {
		return Reservation{}, err
	}

	hotels, err := loadStore[Hotel](s.hotelsPath())
	if err != nil {
		return Reservation{}, err
	}
	h, ok := hotels[r.HotelID]
	if !ok {
		return Reservation{}, fmt.Errorf("hotel %s: %w", r.HotelID, ErrNotFound)
	}
	if h.AvailableRooms <= 0 {
		return Reservation{}, fmt.Errorf("hotel %s: %w", r.HotelID, ErrNoRoomsAvailable)
	}

	reservations, err := loadStore[Reservation](s.reservationsPath())
	if err != nil {
		return Reservation{}, err
	}
	if _, exists := reservations[r.ID]; exists {
		return Reservation{}, fmt.Errorf("reservation %s: %w", r.ID, ErrDuplicateID)
	}

	h.AvailableRooms--
	hotels[r.HotelID] = h
	if err := saveStore(s.hotelsPath(), hotels); err != nil {
		return Reservation{}, err
	}

	reservations[r.ID] = r
	if err := saveStore(s.reservationsPath(), reservations); err != nil {
		return Reservation{}, err
	}

	s.logger.Info("reservation created",
		slog.String("reservation_id", r.ID),
		slog.String("customer_id", r.CustomerID),
		slog.String("hotel_id", r.HotelID))
	return r, nil
}

// GetReservation returns the reservation with the given id.
func (s *Service) GetReservation(id string) (Reservation, error) {
	reservations, err := loadStore[Reservation](s.reservationsPath())
	if err != nil {
		return Reservation{}, err
	}
	r, ok := reservations[id]
	if !ok {
		return Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}
	return r, nil
}

// CancelReservation marks an active reservation cancelled and releases its
// room back to the hotel.
func (s *Service) CancelReservation(id string) error {
	reservations, err := loadStore[Reservation](s.reservationsPath())
	if err != nil {
		return err
	}
	r, ok := reservations[id]
	if !ok {
		return fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}
	if r.Status != StatusActive {
		return fmt.Errorf("reservation %s: %w", id, ErrReservationNotActive)
	}

	hotels, err := loadStore[Hotel](s.hotelsPath())
	if err != nil {
		return err
	}
	if h, ok := hotels[r.HotelID]; ok && h.AvailableRooms < h.TotalRooms {
		h.AvailableRooms++
		hotels[r.HotelID] = h
		if err := saveStore(s.hotelsPath(), hotels); err != nil {
			return err
		}
	}

	r.Status = StatusCancelled
	reservations[id] = r
	if err := saveStore(s.reservationsPath(), reservations); err != nil {
		return err
	}

	s.logger.Info("reservation cancelled", slog.String("reservation_id", id))
	return nil
}
