package hotel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(t.TempDir(), nil)
}

func testCustomer() Customer {
	return Customer{
		ID:    "C001",
		Name:  "Juan Perez",
		Email: "juan.perez@gmail.com",
		Phone: "555-0101",
	}
}

func testHotel() Hotel {
	return Hotel{
		ID:         "H001",
		Name:       "Grand Plaza Hotel",
		Location:   "New York, NY",
		TotalRooms: 2,
	}
}

func testReservation() Reservation {
	return Reservation{
		ID:         "R001",
		CustomerID: "C001",
		HotelID:    "H001",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-05",
	}
}

func TestCreateAndGetCustomer(t *testing.T) {
	s := newTestService(t)

	created, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)

	got, err := s.GetCustomer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateCustomerPersistsToFile(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir, nil)

	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "customers.json"))
	require.NoError(t, err)

	var stored map[string]Customer
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, "Juan Perez", stored["C001"].Name)
}

func TestCreateCustomerRejectsInvalid(t *testing.T) {
	s := newTestService(t)

	c := testCustomer()
	c.Email = "not-an-email"
	_, err := s.CreateCustomer(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid customer")
}

func TestCreateCustomerDuplicate(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)

	_, err = s.CreateCustomer(testCustomer())
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestUpdateCustomer(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)

	updated := testCustomer()
	updated.Phone = "555-9999"
	require.NoError(t, s.UpdateCustomer(updated))

	got, err := s.GetCustomer("C001")
	require.NoError(t, err)
	assert.Equal(t, "555-9999", got.Phone)
}

func TestDeleteCustomer(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)

	require.NoError(t, s.DeleteCustomer("C001"))

	_, err = s.GetCustomer("C001")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetCustomerNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.GetCustomer("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateHotelStartsFullyAvailable(t *testing.T) {
	s := newTestService(t)

	h, err := s.CreateHotel(testHotel())
	require.NoError(t, err)
	assert.Equal(t, 2, h.AvailableRooms)
}

func TestCreateHotelRejectsZeroRooms(t *testing.T) {
	s := newTestService(t)

	h := testHotel()
	h.TotalRooms = 0
	_, err := s.CreateHotel(h)
	require.Error(t, err)
}

func TestUpdateHotelKeepsReservedRooms(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)
	_, err = s.CreateHotel(testHotel())
	require.NoError(t, err)
	_, err = s.CreateReservation(testReservation())
	require.NoError(t, err)

	updated := testHotel()
	updated.TotalRooms = 5
	require.NoError(t, s.UpdateHotel(updated))

	got, err := s.GetHotel("H001")
	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalRooms)
	assert.Equal(t, 4, got.AvailableRooms)
}

func TestCreateReservationDecrementsAvailability(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)
	_, err = s.CreateHotel(testHotel())
	require.NoError(t, err)

	r, err := s.CreateReservation(testReservation())
	require.NoError(t, err)
	assert.Equal(t, StatusActive, r.Status)

	h, err := s.GetHotel("H001")
	require.NoError(t, err)
	assert.Equal(t, 1, h.AvailableRooms)
}

func TestCreateReservationGeneratesID(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)
	_, err = s.CreateHotel(testHotel())
	require.NoError(t, err)

	r := testReservation()
	r.ID = ""
	created, err := s.CreateReservation(r)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCreateReservationUnknownCustomer(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateHotel(testHotel())
	require.NoError(t, err)

	_, err = s.CreateReservation(testReservation())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateReservationUnknownHotel(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)

	_, err = s.CreateReservation(testReservation())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateReservationNoRoomsAvailable(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)

	h := testHotel()
	h.TotalRooms = 1
	_, err = s.CreateHotel(h)
	require.NoError(t, err)

	_, err = s.CreateReservation(testReservation())
	require.NoError(t, err)

	second := testReservation()
	second.ID = "R002"
	_, err = s.CreateReservation(second)
	require.ErrorIs(t, err, ErrNoRoomsAvailable)
}

func TestCancelReservationReleasesRoom(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)
	_, err = s.CreateHotel(testHotel())
	require.NoError(t, err)
	_, err = s.CreateReservation(testReservation())
	require.NoError(t, err)

	require.NoError(t, s.CancelReservation("R001"))

	r, err := s.GetReservation("R001")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, r.Status)

	h, err := s.GetHotel("H001")
	require.NoError(t, err)
	assert.Equal(t, 2, h.AvailableRooms)
}

func TestCancelReservationTwice(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateCustomer(testCustomer())
	require.NoError(t, err)
	_, err = s.CreateHotel(testHotel())
	require.NoError(t, err)
	_, err = s.CreateReservation(testReservation())
	require.NoError(t, err)

	require.NoError(t, s.CancelReservation("R001"))
	err = s.CancelReservation("R001")
	require.ErrorIs(t, err, ErrReservationNotActive)
}

func TestLoadStoreRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.json"), []byte("{broken"), 0644))

	s := NewService(dir, nil)
	_, err := s.GetCustomer("C001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatCustomer(testCustomer()), "Customer ID: C001")

	h := testHotel()
	h.AvailableRooms = 2
	assert.Contains(t, FormatHotel(h), "Available Rooms: 2")

	r := testReservation()
	r.Status = StatusActive
	assert.Contains(t, FormatReservation(r), "Status: active")
}
