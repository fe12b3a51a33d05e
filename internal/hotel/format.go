package hotel

import (
	"fmt"
	"strings"
)

// FormatCustomer renders customer details for display.
func FormatCustomer(c Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer ID: %s\n", c.ID)
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Phone: %s", c.Phone)
	return b.String()
}

// FormatHotel renders hotel details for display.
func FormatHotel(h Hotel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hotel ID: %s\n", h.ID)
	fmt.Fprintf(&b, "Name: %s\n", h.Name)
	fmt.Fprintf(&b, "Location: %s\n", h.Location)
	fmt.Fprintf(&b, "Total Rooms: %d\n", h.TotalRooms)
	fmt.Fprintf(&b, "Available Rooms: %d", h.AvailableRooms)
	return b.String()
}

// FormatReservation renders reservation details for display.
func FormatReservation(r Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reservation ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Customer ID: %s\n", r.CustomerID)
	fmt.Fprintf(&b, "Hotel ID: %s\n", r.HotelID)
	fmt.Fprintf(&b, "Check-in: %s\n", r.CheckIn)
	fmt.Fprintf(&b, "Check-out: %s\n", r.CheckOut)
	fmt.Fprintf(&b, "Status: %s", r.Status)
	return b.String()
}
