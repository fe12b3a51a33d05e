package hotel

// Customer is a registered guest.
type Customer struct {
	ID    string `json:"customer_id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// Hotel is a bookable property with a fixed room count.
type Hotel struct {
	ID             string `json:"hotel_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Location       string `json:"location" validate:"required"`
	TotalRooms     int    `json:"total_rooms" validate:"gte=1"`
	AvailableRooms int    `json:"available_rooms" validate:"gte=0"`
}

// Reservation status values.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Reservation links a customer to a hotel for a date range.
type Reservation struct {
	ID         string `json:"reservation_id" validate:"required"`
	CustomerID string `json:"customer_id" validate:"required"`
	HotelID    string `json:"hotel_id" validate:"required"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=active cancelled"`
}
