package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"calccli/internal/hotel"
)

var hotelDemoCmd = &cobra.Command{
	Use:   "hotel-demo",
	Short: "Run a walkthrough of the hotel reservation system",
	Long: `Creates customers and hotels, books and cancels reservations, and
prints each step. Data is stored as JSON files under the configured data
directory; any previous demo data is removed first.`,
	Args: cobra.NoArgs,
	RunE: runHotelDemo,
}

func init() {
	rootCmd.AddCommand(hotelDemoCmd)
}

func runHotelDemo(cmd *cobra.Command, args []string) error {
	cfg, writer, logger, err := setup()
	if err != nil {
		return err
	}

	dir := filepath.Join(cfg.Paths.DataDir, "hotel")
	for _, name := range []string{"customers.json", "hotels.json", "reservations.json"} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to reset demo data: %w", err)
		}
	}

	svc := hotel.NewService(dir, logger)
	section := func(title string) {
		writer.Echo(strings.Repeat("=", 60))
		writer.Echo(title)
		writer.Echo(strings.Repeat("=", 60))
	}

	section("Hotel Reservation System Demo")

	section("Creating Customers")
	customer1, err := svc.CreateCustomer(hotel.Customer{
		ID:    "C001",
		Name:  "Juan Perez",
		Email: "juan.perez@gmail.com",
		Phone: "555-0101",
	})
	if err != nil {
		return err
	}
	writer.Echo("Created customer: " + customer1.Name)

	customer2, err := svc.CreateCustomer(hotel.Customer{
		ID:    "C002",
		Name:  "Maria Lopez",
		Email: "maria.lopez@gmail.com",
		Phone: "555-0102",
	})
	if err != nil {
		return err
	}
	writer.Echo("Created customer: " + customer2.Name)

	section("Customer Information")
	writer.Echo(hotel.FormatCustomer(customer1))

	section("Creating Hotels")
	hotel1, err := svc.CreateHotel(hotel.Hotel{
		ID:         "H001",
		Name:       "Grand Plaza Hotel",
		Location:   "New York, NY",
		TotalRooms: 150,
	})
	if err != nil {
		return err
	}
	writer.Echo(fmt.Sprintf("Created hotel: %s (%d rooms)", hotel1.Name, hotel1.TotalRooms))

	hotel2, err := svc.CreateHotel(hotel.Hotel{
		ID:         "H002",
		Name:       "Seaside Resort",
		Location:   "Miami, FL",
		TotalRooms: 200,
	})
	if err != nil {
		return err
	}
	writer.Echo(fmt.Sprintf("Created hotel: %s (%d rooms)", hotel2.Name, hotel2.TotalRooms))

	section("Hotel Information")
	writer.Echo(hotel.FormatHotel(hotel1))

	section("Creating Reservations")
	reservation1, err := svc.CreateReservation(hotel.Reservation{
		ID:         "R001",
		CustomerID: customer1.ID,
		HotelID:    hotel1.ID,
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-05",
	})
	if err != nil {
		return err
	}
	writer.Echo("Created reservation: " + reservation1.ID)

	reservation2, err := svc.CreateReservation(hotel.Reservation{
		CustomerID: customer2.ID,
		HotelID:    hotel2.ID,
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-12",
	})
	if err != nil {
		return err
	}
	writer.Echo("Created reservation: " + reservation2.ID)

	section("Reservation Information")
	writer.Echo(hotel.FormatReservation(reservation1))

	section("Cancelling Reservation")
	if err := svc.CancelReservation(reservation1.ID); err != nil {
		return err
	}
	cancelled, err := svc.GetReservation(reservation1.ID)
	if err != nil {
		return err
	}
	writer.Echo("Reservation " + cancelled.ID + " is now " + cancelled.Status)

	updated, err := svc.GetHotel(hotel1.ID)
	if err != nil {
		return err
	}
	writer.Echo(fmt.Sprintf("%s available rooms: %d", updated.Name, updated.AvailableRooms))

	section("Demo Complete")
	return nil
}
