package models

// Booking statuses the guide dashboard transitions between. The backend
// may report others; the client passes them through untouched.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a trip reservation as seen by any of the three roles.
// TotalCost defaults to 0 when the backend omits it.
type Booking struct {
	ID              int64   `json:"id"`
	DestinationID   int64   `json:"destination_id,omitempty"`
	DestinationName string  `json:"destination_name"`
	TravelerName    string  `json:"traveler_name,omitempty"`
	GuideName       string  `json:"guide_name,omitempty"`
	BookingDate     string  `json:"booking_date"`
	Status          string  `json:"status"`
	TotalCost       float64 `json:"total_cost"`
}

// BookingStatusUpdate is the PATCH body for a guide's status change.
type BookingStatusUpdate struct {
	Status string `json:"status"`
}

// Destination is a bookable safari destination.
type Destination struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// DeleteResult is the confirmation payload of DELETE endpoints.
type DeleteResult struct {
	Message string `json:"message"`
}
