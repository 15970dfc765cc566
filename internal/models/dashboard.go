package models

// AdminDashboard is the admin overview stats block. Its zero value is
// the documented degraded default when the stats fetch fails while the
// surrounding lists load fine.
type AdminDashboard struct {
	TotalUsers        int `json:"total_users"`
	TotalBookings     int `json:"total_bookings"`
	TotalDestinations int `json:"total_destinations"`
}

// GuideDashboard is the guide overview stats block.
type GuideDashboard struct {
	TotalBookings int     `json:"total_bookings"`
	ActiveTours   int     `json:"active_tours"`
	AverageRating float64 `json:"average_rating"`
}
