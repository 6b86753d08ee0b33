package dto

import "github.com/spec-kit/trip-booking-service/internal/domain"

// DashboardStatsResponse is the wire view of the dashboard counters.
type DashboardStatsResponse struct {
	TotalTrips      int64 `json:"total_trips"`
	TotalBookings   int64 `json:"total_bookings"`
	PendingBookings int64 `json:"pending_bookings"`
	TotalContacts   int64 `json:"total_contacts"`
}

// NewDashboardStatsResponse maps the counters.
func NewDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalTrips:      stats.TotalTrips,
		TotalBookings:   stats.TotalBookings,
		PendingBookings: stats.PendingBookings,
		TotalContacts:   stats.TotalContacts,
	}
}
