package domain

// DashboardStats aggregates admin dashboard counters.
type DashboardStats struct {
	TotalTrips      int64
	TotalBookings   int64
	PendingBookings int64
	TotalContacts   int64
}
