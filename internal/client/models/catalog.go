package models

import "time"

// Service is a bookable offering from the public catalog.
type Service struct {
	ID          int
	Name        string
	Description string
	Category    string
	Duration    time.Duration
	PriceUSD    int
	Rating      float64
}

// ServiceCatalog returns the services offered to every visitor, signed in
// or not. A fresh slice is returned on every call.
func ServiceCatalog() []Service {
	return []Service{
		{1, "Medical Consultation", "Professional medical consultation with certified doctors.", "Health", 30 * time.Minute, 75, 4.8},
		{2, "Design Services", "Graphic design and branding consultation.", "Creative", 60 * time.Minute, 120, 4.9},
		{3, "Fitness Training", "Personal training and fitness consultation.", "Fitness", 45 * time.Minute, 65, 4.7},
		{4, "Tutoring", "Academic tutoring and subject consultation.", "Education", 60 * time.Minute, 55, 4.6},
		{5, "IT Support", "Technical consultation and IT troubleshooting.", "Technology", 45 * time.Minute, 90, 4.5},
		{6, "Spa & Wellness", "Wellness consultation and spa treatments.", "Wellness", 90 * time.Minute, 150, 4.9},
	}
}

type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
)

// Appointment is a booked slot shown on the dashboard.
type Appointment struct {
	ID       int
	Title    string
	StartsAt time.Time
	Status   AppointmentStatus
}

// DashboardStats summarizes an account's bookings.
type DashboardStats struct {
	Upcoming   int
	Completed  int
	Pending    int
	TotalHours float64
}

// Dashboard is what a signed-in account sees on its dashboard. The
// appointment data is sample data and is the same for every account.
type Dashboard struct {
	Account  Account
	Stats    DashboardStats
	Upcoming []Appointment
}

// NewDashboard builds the dashboard for account. Upcoming and pending
// counts are derived from the upcoming list.
func NewDashboard(account Account) Dashboard {
	upcoming := []Appointment{
		{1, "Dental Checkup", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), StatusConfirmed},
		{2, "Haircut", time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC), StatusConfirmed},
		{3, "Meeting with Client", time.Date(2024, 1, 17, 11, 0, 0, 0, time.UTC), StatusPending},
	}

	stats := DashboardStats{Upcoming: len(upcoming), Completed: 12, TotalHours: 24.5}
	for _, a := range upcoming {
		if a.Status == StatusPending {
			stats.Pending++
		}
	}

	return Dashboard{Account: account, Stats: stats, Upcoming: upcoming}
}
