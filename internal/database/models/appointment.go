package models

import "time"

// Appointment session types
const (
	AppointmentOnline   = "Online"
	AppointmentInPerson = "In-Person"
)

// Appointment statuses
const (
	StatusUpcoming  = "Upcoming"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Appointment represents a booked counseling session
type Appointment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Counselor string    `gorm:"not null" json:"counselor"`
	Date      time.Time `gorm:"not null" json:"date"`
	Time      string    `gorm:"not null" json:"time"`
	Type      string    `gorm:"not null" json:"type"`
	Status    string    `gorm:"not null;default:Upcoming" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Appointment) TableName() string {
	return "appointments"
}
