package models

import "time"

// Intake statuses shared by feedback, reports and contact submissions
const (
	IntakeNew        = "new"
	IntakeInProgress = "in-progress"
	IntakeResolved   = "resolved"
	IntakeResponded  = "responded"
)

// Feedback represents a feedback submission. UserID is nil when the
// submitter was not logged in.
type Feedback struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Category  string    `gorm:"not null" json:"category"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	Status    string    `gorm:"not null;default:new" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Feedback) TableName() string {
	return "feedback"
}

// Report represents a problem report filed by a logged-in user
type Report struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	Category         string    `gorm:"not null" json:"category"`
	Description      string    `gorm:"not null" json:"description"`
	StepsToReproduce string    `json:"steps_to_reproduce"`
	Status           string    `gorm:"not null;default:new" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Report) TableName() string {
	return "reports"
}

// Contact represents a contact-form submission from the public site
type Contact struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	Status    string    `gorm:"not null;default:new" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Contact) TableName() string {
	return "contacts"
}
