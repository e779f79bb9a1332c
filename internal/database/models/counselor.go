package models

import "time"

// Counselor represents a counselor profile in the public directory.
// Seeded default counselors carry IsDefault and may not be modified or
// deleted.
type Counselor struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Specialty string    `gorm:"not null" json:"specialty"`
	Bio       string    `gorm:"not null" json:"bio"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Counselor) TableName() string {
	return "counselors"
}
