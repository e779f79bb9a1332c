package models

import "time"

// Resource types
const (
	ResourceArticle    = "article"
	ResourceVideo      = "video"
	ResourceMusic      = "music"
	ResourceMeditation = "meditation"
)

// Resource topics
const (
	TopicStress  = "stress"
	TopicAnxiety = "anxiety"
	TopicFocus   = "focus"
	TopicSleep   = "sleep"
	TopicBreathe = "breathe"
)

// Resource represents a wellness resource in the public library. Link may
// be a URL or an embed code.
type Resource struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Type      string    `gorm:"not null" json:"type"`
	Topic     string    `gorm:"not null" json:"topic"`
	Link      string    `gorm:"not null" json:"link"`
	Img       string    `gorm:"not null" json:"img"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Resource) TableName() string {
	return "resources"
}
