package models

// Testimonial represents a customer review shown on the marketing site.
// Destination is a free-text label, not a reference into the catalog, and
// Date is a display label rather than a parsed date.
type Testimonial struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Destination string `gorm:"not null" json:"destination"`
	Rating      int    `gorm:"not null" json:"rating"`
	Comment     string `gorm:"not null" json:"comment"`
	Date        string `gorm:"not null" json:"date"`
	AvatarImage string `gorm:"not null" json:"avatarImage"`
}
