package models

// Destination represents a travel destination in the read-only catalog
type Destination struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	// Slug is the unique URL-safe identifier, immutable once created
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	ShortDescription string `gorm:"not null" json:"shortDescription"`
	FullDescription  string `gorm:"not null" json:"fullDescription"`
	MainImage        string `gorm:"not null" json:"mainImage"`
	BannerImage      string `gorm:"not null" json:"bannerImage"`

	Attractions StringList `gorm:"type:json;not null" json:"attractions"`
	TravelTips  StringList `gorm:"type:json;not null" json:"travelTips"`
}
