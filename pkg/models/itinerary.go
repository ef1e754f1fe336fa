package models

// Itinerary represents a sample travel itinerary tied to a destination.
// DestinationID is not enforced as a foreign key; dangling references are
// tolerated. Duration, budget level, and travel styles are stored as open
// strings because observed catalog data carries values outside the intake
// form's nominal enumerations (e.g. "Family-friendly").
type Itinerary struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	DestinationID int        `gorm:"index;not null" json:"destinationId"`
	Duration      string     `gorm:"not null" json:"duration"`
	BudgetLevel   string     `gorm:"not null" json:"budgetLevel"`
	TravelStyle   StringList `gorm:"type:json;not null" json:"travelStyle"`
	Highlights    StringList `gorm:"type:json;not null" json:"highlights"`
	Description   string     `gorm:"not null" json:"description"`
	Image         string     `gorm:"not null" json:"image"`
}
