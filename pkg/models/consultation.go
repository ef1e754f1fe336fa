package models

import "time"

// ConsultationRequest represents a stored visitor enquiry. ID, CreatedAt and
// Contacted are assigned server-side at insert time; Contacted is only ever
// flipped by the back-office process, never through this service.
type ConsultationRequest struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"not null" json:"email"`
	Phone          string    `gorm:"not null" json:"phone"`
	Destination    string    `gorm:"not null" json:"destination"`
	TravelDate     string    `json:"travelDate"`
	AdditionalInfo string    `json:"additionalInfo"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
	Contacted      bool      `gorm:"not null;default:false" json:"contacted"`
}

// ConsultationSubmission is the inbound consultation payload. Decoding an
// untrusted body into this struct drops any unrecognized fields before the
// record reaches validation or storage.
type ConsultationSubmission struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email,contains_dot_domain"`
	Phone          string `json:"phone" validate:"required,min=6"`
	Destination    string `json:"destination" validate:"required"`
	TravelDate     string `json:"travelDate"`
	AdditionalInfo string `json:"additionalInfo"`
}
