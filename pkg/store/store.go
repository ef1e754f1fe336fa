package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/wandergate/catalog-api/pkg/config"
	"github.com/wandergate/catalog-api/pkg/models"
)

// ErrNotFound signals that a requested record does not exist. It is a valid
// lookup outcome, distinct from a storage failure.
var ErrNotFound = errors.New("record not found")

// Storage is the data-access contract for the catalog and intake collections.
// Catalog collections (destinations, itineraries, testimonials) are seeded at
// startup and read-only afterwards; consultation requests are append-only with
// storage-assigned identifiers.
type Storage interface {
	// Destinations
	Destinations(ctx context.Context) ([]models.Destination, error)
	DestinationBySlug(ctx context.Context, slug string) (*models.Destination, error)

	// Itineraries
	Itineraries(ctx context.Context) ([]models.Itinerary, error)
	ItinerariesByDestinationID(ctx context.Context, destinationID int) ([]models.Itinerary, error)
	ItineraryByID(ctx context.Context, id int) (*models.Itinerary, error)

	// Testimonials
	Testimonials(ctx context.Context) ([]models.Testimonial, error)

	// Consultation requests
	CreateConsultationRequest(ctx context.Context, sub models.ConsultationSubmission) (*models.ConsultationRequest, error)
	ConsultationRequests(ctx context.Context) ([]models.ConsultationRequest, error)
}

// Open constructs the Storage implementation selected by the database config.
// The memory driver keeps all data for the process lifetime only; sqlite and
// postgres persist through gorm.
func Open(cfg *config.DatabaseConfig) (Storage, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemStore(), nil
	case "sqlite", "postgres":
		return NewGormStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}
