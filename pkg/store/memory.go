package store

import (
	"context"
	"sync"
	"time"

	"github.com/wandergate/catalog-api/pkg/models"
)

// MemStore is the default Storage implementation: fixed in-memory catalog
// collections seeded at construction plus an append-only consultation list.
// A single mutex guards the consultation counter and insert so concurrent
// submissions always receive distinct sequential identifiers. Catalog reads
// need no locking because the catalog never changes after construction.
type MemStore struct {
	destinations []models.Destination
	itineraries  []models.Itinerary
	testimonials []models.Testimonial
	bySlug       map[string]int // slug -> index into destinations

	mu            sync.Mutex
	consultations []models.ConsultationRequest
	nextRequestID int
}

// NewMemStore creates a memory store seeded with the catalog data
func NewMemStore() *MemStore {
	s := &MemStore{
		bySlug:        make(map[string]int),
		nextRequestID: 1,
	}

	for _, d := range seedDestinations() {
		d.ID = len(s.destinations) + 1
		s.bySlug[d.Slug] = len(s.destinations)
		s.destinations = append(s.destinations, d)
	}
	for _, it := range seedItineraries() {
		it.ID = len(s.itineraries) + 1
		s.itineraries = append(s.itineraries, it)
	}
	for _, t := range seedTestimonials() {
		t.ID = len(s.testimonials) + 1
		s.testimonials = append(s.testimonials, t)
	}

	return s
}

// Destinations returns all destinations in insertion order
func (s *MemStore) Destinations(ctx context.Context) ([]models.Destination, error) {
	out := make([]models.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out, nil
}

// DestinationBySlug looks up a destination by its unique slug. The match is
// exact and case-sensitive.
func (s *MemStore) DestinationBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	idx, ok := s.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	d := s.destinations[idx]
	return &d, nil
}

// Itineraries returns all itineraries in insertion order
func (s *MemStore) Itineraries(ctx context.Context) ([]models.Itinerary, error) {
	out := make([]models.Itinerary, len(s.itineraries))
	copy(out, s.itineraries)
	return out, nil
}

// ItinerariesByDestinationID filters itineraries by exact destination ID.
// An unknown ID yields an empty list, not an error.
func (s *MemStore) ItinerariesByDestinationID(ctx context.Context, destinationID int) ([]models.Itinerary, error) {
	out := []models.Itinerary{}
	for _, it := range s.itineraries {
		if it.DestinationID == destinationID {
			out = append(out, it)
		}
	}
	return out, nil
}

// ItineraryByID looks up a single itinerary
func (s *MemStore) ItineraryByID(ctx context.Context, id int) (*models.Itinerary, error) {
	for _, it := range s.itineraries {
		if it.ID == id {
			out := it
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Testimonials returns all testimonials in insertion order
func (s *MemStore) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	out := make([]models.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out, nil
}

// CreateConsultationRequest assigns the next identifier, stamps the creation
// time, and stores the record. It never fails for validated input.
func (s *MemStore) CreateConsultationRequest(ctx context.Context, sub models.ConsultationSubmission) (*models.ConsultationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := models.ConsultationRequest{
		ID:             s.nextRequestID,
		Name:           sub.Name,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Destination:    sub.Destination,
		TravelDate:     sub.TravelDate,
		AdditionalInfo: sub.AdditionalInfo,
		CreatedAt:      time.Now().UTC(),
		Contacted:      false,
	}
	s.nextRequestID++
	s.consultations = append(s.consultations, req)

	return &req, nil
}

// ConsultationRequests returns all stored consultation requests in insertion order
func (s *MemStore) ConsultationRequests(ctx context.Context) ([]models.ConsultationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ConsultationRequest, len(s.consultations))
	copy(out, s.consultations)
	return out, nil
}

// assert interface compliance
var _ Storage = (*MemStore)(nil)
