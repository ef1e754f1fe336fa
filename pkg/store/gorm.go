package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wandergate/catalog-api/pkg/config"
	"github.com/wandergate/catalog-api/pkg/models"
)

// GormStore implements Storage on a relational database through gorm. It
// exists so the in-memory reference behavior can be swapped for a durable
// backing store without touching the router or validator. Identifier
// assignment moves to the database's autoincrement, which preserves the
// distinct-sequential-ID contract under concurrent inserts.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the configured database, migrates the schema, and seeds
// the catalog tables if they are empty.
func NewGormStore(cfg *config.DatabaseConfig) (*GormStore, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Destination{},
		&models.Itinerary{},
		&models.Testimonial{},
		&models.ConsultationRequest{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	s := &GormStore{db: db}
	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	return s, nil
}

// seed inserts the catalog collections once; a populated destinations table
// means a previous run already seeded everything.
func (s *GormStore) seed() error {
	var count int64
	if err := s.db.Model(&models.Destination{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	destinations := seedDestinations()
	if err := s.db.Create(&destinations).Error; err != nil {
		return err
	}
	itineraries := seedItineraries()
	if err := s.db.Create(&itineraries).Error; err != nil {
		return err
	}
	testimonials := seedTestimonials()
	return s.db.Create(&testimonials).Error
}

// Destinations returns all destinations in insertion order
func (s *GormStore) Destinations(ctx context.Context) ([]models.Destination, error) {
	var out []models.Destination
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// DestinationBySlug looks up a destination by its unique slug
func (s *GormStore) DestinationBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	var d models.Destination
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Itineraries returns all itineraries in insertion order
func (s *GormStore) Itineraries(ctx context.Context) ([]models.Itinerary, error) {
	var out []models.Itinerary
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// ItinerariesByDestinationID filters itineraries by destination ID
func (s *GormStore) ItinerariesByDestinationID(ctx context.Context, destinationID int) ([]models.Itinerary, error) {
	out := []models.Itinerary{}
	err := s.db.WithContext(ctx).Where("destination_id = ?", destinationID).Order("id").Find(&out).Error
	return out, err
}

// ItineraryByID looks up a single itinerary
func (s *GormStore) ItineraryByID(ctx context.Context, id int) (*models.Itinerary, error) {
	var it models.Itinerary
	err := s.db.WithContext(ctx).First(&it, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Testimonials returns all testimonials in insertion order
func (s *GormStore) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var out []models.Testimonial
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// CreateConsultationRequest stores a validated submission as a single-row insert
func (s *GormStore) CreateConsultationRequest(ctx context.Context, sub models.ConsultationSubmission) (*models.ConsultationRequest, error) {
	req := models.ConsultationRequest{
		Name:           sub.Name,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Destination:    sub.Destination,
		TravelDate:     sub.TravelDate,
		AdditionalInfo: sub.AdditionalInfo,
		CreatedAt:      time.Now().UTC(),
		Contacted:      false,
	}
	if err := s.db.WithContext(ctx).Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ConsultationRequests returns all stored consultation requests in insertion order
func (s *GormStore) ConsultationRequests(ctx context.Context) ([]models.ConsultationRequest, error) {
	out := []models.ConsultationRequest{}
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// HealthCheck pings the underlying database connection
func (s *GormStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

var _ Storage = (*GormStore)(nil)
