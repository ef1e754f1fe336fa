package webserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandergate/catalog-api/pkg/config"
	"github.com/wandergate/catalog-api/pkg/log"
	"github.com/wandergate/catalog-api/pkg/models"
	"github.com/wandergate/catalog-api/pkg/sheets"
	"github.com/wandergate/catalog-api/pkg/store"
)

// failingMirror always rejects appends, standing in for an unreachable sink
type failingMirror struct{}

func (failingMirror) Append(ctx context.Context, req *models.ConsultationRequest) error {
	return errors.New("sheet unreachable")
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         0,
			ReadTimeout:  5,
			WriteTimeout: 5,
			IdleTimeout:  5,
			GracefulStop: 1,
		},
		CORS: config.CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
		},
		Logging: config.LoggingConfig{
			Level:  "error",
			Format: "text",
			Output: "stdout",
		},
		Sheets: config.SheetsConfig{
			SpreadsheetID: "test-sheet",
		},
	}
}

func newTestServer(t *testing.T, mirror sheets.Mirror) *Server {
	t.Helper()

	cfg := testConfig()
	logger, err := log.New(&cfg.Logging)
	require.NoError(t, err)

	srv, err := New(cfg, store.NewMemStore(), mirror, logger)
	require.NoError(t, err)
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "error")
	return body["error"]
}

func TestGetDestinations(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/destinations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var destinations []models.Destination
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &destinations))
	require.Len(t, destinations, 6)
	assert.Equal(t, "dubai", destinations[0].Slug)
}

func TestGetDestinationBySlug(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/destinations/dubai", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var d models.Destination
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "dubai", d.Slug)
	assert.NotEmpty(t, d.Attractions)
	assert.Contains(t, d.Attractions, "Burj Khalifa")
}

func TestGetDestinationBySlugNotFound(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/destinations/atlantis", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Destination not found", errorBody(t, w))
}

func TestGetItinerariesByDestination(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/destinations/1/itineraries", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var itineraries []models.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &itineraries))
	require.Len(t, itineraries, 1)
	assert.Equal(t, 1, itineraries[0].DestinationID)
}

func TestGetItinerariesByDestinationUnknownIDIsEmptyList(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/destinations/999/itineraries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetItinerariesByDestinationNonNumericID(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/destinations/abc/itineraries", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid destination ID", errorBody(t, w))
}

func TestGetItineraries(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/itineraries", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var itineraries []models.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &itineraries))
	assert.Len(t, itineraries, 3)
}

func TestGetItineraryByID(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/itineraries/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var it models.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &it))
	assert.Equal(t, 1, it.ID)
}

func TestGetItineraryByIDNotFound(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/itineraries/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Itinerary not found", errorBody(t, w))
}

func TestGetItineraryByIDNonNumeric(t *testing.T) {
	srv := newTestServer(t, nil)

	// Must be a 400, never a 500 or a 200
	w := doRequest(t, srv, http.MethodGet, "/api/itineraries/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid itinerary ID", errorBody(t, w))
}

func TestGetTestimonials(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/testimonials", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var testimonials []models.Testimonial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &testimonials))
	assert.Len(t, testimonials, 3)
}

func TestCreateConsultationRequest(t *testing.T) {
	srv := newTestServer(t, nil)

	payload := []byte(`{
		"name": "Jane Roe",
		"email": "jane@example.com",
		"phone": "+971501234567",
		"destination": "Dubai",
		"travelDate": "June 2026",
		"additionalInfo": "Two adults, one child"
	}`)

	w := doRequest(t, srv, http.MethodPost, "/api/consultation-requests", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.ConsultationRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Jane Roe", created.Name)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, "+971501234567", created.Phone)
	assert.Equal(t, "Dubai", created.Destination)
	assert.Equal(t, "June 2026", created.TravelDate)
	assert.Equal(t, "Two adults, one child", created.AdditionalInfo)
	assert.False(t, created.Contacted)
	assert.False(t, created.CreatedAt.IsZero())

	// The stored record is visible through the administrative read
	w = doRequest(t, srv, http.MethodGet, "/api/consultation-requests", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored []models.ConsultationRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, created.ID, stored[0].ID)
	assert.Equal(t, created.Name, stored[0].Name)
}

func TestCreateConsultationRequestValidationReportsAllViolations(t *testing.T) {
	srv := newTestServer(t, nil)

	payload := []byte(`{"name": "A", "email": "not-an-email", "phone": "123", "destination": "Dubai"}`)

	w := doRequest(t, srv, http.MethodPost, "/api/consultation-requests", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	msg := errorBody(t, w)
	assert.Contains(t, msg, "Name must be at least 2 characters")
	assert.Contains(t, msg, "Invalid email address")
	assert.Contains(t, msg, "Phone number must be at least 6 characters")
}

func TestCreateConsultationRequestMalformedBody(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodPost, "/api/consultation-requests", []byte(`{not json`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateConsultationRequestDropsUnknownFields(t *testing.T) {
	srv := newTestServer(t, nil)

	payload := []byte(`{
		"name": "Jane Roe",
		"email": "jane@example.com",
		"phone": "+971501234567",
		"destination": "Dubai",
		"contacted": true,
		"unexpected": "dropped"
	}`)

	w := doRequest(t, srv, http.MethodPost, "/api/consultation-requests", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "unexpected")
	// contacted is server-assigned, never taken from the client
	assert.Equal(t, false, body["contacted"])
}

func TestCreateConsultationRequestMirrorFailureDoesNotBlockWrite(t *testing.T) {
	srv := newTestServer(t, failingMirror{})

	payload := []byte(`{
		"name": "Jane Roe",
		"email": "jane@example.com",
		"phone": "+971501234567",
		"destination": "Dubai"
	}`)

	w := doRequest(t, srv, http.MethodPost, "/api/consultation-requests", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.ConsultationRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)

	w = doRequest(t, srv, http.MethodGet, "/api/consultation-requests", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored []models.ConsultationRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, created.ID, stored[0].ID)
}

func TestSequentialConsultationIDs(t *testing.T) {
	srv := newTestServer(t, nil)

	payload := []byte(`{
		"name": "Jane Roe",
		"email": "jane@example.com",
		"phone": "+971501234567",
		"destination": "Dubai"
	}`)

	first := doRequest(t, srv, http.MethodPost, "/api/consultation-requests", payload)
	require.Equal(t, http.StatusCreated, first.Code)
	second := doRequest(t, srv, http.MethodPost, "/api/consultation-requests", payload)
	require.Equal(t, http.StatusCreated, second.Code)

	var a, b models.ConsultationRequest
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", errorBody(t, w))
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
