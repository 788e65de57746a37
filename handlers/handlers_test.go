package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studiobook/database/repository/booking"
	"studiobook/handlers"
	"studiobook/models"
	"studiobook/routes"
	"studiobook/services/booking"
	"studiobook/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "staff@example.com"
	testAdminPassword = "studio-secret"
	testJWTSecret     = "test-secret"
)

// fakeRepo is an in-memory BookingRepository that counts reads.
type fakeRepo struct {
	records   []models.Booking
	createErr error
	listCalls int
	getCalls  int
}

func (f *fakeRepo) Create(_ context.Context, record models.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	record.ID = "bk-1"
	record.Status = models.StatusConfirmed
	f.records = append(f.records, record)
	return record.ID, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.getCalls++
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	f.listCalls++
	return f.records, nil
}

// stubWizard returns canned responses so handler mapping can be exercised
// without Redis or Stripe.
type stubWizard struct {
	session *models.BookingSession
	booking *models.Booking
	intent  *models.PaymentIntentResult
	err     error
}

func (s *stubWizard) Start(context.Context) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) Get(context.Context, string) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) SelectPackage(context.Context, string, string) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) SelectSchedule(context.Context, string, string, string) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) SubmitContact(context.Context, string, booking.ContactInput) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) Back(context.Context, string) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) CreateIntent(context.Context, string) (*models.PaymentIntentResult, error) {
	return s.intent, s.err
}

func (s *stubWizard) Confirm(context.Context, string, string) (*models.Booking, error) {
	return s.booking, s.err
}

type fakeIntents struct {
	createFn func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func (f *fakeIntents) Create(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return f.createFn(params)
}

func (f *fakeIntents) Get(string, *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, repo *fakeRepo, wizard booking.WizardService, intents payment.IntentsAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	logger := zap.NewNop()
	if intents == nil {
		intents = &fakeIntents{
			createFn: func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
				return &stripe.PaymentIntent{ID: "pi_x", ClientSecret: "pi_x_secret"}, nil
			},
		}
	}
	if wizard == nil {
		wizard = &stubWizard{}
	}

	router := gin.New()
	routes.RegisterRoutes(router, &routes.HandlerBundle{
		Booking:       handlers.NewBookingHandler(wizard, logger),
		Payments:      handlers.NewPaymentHandler(&payment.Service{Intents: intents, Logger: logger}, logger),
		CreateBooking: handlers.NewCreateBookingHandler(repo, logger),
		Admin:         handlers.NewAdminHandler(repo, testAdminEmail, string(hash), testJWTSecret),
		JWTSecret:     []byte(testJWTSecret),
	})
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/admin/login", gin.H{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAdminListingFailsClosed(t *testing.T) {
	repo := &fakeRepo{records: []models.Booking{{ID: "bk-1"}}}
	router := newTestRouter(t, repo, nil, nil)

	w := doJSON(router, http.MethodGet, "/api/admin/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/admin/bookings", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The gate rejects before any store access.
	assert.Zero(t, repo.listCalls)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t, &fakeRepo{}, nil, nil)

	w := doJSON(router, http.MethodPost, "/api/admin/login", gin.H{
		"email":    testAdminEmail,
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/admin/login", gin.H{
		"email":    "intruder@example.com",
		"password": testAdminPassword,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListAndDetail(t *testing.T) {
	repo := &fakeRepo{records: []models.Booking{
		{ID: "bk-1", Name: "Mary-Jane O'Brien", Status: models.StatusConfirmed},
	}}
	router := newTestRouter(t, repo, nil, nil)
	token := adminToken(t, router)

	w := doJSON(router, http.MethodGet, "/api/admin/bookings", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	w = doJSON(router, http.MethodGet, "/api/admin/bookings/bk-1", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// A missing record is a distinct 404.
	w = doJSON(router, http.MethodGet, "/api/admin/bookings/bk-404", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "booking not found")
}

func TestCreateBookingDefaults(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(t, repo, nil, nil)

	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{
		"name":            "John Doe",
		"email":           "john@example.com",
		"phone":           "07911123456",
		"package":         gin.H{"id": "pro", "name": "PRO", "price": 450},
		"date":            "2044-06-01",
		"timeSlot":        "afternoon",
		"paymentIntentId": "pi_123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool   `json:"success"`
		BookingID string `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.BookingID)

	require.Len(t, repo.records, 1)
	assert.Equal(t, models.PaymentCompleted, repo.records[0].PaymentStatus)
	assert.Equal(t, models.StatusConfirmed, repo.records[0].Status)
}

func TestCreateBookingMissingFields(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(t, repo, nil, nil)

	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{
		"name": "John Doe",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.records)
}

func TestCreatePaymentIntent(t *testing.T) {
	var captured *stripe.PaymentIntentParams
	intents := &fakeIntents{
		createFn: func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			captured = params
			return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
		},
	}
	router := newTestRouter(t, &fakeRepo{}, nil, intents)

	w := doJSON(router, http.MethodPost, "/api/payments/intent", gin.H{
		"amount": 450,
		"bookingDetails": gin.H{
			"package":  "PRO",
			"date":     "2044-06-01",
			"timeSlot": "afternoon",
		},
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pi_123_secret")

	require.NotNil(t, captured)
	assert.Equal(t, int64(22500), *captured.Amount, "deposit is computed server-side")
}

func TestCreatePaymentIntentRejectsZeroAmount(t *testing.T) {
	router := newTestRouter(t, &fakeRepo{}, nil, nil)

	w := doJSON(router, http.MethodPost, "/api/payments/intent", gin.H{"amount": 0}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPackages(t *testing.T) {
	router := newTestRouter(t, &fakeRepo{}, nil, nil)

	w := doJSON(router, http.MethodGet, "/api/packages", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var pkgs []models.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pkgs))
	require.Len(t, pkgs, 4)
	assert.Equal(t, "starter", pkgs[0].ID)
	assert.Equal(t, "POPULAR", pkgs[1].Badge)
}

func TestWizardErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"expired session", booking.ErrSessionNotFound, http.StatusNotFound},
		{"confirm already in flight", booking.ErrConfirmInFlight, http.StatusConflict},
		{"booking not saved after payment", booking.ErrBookingNotSaved, http.StatusInternalServerError},
		{"provider declined", payment.NewProviderError("Your card was declined."), http.StatusPaymentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &fakeRepo{}, &stubWizard{err: tt.err}, nil)

			w := doJSON(router, http.MethodPost, "/api/booking/session/s1/confirm",
				gin.H{"paymentIntentId": "pi_123"}, "")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestWizardConfirmSuccessResponse(t *testing.T) {
	wizard := &stubWizard{
		booking: &models.Booking{
			ID:            "bk-1",
			Status:        models.StatusConfirmed,
			PaymentStatus: models.PaymentCompleted,
		},
	}
	router := newTestRouter(t, &fakeRepo{}, wizard, nil)

	w := doJSON(router, http.MethodPost, "/api/booking/session/s1/confirm",
		gin.H{"paymentIntentId": "pi_123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "bk-1")
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t, &fakeRepo{}, nil, nil)

	w := doJSON(router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
