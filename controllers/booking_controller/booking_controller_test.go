package booking_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kusheen8/BoooKit/models/booking_models"
	"github.com/kusheen8/BoooKit/models/experience_models"
	"github.com/kusheen8/BoooKit/models/promo_models"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewBookingController(nil)
	r.POST("/api/bookings", controller.CreateBooking)
	r.GET("/api/bookings/:id", controller.GetBookingByID)
	return r
}

func postBooking(t *testing.T, r *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/api/bookings", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"experienceId": "550e8400-e29b-41d4-a716-446655440000",
		"fullName":     "Jane Doe",
		"email":        "jane@example.com",
		"date":         "2026-09-15",
		"time":         "9:00 AM",
		"quantity":     2,
		"agreeToTerms": true,
	}
}

func TestCreateBookingValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("MissingExperienceID", func(t *testing.T) {
		payload := validPayload()
		delete(payload, "experienceId")
		w := postBooking(t, r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedExperienceID", func(t *testing.T) {
		payload := validPayload()
		payload["experienceId"] = "not-a-uuid"
		w := postBooking(t, r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ShortFullName", func(t *testing.T) {
		payload := validPayload()
		payload["fullName"] = "J"
		w := postBooking(t, r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		payload := validPayload()
		payload["email"] = "not-an-email"
		w := postBooking(t, r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		payload := validPayload()
		payload["quantity"] = 0
		w := postBooking(t, r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		payload := validPayload()
		payload["quantity"] = -1
		w := postBooking(t, r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("TermsNotAgreed", func(t *testing.T) {
		payload := validPayload()
		payload["agreeToTerms"] = false
		w := postBooking(t, r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MissingDate", func(t *testing.T) {
		payload := validPayload()
		delete(payload, "date")
		w := postBooking(t, r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/bookings", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeDB is an in-memory stand-in for the shared pool. It recognizes the
// statements the booking flow issues and answers from its fixtures.
type fakeDB struct {
	experience *experience_models.Experience
	promos     map[string]promo_models.PromoCode
	bookings   map[uuid.UUID]booking_models.Booking
	inserts    int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		experience: &experience_models.Experience{
			ID:             uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
			Name:           "Kayaking",
			Description:    "Guided kayaking session",
			Location:       "Udupi",
			Category:       "Udupi",
			Price:          999,
			ImageURL:       "/images/experiences/kayaking.png",
			AvailableDates: []string{"2026-09-15"},
			TimeSlots:      []experience_models.TimeSlot{{Time: "9:00 AM", Available: true, Capacity: 10}},
			CreatedAt:      time.Now(),
		},
		promos: map[string]promo_models.PromoCode{
			"SAVE10": {Code: "SAVE10", Type: promo_models.TypePercentage, Value: 10, Description: "10% off"},
		},
		bookings: map[uuid.UUID]booking_models.Booking{},
	}
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("unexpected query: %s", sql)
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "FROM experiences"):
		return fakeRow{scan: func(dest ...any) error {
			if db.experience == nil || args[0].(uuid.UUID) != db.experience.ID {
				return pgx.ErrNoRows
			}
			exp := db.experience
			*dest[0].(*uuid.UUID) = exp.ID
			*dest[1].(*string) = exp.Name
			*dest[2].(*string) = exp.Description
			*dest[3].(*string) = exp.Location
			*dest[4].(*string) = exp.Category
			*dest[5].(*int) = exp.Price
			*dest[6].(*string) = exp.ImageURL
			*dest[7].(*[]string) = exp.AvailableDates
			*dest[8].(*[]experience_models.TimeSlot) = exp.TimeSlots
			*dest[9].(**int) = exp.MinAge
			*dest[10].(**string) = exp.Duration
			*dest[11].(*time.Time) = exp.CreatedAt
			return nil
		}}
	case strings.Contains(sql, "FROM promo_codes"):
		return fakeRow{scan: func(dest ...any) error {
			promo, ok := db.promos[args[0].(string)]
			if !ok {
				return pgx.ErrNoRows
			}
			*dest[0].(*string) = promo.Code
			*dest[1].(*string) = promo.Type
			*dest[2].(*float64) = promo.Value
			*dest[3].(*string) = promo.Description
			return nil
		}}
	case strings.Contains(sql, "INSERT INTO bookings"):
		return fakeRow{scan: func(dest ...any) error {
			booking := booking_models.Booking{
				ID:               args[0].(uuid.UUID),
				ExperienceID:     args[1].(uuid.UUID),
				ExperienceName:   args[2].(string),
				FullName:         args[3].(string),
				Email:            args[4].(string),
				Date:             args[5].(string),
				Time:             args[6].(string),
				Quantity:         args[7].(int),
				PromoCode:        args[8].(*string),
				Subtotal:         args[9].(int),
				Taxes:            args[10].(int),
				Discount:         args[11].(int),
				Total:            args[12].(int),
				BookingReference: args[13].(string),
				CreatedAt:        args[14].(time.Time),
			}
			db.bookings[booking.ID] = booking
			db.inserts++
			*dest[0].(*uuid.UUID) = booking.ID
			return nil
		}}
	case strings.Contains(sql, "FROM bookings WHERE id"):
		return fakeRow{scan: func(dest ...any) error {
			booking, ok := db.bookings[args[0].(uuid.UUID)]
			if !ok {
				return pgx.ErrNoRows
			}
			*dest[0].(*uuid.UUID) = booking.ID
			*dest[1].(*uuid.UUID) = booking.ExperienceID
			*dest[2].(*string) = booking.ExperienceName
			*dest[3].(*string) = booking.FullName
			*dest[4].(*string) = booking.Email
			*dest[5].(*string) = booking.Date
			*dest[6].(*string) = booking.Time
			*dest[7].(*int) = booking.Quantity
			*dest[8].(**string) = booking.PromoCode
			*dest[9].(*int) = booking.Subtotal
			*dest[10].(*int) = booking.Taxes
			*dest[11].(*int) = booking.Discount
			*dest[12].(*int) = booking.Total
			*dest[13].(*string) = booking.BookingReference
			*dest[14].(*time.Time) = booking.CreatedAt
			return nil
		}}
	}
	return fakeRow{scan: func(dest ...any) error {
		return fmt.Errorf("unexpected statement: %s", sql)
	}}
}

func newFakeRouter(db *fakeDB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewBookingController(db)
	r.POST("/api/bookings", controller.CreateBooking)
	r.GET("/api/bookings/:id", controller.GetBookingByID)
	return r
}

func decodeBooking(t *testing.T, w *httptest.ResponseRecorder) booking_models.Booking {
	t.Helper()
	var booking booking_models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	return booking
}

func TestCreateBookingUnknownExperience(t *testing.T) {
	db := newFakeDB()
	r := newFakeRouter(db)

	payload := validPayload()
	payload["experienceId"] = "00000000-0000-0000-0000-000000000001"
	w := postBooking(t, r, payload)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Experience not found", resp["error"])
	assert.Equal(t, 0, db.inserts, "no booking row should be written")
}

func TestCreateBookingPriceBreakdown(t *testing.T) {
	db := newFakeDB()
	r := newFakeRouter(db)

	w := postBooking(t, r, validPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	booking := decodeBooking(t, w)
	assert.Equal(t, 1998, booking.Subtotal)
	assert.Equal(t, 100, booking.Taxes)
	assert.Equal(t, 0, booking.Discount)
	assert.Equal(t, 2098, booking.Total)
	assert.Nil(t, booking.PromoCode)
	assert.True(t, strings.HasPrefix(booking.BookingReference, "HUF"))
	assert.Equal(t, 1, db.inserts)
}

func TestCreateBookingLowercasePromoCode(t *testing.T) {
	db := newFakeDB()
	r := newFakeRouter(db)

	payload := validPayload()
	payload["promoCode"] = "save10"
	w := postBooking(t, r, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	booking := decodeBooking(t, w)
	assert.Equal(t, 200, booking.Discount)
	assert.Equal(t, 1898, booking.Total)
	require.NotNil(t, booking.PromoCode)
	assert.Equal(t, "SAVE10", *booking.PromoCode)
}

func TestCreateBookingUnknownPromoIgnored(t *testing.T) {
	db := newFakeDB()
	r := newFakeRouter(db)

	payload := validPayload()
	payload["promoCode"] = "MYSTERY"
	w := postBooking(t, r, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	booking := decodeBooking(t, w)
	assert.Equal(t, 0, booking.Discount)
	assert.Equal(t, 2098, booking.Total)
	require.NotNil(t, booking.PromoCode)
	assert.Equal(t, "MYSTERY", *booking.PromoCode)
	assert.Equal(t, 1, db.inserts, "unknown promo must not block the booking")
}

func TestGetBookingAfterCreate(t *testing.T) {
	db := newFakeDB()
	r := newFakeRouter(db)

	payload := validPayload()
	payload["promoCode"] = "SAVE10"
	w := postBooking(t, r, payload)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBooking(t, w)

	req, _ := http.NewRequest("GET", "/api/bookings/"+created.ID.String(), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)
	require.Equal(t, http.StatusOK, got.Code)

	fetched := decodeBooking(t, got)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.BookingReference, fetched.BookingReference)
	assert.Equal(t, created.Total, fetched.Total)
	assert.Equal(t, "Kayaking", fetched.ExperienceName)
}

func TestGetBookingByIDMalformedID(t *testing.T) {
	r := newTestRouter()

	req, _ := http.NewRequest("GET", "/api/bookings/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking not found", resp["error"])
}
