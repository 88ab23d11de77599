package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"seatwise/internal/handlers"
	"seatwise/internal/middleware"
	"seatwise/internal/models"
	"seatwise/internal/testutil"
)

func newBookingRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	authed := r.Group("/v1", middleware.JWTAuthMiddleware())
	authed.POST("/bookings", handlers.BookSeats)
	authed.POST("/orders/:id/refund", handlers.RefundOrder)
	r.GET("/v1/events/:id/seats", handlers.ListAvailableSeats)
	return r
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func postJSON(t *testing.T, r *gin.Engine, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingEndpoints(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testutil.NewTestDB(t)
	r := newBookingRouter(db)

	t.Run("booking then refund round trip", func(t *testing.T) {
		testutil.ResetTables(t, db)
		user := testutil.CreateUser(t, db, models.RoleCustomer)
		event, seats := testutil.CreateEventWithSeats(t, db, 5000, 4, 4)
		token := tokenFor(t, user)

		w := postJSON(t, r, "/v1/bookings", token, gin.H{
			"event_id": event.ID.String(),
			"seat_ids": []string{seats[0].ID.String(), seats[1].ID.String()},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created struct {
			Order struct {
				ID          uuid.UUID `json:"id"`
				TotalAmount int       `json:"total_amount"`
			} `json:"order"`
			TicketCodes []string `json:"ticket_codes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, 10000, created.Order.TotalAmount)
		assert.Len(t, created.TicketCodes, 2)

		// The booked seats disappear from public availability.
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/events/%s/seats", event.ID), nil)
		lw := httptest.NewRecorder()
		r.ServeHTTP(lw, req)
		require.Equal(t, http.StatusOK, lw.Code)
		var listed struct {
			Seats []struct {
				SeatID uuid.UUID `json:"seat_id"`
			} `json:"seats"`
		}
		require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &listed))
		assert.Len(t, listed.Seats, 2)

		w = postJSON(t, r, fmt.Sprintf("/v1/orders/%s/refund", created.Order.ID), token, gin.H{
			"review_note": "plans changed",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("already booked seat returns 409", func(t *testing.T) {
		testutil.ResetTables(t, db)
		alice := testutil.CreateUser(t, db, models.RoleCustomer)
		bob := testutil.CreateUser(t, db, models.RoleCustomer)
		event, seats := testutil.CreateEventWithSeats(t, db, 5000, 4, 4)

		w := postJSON(t, r, "/v1/bookings", tokenFor(t, alice), gin.H{
			"event_id": event.ID.String(),
			"seat_ids": []string{seats[0].ID.String()},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = postJSON(t, r, "/v1/bookings", tokenFor(t, bob), gin.H{
			"event_id": event.ID.String(),
			"seat_ids": []string{seats[0].ID.String()},
		})
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	t.Run("refunding someone else's order returns 403 with the audit row", func(t *testing.T) {
		testutil.ResetTables(t, db)
		alice := testutil.CreateUser(t, db, models.RoleCustomer)
		bob := testutil.CreateUser(t, db, models.RoleCustomer)
		event, seats := testutil.CreateEventWithSeats(t, db, 5000, 4, 4)

		w := postJSON(t, r, "/v1/bookings", tokenFor(t, alice), gin.H{
			"event_id": event.ID.String(),
			"seat_ids": []string{seats[0].ID.String()},
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var created struct {
			Order struct {
				ID uuid.UUID `json:"id"`
			} `json:"order"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = postJSON(t, r, fmt.Sprintf("/v1/orders/%s/refund", created.Order.ID), tokenFor(t, bob), gin.H{})
		assert.Equal(t, http.StatusForbidden, w.Code)

		var count int64
		require.NoError(t, db.Model(&models.SupportRequest{}).
			Where("status = ?", models.SupportRejected).
			Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("unauthenticated booking is rejected", func(t *testing.T) {
		w := postJSON(t, r, "/v1/bookings", "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
