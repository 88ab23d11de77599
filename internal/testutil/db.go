// Package testutil provides the shared Postgres harness for integration
// tests. Tests skip when no database is reachable, so the suite still runs
// in environments without one.
package testutil

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"seatwise/internal/models"
)

const defaultTestDSN = "host=localhost user=seatwise password=seatwise dbname=seatwise_test port=5432 sslmode=disable TimeZone=UTC"

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("skipping Postgres integration tests: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		t.Skipf("skipping Postgres integration tests: %v", err)
	}
	t.Cleanup(func() {
		sqlDB.Close()
	})

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		t.Fatalf("failed to enable uuid extension: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Venue{},
		&models.Event{},
		&models.Seat{},
		&models.Order{},
		&models.Ticket{},
		&models.SupportRequest{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func ResetTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec(`TRUNCATE support_requests, tickets, orders, seats, events, venues, users CASCADE`).Error
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    fmt.Sprintf("user-%s@example.com", uuid.NewString()),
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

// CreateEventWithSeats seeds a venue, an upcoming event priced at
// ticketPrice cents, and seatCount available seats labelled S1..Sn.
func CreateEventWithSeats(t *testing.T, db *gorm.DB, ticketPrice, seatCount, maxPerUser int) (*models.Event, []models.Seat) {
	t.Helper()
	venue := models.Venue{
		ID:            uuid.New(),
		Name:          "Test Hall",
		City:          "Testville",
		Address:       "1 Test Street",
		TotalCapacity: seatCount,
	}
	if err := db.Create(&venue).Error; err != nil {
		t.Fatalf("create venue: %v", err)
	}

	event := models.Event{
		ID:                uuid.New(),
		Name:              "Test Concert",
		Category:          "music",
		EventDate:         time.Now().UTC().Add(48 * time.Hour),
		TicketPrice:       ticketPrice,
		MaxTicketsPerUser: maxPerUser,
		Status:            models.EventUpcoming,
		VenueID:           venue.ID,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}

	seats := make([]models.Seat, 0, seatCount)
	for i := 1; i <= seatCount; i++ {
		seats = append(seats, models.Seat{
			ID:      uuid.New(),
			Label:   fmt.Sprintf("S%d", i),
			EventID: event.ID,
			VenueID: venue.ID,
			Status:  models.SeatAvailable,
		})
	}
	if err := db.Create(&seats).Error; err != nil {
		t.Fatalf("create seats: %v", err)
	}
	return &event, seats
}
