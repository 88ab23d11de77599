package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seatwise/internal/models"
	"seatwise/internal/payment"
)

const codeInsertRetries = 3

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AvailableSeat is the public view of a bookable seat.
type AvailableSeat struct {
	SeatID uuid.UUID `json:"seat_id"`
	Label  string    `json:"label"`
}

// Payment carries the simulated payment details for a booking.
type Payment struct {
	Mode       string
	CardNumber string
}

// Result is returned by Book on success.
type Result struct {
	Order       models.Order
	TicketCodes []string
}

// AvailableSeats lists seats still open for the event, ordered by label.
// An empty slice is not an error.
func (s *Service) AvailableSeats(ctx context.Context, eventID uuid.UUID) ([]AvailableSeat, error) {
	seats := make([]AvailableSeat, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Seat{}).
		Select("id AS seat_id", "label").
		Where("event_id = ? AND status = ?", eventID, models.SeatAvailable).
		Order("label").
		Scan(&seats).Error
	if err != nil {
		return nil, err
	}
	return seats, nil
}

// Book atomically reserves seatIDs for userID on eventID, charges the
// simulated payment, and issues one ticket per seat. Every failure rolls
// the whole transaction back; no partial booking ever reaches the
// database. Seat rows are locked with FOR UPDATE NOWAIT so a concurrent
// booking touching any of the same seats fails immediately with
// ErrSeatContended instead of queueing.
func (s *Service) Book(ctx context.Context, userID, eventID uuid.UUID, seatIDs []uuid.UUID, pay Payment) (*Result, error) {
	if pay.Mode == "" {
		pay.Mode = payment.ModeSimulated
	}
	if pay.CardNumber == "" {
		pay.CardNumber = payment.DefaultCardNumber
	}

	var result *Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var event models.Event
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if event.Status != models.EventUpcoming {
			return ErrEventNotUpcoming
		}

		if len(seatIDs) == 0 {
			return ErrNoSeatsRequested
		}
		seen := make(map[uuid.UUID]struct{}, len(seatIDs))
		for _, id := range seatIDs {
			if _, dup := seen[id]; dup {
				return ErrDuplicateSeats
			}
			seen[id] = struct{}{}
		}
		if len(seatIDs) > event.MaxTicketsPerUser {
			return ErrSeatLimitExceeded
		}

		// Lock exactly the requested rows. NOWAIT makes contention surface
		// as error 55P03 instead of blocking behind the other transaction.
		var seats []models.Seat
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
			Where("id IN ? AND event_id = ?", seatIDs, eventID).
			Find(&seats).Error
		if err != nil {
			if isLockNotAvailable(err) {
				return ErrSeatContended
			}
			return err
		}
		if len(seats) != len(seatIDs) {
			return ErrSeatNotFound
		}
		for _, seat := range seats {
			if seat.Status != models.SeatAvailable {
				return ErrSeatUnavailable
			}
		}

		total := event.TicketPrice * len(seatIDs)
		if err := payment.Charge(pay.CardNumber, total); err != nil {
			return err
		}

		order := models.Order{
			ID:          uuid.New(),
			TotalAmount: total,
			PaymentMode: pay.Mode,
			Status:      models.OrderConfirmed,
			BookingTime: time.Now().UTC(),
			UserID:      userID,
			EventID:     eventID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Seat{}).
			Where("id IN ? AND event_id = ?", seatIDs, eventID).
			Update("status", models.SeatBooked).Error; err != nil {
			return err
		}

		codes := make([]string, 0, len(seats))
		for _, seat := range seats {
			code, err := issueTicket(tx, order.ID, seat.ID)
			if err != nil {
				return err
			}
			codes = append(codes, code)
		}

		result = &Result{Order: order, TicketCodes: codes}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// issueTicket inserts a ticket with a fresh code. Each attempt runs under a
// savepoint so a unique-index collision aborts only the attempt, not the
// surrounding booking transaction.
func issueTicket(tx *gorm.DB, orderID, seatID uuid.UUID) (string, error) {
	for attempt := 0; attempt < codeInsertRetries; attempt++ {
		code, err := NewTicketCode()
		if err != nil {
			return "", err
		}
		ticket := models.Ticket{
			ID:      uuid.New(),
			Code:    code,
			OrderID: orderID,
			SeatID:  seatID,
		}
		err = tx.Transaction(func(sp *gorm.DB) error {
			return sp.Create(&ticket).Error
		})
		if err == nil {
			return code, nil
		}
		if !isUniqueViolation(err) {
			return "", err
		}
	}
	return "", ErrCodeCollision
}

// Refund processes a refund request for an order. A SupportRequest audit
// row is always written first as pending, then updated with the outcome:
// rejections commit the audit row and return the named reason, success
// flips the order to refunded, voids its tickets and reopens its seats.
func (s *Service) Refund(ctx context.Context, orderID, userID uuid.UUID, reviewNote string) (*models.SupportRequest, error) {
	now := time.Now().UTC()
	var request models.SupportRequest
	var rejection error

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		findErr := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", orderID).Error

		request = models.SupportRequest{
			ID:         uuid.New(),
			UserID:     userID,
			ReviewNote: reviewNote,
			Status:     models.SupportPending,
		}
		if findErr == nil {
			request.OrderID = &order.ID
		}
		if err := tx.Create(&request).Error; err != nil {
			return err
		}

		reason, err := refundEligibility(tx, &order, findErr, userID, now)
		if err != nil {
			return err
		}
		if reason != nil {
			rejection = reason
			request.Status = models.SupportRejected
			request.ResolutionNote = reason.Error()
			return tx.Model(&models.SupportRequest{}).
				Where("id = ?", request.ID).
				Updates(map[string]interface{}{
					"status":          request.Status,
					"resolution_note": request.ResolutionNote,
				}).Error
		}

		var tickets []models.Ticket
		if err := tx.Where("order_id = ?", order.ID).Find(&tickets).Error; err != nil {
			return err
		}
		seatIDs := make([]uuid.UUID, 0, len(tickets))
		for _, ticket := range tickets {
			seatIDs = append(seatIDs, ticket.SeatID)
		}

		if err := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("status", models.OrderRefunded).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Ticket{}).
			Where("order_id = ?", order.ID).
			Update("used", true).Error; err != nil {
			return err
		}
		if len(seatIDs) > 0 {
			// Refund may wait for an in-flight booking's lock; only the
			// booking path is non-blocking.
			var seats []models.Seat
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id IN ?", seatIDs).
				Find(&seats).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Seat{}).
				Where("id IN ?", seatIDs).
				Update("status", models.SeatAvailable).Error; err != nil {
				return err
			}
		}

		request.Status = models.SupportProcessed
		request.ResolutionNote = "refund processed"
		return tx.Model(&models.SupportRequest{}).
			Where("id = ?", request.ID).
			Updates(map[string]interface{}{
				"status":          request.Status,
				"resolution_note": request.ResolutionNote,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return &request, rejection
	}
	return &request, nil
}

// refundEligibility returns the named rejection reason for the request, nil
// when the refund may proceed, or a database error.
func refundEligibility(tx *gorm.DB, order *models.Order, findErr error, userID uuid.UUID, now time.Time) (error, error) {
	if findErr != nil {
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound, nil
		}
		return nil, findErr
	}
	if order.UserID != userID {
		return ErrForeignOrder, nil
	}
	if order.Status == models.OrderRefunded {
		return ErrAlreadyRefunded, nil
	}
	var event models.Event
	if err := tx.First(&event, "id = ?", order.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound, nil
		}
		return nil, err
	}
	if !now.Before(event.EventDate) {
		return ErrRefundWindowClosed, nil
	}
	return nil, nil
}

// ValidateTicket performs the one-shot gate check: the ticket row is locked,
// rejected if missing or already used, otherwise marked used. There is no
// path back to unused.
func (s *Service) ValidateTicket(ctx context.Context, code string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ticket, "code = ?", code).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketInvalid
			}
			return err
		}
		if ticket.Used {
			return ErrTicketInvalid
		}
		ticket.Used = true
		return tx.Model(&models.Ticket{}).
			Where("id = ?", ticket.ID).
			Update("used", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Postgres error classes: 55P03 lock_not_available (FOR UPDATE NOWAIT lost
// the race), 23505 unique_violation.
func isLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "55P03"
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
