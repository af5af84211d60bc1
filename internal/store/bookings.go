package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"

	"google.golang.org/api/iterator"
)

func (s *Store) SaveBooking(ctx context.Context, b models.Booking) error {
	if err := s.save(ctx, ColBookings, b.ID, b); err != nil {
		return fmt.Errorf("save booking %s: %w", b.ID, err)
	}
	return nil
}

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	return s.delete(ctx, ColBookings, id)
}

func (s *Store) LoadBookings(ctx context.Context) ([]models.Booking, error) {
	if !s.Enabled() {
		return []models.Booking{}, nil
	}
	iter := s.col(ColBookings).Documents(ctx)
	defer iter.Stop()

	bookings := []models.Booking{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate bookings: %w", err)
		}
		var b models.Booking
		if err := doc.DataTo(&b); err != nil {
			s.skipDoc(ColBookings, doc.Ref.ID, err)
			continue
		}
		b.ID = doc.Ref.ID
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// LoadBookingsForDate returns bookings on a given "YYYY-MM-DD" date.
func (s *Store) LoadBookingsForDate(ctx context.Context, date string) ([]models.Booking, error) {
	if !s.Enabled() {
		return []models.Booking{}, nil
	}
	iter := s.col(ColBookings).Where("date", "==", date).Documents(ctx)
	defer iter.Stop()

	bookings := []models.Booking{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate bookings for %s: %w", date, err)
		}
		var b models.Booking
		if err := doc.DataTo(&b); err != nil {
			s.skipDoc(ColBookings, doc.Ref.ID, err)
			continue
		}
		b.ID = doc.Ref.ID
		bookings = append(bookings, b)
	}
	return bookings, nil
}
