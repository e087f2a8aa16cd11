package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrSlotTaken is returned when the commit-time conflict check rejects a
// candidate booking.
var ErrSlotTaken = errors.New("slot no longer available")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("slotwise")
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("booking index setup failed", zap.Error(err))
	}
	return repo
}

func (repo *MongoBookingRepo) GetConfirmedInRange(ctx context.Context, scheduleID string, from, to time.Time) ([]models.Booking, error) {
	filter := overlapFilter(scheduleID, from, to)
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for schedule %s: %w", scheduleID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// CreateConfirmed runs the overlap query and the insert inside one mongo
// transaction, so two guests racing for the same slot cannot both pass
// the conflict check.
func (repo *MongoBookingRepo) CreateConfirmed(ctx context.Context, booking *models.Booking, padFrom, padTo time.Time, check ConflictCheck) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		cursor, err := repo.coll.Find(sc, overlapFilter(booking.ScheduleID, padFrom, padTo))
		if err != nil {
			return fmt.Errorf("overlap query failed: %w", err)
		}
		var existing []models.Booking
		if err := cursor.All(sc, &existing); err != nil {
			return fmt.Errorf("error decoding overlapping bookings: %w", err)
		}

		if check(existing) {
			return ErrSlotTaken
		}

		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// overlapFilter matches confirmed bookings intersecting [from, to) under
// half-open semantics.
func overlapFilter(scheduleID string, from, to time.Time) bson.M {
	return bson.M{
		"scheduleId": scheduleID,
		"status":     models.BookingConfirmed,
		"start":      bson.M{"$lt": to},
		"end":        bson.M{"$gt": from},
	}
}
