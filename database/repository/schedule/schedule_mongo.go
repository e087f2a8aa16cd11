package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("slotwise")
	return &MongoScheduleRepo{coll: db.Collection("schedules")}
}

func (repo *MongoScheduleRepo) Create(schedule *models.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, schedule); err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

func (repo *MongoScheduleRepo) GetByID(scheduleID string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var schedule models.Schedule
	if err := repo.coll.FindOne(ctx, bson.M{"id": scheduleID}).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("error fetching schedule with id %s: %w", scheduleID, err)
	}
	return &schedule, nil
}

func (repo *MongoScheduleRepo) ListWithFeeds() ([]models.Schedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"feeds.0": bson.M{"$exists": true}}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules with feeds: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return schedules, nil
}

func (repo *MongoScheduleRepo) PutWeeklyRules(scheduleID string, rules []models.WeeklyRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"weeklyRules": rules}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": scheduleID}, update)
	if err != nil {
		return fmt.Errorf("failed to update weekly rules: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule %s not found", scheduleID)
	}
	return nil
}

func (repo *MongoScheduleRepo) PutOverride(scheduleID string, override models.AvailabilityOverride) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Replace any override already stored for this date, then push the
	// new one. Keeps the one-override-per-date invariant.
	pull := bson.M{"$pull": bson.M{"overrides": bson.M{"date": override.Date}}}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"id": scheduleID}, pull); err != nil {
		return fmt.Errorf("failed to clear existing override: %w", err)
	}

	push := bson.M{"$push": bson.M{"overrides": override}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": scheduleID}, push)
	if err != nil {
		return fmt.Errorf("failed to store override: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule %s not found", scheduleID)
	}
	return nil
}

func (repo *MongoScheduleRepo) DeleteOverride(scheduleID string, date string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"overrides": bson.M{"date": date}}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": scheduleID}, update)
	if err != nil {
		return fmt.Errorf("failed to delete override: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule %s not found", scheduleID)
	}
	return nil
}

func (repo *MongoScheduleRepo) AddFeed(scheduleID string, feed models.CalendarFeed) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$push": bson.M{"feeds": feed}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": scheduleID}, update)
	if err != nil {
		return fmt.Errorf("failed to add calendar feed: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule %s not found", scheduleID)
	}
	return nil
}
