package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Sistem-Manajemen-Gym/config"
	"Sistem-Manajemen-Gym/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClassScheduleRepository struct {
	collection *mongo.Collection
}

func NewClassScheduleRepository() *ClassScheduleRepository {
	return &ClassScheduleRepository{
		collection: config.GetCollection(config.ClassScheduleCollection),
	}
}

func (r *ClassScheduleRepository) Create(ctx context.Context, schedule *models.ClassSchedule) (*models.ClassSchedule, error) {
	schedule.ID = primitive.NewObjectID()
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan jadwal kelas: %w", err)
	}
	return schedule, nil
}

func (r *ClassScheduleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClassSchedule, error) {
	var schedule models.ClassSchedule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("jadwal tidak ditemukan")
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *ClassScheduleRepository) FindAllWithFilter(ctx context.Context, filter bson.M) ([]models.ClassSchedule, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan jadwal kelas: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.ClassSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("gagal decode jadwal kelas: %w", err)
	}
	return schedules, nil
}

func (r *ClassScheduleRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.ClassScheduleUpdatePayload) error {
	set := bson.M{"updated_at": time.Now()}
	if payload.Name != "" {
		set["name"] = payload.Name
	}
	if payload.Date != "" {
		set["date"] = payload.Date
	}
	if payload.StartTime != "" {
		set["start_time"] = payload.StartTime
	}
	if payload.EndTime != "" {
		set["end_time"] = payload.EndTime
	}
	if payload.Capacity != nil {
		set["capacity"] = *payload.Capacity
	}
	if payload.Note != "" {
		set["note"] = payload.Note
	}
	if payload.RecurrenceRule != "" {
		set["recurrence_rule"] = payload.RecurrenceRule
	}

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("jadwal tidak ditemukan")
	}
	return nil
}

func (r *ClassScheduleRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("jadwal tidak ditemukan")
	}
	return nil
}
