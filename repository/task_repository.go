package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Manajemen-Gym/config"
	"Sistem-Manajemen-Gym/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	FindAll(ctx context.Context, filter bson.M) ([]models.Task, error)
	FindByAssigneeID(ctx context.Context, assigneeID primitive.ObjectID) ([]models.Task, error)
	Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type taskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository() TaskRepository {
	return &taskRepository{
		collection: config.GetCollection(config.TaskCollection),
	}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat task: %w", err)
	}
	return result, nil
}

func (r *taskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan task berdasarkan ID: %w", err)
	}
	return &task, nil
}

func (r *taskRepository) FindAll(ctx context.Context, filter bson.M) ([]models.Task, error) {
	var tasks []models.Task
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}, {Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan task: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("gagal decode task: %w", err)
	}

	if len(tasks) == 0 {
		return []models.Task{}, nil
	}
	return tasks, nil
}

func (r *taskRepository) FindByAssigneeID(ctx context.Context, assigneeID primitive.ObjectID) ([]models.Task, error) {
	return r.FindAll(ctx, bson.M{"assignee_id": assigneeID})
}

func (r *taskRepository) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate task: %w", err)
	}
	return result, nil
}

func (r *taskRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus task: %w", err)
	}
	return result, nil
}
