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

type PlanRepository interface {
	CreatePlan(ctx context.Context, plan *models.Plan) (*mongo.InsertOneResult, error)
	GetAllPlans(ctx context.Context, filter bson.M) ([]models.Plan, error)
	GetPlanByID(ctx context.Context, id primitive.ObjectID) (*models.Plan, error)
	UpdatePlan(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeletePlan(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	FindPlanByName(ctx context.Context, name string) (*models.Plan, error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
}

type planRepository struct {
	collection *mongo.Collection
}

func NewPlanRepository() PlanRepository {
	return &planRepository{
		collection: config.GetCollection(config.PlanCollection),
	}
}

func (r *planRepository) CreatePlan(ctx context.Context, plan *models.Plan) (*mongo.InsertOneResult, error) {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("nama plan sudah ada")
		}
		return nil, fmt.Errorf("gagal membuat plan: %w", err)
	}
	return result, nil
}

// GetAllPlans mengembalikan plan sesuai filter, urut berdasarkan waktu dibuat
// supaya urutan katalog stabil untuk filter eligibility.
func (r *planRepository) GetAllPlans(ctx context.Context, filter bson.M) ([]models.Plan, error) {
	var plans []models.Plan
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan plan: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("gagal mendecode plan: %w", err)
	}

	if len(plans) == 0 {
		return []models.Plan{}, nil
	}
	return plans, nil
}

func (r *planRepository) GetPlanByID(ctx context.Context, id primitive.ObjectID) (*models.Plan, error) {
	var plan models.Plan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan plan berdasarkan ID: %w", err)
	}
	return &plan, nil
}

func (r *planRepository) UpdatePlan(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate plan: %w", err)
	}
	return result, nil
}

func (r *planRepository) DeletePlan(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus plan: %w", err)
	}
	return result, nil
}

func (r *planRepository) FindPlanByName(ctx context.Context, name string) (*models.Plan, error) {
	var plan models.Plan
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan plan berdasarkan nama: %w", err)
	}
	return &plan, nil
}

func (r *planRepository) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung plan: %w", err)
	}
	return count, nil
}
