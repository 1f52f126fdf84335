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

type RequestRepository interface {
	Create(ctx context.Context, req *models.Request) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context, filter bson.M) ([]models.RequestWithDetails, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Request, error)
	FindByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]models.Request, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, note string) (*mongo.UpdateResult, error)
	CountPending(ctx context.Context) (int64, error)
}

type requestRepository struct {
	collection *mongo.Collection
}

func NewRequestRepository() RequestRepository {
	return &requestRepository{
		collection: config.GetCollection(config.RequestCollection),
	}
}

func (r *requestRepository) Create(ctx context.Context, req *models.Request) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat request: %w", err)
	}
	return result, nil
}

// FindAll mengembalikan request beserta detail member dan plan-nya via $lookup
// supaya frontend tidak perlu query tambahan.
func (r *requestRepository) FindAll(ctx context.Context, filter bson.M) ([]models.RequestWithDetails, error) {
	var requests []models.RequestWithDetails

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "member_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "member_info"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$member_info"},
			{Key: "preserveNullAndEmptyArrays", Value: false},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.PlanCollection},
			{Key: "localField", Value: "plan_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "plan_info"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$plan_info"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "member_id", Value: 1},
			{Key: "plan_id", Value: 1},
			{Key: "kind", Value: 1},
			{Key: "start_date", Value: 1},
			{Key: "status", Value: 1},
			{Key: "note", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "member_name", Value: "$member_info.name"},
			{Key: "member_email", Value: "$member_info.email"},
			{Key: "plan_name", Value: "$plan_info.name"},
			{Key: "plan_price", Value: "$plan_info.price"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal agregasi request dengan detail member: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("gagal decode request dengan detail member: %w", err)
	}

	if len(requests) == 0 {
		return []models.RequestWithDetails{}, nil
	}
	return requests, nil
}

func (r *requestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Request, error) {
	var request models.Request
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan request berdasarkan ID: %w", err)
	}
	return &request, nil
}

func (r *requestRepository) FindByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]models.Request, error) {
	var requests []models.Request
	filter := bson.M{"member_id": memberID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari request berdasarkan member ID: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("gagal decode hasil request: %w", err)
	}

	if len(requests) == 0 {
		return []models.Request{}, nil
	}
	return requests, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, note string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"note":       note,
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status request: %w", err)
	}
	return result, nil
}

func (r *requestRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": "pending"})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung request tertunda: %w", err)
	}
	return count, nil
}
