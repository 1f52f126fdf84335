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

type SalaryRepository interface {
	Create(ctx context.Context, rec *models.SalaryRecord) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SalaryRecord, error)
	FindByStaffAndPeriod(ctx context.Context, staffID primitive.ObjectID, periodStart, periodEnd string) (*models.SalaryRecord, error)
	FindByStaffID(ctx context.Context, staffID primitive.ObjectID) ([]models.SalaryRecord, error)
	FindAllWithStaff(ctx context.Context, filter bson.M, page, limit int64) ([]models.SalaryWithStaff, int64, error)
	UpdateComputedFields(ctx context.Context, rec *models.SalaryRecord) (*mongo.UpdateResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, paidAt *time.Time) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type salaryRepository struct {
	collection *mongo.Collection
}

func NewSalaryRepository() SalaryRepository {
	return &salaryRepository{
		collection: config.GetCollection(config.SalaryCollection),
	}
}

func (r *salaryRepository) Create(ctx context.Context, rec *models.SalaryRecord) (*mongo.InsertOneResult, error) {
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat salary record: %w", err)
	}
	return result, nil
}

func (r *salaryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SalaryRecord, error) {
	var rec models.SalaryRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan salary record: %w", err)
	}
	return &rec, nil
}

func (r *salaryRepository) FindByStaffAndPeriod(ctx context.Context, staffID primitive.ObjectID, periodStart, periodEnd string) (*models.SalaryRecord, error) {
	var rec models.SalaryRecord
	filter := bson.M{
		"staff_id":     staffID,
		"period_start": periodStart,
		"period_end":   periodEnd,
	}

	err := r.collection.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari salary record untuk periode: %w", err)
	}
	return &rec, nil
}

func (r *salaryRepository) FindByStaffID(ctx context.Context, staffID primitive.ObjectID) ([]models.SalaryRecord, error) {
	var records []models.SalaryRecord
	opts := options.Find().SetSort(bson.D{{Key: "period_start", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"staff_id": staffID}, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari salary record berdasarkan staf: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("gagal decode salary record: %w", err)
	}

	if len(records) == 0 {
		return []models.SalaryRecord{}, nil
	}
	return records, nil
}

func (r *salaryRepository) FindAllWithStaff(ctx context.Context, filter bson.M, page, limit int64) ([]models.SalaryWithStaff, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung salary record: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "period_start", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "staff_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "staff_info"},
		}}},
		{{Key: "$unwind", Value: "$staff_info"}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "staff_name", Value: "$staff_info.name"},
			{Key: "staff_email", Value: "$staff_info.email"},
			{Key: "position", Value: "$staff_info.position"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "staff_info", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal agregasi salary dengan detail staf: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.SalaryWithStaff
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("gagal decode salary dengan detail staf: %w", err)
	}

	if len(results) == 0 {
		return []models.SalaryWithStaff{}, total, nil
	}
	return results, total, nil
}

// UpdateComputedFields menyimpan ulang seluruh field hasil perhitungan beserta
// ledger-nya. Field turunan tidak pernah diupdate sebagian.
func (r *salaryRepository) UpdateComputedFields(ctx context.Context, rec *models.SalaryRecord) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"hours_worked":     rec.HoursWorked,
			"hourly_total":     rec.HourlyTotal,
			"commission_total": rec.CommissionTotal,
			"fixed_salary":     rec.FixedSalary,
			"bonuses":          rec.Bonuses,
			"deductions":       rec.Deductions,
			"net_pay":          rec.NetPay,
			"updated_at":       time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": rec.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate perhitungan salary: %w", err)
	}
	return result, nil
}

func (r *salaryRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, paidAt *time.Time) (*mongo.UpdateResult, error) {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if paidAt != nil {
		set["paid_at"] = paidAt
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status salary: %w", err)
	}
	return result, nil
}

func (r *salaryRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus salary record: %w", err)
	}
	return result, nil
}
