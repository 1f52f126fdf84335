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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendanceRepository interface {
	// --- Methods for QRCode ---
	CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error)
	FindQRCodeByValue(ctx context.Context, code string) (*models.QRCode, error)
	FindActiveQRCodeByDate(ctx context.Context, date string) (*models.QRCode, error)
	MarkQRCodeAsUsed(ctx context.Context, qrCodeID primitive.ObjectID, userID primitive.ObjectID) (*mongo.UpdateResult, error)

	// --- Methods for Attendance ---
	CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error)
	FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error)
	UpdateAttendanceCheckout(ctx context.Context, attendanceID primitive.ObjectID, checkOutTime string) (*mongo.UpdateResult, error)
	FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error)
	GetAllAttendancesWithUserDetails(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

type attendanceRepository struct {
	qrCodeCollection     *mongo.Collection
	attendanceCollection *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		qrCodeCollection:     config.GetCollection(config.QRCodeCollection),
		attendanceCollection: config.GetCollection(config.AttendanceCollection),
	}
}

func (r *attendanceRepository) CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error) {
	res, err := r.qrCodeCollection.InsertOne(ctx, qrCode)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat QR Code: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindQRCodeByValue(ctx context.Context, value string) (*models.QRCode, error) {
	var qrCode models.QRCode
	err := r.qrCodeCollection.FindOne(ctx, bson.M{"code": value}).Decode(&qrCode)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &qrCode, nil
}

func (r *attendanceRepository) FindActiveQRCodeByDate(ctx context.Context, date string) (*models.QRCode, error) {
	var qrCode models.QRCode

	filter := bson.M{
		"date":       date,
		"expires_at": bson.M{"$gt": time.Now()},
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.qrCodeCollection.FindOne(ctx, filter, opts).Decode(&qrCode)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari QR Code aktif: %w", err)
	}
	return &qrCode, nil
}

func (r *attendanceRepository) MarkQRCodeAsUsed(ctx context.Context, qrCodeID primitive.ObjectID, userID primitive.ObjectID) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": qrCodeID}
	update := bson.M{
		"$addToSet": bson.M{"used_by": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	res, err := r.qrCodeCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("gagal menandai QR Code sebagai sudah digunakan: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	res, err := r.attendanceCollection.InsertOne(ctx, attendance)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{"user_id": userID, "date": date}
	err := r.attendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari absensi berdasarkan user dan tanggal: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) UpdateAttendanceCheckout(ctx context.Context, attendanceID primitive.ObjectID, checkOutTime string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"check_out":  checkOutTime,
			"updated_at": time.Now(),
		},
	}

	res, err := r.attendanceCollection.UpdateOne(ctx, bson.M{"_id": attendanceID}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate check-out: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	var attendances []models.Attendance
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari riwayat absensi: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &attendances); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat absensi: %w", err)
	}

	if len(attendances) == 0 {
		return []models.Attendance{}, nil
	}
	return attendances, nil
}

func (r *attendanceRepository) GetAllAttendancesWithUserDetails(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error) {
	total, err := r.attendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung total dokumen absensi: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "check_in", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "user_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "check_in", Value: 1},
			{Key: "check_out", Value: 1},
			{Key: "status", Value: 1},
			{Key: "note", Value: 1},
			{Key: "user_name", Value: "$userDetails.name"},
			{Key: "user_email", Value: "$userDetails.email"},
			{Key: "user_photo", Value: "$userDetails.photo"},
			{Key: "user_role", Value: "$userDetails.role"},
		}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal aggregation untuk riwayat kehadiran: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("gagal decode hasil aggregation riwayat kehadiran: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithUser{}, total, nil
	}
	return results, total, nil
}

func (r *attendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	count, err := r.attendanceCollection.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung kehadiran: %w", err)
	}
	return count, nil
}
