// File: database/repository/absence/crud.go
package absenceRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medportal/models"
)

func (r *mongoAbsenceRepo) Create(ctx context.Context, absence *models.Absence) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if absence.ID == "" {
		absence.ID = uuid.New().String()
	}
	absence.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, absence)
	return err
}

func (r *mongoAbsenceRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Absence, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctor_id": doctorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var absences []models.Absence
	if err := cursor.All(ctx, &absences); err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *mongoAbsenceRepo) GetByDoctorAndRange(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Absence, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Interval overlap on lexicographically ordered date strings.
	filter := bson.M{
		"doctor_id":  doctorID,
		"start_date": bson.M{"$lte": toDate},
		"end_date":   bson.M{"$gte": fromDate},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var absences []models.Absence
	if err := cursor.All(ctx, &absences); err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *mongoAbsenceRepo) DeleteByID(ctx context.Context, doctorID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "doctor_id": doctorID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
