// File: database/repository/document/crud.go
package documentRepo

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medportal/models"
)

func (r *mongoDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *mongoDocumentRepo) GetByID(ctx context.Context, doctorID, id string) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "doctor_id": doctorID}
	var doc models.Document
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *mongoDocumentRepo) List(ctx context.Context, doctorID string, f models.DocumentFilter) ([]models.Document, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := listFilter(doctorID, f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// listFilter builds the Mongo filter for a document listing. The search term
// is a substring, not a pattern, so its metacharacters are quoted.
func listFilter(doctorID string, f models.DocumentFilter) bson.M {
	filter := bson.M{"doctor_id": doctorID}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.PatientName != "" {
		filter["patient_name"] = f.PatientName
	}
	if f.Search != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"patient_name": regex},
		}
	}
	return filter
}

func (r *mongoDocumentRepo) DistinctPatients(ctx context.Context, doctorID string) ([]string, error) {
	return r.distinct(ctx, doctorID, "patient_name")
}

func (r *mongoDocumentRepo) DistinctTypes(ctx context.Context, doctorID string) ([]string, error) {
	return r.distinct(ctx, doctorID, "type")
}

func (r *mongoDocumentRepo) distinct(ctx context.Context, doctorID, field string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, field, bson.M{"doctor_id": doctorID})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *mongoDocumentRepo) DeleteByID(ctx context.Context, doctorID, id string) error {
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
