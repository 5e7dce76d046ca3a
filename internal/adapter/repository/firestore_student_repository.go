package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
)

type firestoreStudentRepository struct {
	client *firestore.Client
}

func NewFirestoreStudentRepository(client *firestore.Client) repository.StudentRepository {
	return &firestoreStudentRepository{
		client: client,
	}
}

func (r *firestoreStudentRepository) Create(ctx context.Context, student *entity.Student) error {
	_, err := r.client.Collection("students").Doc(student.ID).Set(ctx, student)
	return err
}

func (r *firestoreStudentRepository) GetByID(ctx context.Context, id string) (*entity.Student, error) {
	doc, err := r.client.Collection("students").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var student entity.Student
	if err := doc.DataTo(&student); err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *firestoreStudentRepository) GetByEmail(ctx context.Context, email string) (*entity.Student, error) {
	query := r.client.Collection("students").Where("email", "==", email).Limit(1)
	doc, err := query.Documents(ctx).Next()
	if err != nil {
		return nil, err
	}

	var student entity.Student
	if err := doc.DataTo(&student); err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *firestoreStudentRepository) Update(ctx context.Context, student *entity.Student) error {
	student.UpdatedAt = time.Now()
	_, err := r.client.Collection("students").Doc(student.ID).Set(ctx, student)
	return err
}

func (r *firestoreStudentRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	merged := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		merged[key] = value
	}
	merged["updatedAt"] = time.Now()

	_, err := r.client.Collection("students").Doc(id).Set(ctx, merged, firestore.MergeAll)
	return err
}

func (r *firestoreStudentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("students").Doc(id).Delete(ctx)
	return err
}

func (r *firestoreStudentRepository) List(ctx context.Context, limit, offset int) ([]*entity.Student, int64, error) {
	query := r.client.Collection("students").Query

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var students []*entity.Student
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var student entity.Student
		if err := doc.DataTo(&student); err != nil {
			return nil, 0, err
		}
		students = append(students, &student)
	}

	return students, total, nil
}
