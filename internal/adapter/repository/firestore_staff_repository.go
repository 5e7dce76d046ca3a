package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
)

type firestoreStaffRepository struct {
	client *firestore.Client
}

func NewFirestoreStaffRepository(client *firestore.Client) repository.StaffRepository {
	return &firestoreStaffRepository{
		client: client,
	}
}

func (r *firestoreStaffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	_, err := r.client.Collection("staff").Doc(staff.ID).Set(ctx, staff)
	return err
}

func (r *firestoreStaffRepository) GetByID(ctx context.Context, id string) (*entity.Staff, error) {
	doc, err := r.client.Collection("staff").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var staff entity.Staff
	if err := doc.DataTo(&staff); err != nil {
		return nil, err
	}

	return &staff, nil
}

func (r *firestoreStaffRepository) GetByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	query := r.client.Collection("staff").Where("email", "==", email).Limit(1)
	doc, err := query.Documents(ctx).Next()
	if err != nil {
		return nil, err
	}

	var staff entity.Staff
	if err := doc.DataTo(&staff); err != nil {
		return nil, err
	}

	return &staff, nil
}

func (r *firestoreStaffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	staff.UpdatedAt = time.Now()
	_, err := r.client.Collection("staff").Doc(staff.ID).Set(ctx, staff)
	return err
}

func (r *firestoreStaffRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	merged := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		merged[key] = value
	}
	merged["updatedAt"] = time.Now()

	_, err := r.client.Collection("staff").Doc(id).Set(ctx, merged, firestore.MergeAll)
	return err
}

func (r *firestoreStaffRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("staff").Doc(id).Delete(ctx)
	return err
}

func (r *firestoreStaffRepository) List(ctx context.Context, limit, offset int) ([]*entity.Staff, int64, error) {
	query := r.client.Collection("staff").Query

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
	var members []*entity.Staff
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var staff entity.Staff
		if err := doc.DataTo(&staff); err != nil {
			return nil, 0, err
		}
		members = append(members, &staff)
	}

	return members, total, nil
}
