package repository

import (
	"context"

	"mentorhub/internal/domain/entity"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	GetByID(ctx context.Context, id string) (*entity.Student, error)
	GetByEmail(ctx context.Context, email string) (*entity.Student, error)
	Update(ctx context.Context, student *entity.Student) error
	// UpdateFields merges only the given fields into the stored record,
	// leaving all other fields untouched (section-granular saves).
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Student, int64, error)
}
