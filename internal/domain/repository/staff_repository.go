package repository

import (
	"context"

	"mentorhub/internal/domain/entity"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id string) (*entity.Staff, error)
	GetByEmail(ctx context.Context, email string) (*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	// UpdateFields merges only the given fields into the stored record,
	// leaving all other fields untouched (section-granular saves).
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Staff, int64, error)
}
