package repository

import (
	"context"

	"mentorhub/internal/domain/entity"
)

type FileMetadataRepository interface {
	Create(ctx context.Context, metadata *entity.FileMetadata) error
	GetByID(ctx context.Context, id string) (*entity.FileMetadata, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.FileMetadata, error)
	Delete(ctx context.Context, id string) error
}
