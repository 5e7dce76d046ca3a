package entity

import (
	"time"
)

type FileMetadata struct {
	ID          string    `json:"id" firestore:"id"`
	OwnerID     string    `json:"owner_id" firestore:"ownerId"`
	Kind        string    `json:"kind" firestore:"kind"` // "certificate", "cv", "image"
	URL         string    `json:"url" firestore:"url"`
	ContentType string    `json:"content_type" firestore:"contentType"`
	Size        int64     `json:"size" firestore:"size"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
