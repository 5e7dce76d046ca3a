package entity

import (
	"time"
)

type Certificate struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	IssueDate   string    `json:"issueDate,omitempty" firestore:"issueDate,omitempty"` // "YYYY-MM-DD"
	FileUrl     string    `json:"fileUrl,omitempty" firestore:"fileUrl,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
