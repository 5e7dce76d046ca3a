package entity

import (
	"time"
)

type Category struct {
	ID            string        `json:"id" firestore:"id"`
	Name          string        `json:"name" firestore:"name"`
	SubCategories []SubCategory `json:"subCategories,omitempty" firestore:"subCategories,omitempty"`
	CreatedAt     time.Time     `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time     `json:"updated_at" firestore:"updatedAt"`
}

type SubCategory struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
}
