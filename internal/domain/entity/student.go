package entity

import (
	"time"
)

type Student struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Phone    string `json:"phone" firestore:"phone"`
	Bio      string `json:"bio" firestore:"bio"`

	Image       string   `json:"image,omitempty" firestore:"image,omitempty"`
	LinkedinUrl string   `json:"linkedinUrl,omitempty" firestore:"linkedinUrl,omitempty"`
	WebsiteUrl  string   `json:"websiteUrl,omitempty" firestore:"websiteUrl,omitempty"`
	OtherUrls   []string `json:"otherUrls,omitempty" firestore:"otherUrls,omitempty"`

	IsActive bool   `json:"isActive" firestore:"isActive"`
	Provider string `json:"provider,omitempty" firestore:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
