package entity

import (
	"time"
)

// Staff is an expert account. Admins are staff with Role "admin".
type Staff struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Phone    string `json:"phone" firestore:"phone"`
	Bio      string `json:"bio" firestore:"bio"`
	Role     string `json:"role" firestore:"role"`

	Image       string   `json:"image,omitempty" firestore:"image,omitempty"`
	LinkedinUrl string   `json:"linkedinUrl,omitempty" firestore:"linkedinUrl,omitempty"`
	WebsiteUrl  string   `json:"websiteUrl,omitempty" firestore:"websiteUrl,omitempty"`
	OtherUrls   []string `json:"otherUrls,omitempty" firestore:"otherUrls,omitempty"`

	// Rate keeps the canonical "$<n>/hour" string form; it is edited as a bare
	// number and recomposed at save time.
	Rate           string          `json:"rate,omitempty" firestore:"rate,omitempty"`
	ExpertiseAreas []ExpertiseArea `json:"expertiseAreas,omitempty" firestore:"expertiseAreas,omitempty"`
	AdvisoryTopics []string        `json:"advisoryTopics,omitempty" firestore:"advisoryTopics,omitempty"`
	CV             string          `json:"cv,omitempty" firestore:"cv,omitempty"`
	Certificates   []Certificate   `json:"certificates,omitempty" firestore:"certificates,omitempty"`

	IsApproved bool   `json:"isApproved" firestore:"isApproved"`
	IsActive   bool   `json:"isActive" firestore:"isActive"`
	Provider   string `json:"provider,omitempty" firestore:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type ExpertiseArea struct {
	Category    string `json:"category" firestore:"category"`
	SubCategory string `json:"subCategory" firestore:"subCategory"`
}
