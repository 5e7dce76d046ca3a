package service

import (
	"math"
	"strconv"
	"strings"

	"mentorhub/internal/domain/entity"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleExpert  Role = "expert"
)

const (
	// MinBioLength is the threshold below which a bio does not count as complete.
	MinBioLength = 50
	// MinRate is the smallest hourly rate that counts as complete.
	MinRate = 0.01
)

// ProfileSnapshot is the flat view of a profile the evaluator works on.
// Unset fields are simply missing; the evaluator never fails.
type ProfileSnapshot struct {
	Username       string
	Phone          string
	Bio            string
	Image          string
	LinkedinUrl    string
	WebsiteUrl     string
	Rate           string
	CV             string
	OtherUrls      []string
	ExpertiseAreas []entity.ExpertiseArea
}

func SnapshotFromStudent(s *entity.Student) ProfileSnapshot {
	return ProfileSnapshot{
		Username:    s.Username,
		Phone:       s.Phone,
		Bio:         s.Bio,
		Image:       s.Image,
		LinkedinUrl: s.LinkedinUrl,
		WebsiteUrl:  s.WebsiteUrl,
		OtherUrls:   s.OtherUrls,
	}
}

func SnapshotFromStaff(s *entity.Staff) ProfileSnapshot {
	return ProfileSnapshot{
		Username:       s.Username,
		Phone:          s.Phone,
		Bio:            s.Bio,
		Image:          s.Image,
		LinkedinUrl:    s.LinkedinUrl,
		WebsiteUrl:     s.WebsiteUrl,
		Rate:           s.Rate,
		CV:             s.CV,
		OtherUrls:      s.OtherUrls,
		ExpertiseAreas: s.ExpertiseAreas,
	}
}

// CompletionStatus is derived, never persisted. Completed and Missing
// partition the tracked field set; CriticalMissing and OptionalMissing
// partition Missing.
type CompletionStatus struct {
	IsComplete           bool     `json:"isComplete"`
	CompletionPercentage int      `json:"completionPercentage"`
	CompletedFields      []string `json:"completedFields"`
	MissingFields        []string `json:"missingFields"`
	CriticalMissing      []string `json:"criticalMissing"`
	OptionalMissing      []string `json:"optionalMissing"`
}

type fieldRule struct {
	name      string
	required  bool
	satisfied func(ProfileSnapshot) bool
}

func nonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

var studentRules = []fieldRule{
	{"username", true, func(p ProfileSnapshot) bool { return nonEmpty(p.Username) }},
	{"phone", true, func(p ProfileSnapshot) bool { return nonEmpty(p.Phone) }},
	{"bio", true, func(p ProfileSnapshot) bool { return len(p.Bio) >= MinBioLength }},
	{"image", true, func(p ProfileSnapshot) bool { return nonEmpty(p.Image) }},
	{"linkedinUrl", false, func(p ProfileSnapshot) bool { return nonEmpty(p.LinkedinUrl) }},
	{"websiteUrl", false, func(p ProfileSnapshot) bool { return nonEmpty(p.WebsiteUrl) }},
	{"otherUrls", false, func(p ProfileSnapshot) bool { return hasNonEmptyElement(p.OtherUrls) }},
}

var expertRules = []fieldRule{
	{"phone", true, func(p ProfileSnapshot) bool { return nonEmpty(p.Phone) }},
	{"bio", true, func(p ProfileSnapshot) bool { return len(p.Bio) >= MinBioLength }},
	{"image", true, func(p ProfileSnapshot) bool { return nonEmpty(p.Image) }},
	{"rate", true, func(p ProfileSnapshot) bool { return RateComplete(p.Rate) }},
	{"expertiseAreas", true, func(p ProfileSnapshot) bool { return hasValidArea(p.ExpertiseAreas) }},
	{"linkedinUrl", false, func(p ProfileSnapshot) bool { return nonEmpty(p.LinkedinUrl) }},
	{"cv", false, func(p ProfileSnapshot) bool { return nonEmpty(p.CV) }},
}

func hasNonEmptyElement(values []string) bool {
	for _, v := range values {
		if nonEmpty(v) {
			return true
		}
	}
	return false
}

func hasValidArea(areas []entity.ExpertiseArea) bool {
	for _, a := range areas {
		if nonEmpty(a.Category) && nonEmpty(a.SubCategory) {
			return true
		}
	}
	return false
}

func rulesFor(role Role) []fieldRule {
	if role == RoleExpert {
		return expertRules
	}
	return studentRules
}

// TrackedFields returns the fixed tracked field set for a role.
func TrackedFields(role Role) []string {
	rules := rulesFor(role)
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

// EvaluateCompletion classifies every tracked field for the role and
// aggregates into a percentage and missing-field buckets. Pure; every field
// is evaluated fresh on each call.
func EvaluateCompletion(role Role, snapshot ProfileSnapshot) CompletionStatus {
	rules := rulesFor(role)

	status := CompletionStatus{
		CompletedFields: []string{},
		MissingFields:   []string{},
		CriticalMissing: []string{},
		OptionalMissing: []string{},
	}

	for _, rule := range rules {
		if rule.satisfied(snapshot) {
			status.CompletedFields = append(status.CompletedFields, rule.name)
			continue
		}
		status.MissingFields = append(status.MissingFields, rule.name)
		if rule.required {
			status.CriticalMissing = append(status.CriticalMissing, rule.name)
		} else {
			status.OptionalMissing = append(status.OptionalMissing, rule.name)
		}
	}

	status.IsComplete = len(status.CriticalMissing) == 0
	status.CompletionPercentage = int(math.Round(
		100 * float64(len(status.CompletedFields)) / float64(len(rules))))

	return status
}

// ParseRate strips everything but digits and the decimal point from a rate
// string such as "$25/hour" and parses the remainder.
func ParseRate(rate string) (float64, bool) {
	var b strings.Builder
	for _, r := range rate {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// RateComplete reports whether a rate string counts as a complete field.
func RateComplete(rate string) bool {
	value, ok := ParseRate(rate)
	return ok && value >= MinRate
}

// FormatRate composes the canonical "$<n>/hour" representation from a bare
// numeric amount.
func FormatRate(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64) + "/hour"
}
