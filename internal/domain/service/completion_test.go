package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mentorhub/internal/domain/entity"
)

func completeExpertSnapshot() ProfileSnapshot {
	return ProfileSnapshot{
		Username: "mentor-jane",
		Phone:    "+15550001111",
		Bio:      strings.Repeat("x", 60),
		Image:    "https://cdn.example.com/avatar.png",
		Rate:     "$40/hour",
		ExpertiseAreas: []entity.ExpertiseArea{
			{Category: "cat-1", SubCategory: "sub-1"},
		},
	}
}

func TestEvaluateCompletionPartition(t *testing.T) {
	snapshots := []ProfileSnapshot{
		{},
		completeExpertSnapshot(),
		{Phone: "+1555", Bio: "short"},
		{Username: "a", LinkedinUrl: "https://linkedin.com/in/a"},
	}

	for _, role := range []Role{RoleStudent, RoleExpert} {
		tracked := TrackedFields(role)
		assert.Len(t, tracked, 7)

		for _, snap := range snapshots {
			status := EvaluateCompletion(role, snap)

			seen := map[string]int{}
			for _, f := range status.CompletedFields {
				seen[f]++
			}
			for _, f := range status.MissingFields {
				seen[f]++
			}
			for _, name := range tracked {
				assert.Equal(t, 1, seen[name], "field %s must appear exactly once for role %s", name, role)
			}
			assert.Len(t, status.MissingFields, len(status.CriticalMissing)+len(status.OptionalMissing))
		}
	}
}

func TestEvaluateCompletionMonotonic(t *testing.T) {
	snap := ProfileSnapshot{
		Username: "learner",
		Bio:      strings.Repeat("y", 50),
		Image:    "data:image/png;base64,xyz",
	}
	before := EvaluateCompletion(RoleStudent, snap)
	assert.Contains(t, before.CriticalMissing, "phone")

	snap.Phone = "+15550002222"
	after := EvaluateCompletion(RoleStudent, snap)

	assert.Greater(t, after.CompletionPercentage, before.CompletionPercentage)
	assert.NotContains(t, after.CriticalMissing, "phone")
	assert.Contains(t, after.CompletedFields, "phone")
	assert.NotContains(t, after.MissingFields, "phone")
}

func TestEvaluateCompletionClearedFieldDropsPercentage(t *testing.T) {
	snap := completeExpertSnapshot()
	full := EvaluateCompletion(RoleExpert, snap)
	assert.True(t, full.IsComplete)

	snap.Rate = ""
	cleared := EvaluateCompletion(RoleExpert, snap)
	assert.False(t, cleared.IsComplete)
	assert.Less(t, cleared.CompletionPercentage, full.CompletionPercentage)
}

func TestBioThresholdBoundary(t *testing.T) {
	snap := completeExpertSnapshot()

	snap.Bio = strings.Repeat("a", 49)
	status := EvaluateCompletion(RoleExpert, snap)
	assert.Contains(t, status.MissingFields, "bio")
	assert.False(t, status.IsComplete)

	snap.Bio = strings.Repeat("a", 50)
	status = EvaluateCompletion(RoleExpert, snap)
	assert.Contains(t, status.CompletedFields, "bio")
	assert.True(t, status.IsComplete)
}

func TestRateBoundary(t *testing.T) {
	cases := []struct {
		rate     string
		complete bool
	}{
		{"$0/hour", false},
		{"$0.01/hour", true},
		{"$25/hour", true},
		{"free", false},
		{"", false},
	}

	for _, tc := range cases {
		snap := completeExpertSnapshot()
		snap.Rate = tc.rate
		status := EvaluateCompletion(RoleExpert, snap)
		if tc.complete {
			assert.Contains(t, status.CompletedFields, "rate", "rate %q", tc.rate)
		} else {
			assert.Contains(t, status.CriticalMissing, "rate", "rate %q", tc.rate)
		}
	}
}

func TestOptionalFieldsNeverBlockCompleteness(t *testing.T) {
	snap := completeExpertSnapshot()
	snap.LinkedinUrl = ""
	snap.CV = ""

	status := EvaluateCompletion(RoleExpert, snap)
	assert.True(t, status.IsComplete)
	assert.ElementsMatch(t, []string{"linkedinUrl", "cv"}, status.OptionalMissing)
	assert.Less(t, status.CompletionPercentage, 100)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "$40/hour", FormatRate(40))
	assert.Equal(t, "$12.5/hour", FormatRate(12.5))
	assert.True(t, RateComplete(FormatRate(0.01)))
}
