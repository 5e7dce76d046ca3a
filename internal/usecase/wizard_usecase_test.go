package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/service"
	"mentorhub/pkg/errors"
)

type fakeSubmitter struct {
	calls  int
	lastIn CombinedUpdateInput
	err    error
}

func (f *fakeSubmitter) ApplyCombinedUpdate(ctx context.Context, role service.Role, id string, input CombinedUpdateInput) (*service.CompletionStatus, error) {
	f.calls++
	f.lastIn = input
	if f.err != nil {
		return nil, f.err
	}
	return &service.CompletionStatus{IsComplete: true, CompletionPercentage: 100}, nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestWizardStepsPerRole(t *testing.T) {
	uc := NewWizardUseCase(&fakeSubmitter{})

	expert := uc.Start("u1", service.RoleExpert)
	assert.Equal(t, 4, expert.TotalSteps)
	assert.Equal(t, StepBasicInfo, expert.StepName)

	student := uc.Start("u2", service.RoleStudent)
	assert.Equal(t, 3, student.TotalSteps)
	assert.Equal(t, StepBasicInfo, student.StepName)
}

func TestNextBlockedByValidation(t *testing.T) {
	uc := NewWizardUseCase(&fakeSubmitter{})
	uc.Start("u1", service.RoleExpert)

	// Missing bio keeps the wizard on step 1.
	_, err := uc.Next("u1", StepInput{Phone: strPtr("+15550100")})
	require.Error(t, err)

	view, err := uc.Current("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentStep)

	view, err = uc.Next("u1", StepInput{Phone: strPtr("+15550100"), Bio: strPtr("hello")})
	require.NoError(t, err)
	assert.Equal(t, 2, view.CurrentStep)
	assert.Equal(t, StepPicture, view.StepName)
}

func TestBackFreeExceptFirstStep(t *testing.T) {
	uc := NewWizardUseCase(&fakeSubmitter{})
	uc.Start("u1", service.RoleStudent)

	_, err := uc.Back("u1")
	require.Error(t, err)

	_, err = uc.Next("u1", StepInput{Phone: strPtr("+15550100"), Bio: strPtr("hi")})
	require.NoError(t, err)

	view, err := uc.Back("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentStep)
	// Draft survives going back.
	assert.Equal(t, "+15550100", view.Draft.Phone)
}

func TestToggleExpertiseIsIdempotentToggle(t *testing.T) {
	uc := NewWizardUseCase(&fakeSubmitter{})
	uc.Start("u1", service.RoleExpert)

	view, err := uc.ToggleExpertise("u1", "cat1", "sub1")
	require.NoError(t, err)
	require.Len(t, view.Draft.ExpertiseAreas, 1)

	view, err = uc.ToggleExpertise("u1", "cat1", "sub1")
	require.NoError(t, err)
	assert.Empty(t, view.Draft.ExpertiseAreas)
}

func TestSkipBypassesValidationAndSubmitsNothing(t *testing.T) {
	submitter := &fakeSubmitter{}
	uc := NewWizardUseCase(submitter)
	uc.Start("u1", service.RoleExpert)

	// Nothing filled in at all.
	view, err := uc.Skip("u1")
	require.NoError(t, err)
	assert.Equal(t, string(WizardSkipped), view.State)
	assert.Equal(t, "/expert/dashboard", view.RedirectURL)
	assert.Zero(t, submitter.calls)

	// The session is gone.
	_, err = uc.Current("u1")
	require.Error(t, err)
}

func TestCompleteSubmitsWholeDraft(t *testing.T) {
	submitter := &fakeSubmitter{}
	uc := NewWizardUseCase(submitter)
	uc.Start("u1", service.RoleExpert)

	_, err := uc.Next("u1", StepInput{Phone: strPtr("+15550100"), Bio: strPtr("seasoned engineer")})
	require.NoError(t, err)
	_, err = uc.Next("u1", StepInput{Image: strPtr("https://cdn.example.com/u1.png")})
	require.NoError(t, err)
	_, err = uc.ToggleExpertise("u1", "cat1", "sub1")
	require.NoError(t, err)
	_, err = uc.Next("u1", StepInput{})
	require.NoError(t, err)

	view, err := uc.Complete(context.Background(), "u1", StepInput{Rate: floatPtr(75)})
	require.NoError(t, err)

	assert.Equal(t, string(WizardCompleted), view.State)
	assert.Equal(t, "/expert/dashboard", view.RedirectURL)
	require.NotNil(t, view.ProfileStatus)

	require.Equal(t, 1, submitter.calls)
	assert.Equal(t, "+15550100", submitter.lastIn.Phone)
	assert.Equal(t, "seasoned engineer", submitter.lastIn.Bio)
	assert.Equal(t, "https://cdn.example.com/u1.png", submitter.lastIn.Image)
	assert.True(t, submitter.lastIn.HasRate)
	assert.Equal(t, 75.0, submitter.lastIn.Rate)
	require.Len(t, submitter.lastIn.ExpertiseAreas, 1)
}

func TestCompleteOnlyFromLastStep(t *testing.T) {
	uc := NewWizardUseCase(&fakeSubmitter{})
	uc.Start("u1", service.RoleExpert)

	_, err := uc.Complete(context.Background(), "u1", StepInput{})
	require.Error(t, err)
}

func TestCompleteFailureKeepsSessionOnLastStep(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.Internal("backend down", nil)}
	uc := NewWizardUseCase(submitter)
	uc.Start("u1", service.RoleStudent)

	_, err := uc.Next("u1", StepInput{Phone: strPtr("+15550100"), Bio: strPtr("hi")})
	require.NoError(t, err)
	_, err = uc.Next("u1", StepInput{Image: strPtr("https://cdn.example.com/u1.png")})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), "u1", StepInput{})
	require.Error(t, err)

	// Still on the last step, draft intact, ready to retry.
	view, err := uc.Current("u1")
	require.NoError(t, err)
	assert.Equal(t, string(WizardActive), view.State)
	assert.Equal(t, view.TotalSteps, view.CurrentStep)
	assert.Equal(t, "+15550100", view.Draft.Phone)

	submitter.err = nil
	_, err = uc.Complete(context.Background(), "u1", StepInput{})
	require.NoError(t, err)
}

func TestRateStepValidation(t *testing.T) {
	uc := NewWizardUseCase(&fakeSubmitter{})
	uc.Start("u1", service.RoleExpert)

	_, err := uc.Next("u1", StepInput{Phone: strPtr("+15550100"), Bio: strPtr("bio")})
	require.NoError(t, err)
	_, err = uc.Next("u1", StepInput{Image: strPtr("img")})
	require.NoError(t, err)
	_, err = uc.ToggleExpertise("u1", "cat1", "sub1")
	require.NoError(t, err)
	_, err = uc.Next("u1", StepInput{})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), "u1", StepInput{Rate: floatPtr(0)})
	require.Error(t, err)

	_, err = uc.Complete(context.Background(), "u1", StepInput{Rate: floatPtr(0.01)})
	require.NoError(t, err)
}
