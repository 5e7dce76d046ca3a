package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/infrastructure/google"
	"mentorhub/pkg/errors"
)

type fakeAuthProvider struct {
	uidByEmail map[string]string
	verifyErr  error
}

func (f *fakeAuthProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return "new-" + email, nil
}

func (f *fakeAuthProvider) GetUserByEmail(ctx context.Context, email string) (string, error) {
	if uid, ok := f.uidByEmail[email]; ok {
		return uid, nil
	}
	return "", errors.NotFound("User", nil)
}

func (f *fakeAuthProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	if uid, ok := f.uidByEmail[email]; ok {
		return uid, nil
	}
	return "", errors.Unauthorized("Invalid credentials", nil)
}

func (f *fakeAuthProvider) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	return nil
}

func (f *fakeAuthProvider) DeleteUser(ctx context.Context, uid string) error {
	return nil
}

type fakeGoogleVerifier struct {
	claims *google.Claims
	err    error
}

func (f *fakeGoogleVerifier) Verify(idToken string) (*google.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(userID, userType string) (string, error) {
	return "token-" + userID + "-" + userType, nil
}

const longBio = "I have spent more than a decade helping teams ship reliable distributed systems."

func completeStaff() *entity.Staff {
	return &entity.Staff{
		ID:       "e1",
		Email:    "carol@example.com",
		Username: "carol",
		Phone:    "+15550100",
		Bio:      longBio,
		Image:    "https://cdn.example.com/carol.png",
		Rate:     "$80/hour",
		ExpertiseAreas: []entity.ExpertiseArea{
			{Category: "engineering", SubCategory: "backend"},
		},
		Role:       UserTypeStaff,
		IsActive:   true,
		IsApproved: true,
	}
}

func newAuthUseCase(students *fakeStudentRepo, staff *fakeStaffRepo, provider *fakeAuthProvider) *AuthUseCase {
	return NewAuthUseCase(students, staff, provider, &fakeGoogleVerifier{}, fakeTokenIssuer{})
}

func TestLoginRoutesIncompleteStaffToSetup(t *testing.T) {
	staff := completeStaff()
	staff.Bio = "too short"

	uc := newAuthUseCase(
		&fakeStudentRepo{},
		&fakeStaffRepo{staff: []*entity.Staff{staff}},
		&fakeAuthProvider{uidByEmail: map[string]string{"carol@example.com": "e1"}},
	)

	result, err := uc.Login(context.Background(), "carol@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, UserTypeStaff, result.UserType)
	assert.Equal(t, "/expert/profile-setup", result.RedirectURL)
	require.NotNil(t, result.ProfileStatus)
	assert.False(t, result.ProfileStatus.IsComplete)
	assert.NotEmpty(t, result.Token)
}

func TestLoginRoutesCompleteStaffToDashboard(t *testing.T) {
	uc := newAuthUseCase(
		&fakeStudentRepo{},
		&fakeStaffRepo{staff: []*entity.Staff{completeStaff()}},
		&fakeAuthProvider{uidByEmail: map[string]string{"carol@example.com": "e1"}},
	)

	result, err := uc.Login(context.Background(), "carol@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "/expert/dashboard", result.RedirectURL)
	require.NotNil(t, result.ProfileStatus)
	assert.True(t, result.ProfileStatus.IsComplete)
}

func TestLoginRoutesAdminToAdminDashboard(t *testing.T) {
	admin := completeStaff()
	admin.ID = "a1"
	admin.Email = "admin@example.com"
	admin.Role = UserTypeAdmin
	admin.Bio = ""

	uc := newAuthUseCase(
		&fakeStudentRepo{},
		&fakeStaffRepo{staff: []*entity.Staff{admin}},
		&fakeAuthProvider{uidByEmail: map[string]string{"admin@example.com": "a1"}},
	)

	result, err := uc.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, UserTypeAdmin, result.UserType)
	// Admins never see the setup wizard, complete profile or not.
	assert.Equal(t, "/admin/dashboard", result.RedirectURL)
	assert.Nil(t, result.ProfileStatus)
}

func TestLoginRoutesStudentByCompletion(t *testing.T) {
	student := &entity.Student{
		ID:       "s1",
		Email:    "alice@example.com",
		Username: "alice",
		IsActive: true,
	}

	uc := newAuthUseCase(
		&fakeStudentRepo{students: []*entity.Student{student}},
		&fakeStaffRepo{},
		&fakeAuthProvider{uidByEmail: map[string]string{"alice@example.com": "s1"}},
	)

	result, err := uc.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/student/profile-setup", result.RedirectURL)

	student.Phone = "+15550100"
	student.Bio = longBio
	student.Image = "https://cdn.example.com/alice.png"

	result, err = uc.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/student/dashboard", result.RedirectURL)
}

func TestLoginRejectsDeactivatedAccounts(t *testing.T) {
	staff := completeStaff()
	staff.IsActive = false

	uc := newAuthUseCase(
		&fakeStudentRepo{},
		&fakeStaffRepo{staff: []*entity.Staff{staff}},
		&fakeAuthProvider{uidByEmail: map[string]string{"carol@example.com": "e1"}},
	)

	_, err := uc.Login(context.Background(), "carol@example.com", "pw")
	require.Error(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc := newAuthUseCase(
		&fakeStudentRepo{},
		&fakeStaffRepo{},
		&fakeAuthProvider{verifyErr: errors.Unauthorized("Invalid credentials", nil)},
	)

	_, err := uc.Login(context.Background(), "nobody@example.com", "pw")
	require.Error(t, err)
}

func TestRegisterStudentRejectsDuplicateEmail(t *testing.T) {
	uc := newAuthUseCase(
		&fakeStudentRepo{students: []*entity.Student{{ID: "s1", Email: "alice@example.com"}}},
		&fakeStaffRepo{},
		&fakeAuthProvider{},
	)

	_, err := uc.RegisterStudent(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Password: "password1",
		Username: "alice2",
	})
	require.Error(t, err)
}

func TestRegisterStaffStartsUnapproved(t *testing.T) {
	staffRepo := &fakeStaffRepo{}
	uc := newAuthUseCase(&fakeStudentRepo{}, staffRepo, &fakeAuthProvider{})

	result, err := uc.RegisterStaff(context.Background(), RegisterInput{
		Email:    "dan@example.com",
		Password: "password1",
		Username: "dan",
	})
	require.NoError(t, err)

	require.Len(t, staffRepo.staff, 1)
	assert.False(t, staffRepo.staff[0].IsApproved)
	assert.True(t, staffRepo.staff[0].IsActive)
	assert.Equal(t, "/expert/profile-setup", result.RedirectURL)
}

func TestGoogleSignUpCreatesStudentFromClaims(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	uc := NewAuthUseCase(
		studentRepo,
		&fakeStaffRepo{},
		&fakeAuthProvider{},
		&fakeGoogleVerifier{claims: &google.Claims{
			Subject: "g1",
			Email:   "alice@example.com",
			Name:    "Alice",
			Picture: "https://lh3.example.com/alice.png",
		}},
		fakeTokenIssuer{},
	)

	result, err := uc.GoogleSignUp(context.Background(), "id-token", UserTypeStudent)
	require.NoError(t, err)

	require.Len(t, studentRepo.students, 1)
	assert.Equal(t, "google", studentRepo.students[0].Provider)
	assert.Equal(t, "alice@example.com", studentRepo.students[0].Email)
	assert.Equal(t, "/student/profile-setup", result.RedirectURL)
}

func TestGoogleSignInRequiresExistingAccount(t *testing.T) {
	uc := NewAuthUseCase(
		&fakeStudentRepo{},
		&fakeStaffRepo{},
		&fakeAuthProvider{},
		&fakeGoogleVerifier{claims: &google.Claims{Email: "missing@example.com"}},
		fakeTokenIssuer{},
	)

	_, err := uc.GoogleSignIn(context.Background(), "id-token", UserTypeStudent)
	require.Error(t, err)
}
