package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
	"mentorhub/internal/domain/service"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/logger"
)

const (
	UserTypeStudent = "student"
	UserTypeStaff   = "staff"
	UserTypeAdmin   = "admin"
)

type AuthUseCase struct {
	studentRepo    repository.StudentRepository
	staffRepo      repository.StaffRepository
	authProvider   AuthProvider
	googleVerifier GoogleVerifier
	tokens         TokenIssuer
}

func NewAuthUseCase(
	studentRepo repository.StudentRepository,
	staffRepo repository.StaffRepository,
	authProvider AuthProvider,
	googleVerifier GoogleVerifier,
	tokens TokenIssuer,
) *AuthUseCase {
	return &AuthUseCase{
		studentRepo:    studentRepo,
		staffRepo:      staffRepo,
		authProvider:   authProvider,
		googleVerifier: googleVerifier,
		tokens:         tokens,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
	Phone    string
}

// AuthResult is the login/registration contract: the client branches on
// RedirectURL and ProfileStatus directly.
type AuthResult struct {
	Token         string                    `json:"token"`
	ID            string                    `json:"id"`
	UserType      string                    `json:"userType"`
	RedirectURL   string                    `json:"redirectUrl"`
	ProfileStatus *service.CompletionStatus `json:"profileStatus,omitempty"`
}

func dashboardPath(userType string) string {
	switch userType {
	case UserTypeAdmin:
		return "/admin/dashboard"
	case UserTypeStaff:
		return "/expert/dashboard"
	default:
		return "/student/dashboard"
	}
}

func setupPath(userType string) string {
	if userType == UserTypeStaff {
		return "/expert/profile-setup"
	}
	return "/student/profile-setup"
}

func redirectFor(userType string, status *service.CompletionStatus) string {
	if userType == UserTypeAdmin {
		return dashboardPath(userType)
	}
	if status != nil && !status.IsComplete {
		return setupPath(userType)
	}
	return dashboardPath(userType)
}

func (uc *AuthUseCase) RegisterStudent(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if existing, err := uc.studentRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.authProvider.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create account in authentication provider", err)
	}

	now := time.Now()
	student := &entity.Student{
		ID:        uid,
		Email:     input.Email,
		Username:  input.Username,
		Phone:     input.Phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.studentRepo.Create(ctx, student); err != nil {
		return nil, errors.Internal("Failed to create student record", err)
	}

	return uc.resultForStudent(student)
}

func (uc *AuthUseCase) RegisterStaff(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if existing, err := uc.staffRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.authProvider.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create account in authentication provider", err)
	}

	now := time.Now()
	staff := &entity.Staff{
		ID:         uid,
		Email:      input.Email,
		Username:   input.Username,
		Phone:      input.Phone,
		Role:       UserTypeStaff,
		IsActive:   true,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.staffRepo.Create(ctx, staff); err != nil {
		return nil, errors.Internal("Failed to create staff record", err)
	}

	return uc.resultForStaff(staff)
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	uid, err := uc.authProvider.VerifyPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	if student, err := uc.studentRepo.GetByID(ctx, uid); err == nil && student != nil {
		if !student.IsActive {
			return nil, errors.Forbidden("Your account has been deactivated", nil)
		}
		return uc.resultForStudent(student)
	}

	staff, err := uc.staffRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	if !staff.IsActive {
		return nil, errors.Forbidden("Your account has been deactivated", nil)
	}

	return uc.resultForStaff(staff)
}

func (uc *AuthUseCase) GoogleSignIn(ctx context.Context, idToken, userType string) (*AuthResult, error) {
	claims, err := uc.googleVerifier.Verify(idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid Google ID token", err)
	}

	if userType == UserTypeStudent {
		student, err := uc.studentRepo.GetByEmail(ctx, claims.Email)
		if err != nil {
			return nil, errors.NotFound("Account", err)
		}
		if !student.IsActive {
			return nil, errors.Forbidden("Your account has been deactivated", nil)
		}
		return uc.resultForStudent(student)
	}

	staff, err := uc.staffRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}
	if !staff.IsActive {
		return nil, errors.Forbidden("Your account has been deactivated", nil)
	}
	return uc.resultForStaff(staff)
}

func (uc *AuthUseCase) GoogleSignUp(ctx context.Context, idToken, userType string) (*AuthResult, error) {
	claims, err := uc.googleVerifier.Verify(idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid Google ID token", err)
	}

	now := time.Now()

	if userType == UserTypeStudent {
		if existing, err := uc.studentRepo.GetByEmail(ctx, claims.Email); err == nil && existing != nil {
			return nil, errors.BadRequest("Email already registered", nil)
		}
		student := &entity.Student{
			ID:        uuid.New().String(),
			Email:     claims.Email,
			Username:  claims.Name,
			Image:     claims.Picture,
			IsActive:  true,
			Provider:  "google",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.studentRepo.Create(ctx, student); err != nil {
			return nil, errors.Internal("Failed to create student record", err)
		}
		return uc.resultForStudent(student)
	}

	if existing, err := uc.staffRepo.GetByEmail(ctx, claims.Email); err == nil && existing != nil {
		return nil, errors.BadRequest("Email already registered", nil)
	}
	staff := &entity.Staff{
		ID:         uuid.New().String(),
		Email:      claims.Email,
		Username:   claims.Name,
		Image:      claims.Picture,
		Role:       UserTypeStaff,
		IsActive:   true,
		IsApproved: false,
		Provider:   "google",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.staffRepo.Create(ctx, staff); err != nil {
		return nil, errors.Internal("Failed to create staff record", err)
	}
	return uc.resultForStaff(staff)
}

// Logout is handled client-side by discarding the token; nothing is
// blacklisted server-side.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return nil
}

func (uc *AuthUseCase) resultForStudent(student *entity.Student) (*AuthResult, error) {
	status := service.EvaluateCompletion(service.RoleStudent, service.SnapshotFromStudent(student))

	token, err := uc.tokens.Issue(student.ID, UserTypeStudent)
	if err != nil {
		return nil, errors.Internal("Failed to issue session token", err)
	}

	return &AuthResult{
		Token:         token,
		ID:            student.ID,
		UserType:      UserTypeStudent,
		RedirectURL:   redirectFor(UserTypeStudent, &status),
		ProfileStatus: &status,
	}, nil
}

func (uc *AuthUseCase) resultForStaff(staff *entity.Staff) (*AuthResult, error) {
	userType := UserTypeStaff
	if staff.Role == UserTypeAdmin {
		userType = UserTypeAdmin
	}

	status := service.EvaluateCompletion(service.RoleExpert, service.SnapshotFromStaff(staff))

	token, err := uc.tokens.Issue(staff.ID, userType)
	if err != nil {
		return nil, errors.Internal("Failed to issue session token", err)
	}

	result := &AuthResult{
		Token:       token,
		ID:          staff.ID,
		UserType:    userType,
		RedirectURL: redirectFor(userType, &status),
	}
	if userType == UserTypeStaff {
		result.ProfileStatus = &status
	}
	return result, nil
}
