package usecase

import (
	"context"
	"sync"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/service"
	"mentorhub/pkg/errors"
)

// profileSubmitter is what the wizard needs from the profile layer: a single
// combined update for the whole accumulated draft.
type profileSubmitter interface {
	ApplyCombinedUpdate(ctx context.Context, role service.Role, id string, input CombinedUpdateInput) (*service.CompletionStatus, error)
}

type WizardState string

const (
	WizardActive    WizardState = "active"
	WizardCompleted WizardState = "completed"
	WizardSkipped   WizardState = "skipped"
)

const (
	StepBasicInfo      = "basic_info"
	StepPicture        = "picture"
	StepPictureContact = "picture_contact"
	StepExpertise      = "expertise"
	StepRate           = "rate"
	StepSocialLinks    = "social_links"
)

// WizardDraft accumulates step inputs in memory; nothing is persisted until
// Complete submits the whole draft at once.
type WizardDraft struct {
	Username       string                 `json:"username,omitempty"`
	Phone          string                 `json:"phone,omitempty"`
	Bio            string                 `json:"bio,omitempty"`
	Image          string                 `json:"image,omitempty"`
	LinkedinUrl    string                 `json:"linkedinUrl,omitempty"`
	WebsiteUrl     string                 `json:"websiteUrl,omitempty"`
	OtherUrls      []string               `json:"otherUrls,omitempty"`
	Rate           float64                `json:"rate,omitempty"`
	HasRate        bool                   `json:"-"`
	ExpertiseAreas []entity.ExpertiseArea `json:"expertiseAreas,omitempty"`
}

// StepInput carries one step's fields; nil pointers mean "not provided by
// this step" and leave the draft untouched.
type StepInput struct {
	Username    *string
	Phone       *string
	Bio         *string
	Image       *string
	LinkedinUrl *string
	WebsiteUrl  *string
	OtherUrls   []string
	Rate        *float64
}

type wizardSession struct {
	userID      string
	role        service.Role
	steps       []string
	currentStep int // 1-based
	draft       WizardDraft
	state       WizardState
}

type WizardView struct {
	Role          string                    `json:"role"`
	State         string                    `json:"state"`
	CurrentStep   int                       `json:"currentStep"`
	TotalSteps    int                       `json:"totalSteps"`
	StepName      string                    `json:"stepName,omitempty"`
	Draft         WizardDraft               `json:"draft"`
	RedirectURL   string                    `json:"redirectUrl,omitempty"`
	ProfileStatus *service.CompletionStatus `json:"profileStatus,omitempty"`
}

// WizardUseCase holds one in-memory setup session per user. Sessions are
// deliberately not persisted: a reload starts the wizard over.
type WizardUseCase struct {
	mu       sync.Mutex
	sessions map[string]*wizardSession
	profiles profileSubmitter
}

func NewWizardUseCase(profiles profileSubmitter) *WizardUseCase {
	return &WizardUseCase{
		sessions: make(map[string]*wizardSession),
		profiles: profiles,
	}
}

func stepsFor(role service.Role) []string {
	if role == service.RoleExpert {
		return []string{StepBasicInfo, StepPicture, StepExpertise, StepRate}
	}
	return []string{StepBasicInfo, StepPictureContact, StepSocialLinks}
}

func (uc *WizardUseCase) Start(userID string, role service.Role) *WizardView {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session := &wizardSession{
		userID:      userID,
		role:        role,
		steps:       stepsFor(role),
		currentStep: 1,
		state:       WizardActive,
	}
	uc.sessions[userID] = session

	return session.view()
}

func (uc *WizardUseCase) Current(userID string) (*WizardView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, ok := uc.sessions[userID]
	if !ok {
		return nil, errors.NotFound("Setup session", nil)
	}
	return session.view(), nil
}

// Next merges the step's input into the draft and advances, but only when
// the current step's validator passes; otherwise the step does not change
// and the validation error is surfaced inline.
func (uc *WizardUseCase) Next(userID string, input StepInput) (*WizardView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.activeSession(userID)
	if err != nil {
		return nil, err
	}
	if session.currentStep >= len(session.steps) {
		return nil, errors.BadRequest("Already on the last step; complete the setup instead", nil)
	}

	draft := session.draft
	mergeStepInput(&draft, input)
	if err := validateStep(session.steps[session.currentStep-1], draft); err != nil {
		return nil, err
	}

	session.draft = draft
	session.currentStep++
	return session.view(), nil
}

// Back never validates and is allowed everywhere except the first step.
func (uc *WizardUseCase) Back(userID string) (*WizardView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.activeSession(userID)
	if err != nil {
		return nil, err
	}
	if session.currentStep <= 1 {
		return nil, errors.BadRequest("Already on the first step", nil)
	}

	session.currentStep--
	return session.view(), nil
}

// ToggleExpertise adds or removes a (category, subCategory) pair from the
// draft; selecting a selected pair removes it.
func (uc *WizardUseCase) ToggleExpertise(userID, categoryID, subCategoryID string) (*WizardView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.activeSession(userID)
	if err != nil {
		return nil, err
	}
	if session.role != service.RoleExpert {
		return nil, errors.BadRequest("Expertise selection is only available for experts", nil)
	}

	areas := session.draft.ExpertiseAreas
	for i, area := range areas {
		if area.Category == categoryID && area.SubCategory == subCategoryID {
			session.draft.ExpertiseAreas = append(areas[:i:i], areas[i+1:]...)
			return session.view(), nil
		}
	}
	session.draft.ExpertiseAreas = append(areas, entity.ExpertiseArea{
		Category:    categoryID,
		SubCategory: subCategoryID,
	})
	return session.view(), nil
}

// Skip bypasses all remaining validation and submits nothing; the caller is
// routed to the role dashboard with a partial profile.
func (uc *WizardUseCase) Skip(userID string) (*WizardView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.activeSession(userID)
	if err != nil {
		return nil, err
	}

	session.state = WizardSkipped
	view := session.view()
	view.RedirectURL = dashboardPath(userTypeFor(session.role))
	delete(uc.sessions, userID)
	return view, nil
}

// Complete validates the last step, then submits the entire accumulated
// draft in one combined update. On failure the session stays on the last
// step so the user can retry without re-entering anything.
func (uc *WizardUseCase) Complete(ctx context.Context, userID string, input StepInput) (*WizardView, error) {
	uc.mu.Lock()
	session, err := uc.activeSession(userID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	if session.currentStep != len(session.steps) {
		uc.mu.Unlock()
		return nil, errors.BadRequest("Complete is only available from the last step", nil)
	}

	draft := session.draft
	mergeStepInput(&draft, input)
	if err := validateStep(session.steps[session.currentStep-1], draft); err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	session.draft = draft
	role := session.role
	uc.mu.Unlock()

	status, err := uc.profiles.ApplyCombinedUpdate(ctx, role, userID, CombinedUpdateInput{
		Username:       draft.Username,
		Phone:          draft.Phone,
		Bio:            draft.Bio,
		Image:          draft.Image,
		LinkedinUrl:    draft.LinkedinUrl,
		WebsiteUrl:     draft.WebsiteUrl,
		OtherUrls:      draft.OtherUrls,
		Rate:           draft.Rate,
		HasRate:        draft.HasRate,
		ExpertiseAreas: draft.ExpertiseAreas,
	})
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	session.state = WizardCompleted
	view := session.view()
	view.RedirectURL = dashboardPath(userTypeFor(role))
	view.ProfileStatus = status
	delete(uc.sessions, userID)
	return view, nil
}

func (uc *WizardUseCase) activeSession(userID string) (*wizardSession, error) {
	session, ok := uc.sessions[userID]
	if !ok {
		return nil, errors.NotFound("Setup session", nil)
	}
	if session.state != WizardActive {
		return nil, errors.BadRequest("Setup session already finished", nil)
	}
	return session, nil
}

func (s *wizardSession) view() *WizardView {
	view := &WizardView{
		Role:        string(s.role),
		State:       string(s.state),
		CurrentStep: s.currentStep,
		TotalSteps:  len(s.steps),
		Draft:       s.draft,
	}
	if s.state == WizardActive {
		view.StepName = s.steps[s.currentStep-1]
	}
	return view
}

func userTypeFor(role service.Role) string {
	if role == service.RoleExpert {
		return UserTypeStaff
	}
	return UserTypeStudent
}

func mergeStepInput(draft *WizardDraft, input StepInput) {
	if input.Username != nil {
		draft.Username = *input.Username
	}
	if input.Phone != nil {
		draft.Phone = *input.Phone
	}
	if input.Bio != nil {
		draft.Bio = *input.Bio
	}
	if input.Image != nil {
		draft.Image = *input.Image
	}
	if input.LinkedinUrl != nil {
		draft.LinkedinUrl = *input.LinkedinUrl
	}
	if input.WebsiteUrl != nil {
		draft.WebsiteUrl = *input.WebsiteUrl
	}
	if len(input.OtherUrls) > 0 {
		draft.OtherUrls = input.OtherUrls
	}
	if input.Rate != nil {
		draft.Rate = *input.Rate
		draft.HasRate = true
	}
}

func validateStep(step string, draft WizardDraft) error {
	switch step {
	case StepBasicInfo:
		if draft.Phone == "" {
			return errors.BadRequest("Phone is required", nil)
		}
		if draft.Bio == "" {
			return errors.BadRequest("Bio is required", nil)
		}
	case StepPicture, StepPictureContact:
		if draft.Image == "" {
			return errors.BadRequest("Profile picture is required", nil)
		}
	case StepExpertise:
		if len(draft.ExpertiseAreas) == 0 {
			return errors.BadRequest("Select at least one expertise area", nil)
		}
	case StepRate:
		if !draft.HasRate || draft.Rate < service.MinRate {
			return errors.BadRequest("Rate must be at least $0.01/hour", nil)
		}
	case StepSocialLinks:
		// All fields optional.
	}
	return nil
}
