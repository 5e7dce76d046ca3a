package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
	"mentorhub/internal/infrastructure/websocket"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/logger"
)

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusBlocked  UserStatus = "blocked"
)

const sessionExpiredMessage = "Your session has expired. Please sign in again."

// User is the unified admin view model over the student and staff
// collections. It is rebuilt wholesale whenever either collection changes.
type User struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone,omitempty"`
	Type        string                 `json:"type"`
	Status      UserStatus             `json:"status"`
	IsApproved  *bool                  `json:"isApproved,omitempty"`
	Bio         string                 `json:"bio,omitempty"`
	LinkedinUrl string                 `json:"linkedinUrl,omitempty"`
	WebsiteUrl  string                 `json:"websiteUrl,omitempty"`
	Rate        string                 `json:"rate,omitempty"`
	Expertise   []entity.ExpertiseArea `json:"expertise,omitempty"`
}

type Filters struct {
	Type       string `json:"type"`   // all | student | staff
	Status     string `json:"status"` // all | active | inactive | blocked
	SearchTerm string `json:"searchTerm"`
}

type Stats struct {
	TotalUsers       int `json:"totalUsers"`
	TotalStudents    int `json:"totalStudents"`
	ActiveStaff      int `json:"activeStaff"`
	PendingApprovals int `json:"pendingApprovals"`
}

// CollectionState tracks one collection's load independently so a failure
// in one never blocks displaying the other.
type CollectionState struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

func defaultFilters() Filters {
	return Filters{Type: "all", Status: "all"}
}

// UserManagementStore is the admin console's server-side cache over the
// student and staff collections. All mutation goes through its methods;
// derived views are recomputed synchronously after every mutation. Local
// patches are applied only after the repository write succeeded
// (optimistic-after-confirmation).
type UserManagementStore struct {
	mu sync.RWMutex

	studentRepo repository.StudentRepository
	staffRepo   repository.StaffRepository
	events      *websocket.Manager

	students []*entity.Student
	staff    []*entity.Staff

	studentsState CollectionState
	staffState    CollectionState
	isLoading     bool
	lastError     string

	users    []User
	filtered []User
	stats    Stats
	filters  Filters
	loaded   bool
}

func NewUserManagementStore(
	studentRepo repository.StudentRepository,
	staffRepo repository.StaffRepository,
	events *websocket.Manager,
) *UserManagementStore {
	return &UserManagementStore{
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		events:      events,
		filters:     defaultFilters(),
	}
}

// FetchStudents replaces the student collection wholesale; there is no
// merge or diff against prior state.
func (s *UserManagementStore) FetchStudents(ctx context.Context) error {
	s.mu.Lock()
	s.studentsState = CollectionState{Loading: true}
	s.mu.Unlock()

	students, _, err := s.studentRepo.List(ctx, 0, 0)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.studentsState.Loading = false
	if err != nil {
		s.studentsState.Error = storeErrorMessage(err)
		return err
	}
	s.students = students
	s.studentsState.Error = ""
	s.recombine()
	return nil
}

// FetchStaff mirrors FetchStudents for the staff collection.
func (s *UserManagementStore) FetchStaff(ctx context.Context) error {
	s.mu.Lock()
	s.staffState = CollectionState{Loading: true}
	s.mu.Unlock()

	staff, _, err := s.staffRepo.List(ctx, 0, 0)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.staffState.Loading = false
	if err != nil {
		s.staffState.Error = storeErrorMessage(err)
		return err
	}
	s.staff = staff
	s.staffState.Error = ""
	s.recombine()
	return nil
}

// FetchAllUsers loads both collections concurrently. A failure in either is
// surfaced as one aggregated error while the per-collection errors stay
// individually readable.
func (s *UserManagementStore) FetchAllUsers(ctx context.Context) error {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.FetchStudents(gctx) })
	g.Go(func() error { return s.FetchStaff(gctx) })
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		s.lastError = storeErrorMessage(err)
		return errors.Internal("Failed to load user data", err)
	}
	s.loaded = true
	return nil
}

// EnsureLoaded fetches both collections once; later calls are no-ops until
// Reset or ForceRefresh.
func (s *UserManagementStore) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.FetchAllUsers(ctx)
}

// UpdateUserStatus writes the new status to the backend first and patches
// the in-memory collection only on success. On failure the local state is
// left untouched and the error propagates for UI handling.
func (s *UserManagementStore) UpdateUserStatus(ctx context.Context, userID, userType string, status UserStatus) error {
	switch userType {
	case UserTypeStudent:
		fields, err := studentStatusFields(status)
		if err != nil {
			return err
		}
		if err := s.studentRepo.UpdateFields(ctx, userID, fields); err != nil {
			return s.classify(err)
		}
		s.mu.Lock()
		for _, student := range s.students {
			if student.ID == userID {
				student.IsActive = status != StatusBlocked
				break
			}
		}
		s.recombine()
		s.mu.Unlock()

	case UserTypeStaff:
		fields, err := staffStatusFields(status)
		if err != nil {
			return err
		}
		if err := s.staffRepo.UpdateFields(ctx, userID, fields); err != nil {
			return s.classify(err)
		}
		s.mu.Lock()
		for _, staff := range s.staff {
			if staff.ID == userID {
				applyStaffStatus(staff, status)
				break
			}
		}
		s.recombine()
		s.mu.Unlock()

	default:
		return errors.BadRequest("Unknown user type", nil)
	}

	s.events.Broadcast(websocket.Event{
		Type:     "user.status_changed",
		UserID:   userID,
		UserType: userType,
		Payload:  map[string]string{"status": string(status)},
	})
	return nil
}

// ApproveStaff confirms the write with the backend before setting
// isApproved locally.
func (s *UserManagementStore) ApproveStaff(ctx context.Context, staffID string) error {
	if err := s.staffRepo.UpdateFields(ctx, staffID, map[string]interface{}{
		"isApproved": true,
	}); err != nil {
		return s.classify(err)
	}

	s.mu.Lock()
	for _, staff := range s.staff {
		if staff.ID == staffID {
			staff.IsApproved = true
			break
		}
	}
	s.recombine()
	s.mu.Unlock()

	s.events.Broadcast(websocket.Event{Type: "staff.approved", UserID: staffID, UserType: UserTypeStaff})
	return nil
}

// RejectStaff deactivates the account; the record stays for audit.
func (s *UserManagementStore) RejectStaff(ctx context.Context, staffID string) error {
	if err := s.staffRepo.UpdateFields(ctx, staffID, map[string]interface{}{
		"isActive": false,
	}); err != nil {
		return s.classify(err)
	}

	s.mu.Lock()
	for _, staff := range s.staff {
		if staff.ID == staffID {
			staff.IsActive = false
			break
		}
	}
	s.recombine()
	s.mu.Unlock()

	s.events.Broadcast(websocket.Event{Type: "staff.rejected", UserID: staffID, UserType: UserTypeStaff})
	return nil
}

func (s *UserManagementStore) SetFilters(filters Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if filters.Type == "" {
		filters.Type = "all"
	}
	if filters.Status == "" {
		filters.Status = "all"
	}
	s.filters = filters
	s.filtered = deriveFilteredUsers(s.users, s.filters)
}

func (s *UserManagementStore) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchTerm = term
	s.filtered = deriveFilteredUsers(s.users, s.filters)
}

func (s *UserManagementStore) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]User(nil), s.users...)
}

func (s *UserManagementStore) FilteredUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]User(nil), s.filtered...)
}

func (s *UserManagementStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *UserManagementStore) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *UserManagementStore) States() (students, staff CollectionState, loading bool, lastError string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studentsState, s.staffState, s.isLoading, s.lastError
}

// Reset clears all state to initial defaults without touching the network.
func (s *UserManagementStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = nil
	s.staff = nil
	s.studentsState = CollectionState{}
	s.staffState = CollectionState{}
	s.isLoading = false
	s.lastError = ""
	s.users = nil
	s.filtered = nil
	s.stats = Stats{}
	s.filters = defaultFilters()
	s.loaded = false
}

// ForceRefresh clears state and immediately reloads both collections.
func (s *UserManagementStore) ForceRefresh(ctx context.Context) error {
	s.Reset()
	return s.FetchAllUsers(ctx)
}

// recombine recomputes every derived view; callers must hold the lock.
func (s *UserManagementStore) recombine() {
	s.users = deriveUsers(s.students, s.staff)
	s.stats = deriveStats(s.users)
	s.filtered = deriveFilteredUsers(s.users, s.filters)
}

// classify turns a repository error into the user-facing store error,
// special-casing JWT expiry as terminal. The check is intentionally
// duplicated from the middleware: the store operates on returned errors,
// not on the request pipeline.
func (s *UserManagementStore) classify(err error) error {
	if errors.IsSessionExpired(err) {
		logger.Warn("User management call failed with expired session: %v", err)
		return errors.SessionExpired(err)
	}
	return errors.Internal("Failed to update user", err)
}

func storeErrorMessage(err error) string {
	if errors.IsSessionExpired(err) {
		return sessionExpiredMessage
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func studentStatusFields(status UserStatus) (map[string]interface{}, error) {
	switch status {
	case StatusActive:
		return map[string]interface{}{"isActive": true}, nil
	case StatusBlocked:
		return map[string]interface{}{"isActive": false}, nil
	default:
		return nil, errors.BadRequest("Students can only be active or blocked", nil)
	}
}

func staffStatusFields(status UserStatus) (map[string]interface{}, error) {
	switch status {
	case StatusActive:
		return map[string]interface{}{"isActive": true, "isApproved": true}, nil
	case StatusInactive:
		return map[string]interface{}{"isActive": true, "isApproved": false}, nil
	case StatusBlocked:
		return map[string]interface{}{"isActive": false}, nil
	default:
		return nil, errors.BadRequest("Unknown status", nil)
	}
}

func applyStaffStatus(staff *entity.Staff, status UserStatus) {
	switch status {
	case StatusActive:
		staff.IsActive = true
		staff.IsApproved = true
	case StatusInactive:
		staff.IsActive = true
		staff.IsApproved = false
	case StatusBlocked:
		staff.IsActive = false
	}
}

// Pure derivations. Kept separate from the network-calling methods so they
// are unit-testable on their own.

// resolveName applies the display-name fallback once, at the
// transformation boundary: username, else the local part of the email.
func resolveName(username, email string) string {
	if username != "" {
		return username
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func studentStatus(student *entity.Student) UserStatus {
	if !student.IsActive {
		return StatusBlocked
	}
	return StatusActive
}

func staffStatus(staff *entity.Staff) UserStatus {
	if !staff.IsActive {
		return StatusBlocked
	}
	if staff.IsApproved {
		return StatusActive
	}
	return StatusInactive
}

func deriveUsers(students []*entity.Student, staff []*entity.Staff) []User {
	users := make([]User, 0, len(students)+len(staff))
	for _, student := range students {
		users = append(users, User{
			ID:          student.ID,
			Name:        resolveName(student.Username, student.Email),
			Email:       student.Email,
			Phone:       student.Phone,
			Type:        UserTypeStudent,
			Status:      studentStatus(student),
			Bio:         student.Bio,
			LinkedinUrl: student.LinkedinUrl,
			WebsiteUrl:  student.WebsiteUrl,
		})
	}
	for _, member := range staff {
		approved := member.IsApproved
		users = append(users, User{
			ID:          member.ID,
			Name:        resolveName(member.Username, member.Email),
			Email:       member.Email,
			Phone:       member.Phone,
			Type:        UserTypeStaff,
			Status:      staffStatus(member),
			IsApproved:  &approved,
			Bio:         member.Bio,
			LinkedinUrl: member.LinkedinUrl,
			WebsiteUrl:  member.WebsiteUrl,
			Rate:        member.Rate,
			Expertise:   member.ExpertiseAreas,
		})
	}
	return users
}

func deriveStats(users []User) Stats {
	stats := Stats{TotalUsers: len(users)}
	for _, user := range users {
		switch user.Type {
		case UserTypeStudent:
			stats.TotalStudents++
		case UserTypeStaff:
			if user.Status == StatusActive {
				stats.ActiveStaff++
			}
			if user.IsApproved != nil && !*user.IsApproved && user.Status != StatusBlocked {
				stats.PendingApprovals++
			}
		}
	}
	return stats
}

// deriveFilteredUsers is a pure conjunction over the three filter
// dimensions; input order is preserved. The search term also matches the
// raw id, preserved as observed behavior.
func deriveFilteredUsers(users []User, filters Filters) []User {
	term := strings.ToLower(strings.TrimSpace(filters.SearchTerm))
	result := make([]User, 0, len(users))
	for _, user := range users {
		if filters.Type != "all" && filters.Type != "" && user.Type != filters.Type {
			continue
		}
		if filters.Status != "all" && filters.Status != "" && string(user.Status) != filters.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(user.Name), term) &&
			!strings.Contains(strings.ToLower(user.Email), term) &&
			!strings.Contains(strings.ToLower(user.ID), term) {
			continue
		}
		result = append(result, user)
	}
	return result
}
