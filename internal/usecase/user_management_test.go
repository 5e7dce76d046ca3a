package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/entity"
	"mentorhub/pkg/errors"
)

// fakeStudentRepo is an in-memory StudentRepository for store tests.
type fakeStudentRepo struct {
	students  []*entity.Student
	listErr   error
	updateErr error
	updated   map[string]map[string]interface{}
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *entity.Student) error {
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (*entity.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.NotFound("Student", nil)
}

func (f *fakeStudentRepo) GetByEmail(ctx context.Context, email string) (*entity.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, errors.NotFound("Student", nil)
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *entity.Student) error {
	return nil
}

func (f *fakeStudentRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]map[string]interface{})
	}
	f.updated[id] = fields
	return nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeStudentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Student, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.students, int64(len(f.students)), nil
}

type fakeStaffRepo struct {
	staff     []*entity.Staff
	listErr   error
	updateErr error
	updated   map[string]map[string]interface{}
}

func (f *fakeStaffRepo) Create(ctx context.Context, staff *entity.Staff) error {
	f.staff = append(f.staff, staff)
	return nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (*entity.Staff, error) {
	for _, s := range f.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.NotFound("Staff", nil)
}

func (f *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	for _, s := range f.staff {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, errors.NotFound("Staff", nil)
}

func (f *fakeStaffRepo) Update(ctx context.Context, staff *entity.Staff) error {
	return nil
}

func (f *fakeStaffRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]map[string]interface{})
	}
	f.updated[id] = fields
	return nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeStaffRepo) List(ctx context.Context, limit, offset int) ([]*entity.Staff, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.staff, int64(len(f.staff)), nil
}

func sampleStudents() []*entity.Student {
	return []*entity.Student{
		{ID: "s1", Email: "alice@example.com", Username: "alice", IsActive: true},
		{ID: "s2", Email: "bob.smith@example.com", IsActive: false},
	}
}

func sampleStaff() []*entity.Staff {
	return []*entity.Staff{
		{ID: "e1", Email: "carol@example.com", Username: "carol", IsActive: true, IsApproved: true},
		{ID: "e2", Email: "dan@example.com", Username: "dan", IsActive: true, IsApproved: false},
		{ID: "e3", Email: "eve@example.com", Username: "eve", IsActive: false, IsApproved: true},
	}
}

func newTestStore(students *fakeStudentRepo, staff *fakeStaffRepo) *UserManagementStore {
	return NewUserManagementStore(students, staff, nil)
}

func TestStatusDerivation(t *testing.T) {
	store := newTestStore(
		&fakeStudentRepo{students: sampleStudents()},
		&fakeStaffRepo{staff: sampleStaff()},
	)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	byID := map[string]User{}
	for _, u := range store.Users() {
		byID[u.ID] = u
	}

	assert.Equal(t, StatusActive, byID["s1"].Status)
	assert.Equal(t, StatusBlocked, byID["s2"].Status)
	assert.Equal(t, StatusActive, byID["e1"].Status)
	assert.Equal(t, StatusInactive, byID["e2"].Status)
	// Blocked wins over approved.
	assert.Equal(t, StatusBlocked, byID["e3"].Status)
}

func TestNameFallsBackToEmailLocalPart(t *testing.T) {
	store := newTestStore(
		&fakeStudentRepo{students: sampleStudents()},
		&fakeStaffRepo{},
	)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	byID := map[string]User{}
	for _, u := range store.Users() {
		byID[u.ID] = u
	}

	assert.Equal(t, "alice", byID["s1"].Name)
	assert.Equal(t, "bob.smith", byID["s2"].Name)
}

func TestStatsDerivation(t *testing.T) {
	store := newTestStore(
		&fakeStudentRepo{students: sampleStudents()},
		&fakeStaffRepo{staff: sampleStaff()},
	)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	stats := store.Stats()
	assert.Equal(t, 5, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 1, stats.ActiveStaff)
	assert.Equal(t, 1, stats.PendingApprovals)
}

func TestFiltersAreConjunctive(t *testing.T) {
	store := newTestStore(
		&fakeStudentRepo{students: sampleStudents()},
		&fakeStaffRepo{staff: sampleStaff()},
	)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	store.SetFilters(Filters{Type: "staff", Status: "active", SearchTerm: "carol"})
	filtered := store.FilteredUsers()
	require.Len(t, filtered, 1)
	assert.Equal(t, "e1", filtered[0].ID)

	// Same search term with a non-matching status yields nothing.
	store.SetFilters(Filters{Type: "staff", Status: "blocked", SearchTerm: "carol"})
	assert.Empty(t, store.FilteredUsers())
}

func TestSearchMatchesNameEmailAndID(t *testing.T) {
	store := newTestStore(
		&fakeStudentRepo{students: sampleStudents()},
		&fakeStaffRepo{staff: sampleStaff()},
	)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	store.SetSearchTerm("ALICE")
	require.Len(t, store.FilteredUsers(), 1)

	store.SetSearchTerm("bob.smith@")
	require.Len(t, store.FilteredUsers(), 1)

	store.SetSearchTerm("e2")
	ids := []string{}
	for _, u := range store.FilteredUsers() {
		ids = append(ids, u.ID)
	}
	assert.Contains(t, ids, "e2")
}

func TestUpdateUserStatusPatchesOnlyAfterWriteSucceeds(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: sampleStaff()}
	store := newTestStore(&fakeStudentRepo{}, staffRepo)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	require.NoError(t, store.UpdateUserStatus(context.Background(), "e2", UserTypeStaff, StatusActive))

	assert.Equal(t, map[string]interface{}{"isActive": true, "isApproved": true}, staffRepo.updated["e2"])
	for _, u := range store.Users() {
		if u.ID == "e2" {
			assert.Equal(t, StatusActive, u.Status)
		}
	}
}

func TestUpdateUserStatusLeavesStateOnFailure(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: sampleStaff()}
	store := newTestStore(&fakeStudentRepo{}, staffRepo)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	staffRepo.updateErr = errors.Internal("write failed", nil)
	err := store.UpdateUserStatus(context.Background(), "e2", UserTypeStaff, StatusActive)
	require.Error(t, err)

	for _, u := range store.Users() {
		if u.ID == "e2" {
			assert.Equal(t, StatusInactive, u.Status)
		}
	}
}

func TestStudentsCannotBeSetInactive(t *testing.T) {
	store := newTestStore(&fakeStudentRepo{students: sampleStudents()}, &fakeStaffRepo{})
	require.NoError(t, store.FetchAllUsers(context.Background()))

	err := store.UpdateUserStatus(context.Background(), "s1", UserTypeStudent, StatusInactive)
	require.Error(t, err)
}

func TestApproveStaffConfirmsBeforePatching(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: sampleStaff()}
	store := newTestStore(&fakeStudentRepo{}, staffRepo)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	require.NoError(t, store.ApproveStaff(context.Background(), "e2"))
	assert.Equal(t, map[string]interface{}{"isApproved": true}, staffRepo.updated["e2"])

	stats := store.Stats()
	assert.Equal(t, 0, stats.PendingApprovals)
	assert.Equal(t, 2, stats.ActiveStaff)
}

func TestRejectStaffDeactivates(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: sampleStaff()}
	store := newTestStore(&fakeStudentRepo{}, staffRepo)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	require.NoError(t, store.RejectStaff(context.Background(), "e2"))
	assert.Equal(t, map[string]interface{}{"isActive": false}, staffRepo.updated["e2"])

	for _, u := range store.Users() {
		if u.ID == "e2" {
			assert.Equal(t, StatusBlocked, u.Status)
		}
	}
}

func TestFetchFailureIsIsolatedPerCollection(t *testing.T) {
	store := newTestStore(
		&fakeStudentRepo{listErr: errors.Internal("students unavailable", nil)},
		&fakeStaffRepo{staff: sampleStaff()},
	)

	err := store.FetchAllUsers(context.Background())
	require.Error(t, err)

	students, staff, loading, lastError := store.States()
	assert.False(t, loading)
	assert.NotEmpty(t, lastError)
	assert.NotEmpty(t, students.Error)
	assert.Empty(t, staff.Error)
	// The staff collection still rendered.
	assert.Len(t, store.Users(), 3)
}

func TestSessionExpiredClassification(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: sampleStaff()}
	store := newTestStore(&fakeStudentRepo{}, staffRepo)
	require.NoError(t, store.FetchAllUsers(context.Background()))

	staffRepo.updateErr = errors.Unauthorized("jwt expired", nil)
	err := store.ApproveStaff(context.Background(), "e2")
	require.Error(t, err)
	assert.True(t, errors.IsSessionExpired(err))
}

func TestResetClearsEverything(t *testing.T) {
	store := newTestStore(
		&fakeStudentRepo{students: sampleStudents()},
		&fakeStaffRepo{staff: sampleStaff()},
	)
	require.NoError(t, store.FetchAllUsers(context.Background()))
	store.SetFilters(Filters{Type: "staff", Status: "active"})

	store.Reset()

	assert.Empty(t, store.Users())
	assert.Equal(t, Stats{}, store.Stats())
	assert.Equal(t, Filters{Type: "all", Status: "all"}, store.Filters())
}

func TestEnsureLoadedFetchesOnce(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: sampleStudents()}
	store := newTestStore(studentRepo, &fakeStaffRepo{})

	require.NoError(t, store.EnsureLoaded(context.Background()))
	assert.Len(t, store.Users(), 2)

	// New data does not appear until a forced refresh.
	studentRepo.students = append(studentRepo.students, &entity.Student{ID: "s3", Email: "new@example.com", IsActive: true})
	require.NoError(t, store.EnsureLoaded(context.Background()))
	assert.Len(t, store.Users(), 2)

	require.NoError(t, store.ForceRefresh(context.Background()))
	assert.Len(t, store.Users(), 3)
}
