package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/service"
)

type fakeFileService struct {
	uploads []string
	deleted []string
}

func (f *fakeFileService) UploadFile(ctx context.Context, file io.Reader, fileType, folder string, isPublic bool) (string, error) {
	url := "https://storage.example.com/" + folder + "/object"
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func (f *fakeFileService) Close() error { return nil }

func newProfileUseCase(students *fakeStudentRepo, staff *fakeStaffRepo) (*ProfileUseCase, *fakeFileService) {
	files := &fakeFileService{}
	return NewProfileUseCase(students, staff, files, nil), files
}

func TestSectionSaveWritesOnlyItsOwnFields(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: []*entity.Student{
		{ID: "s1", Email: "alice@example.com", Username: "alice", Bio: "existing bio", IsActive: true},
	}}
	uc, _ := newProfileUseCase(studentRepo, &fakeStaffRepo{})

	_, err := uc.UpdateContact(context.Background(), service.RoleStudent, "s1", ContactInput{
		Phone: "+15550100",
	})
	require.NoError(t, err)

	fields := studentRepo.updated["s1"]
	require.NotNil(t, fields)
	assert.Equal(t, map[string]interface{}{"phone": "+15550100"}, fields)
}

func TestSocialLinksSectionFields(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: []*entity.Student{{ID: "s1", IsActive: true}}}
	uc, _ := newProfileUseCase(studentRepo, &fakeStaffRepo{})

	_, err := uc.UpdateSocialLinks(context.Background(), service.RoleStudent, "s1", SocialLinksInput{
		LinkedinUrl: "https://linkedin.com/in/alice",
		OtherUrls:   []string{"https://alice.dev"},
	})
	require.NoError(t, err)

	fields := studentRepo.updated["s1"]
	assert.Len(t, fields, 3)
	assert.Equal(t, "https://linkedin.com/in/alice", fields["linkedinUrl"])
}

func TestProfessionalInfoRecomposesRateString(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: []*entity.Staff{{ID: "e1", IsActive: true}}}
	uc, _ := newProfileUseCase(&fakeStudentRepo{}, staffRepo)

	_, err := uc.UpdateProfessionalInfo(context.Background(), "e1", ProfessionalInfoInput{
		Rate:           85.5,
		AdvisoryTopics: []string{"system design"},
	})
	require.NoError(t, err)

	assert.Equal(t, "$85.5/hour", staffRepo.updated["e1"]["rate"])
}

func TestProfessionalInfoRejectsRateBelowMinimum(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: []*entity.Staff{{ID: "e1", IsActive: true}}}
	uc, _ := newProfileUseCase(&fakeStudentRepo{}, staffRepo)

	_, err := uc.UpdateProfessionalInfo(context.Background(), "e1", ProfessionalInfoInput{Rate: 0})
	require.Error(t, err)
	assert.Empty(t, staffRepo.updated)
}

func TestExpertiseRequiresBothCategoryAndSubCategory(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: []*entity.Staff{{ID: "e1", IsActive: true}}}
	uc, _ := newProfileUseCase(&fakeStudentRepo{}, staffRepo)

	_, err := uc.UpdateExpertise(context.Background(), "e1", []entity.ExpertiseArea{
		{Category: "engineering", SubCategory: ""},
	})
	require.Error(t, err)

	_, err = uc.UpdateExpertise(context.Background(), "e1", []entity.ExpertiseArea{
		{Category: "engineering", SubCategory: "backend"},
	})
	require.NoError(t, err)
}

func TestSectionSaveReturnsFreshCompletionStatus(t *testing.T) {
	student := &entity.Student{
		ID:       "s1",
		Email:    "alice@example.com",
		Username: "alice",
		Bio:      strings.Repeat("x", 60),
		Image:    "https://cdn.example.com/alice.png",
		IsActive: true,
	}
	studentRepo := &fakeStudentRepo{students: []*entity.Student{student}}
	uc, _ := newProfileUseCase(studentRepo, &fakeStaffRepo{})

	status, err := uc.UpdateContact(context.Background(), service.RoleStudent, "s1", ContactInput{
		Phone: "+15550100",
	})
	require.NoError(t, err)
	require.NotNil(t, status)
	// The fake repo does not apply the patch, so phone is still missing from
	// the snapshot the status is recomputed from.
	assert.Contains(t, status.CriticalMissing, "phone")
}

func TestCombinedUpdateSkipsEmptyFields(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: []*entity.Staff{{ID: "e1", IsActive: true}}}
	uc, _ := newProfileUseCase(&fakeStudentRepo{}, staffRepo)

	_, err := uc.ApplyCombinedUpdate(context.Background(), service.RoleExpert, "e1", CombinedUpdateInput{
		Bio:     "a new bio that is long enough to satisfy the minimum length rule",
		Rate:    50,
		HasRate: true,
	})
	require.NoError(t, err)

	fields := staffRepo.updated["e1"]
	assert.Len(t, fields, 2)
	assert.NotContains(t, fields, "username")
	assert.NotContains(t, fields, "phone")
	assert.Equal(t, "$50/hour", fields["rate"])
}

func TestCombinedUpdateWithNoFieldsJustReturnsStatus(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: []*entity.Staff{{ID: "e1", IsActive: true}}}
	uc, _ := newProfileUseCase(&fakeStudentRepo{}, staffRepo)

	status, err := uc.ApplyCombinedUpdate(context.Background(), service.RoleExpert, "e1", CombinedUpdateInput{})
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Empty(t, staffRepo.updated)
}

func TestAddCertificateRequiresPDF(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: []*entity.Staff{{ID: "e1", IsActive: true}}}
	uc, files := newProfileUseCase(&fakeStudentRepo{}, staffRepo)

	_, err := uc.AddCertificate(
		context.Background(), "e1",
		CertificateInput{Name: "AWS SA"},
		strings.NewReader("binary"), "image/png", "cert.png", 6,
	)
	require.Error(t, err)
	assert.Empty(t, files.uploads)

	cert, err := uc.AddCertificate(
		context.Background(), "e1",
		CertificateInput{Name: "AWS SA", IssueDate: "2024-01-01"},
		strings.NewReader("binary"), "application/pdf", "cert.pdf", 6,
	)
	require.NoError(t, err)
	assert.NotEmpty(t, cert.ID)
	assert.NotEmpty(t, cert.FileUrl)
	require.Len(t, files.uploads, 1)
}

func TestUpdateCertificateDetailsLeavesFileAlone(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: []*entity.Staff{{
		ID:       "e1",
		IsActive: true,
		Certificates: []entity.Certificate{
			{ID: "c1", Name: "Old name", FileUrl: "https://storage.example.com/certificates/c1"},
		},
	}}}
	uc, files := newProfileUseCase(&fakeStudentRepo{}, staffRepo)

	cert, err := uc.UpdateCertificateDetails(context.Background(), "e1", "c1", CertificateInput{
		Name:        "New name",
		Description: "Renewed",
	})
	require.NoError(t, err)

	assert.Equal(t, "New name", cert.Name)
	assert.Equal(t, "https://storage.example.com/certificates/c1", cert.FileUrl)
	assert.Empty(t, files.uploads)
	assert.Empty(t, files.deleted)
}

func TestDeleteCertificateRemovesStoredFile(t *testing.T) {
	staffRepo := &fakeStaffRepo{staff: []*entity.Staff{{
		ID:       "e1",
		IsActive: true,
		Certificates: []entity.Certificate{
			{ID: "c1", FileUrl: "https://storage.example.com/certificates/c1"},
			{ID: "c2", FileUrl: "https://storage.example.com/certificates/c2"},
		},
	}}}
	uc, files := newProfileUseCase(&fakeStudentRepo{}, staffRepo)

	require.NoError(t, uc.DeleteCertificate(context.Background(), "e1", "c1"))

	saved := staffRepo.updated["e1"]["certificates"].([]entity.Certificate)
	require.Len(t, saved, 1)
	assert.Equal(t, "c2", saved[0].ID)
	assert.Equal(t, []string{"https://storage.example.com/certificates/c1"}, files.deleted)
}

func TestUploadImageRejectsUnsupportedTypes(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: []*entity.Student{{ID: "s1", IsActive: true}}}
	uc, files := newProfileUseCase(studentRepo, &fakeStaffRepo{})

	_, err := uc.UploadImage(context.Background(), service.RoleStudent, "s1", strings.NewReader("x"), "image/gif", 1)
	require.Error(t, err)
	assert.Empty(t, files.uploads)

	_, err = uc.UploadImage(context.Background(), service.RoleStudent, "s1", strings.NewReader("x"), "image/png", 1)
	require.NoError(t, err)
	assert.Equal(t, files.uploads[0], studentRepo.updated["s1"]["image"])
}
