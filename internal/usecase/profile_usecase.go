package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
	"mentorhub/internal/domain/service"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/logger"
)

type ProfileUseCase struct {
	studentRepo  repository.StudentRepository
	staffRepo    repository.StaffRepository
	fileService  service.FileUploadService
	fileMetaRepo repository.FileMetadataRepository
}

func NewProfileUseCase(
	studentRepo repository.StudentRepository,
	staffRepo repository.StaffRepository,
	fileService service.FileUploadService,
	fileMetaRepo repository.FileMetadataRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		studentRepo:  studentRepo,
		staffRepo:    staffRepo,
		fileService:  fileService,
		fileMetaRepo: fileMetaRepo,
	}
}

type StudentProfile struct {
	User   *entity.Student          `json:"user"`
	Status service.CompletionStatus `json:"profileStatus"`
}

type StaffProfile struct {
	User   *entity.Staff            `json:"user"`
	Status service.CompletionStatus `json:"profileStatus"`
}

func (uc *ProfileUseCase) GetStudentProfile(ctx context.Context, id string) (*StudentProfile, error) {
	student, err := uc.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Student", err)
	}
	return &StudentProfile{
		User:   student,
		Status: service.EvaluateCompletion(service.RoleStudent, service.SnapshotFromStudent(student)),
	}, nil
}

func (uc *ProfileUseCase) GetStaffProfile(ctx context.Context, id string) (*StaffProfile, error) {
	staff, err := uc.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Staff", err)
	}
	return &StaffProfile{
		User:   staff,
		Status: service.EvaluateCompletion(service.RoleExpert, service.SnapshotFromStaff(staff)),
	}, nil
}

// Section editors. Each save writes only its own section's fields; sibling
// sections' pending edits are never touched (server-side merge).

type BasicInfoInput struct {
	Username string
	Bio      string
	Image    string
}

type ContactInput struct {
	Phone string
}

type SocialLinksInput struct {
	LinkedinUrl string
	WebsiteUrl  string
	OtherUrls   []string
}

type ProfessionalInfoInput struct {
	Rate           float64
	AdvisoryTopics []string
}

func (uc *ProfileUseCase) UpdateBasicInfo(ctx context.Context, role service.Role, id string, input BasicInfoInput) (*service.CompletionStatus, error) {
	fields := map[string]interface{}{
		"username": input.Username,
		"bio":      input.Bio,
		"image":    input.Image,
	}
	return uc.saveSection(ctx, role, id, fields)
}

func (uc *ProfileUseCase) UpdateContact(ctx context.Context, role service.Role, id string, input ContactInput) (*service.CompletionStatus, error) {
	fields := map[string]interface{}{
		"phone": input.Phone,
	}
	return uc.saveSection(ctx, role, id, fields)
}

func (uc *ProfileUseCase) UpdateSocialLinks(ctx context.Context, role service.Role, id string, input SocialLinksInput) (*service.CompletionStatus, error) {
	fields := map[string]interface{}{
		"linkedinUrl": input.LinkedinUrl,
		"websiteUrl":  input.WebsiteUrl,
		"otherUrls":   input.OtherUrls,
	}
	return uc.saveSection(ctx, role, id, fields)
}

func (uc *ProfileUseCase) UpdateProfessionalInfo(ctx context.Context, id string, input ProfessionalInfoInput) (*service.CompletionStatus, error) {
	if input.Rate < service.MinRate {
		return nil, errors.BadRequest("Rate must be at least $0.01/hour", nil)
	}
	fields := map[string]interface{}{
		"rate":           service.FormatRate(input.Rate),
		"advisoryTopics": input.AdvisoryTopics,
	}
	return uc.saveSection(ctx, service.RoleExpert, id, fields)
}

func (uc *ProfileUseCase) UpdateExpertise(ctx context.Context, id string, areas []entity.ExpertiseArea) (*service.CompletionStatus, error) {
	for _, a := range areas {
		if strings.TrimSpace(a.Category) == "" || strings.TrimSpace(a.SubCategory) == "" {
			return nil, errors.BadRequest("Expertise areas require both category and subcategory", nil)
		}
	}
	fields := map[string]interface{}{
		"expertiseAreas": areas,
	}
	return uc.saveSection(ctx, service.RoleExpert, id, fields)
}

func (uc *ProfileUseCase) saveSection(ctx context.Context, role service.Role, id string, fields map[string]interface{}) (*service.CompletionStatus, error) {
	var err error
	if role == service.RoleExpert {
		err = uc.staffRepo.UpdateFields(ctx, id, fields)
	} else {
		err = uc.studentRepo.UpdateFields(ctx, id, fields)
	}
	if err != nil {
		return nil, errors.Internal("Failed to save profile section", err)
	}

	return uc.statusFor(ctx, role, id)
}

func (uc *ProfileUseCase) statusFor(ctx context.Context, role service.Role, id string) (*service.CompletionStatus, error) {
	var snapshot service.ProfileSnapshot
	if role == service.RoleExpert {
		staff, err := uc.staffRepo.GetByID(ctx, id)
		if err != nil {
			return nil, errors.NotFound("Staff", err)
		}
		snapshot = service.SnapshotFromStaff(staff)
	} else {
		student, err := uc.studentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, errors.NotFound("Student", err)
		}
		snapshot = service.SnapshotFromStudent(student)
	}

	status := service.EvaluateCompletion(role, snapshot)
	return &status, nil
}

// CombinedUpdateInput carries a whole accumulated draft (the wizard's
// Complete transition, or a full-record PATCH). Empty fields are skipped so
// a partial draft never clears stored values.
type CombinedUpdateInput struct {
	Username       string
	Phone          string
	Bio            string
	Image          string
	LinkedinUrl    string
	WebsiteUrl     string
	OtherUrls      []string
	Rate           float64
	HasRate        bool
	ExpertiseAreas []entity.ExpertiseArea
}

func (uc *ProfileUseCase) ApplyCombinedUpdate(ctx context.Context, role service.Role, id string, input CombinedUpdateInput) (*service.CompletionStatus, error) {
	fields := map[string]interface{}{}
	if input.Username != "" {
		fields["username"] = input.Username
	}
	if input.Phone != "" {
		fields["phone"] = input.Phone
	}
	if input.Bio != "" {
		fields["bio"] = input.Bio
	}
	if input.Image != "" {
		fields["image"] = input.Image
	}
	if input.LinkedinUrl != "" {
		fields["linkedinUrl"] = input.LinkedinUrl
	}
	if input.WebsiteUrl != "" {
		fields["websiteUrl"] = input.WebsiteUrl
	}
	if len(input.OtherUrls) > 0 {
		fields["otherUrls"] = input.OtherUrls
	}
	if role == service.RoleExpert {
		if input.HasRate {
			if input.Rate < service.MinRate {
				return nil, errors.BadRequest("Rate must be at least $0.01/hour", nil)
			}
			fields["rate"] = service.FormatRate(input.Rate)
		}
		if len(input.ExpertiseAreas) > 0 {
			fields["expertiseAreas"] = input.ExpertiseAreas
		}
	}

	if len(fields) == 0 {
		return uc.statusFor(ctx, role, id)
	}

	return uc.saveSection(ctx, role, id, fields)
}

// Certificates and files. Binary content is uploaded separately from the
// metadata; certificate details can be updated without re-uploading.

type CertificateInput struct {
	Name        string
	Description string
	IssueDate   string
}

func isPDF(contentType, filename string) bool {
	return contentType == "application/pdf" || strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

func (uc *ProfileUseCase) AddCertificate(ctx context.Context, staffID string, input CertificateInput, file io.Reader, contentType, filename string, size int64) (*entity.Certificate, error) {
	if !isPDF(contentType, filename) {
		return nil, errors.BadRequest("Certificates must be PDF files", nil)
	}

	staff, err := uc.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, errors.NotFound("Staff", err)
	}

	url, err := uc.fileService.UploadFile(ctx, file, "application/pdf", "certificates", false)
	if err != nil {
		return nil, errors.Internal("Failed to upload certificate", err)
	}

	cert := entity.Certificate{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		IssueDate:   input.IssueDate,
		FileUrl:     url,
		CreatedAt:   time.Now(),
	}

	certificates := append(staff.Certificates, cert)
	if err := uc.staffRepo.UpdateFields(ctx, staffID, map[string]interface{}{
		"certificates": certificates,
	}); err != nil {
		return nil, errors.Internal("Failed to save certificate", err)
	}

	uc.recordFile(ctx, staffID, "certificate", url, "application/pdf", size)

	return &cert, nil
}

// UpdateCertificateDetails edits metadata only; the uploaded binary is
// untouched.
func (uc *ProfileUseCase) UpdateCertificateDetails(ctx context.Context, staffID, certID string, input CertificateInput) (*entity.Certificate, error) {
	staff, err := uc.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, errors.NotFound("Staff", err)
	}

	var updated *entity.Certificate
	certificates := make([]entity.Certificate, len(staff.Certificates))
	copy(certificates, staff.Certificates)
	for i := range certificates {
		if certificates[i].ID == certID {
			certificates[i].Name = input.Name
			certificates[i].Description = input.Description
			certificates[i].IssueDate = input.IssueDate
			updated = &certificates[i]
			break
		}
	}
	if updated == nil {
		return nil, errors.NotFound("Certificate", nil)
	}

	if err := uc.staffRepo.UpdateFields(ctx, staffID, map[string]interface{}{
		"certificates": certificates,
	}); err != nil {
		return nil, errors.Internal("Failed to update certificate", err)
	}

	return updated, nil
}

func (uc *ProfileUseCase) DeleteCertificate(ctx context.Context, staffID, certID string) error {
	staff, err := uc.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return errors.NotFound("Staff", err)
	}

	var removed *entity.Certificate
	certificates := make([]entity.Certificate, 0, len(staff.Certificates))
	for _, cert := range staff.Certificates {
		if cert.ID == certID {
			c := cert
			removed = &c
			continue
		}
		certificates = append(certificates, cert)
	}
	if removed == nil {
		return errors.NotFound("Certificate", nil)
	}

	if err := uc.staffRepo.UpdateFields(ctx, staffID, map[string]interface{}{
		"certificates": certificates,
	}); err != nil {
		return errors.Internal("Failed to delete certificate", err)
	}

	if removed.FileUrl != "" {
		if err := uc.fileService.DeleteFile(ctx, removed.FileUrl); err != nil {
			logger.Warn("Failed to delete certificate file %s: %v", removed.FileUrl, err)
		}
	}

	return nil
}

func (uc *ProfileUseCase) UploadCV(ctx context.Context, staffID string, file io.Reader, contentType, filename string, size int64) (*service.CompletionStatus, error) {
	if !isPDF(contentType, filename) {
		return nil, errors.BadRequest("CV must be a PDF file", nil)
	}

	url, err := uc.fileService.UploadFile(ctx, file, "application/pdf", "cv", false)
	if err != nil {
		return nil, errors.Internal("Failed to upload CV", err)
	}

	uc.recordFile(ctx, staffID, "cv", url, "application/pdf", size)

	return uc.saveSection(ctx, service.RoleExpert, staffID, map[string]interface{}{
		"cv": url,
	})
}

func (uc *ProfileUseCase) UploadImage(ctx context.Context, role service.Role, id string, file io.Reader, contentType string, size int64) (*service.CompletionStatus, error) {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png":
	default:
		return nil, errors.BadRequest("Profile image must be JPEG or PNG", nil)
	}

	url, err := uc.fileService.UploadFile(ctx, file, contentType, "avatars", true)
	if err != nil {
		return nil, errors.Internal("Failed to upload image", err)
	}

	uc.recordFile(ctx, id, "image", url, contentType, size)

	return uc.saveSection(ctx, role, id, map[string]interface{}{
		"image": url,
	})
}

// recordFile keeps an audit trail of uploads; failures are logged, never
// surfaced, since the upload itself already succeeded.
func (uc *ProfileUseCase) recordFile(ctx context.Context, ownerID, kind, url, contentType string, size int64) {
	if uc.fileMetaRepo == nil {
		return
	}
	metadata := &entity.FileMetadata{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Kind:        kind,
		URL:         url,
		ContentType: contentType,
		Size:        size,
		CreatedAt:   time.Now(),
	}
	if err := uc.fileMetaRepo.Create(ctx, metadata); err != nil {
		logger.Warn("Failed to record file metadata for %s: %v", url, err)
	}
}
