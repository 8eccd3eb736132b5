package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduverify/internship-portal/internal/app/models"
	"github.com/eduverify/internship-portal/internal/app/models/dto"
	"github.com/eduverify/internship-portal/internal/pkg/apperrors"
	"github.com/eduverify/internship-portal/internal/pkg/pdf"
)

const dobLayout = "2006-01-02"

// Client-facing messages for the verification pipeline.
const (
	msgFieldsRequired  = "Name, Registration ID, and Date of Birth are required"
	msgBadDateOfBirth  = "Date of Birth must use the YYYY-MM-DD format"
	msgStudentNotFound = "Student not found. Please verify your credentials."
	msgNameMismatch    = "Name does not match registration records."
	msgCertTemplate    = "Certificate template not found"
	msgAttendanceSheet = "Attendance template not found"
)

// StudentRepository resolves a (registration number, date of birth) pair to
// at most one student.
type StudentRepository interface {
	FindByRegistration(ctx context.Context, registrationNumber string, dob time.Time) (*models.Student, error)
}

// AttendanceRepository resolves a student to their ordered attendance
// entries.
type AttendanceRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.AttendanceEntry, error)
}

// TemplateSource supplies the fixed PDF template assets.
type TemplateSource interface {
	Certificate() ([]byte, error)
	Attendance() ([]byte, error)
}

// GeneratedDocument is a filled, ready-to-stream PDF.
type GeneratedDocument struct {
	Filename string
	Content  []byte
}

// DocumentService verifies a caller against the stored record and produces
// filled documents.
type DocumentService interface {
	GenerateCertificate(ctx context.Context, req dto.DocumentRequest) (*GeneratedDocument, error)
	GenerateAttendanceSheet(ctx context.Context, req dto.DocumentRequest) (*GeneratedDocument, error)
}

type documentService struct {
	students   StudentRepository
	attendance AttendanceRepository
	templates  TemplateSource
	logger     zerolog.Logger
}

// NewDocumentService creates a document service instance. Dependencies are
// interfaces so tests can substitute fakes.
func NewDocumentService(
	students StudentRepository,
	attendance AttendanceRepository,
	templates TemplateSource,
	logger zerolog.Logger,
) DocumentService {
	return &documentService{
		students:   students,
		attendance: attendance,
		templates:  templates,
		logger:     logger,
	}
}

// GenerateCertificate verifies the caller and fills the internship
// certificate.
func (s *documentService) GenerateCertificate(ctx context.Context, req dto.DocumentRequest) (*GeneratedDocument, error) {
	student, err := s.resolveStudent(ctx, req)
	if err != nil {
		return nil, err
	}

	template, err := s.templates.Certificate()
	if err != nil {
		return nil, s.templateError(err, msgCertTemplate)
	}

	content, err := pdf.RenderCertificate(template, pdf.CertificateData{
		Name:               student.Name,
		FatherName:         student.FatherName,
		RegistrationNumber: student.RegistrationNumber,
		RollNumber:         student.RollNumber,
		Session:            student.Session,
		Department:         student.Department,
		College:            student.College,
		InternshipStart:    student.InternshipStart,
		InternshipEnd:      student.InternshipEnd,
		TotalHours:         student.TotalHours,
		Grade:              student.Grade,
		CertificateNumber:  student.CertificateNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering certificate: %w", err)
	}

	return &GeneratedDocument{
		Filename: fmt.Sprintf("certificate_%s.pdf", student.RegistrationNumber),
		Content:  content,
	}, nil
}

// GenerateAttendanceSheet verifies the caller and fills the attendance
// sheet from the student's day entries.
func (s *documentService) GenerateAttendanceSheet(ctx context.Context, req dto.DocumentRequest) (*GeneratedDocument, error) {
	student, err := s.resolveStudent(ctx, req)
	if err != nil {
		return nil, err
	}

	entries, err := s.attendance.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("listing attendance: %w", err)
	}

	template, err := s.templates.Attendance()
	if err != nil {
		return nil, s.templateError(err, msgAttendanceSheet)
	}

	rows := make([]pdf.AttendanceRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, pdf.AttendanceRow{
			Day:     entry.DayNumber,
			Present: entry.Present,
			Hours:   entry.Hours,
		})
	}

	content, err := pdf.RenderAttendanceSheet(template, pdf.AttendanceData{
		Name:               student.Name,
		FatherName:         student.FatherName,
		RegistrationNumber: student.RegistrationNumber,
		RollNumber:         student.RollNumber,
		MobileNumber:       student.MobileNumber,
		Session:            student.Session,
		Department:         student.Department,
		College:            student.College,
		InternshipStart:    student.InternshipStart,
		InternshipEnd:      student.InternshipEnd,
		Rows:               rows,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering attendance sheet: %w", err)
	}

	return &GeneratedDocument{
		Filename: fmt.Sprintf("attendance_%s.pdf", student.RegistrationNumber),
		Content:  content,
	}, nil
}

// resolveStudent runs the shared verification pipeline: field validation,
// record lookup, then the identity check. Not-found and name-mismatch are
// distinct error kinds so the HTTP layer can map them to different statuses.
func (s *documentService) resolveStudent(ctx context.Context, req dto.DocumentRequest) (*models.Student, error) {
	name := strings.TrimSpace(req.Name)
	registrationID := strings.TrimSpace(req.RegistrationID)
	dobInput := strings.TrimSpace(req.DateOfBirth)

	if name == "" || registrationID == "" || dobInput == "" {
		return nil, apperrors.NewValidationError(msgFieldsRequired)
	}

	dob, err := time.Parse(dobLayout, dobInput)
	if err != nil {
		return nil, apperrors.NewValidationError(msgBadDateOfBirth)
	}

	student, err := s.students.FindByRegistration(ctx, registrationID, dob)
	if err != nil {
		return nil, fmt.Errorf("looking up student: %w", err)
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError(msgStudentNotFound)
	}

	if !nameMatches(name, student.Name) {
		s.logger.Warn().
			Str("registrationId", registrationID).
			Msg("Name mismatch on verification attempt")
		return nil, apperrors.NewForbiddenError(msgNameMismatch)
	}

	return student, nil
}

// nameMatches compares names after whitespace-trim and case-fold on both
// sides.
func nameMatches(requested, stored string) bool {
	return strings.EqualFold(strings.TrimSpace(requested), strings.TrimSpace(stored))
}

// templateError converts a missing-template failure into the client-safe
// taxonomy and logs the underlying path detail server-side.
func (s *documentService) templateError(err error, message string) error {
	if errors.Is(err, pdf.ErrTemplateMissing) {
		s.logger.Error().Err(err).Msg("Document template missing")
		return apperrors.NewTemplateError(message)
	}
	return fmt.Errorf("loading template: %w", err)
}
