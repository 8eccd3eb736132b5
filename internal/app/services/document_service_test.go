package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/eduverify/internship-portal/internal/app/models"
	"github.com/eduverify/internship-portal/internal/app/models/dto"
	"github.com/eduverify/internship-portal/internal/pkg/apperrors"
	"github.com/eduverify/internship-portal/internal/pkg/pdf"
)

type fakeStudentRepo struct {
	student *models.Student
	err     error
}

func (f *fakeStudentRepo) FindByRegistration(_ context.Context, _ string, _ time.Time) (*models.Student, error) {
	return f.student, f.err
}

type fakeAttendanceRepo struct {
	entries []models.AttendanceEntry
	err     error
}

func (f *fakeAttendanceRepo) ListByStudent(_ context.Context, _ int64) ([]models.AttendanceEntry, error) {
	return f.entries, f.err
}

type fakeTemplates struct {
	certificate []byte
	attendance  []byte
	err         error
}

func (f *fakeTemplates) Certificate() ([]byte, error) {
	return f.certificate, f.err
}

func (f *fakeTemplates) Attendance() ([]byte, error) {
	return f.attendance, f.err
}

func testTemplate(t *testing.T, orientation string) []byte {
	t.Helper()
	doc := fpdf.New(orientation, "pt", "A4", "")
	doc.SetCompression(false)
	doc.AddPage()
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func storedStudent() *models.Student {
	return &models.Student{
		ID:                 7,
		Name:               "Asha Kumar",
		RegistrationNumber: "NAF-2024-001",
		DateOfBirth:        time.Date(2001, 5, 10, 0, 0, 0, 0, time.UTC),
		College:            "City College",
		InternshipStart:    time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		InternshipEnd:      time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
	}
}

func newTestService(t *testing.T, students StudentRepository, attendance AttendanceRepository, templates TemplateSource) DocumentService {
	t.Helper()
	return NewDocumentService(students, attendance, templates, zerolog.Nop())
}

func validRequest() dto.DocumentRequest {
	return dto.DocumentRequest{
		Name:           "Asha Kumar",
		RegistrationID: "NAF-2024-001",
		DateOfBirth:    "2001-05-10",
	}
}

func TestGenerateCertificate(t *testing.T) {
	svc := newTestService(t,
		&fakeStudentRepo{student: storedStudent()},
		&fakeAttendanceRepo{},
		&fakeTemplates{certificate: testTemplate(t, "P")},
	)

	doc, err := svc.GenerateCertificate(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, "certificate_NAF-2024-001.pdf", doc.Filename)
	require.Equal(t, "%PDF", string(doc.Content[:4]))
}

func TestGenerateCertificateMissingFields(t *testing.T) {
	svc := newTestService(t, &fakeStudentRepo{}, &fakeAttendanceRepo{}, &fakeTemplates{})

	cases := []dto.DocumentRequest{
		{RegistrationID: "NAF-2024-001", DateOfBirth: "2001-05-10"},
		{Name: "Asha Kumar", DateOfBirth: "2001-05-10"},
		{Name: "Asha Kumar", RegistrationID: "NAF-2024-001"},
		{Name: "   ", RegistrationID: "NAF-2024-001", DateOfBirth: "2001-05-10"},
	}
	for _, req := range cases {
		_, err := svc.GenerateCertificate(context.Background(), req)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestGenerateCertificateBadDateFormat(t *testing.T) {
	svc := newTestService(t, &fakeStudentRepo{}, &fakeAttendanceRepo{}, &fakeTemplates{})

	req := validRequest()
	req.DateOfBirth = "10-05-2001"
	_, err := svc.GenerateCertificate(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGenerateCertificateNotFound(t *testing.T) {
	svc := newTestService(t, &fakeStudentRepo{student: nil}, &fakeAttendanceRepo{}, &fakeTemplates{})

	_, err := svc.GenerateCertificate(context.Background(), validRequest())
	require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	require.NotErrorIs(t, err, apperrors.ErrNameMismatch)
	require.Equal(t, "Student not found. Please verify your credentials.", apperrors.ClientMessage(err, ""))
}

func TestGenerateCertificateNameMismatchIsDistinctFromNotFound(t *testing.T) {
	svc := newTestService(t, &fakeStudentRepo{student: storedStudent()}, &fakeAttendanceRepo{}, &fakeTemplates{})

	req := validRequest()
	req.Name = "Wrong Name"
	_, err := svc.GenerateCertificate(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrNameMismatch)
	require.NotErrorIs(t, err, apperrors.ErrStudentNotFound)
	require.Equal(t, "Name does not match registration records.", apperrors.ClientMessage(err, ""))
}

func TestGenerateCertificateNameComparisonFoldsCaseAndSpace(t *testing.T) {
	svc := newTestService(t,
		&fakeStudentRepo{student: storedStudent()},
		&fakeAttendanceRepo{},
		&fakeTemplates{certificate: testTemplate(t, "P")},
	)

	req := validRequest()
	req.Name = "  ASHA kumar  "
	_, err := svc.GenerateCertificate(context.Background(), req)
	require.NoError(t, err)
}

func TestGenerateCertificateTemplateMissing(t *testing.T) {
	svc := newTestService(t,
		&fakeStudentRepo{student: storedStudent()},
		&fakeAttendanceRepo{},
		&fakeTemplates{err: pdf.ErrTemplateMissing},
	)

	_, err := svc.GenerateCertificate(context.Background(), validRequest())
	require.ErrorIs(t, err, apperrors.ErrTemplateMissing)
}

func TestGenerateCertificateLookupFailurePropagates(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := newTestService(t, &fakeStudentRepo{err: dbErr}, &fakeAttendanceRepo{}, &fakeTemplates{})

	_, err := svc.GenerateCertificate(context.Background(), validRequest())
	require.ErrorIs(t, err, dbErr)
}

func TestGenerateAttendanceSheet(t *testing.T) {
	entries := []models.AttendanceEntry{
		{StudentID: 7, DayNumber: 1, Present: true, Hours: 8},
		{StudentID: 7, DayNumber: 2, Present: false, Hours: 0},
	}
	svc := newTestService(t,
		&fakeStudentRepo{student: storedStudent()},
		&fakeAttendanceRepo{entries: entries},
		&fakeTemplates{attendance: testTemplate(t, "L")},
	)

	doc, err := svc.GenerateAttendanceSheet(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, "attendance_NAF-2024-001.pdf", doc.Filename)
	require.Contains(t, string(doc.Content), "Days Present: 1")
}

func TestGenerateAttendanceSheetNoEntries(t *testing.T) {
	svc := newTestService(t,
		&fakeStudentRepo{student: storedStudent()},
		&fakeAttendanceRepo{},
		&fakeTemplates{attendance: testTemplate(t, "L")},
	)

	doc, err := svc.GenerateAttendanceSheet(context.Background(), validRequest())
	require.NoError(t, err)
	require.Contains(t, string(doc.Content), "Days Present: 0")
}

func TestGenerateAttendanceSheetTemplateMissing(t *testing.T) {
	svc := newTestService(t,
		&fakeStudentRepo{student: storedStudent()},
		&fakeAttendanceRepo{},
		&fakeTemplates{err: pdf.ErrTemplateMissing},
	)

	_, err := svc.GenerateAttendanceSheet(context.Background(), validRequest())
	require.ErrorIs(t, err, apperrors.ErrTemplateMissing)
}
