package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduverify/internship-portal/internal/app/models"
)

// StudentRepository handles database reads for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// FindByRegistration looks up the student matching both the registration
// number and the date of birth. Zero matches return (nil, nil). Duplicate
// rows are not expected, but if they exist the lowest primary key wins so
// the result stays deterministic.
func (r *StudentRepository) FindByRegistration(ctx context.Context, registrationNumber string, dob time.Time) (*models.Student, error) {
	query := `
		SELECT id, name, COALESCE(father_name, ''), registration_number,
			COALESCE(roll_number, ''), dob, COALESCE(mobile_number, ''),
			COALESCE(session, ''), COALESCE(department, ''), college,
			internship_start, internship_end, COALESCE(total_hours, 0),
			COALESCE(grade, ''), COALESCE(certificate_number, '')
		FROM students
		WHERE registration_number = $1 AND dob = $2
		ORDER BY id
		LIMIT 1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, registrationNumber, dob).Scan(
		&student.ID,
		&student.Name,
		&student.FatherName,
		&student.RegistrationNumber,
		&student.RollNumber,
		&student.DateOfBirth,
		&student.MobileNumber,
		&student.Session,
		&student.Department,
		&student.College,
		&student.InternshipStart,
		&student.InternshipEnd,
		&student.TotalHours,
		&student.Grade,
		&student.CertificateNumber,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}
