package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduverify/internship-portal/internal/app/models"
)

// AttendanceRepository handles database reads for attendance entries
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// ListByStudent retrieves a student's attendance entries ascending by day
// number. No entries is not an error; the caller gets an empty slice.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.AttendanceEntry, error) {
	query := `
		SELECT id, student_id, day_number, present, COALESCE(hours, 0)
		FROM attendance
		WHERE student_id = $1
		ORDER BY day_number ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	defer rows.Close()

	var entries []models.AttendanceEntry
	for rows.Next() {
		var entry models.AttendanceEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.StudentID,
			&entry.DayNumber,
			&entry.Present,
			&entry.Hours,
		); err != nil {
			return nil, fmt.Errorf("error scanning attendance entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading attendance rows: %w", err)
	}

	return entries, nil
}
