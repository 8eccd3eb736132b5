package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDemoData inserts a demo student with a full month of attendance
// so the endpoints can be exercised without real administrative data.
// Runs only when the students table is empty; production deployments
// skip it entirely in bootstrap.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return fmt.Errorf("checking students table: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int("students", count).Msg("Students table not empty, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Seeding demo student and attendance data...")

	dob := time.Date(2001, time.May, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)

	var studentID int64
	err := dbPool.QueryRow(ctx, `
		INSERT INTO students (
			name, father_name, registration_number, roll_number, dob,
			mobile_number, session, department, college,
			internship_start, internship_end, total_hours, grade, certificate_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		"Asha Kumar",
		"Rajesh Kumar",
		"NAF-2024-001",
		"CSE/2021/042",
		dob,
		"9876543210",
		"2021-2025",
		"Computer Science",
		"Government College of Engineering and Textile Technology Berhampore",
		start,
		end,
		224.0,
		"A",
		"CERT/2024/0113",
	).Scan(&studentID)
	if err != nil {
		return fmt.Errorf("inserting demo student: %w", err)
	}

	absent := map[int]bool{12: true, 27: true}
	for day := 1; day <= 30; day++ {
		present := !absent[day]
		hours := 0.0
		if present {
			hours = 8.0
		}
		if _, err := dbPool.Exec(ctx, `
			INSERT INTO attendance (student_id, day_number, present, hours)
			VALUES ($1, $2, $3, $4)
		`, studentID, day, present, hours); err != nil {
			return fmt.Errorf("inserting demo attendance day %d: %w", day, err)
		}
	}

	lgr.Info().
		Str("registrationNumber", "NAF-2024-001").
		Msg("Demo data seeded")
	return nil
}
