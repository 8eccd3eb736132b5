package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles all database repositories
type Repositories struct {
	StudentRepository    *StudentRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories creates all repositories over one shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
