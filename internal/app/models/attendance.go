package models

// AttendanceEntry is one day of a student's internship attendance.
// DayNumber defines the display order; Present is the canonical presence
// flag.
type AttendanceEntry struct {
	ID        int64   `json:"id"`
	StudentID int64   `json:"studentId"`
	DayNumber int     `json:"dayNumber"`
	Present   bool    `json:"present"`
	Hours     float64 `json:"hours"`
}
