package pdf

import (
	"strconv"
	"time"
)

// The attendance template is landscape A4 with two identical regions side by
// side. Field X coordinates are relative to the region's left edge; the left
// region sits at offset 0, the right at half the page width. Both regions
// receive the same student so one page prints two physical copies.
const attendanceRegionWidth = pageHeightPortrait / 2

// Row layout: days 1-15 fill the first sub-table, days 16-30 the second one
// lower on the page. Missing days leave their slot empty.
const (
	attendanceTableOneTop = 252.0
	attendanceTableTwoTop = 412.0
	attendanceRowPitch    = 10.0
	attendanceRowsPerSet  = 15
	attendanceMaxDays     = 30

	attendanceDayX    = 28.0
	attendanceStatusX = 92.0
	attendanceHoursX  = 162.0

	attendanceFooterY = 580.0
)

// AttendanceRow is one day's entry.
type AttendanceRow struct {
	Day     int
	Present bool
	Hours   float64
}

// AttendanceData carries the header fields and the ordered day entries.
type AttendanceData struct {
	Name               string
	FatherName         string
	RegistrationNumber string
	RollNumber         string
	MobileNumber       string
	Session            string
	Department         string
	College            string
	InternshipStart    time.Time
	InternshipEnd      time.Time
	Rows               []AttendanceRow
}

// RenderAttendanceSheet fills the attendance template, duplicating the
// student's sheet into both page regions, and returns the PDF bytes.
func RenderAttendanceSheet(template []byte, data AttendanceData) ([]byte, error) {
	doc, err := newOverlay(template, "L")
	if err != nil {
		return nil, err
	}

	fields := attendanceFields(data)
	doc.drawFields(fields, 0, 0)
	doc.drawFields(fields, attendanceRegionWidth, 0)

	return doc.bytes()
}

// attendanceFields builds the full region-relative field list: header
// values, both row sub-tables, and the totals footer.
func attendanceFields(data AttendanceData) []field {
	fields := []field{
		{text: data.Name, x: 132, y: 92, size: 9},
		{text: data.FatherName, x: 132, y: 108, size: 9},
		{text: data.RegistrationNumber, x: 132, y: 124, size: 9},
		{text: data.RollNumber, x: 132, y: 140, size: 9},
		{text: data.MobileNumber, x: 132, y: 156, size: 9},
		{text: data.Session, x: 132, y: 172, size: 9},
		{text: data.Department, x: 132, y: 188, size: 9},
		{text: truncateCollegeName(data.College), x: 132, y: 204, size: 9},
		{text: formatPeriod(data.InternshipStart, data.InternshipEnd), x: 132, y: 220, size: 9},
	}

	presentDays := 0
	totalHours := 0.0
	for _, row := range data.Rows {
		totalHours += row.Hours
		if row.Present {
			presentDays++
		}
		fields = append(fields, rowFields(row)...)
	}

	fields = append(fields,
		field{text: "Days Present: " + strconv.Itoa(presentDays), x: attendanceDayX, y: attendanceFooterY, size: 9, style: "B"},
		field{text: "Total Hours: " + formatHours(totalHours), x: 210, y: attendanceFooterY, size: 9, style: "B"},
	)

	return fields
}

// rowFields places one day's cells, or nothing for days past the grid.
func rowFields(row AttendanceRow) []field {
	if row.Day < 1 || row.Day > attendanceMaxDays {
		return nil
	}

	y := attendanceTableOneTop + float64(row.Day-1)*attendanceRowPitch
	if row.Day > attendanceRowsPerSet {
		y = attendanceTableTwoTop + float64(row.Day-1-attendanceRowsPerSet)*attendanceRowPitch
	}

	status := "Absent"
	if row.Present {
		status = "Present"
	}

	fields := []field{
		{text: "Day " + strconv.Itoa(row.Day), x: attendanceDayX, y: y, size: 8},
		{text: status, x: attendanceStatusX, y: y, size: 8},
	}
	if row.Present {
		fields = append(fields, field{text: formatHours(row.Hours), x: attendanceHoursX, y: y, size: 8})
	}
	return fields
}
