package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func attendanceData(rows []AttendanceRow) AttendanceData {
	return AttendanceData{
		Name:               "Asha Kumar",
		FatherName:         "Rajesh Kumar",
		RegistrationNumber: "NAF-2024-001",
		RollNumber:         "22-CSE-014",
		MobileNumber:       "9090909090",
		Session:            "2023-2024",
		Department:         "Computer Science",
		College:            "Government College of Engineering and Textile Technology",
		InternshipStart:    time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		InternshipEnd:      time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		Rows:               rows,
	}
}

func fullMonth() []AttendanceRow {
	rows := make([]AttendanceRow, 0, 30)
	for day := 1; day <= 30; day++ {
		row := AttendanceRow{Day: day, Present: true, Hours: 8}
		if day == 12 || day == 27 {
			row.Present = false
			row.Hours = 0
		}
		rows = append(rows, row)
	}
	return rows
}

func TestRenderAttendanceSheetDuplicatesRegions(t *testing.T) {
	out, err := RenderAttendanceSheet(blankTemplate(t, "L"), attendanceData(fullMonth()))
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(out[:4]))

	require.Equal(t, 2, countText(out, "Asha Kumar"))
	require.Equal(t, 2, countText(out, "NAF-2024-001"))
	require.Equal(t, 2, countText(out, "9090909090"))
	require.Equal(t, 2, countText(out, "08/01/2024 to 30/04/2024"))

	// 28 present days and 2 absent days, each drawn once per region.
	require.Equal(t, 56, countText(out, "Present"))
	require.Equal(t, 4, countText(out, "Absent"))
	require.Equal(t, 2, countText(out, "Day 1"))
	require.Equal(t, 2, countText(out, "Day 16"))
	require.Equal(t, 2, countText(out, "Day 30"))
}

func TestRenderAttendanceSheetTotals(t *testing.T) {
	out, err := RenderAttendanceSheet(blankTemplate(t, "L"), attendanceData(fullMonth()))
	require.NoError(t, err)

	require.Equal(t, 2, countText(out, "Days Present: 28"))
	require.Equal(t, 2, countText(out, "Total Hours: 224"))
}

func TestRenderAttendanceSheetHoursSumCoversAllEntries(t *testing.T) {
	rows := []AttendanceRow{
		{Day: 1, Present: true, Hours: 8},
		{Day: 2, Present: true, Hours: 8},
		{Day: 3, Present: false, Hours: 4},
	}

	out, err := RenderAttendanceSheet(blankTemplate(t, "L"), attendanceData(rows))
	require.NoError(t, err)

	require.Equal(t, 2, countText(out, "Days Present: 2"))
	require.Equal(t, 2, countText(out, "Total Hours: 20"))
}

func TestRenderAttendanceSheetSkipsMissingDays(t *testing.T) {
	rows := []AttendanceRow{
		{Day: 1, Present: true, Hours: 8},
		{Day: 2, Present: true, Hours: 7.5},
		{Day: 5, Present: true, Hours: 8},
	}

	out, err := RenderAttendanceSheet(blankTemplate(t, "L"), attendanceData(rows))
	require.NoError(t, err)

	require.Equal(t, 2, countText(out, "Day 5"))
	require.Zero(t, countText(out, "Day 3"))
	require.Zero(t, countText(out, "Day 4"))
	require.Equal(t, 2, countText(out, "7.5"))
}

func TestRenderAttendanceSheetHidesHoursForAbsentDays(t *testing.T) {
	rows := []AttendanceRow{
		{Day: 1, Present: false, Hours: 0},
		{Day: 2, Present: true, Hours: 8},
	}

	out, err := RenderAttendanceSheet(blankTemplate(t, "L"), attendanceData(rows))
	require.NoError(t, err)

	require.Zero(t, countText(out, "0"))
	require.Equal(t, 2, countText(out, "8"))
}

func TestRenderAttendanceSheetIgnoresDaysPastGrid(t *testing.T) {
	rows := []AttendanceRow{
		{Day: 1, Present: true, Hours: 8},
		{Day: 31, Present: true, Hours: 8},
	}

	out, err := RenderAttendanceSheet(blankTemplate(t, "L"), attendanceData(rows))
	require.NoError(t, err)

	require.Equal(t, 2, countText(out, "Day 1"))
	require.Zero(t, countText(out, "Day 31"))
	// Out-of-grid entries still count toward the hour total.
	require.Equal(t, 2, countText(out, "Total Hours: 16"))
}

func TestRenderAttendanceSheetTruncatesCollege(t *testing.T) {
	out, err := RenderAttendanceSheet(blankTemplate(t, "L"), attendanceData(nil))
	require.NoError(t, err)

	require.Equal(t, 2, countText(out, "Government College of Engineering ..."))
}
