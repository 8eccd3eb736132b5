package pdf

import "time"

// The certificate template is portrait A4 with two identical regions stacked
// vertically. Field Y coordinates are relative to the region top; the top
// region sits at offset 0, the bottom at half the page height.
const certificateRegionHeight = pageHeightPortrait / 2

// CertificateData carries everything drawn onto a certificate. Optional
// fields left empty are omitted from the output.
type CertificateData struct {
	Name               string
	FatherName         string
	RegistrationNumber string
	RollNumber         string
	Session            string
	Department         string
	College            string
	InternshipStart    time.Time
	InternshipEnd      time.Time
	TotalHours         float64
	Grade              string
	CertificateNumber  string
}

// RenderCertificate fills the certificate template with the student's data,
// drawing the full field set once per region, and returns the PDF bytes.
func RenderCertificate(template []byte, data CertificateData) ([]byte, error) {
	doc, err := newOverlay(template, "P")
	if err != nil {
		return nil, err
	}

	fields := certificateFields(data)
	doc.drawFields(fields, 0, 0)
	doc.drawFields(fields, 0, certificateRegionHeight)

	return doc.bytes()
}

// certificateFields builds the region-relative coordinate table. Most fields
// center on a fixed horizontal anchor; the college name wraps across two
// lines.
func certificateFields(data CertificateData) []field {
	collegeFirst, collegeSecond := splitCollegeName(data.College)

	hours := ""
	if data.TotalHours > 0 {
		hours = formatHours(data.TotalHours) + " hours"
	}

	return []field{
		{text: data.CertificateNumber, x: 297.64, y: 118, size: 10, center: true},
		{text: data.Name, x: 297.64, y: 152, size: 16, style: "B", center: true},
		{text: data.FatherName, x: 297.64, y: 178, size: 11, center: true},
		{text: data.RegistrationNumber, x: 200, y: 204, size: 11, center: true},
		{text: data.RollNumber, x: 400, y: 204, size: 11, center: true},
		{text: data.Session, x: 200, y: 228, size: 11, center: true},
		{text: data.Department, x: 400, y: 228, size: 11, center: true},
		{text: collegeFirst, x: 297.64, y: 252, size: 11, center: true},
		{text: collegeSecond, x: 297.64, y: 266, size: 11, center: true},
		{text: formatPeriod(data.InternshipStart, data.InternshipEnd), x: 297.64, y: 292, size: 11, center: true},
		{text: hours, x: 230, y: 314, size: 11, center: true},
		{text: data.Grade, x: 380, y: 314, size: 13, style: "B", center: true},
	}
}
