package models

import "time"

// Student is one verified internship record. Records are created and
// maintained by administrative data entry; this service only reads them.
// Optional columns surface as empty strings (or zero for TotalHours).
type Student struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	FatherName         string    `json:"fatherName,omitempty"`
	RegistrationNumber string    `json:"registrationNumber"`
	RollNumber         string    `json:"rollNumber,omitempty"`
	DateOfBirth        time.Time `json:"dateOfBirth"`
	MobileNumber       string    `json:"mobileNumber,omitempty"`
	Session            string    `json:"session,omitempty"`
	Department         string    `json:"department,omitempty"`
	College            string    `json:"college"`
	InternshipStart    time.Time `json:"internshipStart"`
	InternshipEnd      time.Time `json:"internshipEnd"`
	TotalHours         float64   `json:"totalHours,omitempty"`
	Grade              string    `json:"grade,omitempty"`
	CertificateNumber  string    `json:"certificateNumber,omitempty"`
}
