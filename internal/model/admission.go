package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
)

// Admission is an application submitted through the public form.
type Admission struct {
	ID                 string          `json:"id"`
	StudentName        string          `json:"student_name"`
	ClassApplying      string          `json:"class_applying"`
	DateOfBirth        Date            `json:"date_of_birth"`
	Gender             string          `json:"gender"`
	FatherName         string          `json:"father_name"`
	MotherName         string          `json:"mother_name"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email"`
	Address            string          `json:"address"`
	PreviousSchool     string          `json:"previous_school"`
	PreviousPercentage *float64        `json:"previous_percentage"`
	Status             AdmissionStatus `json:"application_status"`
	SubmittedAt        time.Time       `json:"submitted_at"`
	UpdatedAt          time.Time       `json:"-"`
	AdminNotes         *string         `json:"admin_notes"`
}

func (a *Admission) Values() store.Values {
	return store.Values{
		"id":                  a.ID,
		"student_name":        a.StudentName,
		"class_applying":      a.ClassApplying,
		"date_of_birth":       a.DateOfBirth.Time,
		"gender":              a.Gender,
		"father_name":         a.FatherName,
		"mother_name":         a.MotherName,
		"phone":               a.Phone,
		"email":               a.Email,
		"address":             a.Address,
		"previous_school":     a.PreviousSchool,
		"previous_percentage": nullable(a.PreviousPercentage),
		"application_status":  string(a.Status),
		"submitted_at":        a.SubmittedAt,
		"updated_at":          a.UpdatedAt,
		"admin_notes":         nullable(a.AdminNotes),
	}
}

func AdmissionFromRow(row store.Row) *Admission {
	return &Admission{
		ID:                 rowString(row, "id"),
		StudentName:        rowString(row, "student_name"),
		ClassApplying:      rowString(row, "class_applying"),
		DateOfBirth:        NewDate(rowTime(row, "date_of_birth")),
		Gender:             rowString(row, "gender"),
		FatherName:         rowString(row, "father_name"),
		MotherName:         rowString(row, "mother_name"),
		Phone:              rowString(row, "phone"),
		Email:              rowString(row, "email"),
		Address:            rowString(row, "address"),
		PreviousSchool:     rowString(row, "previous_school"),
		PreviousPercentage: rowOptFloat(row, "previous_percentage"),
		Status:             AdmissionStatus(rowString(row, "application_status")),
		SubmittedAt:        rowTime(row, "submitted_at"),
		UpdatedAt:          rowTime(row, "updated_at"),
		AdminNotes:         rowOptString(row, "admin_notes"),
	}
}
