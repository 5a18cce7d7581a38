package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
)

// Faculty is a staff member shown on the faculty page, sorted by PositionOrder.
type Faculty struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Position       string    `json:"position"`
	Qualifications string    `json:"qualifications"`
	Experience     string    `json:"experience"`
	Subjects       string    `json:"subjects"`
	Description    string    `json:"description"`
	PhotoURL       string    `json:"photo_url"`
	PositionOrder  int       `json:"position_order"`
	IsActive       bool      `json:"-"`
	CreatedAt      time.Time `json:"-"`
}

func (f *Faculty) Values() store.Values {
	return store.Values{
		"id":             f.ID,
		"name":           f.Name,
		"position":       f.Position,
		"qualifications": f.Qualifications,
		"experience":     f.Experience,
		"subjects":       f.Subjects,
		"description":    f.Description,
		"photo_url":      f.PhotoURL,
		"position_order": f.PositionOrder,
		"is_active":      f.IsActive,
		"created_at":     f.CreatedAt,
	}
}

func FacultyFromRow(row store.Row) *Faculty {
	return &Faculty{
		ID:             rowString(row, "id"),
		Name:           rowString(row, "name"),
		Position:       rowString(row, "position"),
		Qualifications: rowString(row, "qualifications"),
		Experience:     rowString(row, "experience"),
		Subjects:       rowString(row, "subjects"),
		Description:    rowString(row, "description"),
		PhotoURL:       rowString(row, "photo_url"),
		PositionOrder:  rowInt(row, "position_order"),
		IsActive:       rowBool(row, "is_active"),
		CreatedAt:      rowTime(row, "created_at"),
	}
}
