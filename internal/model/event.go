package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
)

// Event is a dated school event. It renders its day as "date" and its
// free-text time label as "time".
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        Date          `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	Category    EventCategory `json:"category"`
	IsFeatured  bool          `json:"is_featured"`
	ImageURL    string        `json:"image_url"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"-"`
}

func (e *Event) Values() store.Values {
	return store.Values{
		"id":          e.ID,
		"title":       e.Title,
		"description": e.Description,
		"event_date":  e.Date.Time,
		"event_time":  e.Time,
		"location":    e.Location,
		"category":    string(e.Category),
		"is_featured": e.IsFeatured,
		"image_url":   e.ImageURL,
		"created_at":  e.CreatedAt,
		"updated_at":  e.UpdatedAt,
	}
}

func EventFromRow(row store.Row) *Event {
	return &Event{
		ID:          rowString(row, "id"),
		Title:       rowString(row, "title"),
		Description: rowString(row, "description"),
		Date:        NewDate(rowTime(row, "event_date")),
		Time:        rowString(row, "event_time"),
		Location:    rowString(row, "location"),
		Category:    EventCategory(rowString(row, "category")),
		IsFeatured:  rowBool(row, "is_featured"),
		ImageURL:    rowString(row, "image_url"),
		CreatedAt:   rowTime(row, "created_at"),
		UpdatedAt:   rowTime(row, "updated_at"),
	}
}
