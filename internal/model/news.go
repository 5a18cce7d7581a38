package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
)

type News struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Emoji     string    `json:"emoji"`
	Priority  Priority  `json:"priority"`
	IsActive  bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (n *News) Values() store.Values {
	return store.Values{
		"id":         n.ID,
		"title":      n.Title,
		"content":    n.Content,
		"emoji":      n.Emoji,
		"priority":   string(n.Priority),
		"is_active":  n.IsActive,
		"created_at": n.CreatedAt,
		"updated_at": n.UpdatedAt,
	}
}

func NewsFromRow(row store.Row) *News {
	return &News{
		ID:        rowString(row, "id"),
		Title:     rowString(row, "title"),
		Content:   rowString(row, "content"),
		Emoji:     rowString(row, "emoji"),
		Priority:  Priority(rowString(row, "priority")),
		IsActive:  rowBool(row, "is_active"),
		CreatedAt: rowTime(row, "created_at"),
		UpdatedAt: rowTime(row, "updated_at"),
	}
}
