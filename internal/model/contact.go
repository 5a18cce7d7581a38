package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
)

type ContactMessage struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       *string       `json:"phone"`
	Subject     string        `json:"subject"`
	Message     string        `json:"message"`
	Status      ContactStatus `json:"status"`
	SubmittedAt time.Time     `json:"submitted_at"`
	RepliedAt   *time.Time    `json:"replied_at"`
	AdminReply  *string       `json:"admin_reply"`
}

func (m *ContactMessage) Values() store.Values {
	return store.Values{
		"id":           m.ID,
		"name":         m.Name,
		"email":        m.Email,
		"phone":        nullable(m.Phone),
		"subject":      m.Subject,
		"message":      m.Message,
		"status":       string(m.Status),
		"submitted_at": m.SubmittedAt,
		"replied_at":   nullable(m.RepliedAt),
		"admin_reply":  nullable(m.AdminReply),
	}
}

func ContactMessageFromRow(row store.Row) *ContactMessage {
	return &ContactMessage{
		ID:          rowString(row, "id"),
		Name:        rowString(row, "name"),
		Email:       rowString(row, "email"),
		Phone:       rowOptString(row, "phone"),
		Subject:     rowString(row, "subject"),
		Message:     rowString(row, "message"),
		Status:      ContactStatus(rowString(row, "status")),
		SubmittedAt: rowTime(row, "submitted_at"),
		RepliedAt:   rowOptTime(row, "replied_at"),
		AdminReply:  rowOptString(row, "admin_reply"),
	}
}
