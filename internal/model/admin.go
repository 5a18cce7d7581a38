package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
)

// Admin is a console user. PasswordHash never leaves the process.
type Admin struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

func (a *Admin) Values() store.Values {
	return store.Values{
		"id":            a.ID,
		"username":      a.Username,
		"email":         a.Email,
		"password_hash": a.PasswordHash,
		"full_name":     a.FullName,
		"is_active":     a.IsActive,
		"created_at":    a.CreatedAt,
		"last_login":    nullable(a.LastLogin),
	}
}

func AdminFromRow(row store.Row) *Admin {
	return &Admin{
		ID:           rowString(row, "id"),
		Username:     rowString(row, "username"),
		Email:        rowString(row, "email"),
		PasswordHash: rowString(row, "password_hash"),
		FullName:     rowString(row, "full_name"),
		IsActive:     rowBool(row, "is_active"),
		CreatedAt:    rowTime(row, "created_at"),
		LastLogin:    rowOptTime(row, "last_login"),
	}
}

// AdminProfile is the public view of an Admin.
type AdminProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (a *Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:       a.ID,
		Username: a.Username,
		FullName: a.FullName,
		Email:    a.Email,
	}
}
