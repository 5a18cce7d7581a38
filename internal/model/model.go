// Package model holds the persisted entities of the school site and their
// mapping to and from gateway rows.
package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Table names.
const (
	TableAdmins          = "admins"
	TableNews            = "news"
	TableAdmissions      = "admissions"
	TableContactMessages = "contact_messages"
	TableEvents          = "events"
	TableResults         = "results"
	TableToppers         = "toppers"
	TableGallery         = "gallery"
	TableFaculty         = "faculty"
)

// UniqueColumns lists the UNIQUE columns of the schema, per table.
func UniqueColumns() map[string][]string {
	return map[string][]string{
		TableAdmins: {"username", "email"},
	}
}

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.NewString()
}

// Date is a calendar day, rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar day.
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null or a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}
	if s == "" {
		*d = Date{}
		return nil
	}

	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return errors.Wrapf(err, "invalid date %q", s)
	}
	*d = NewDate(t)
	return nil
}

// ClassLevel is a board class ("10" or "12"). Clients send it either as a
// number or a string.
type ClassLevel string

const (
	Class10 ClassLevel = "10"
	Class12 ClassLevel = "12"
)

func (c *ClassLevel) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ClassLevel(strings.TrimSpace(s))
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return errors.Errorf("invalid class level %s", raw)
	}
	*c = ClassLevel(strconv.Itoa(n))
	return nil
}
