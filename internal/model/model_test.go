package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassLevel_AcceptsNumberOrString(t *testing.T) {
	var body struct {
		A ClassLevel `json:"a"`
		B ClassLevel `json:"b"`
		C ClassLevel `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":10,"b":" 12 ","c":null}`), &body))
	assert.Equal(t, Class10, body.A)
	assert.Equal(t, Class12, body.B)
	assert.Equal(t, ClassLevel(""), body.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":10.5}`), &body))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2024, 12, 15, 18, 30, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-15"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestDate_RoundTrip(t *testing.T) {
	in := Event{Title: "Annual day", Date: NewDate(time.Date(2099, 1, 15, 0, 0, 0, 0, time.UTC))}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out Event
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, in.Date.Equal(out.Date.Time))
	assert.Equal(t, "2099-01-15", out.Date.String())

	var empty struct {
		D Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":null}`), &empty))
	assert.True(t, empty.D.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"d":"15/01/2099"}`), &empty))
	assert.Error(t, json.Unmarshal([]byte(`{"d":20990115}`), &empty))
}

func TestAdmissionStatus_Valid(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected", "waitlisted"} {
		assert.True(t, AdmissionStatus(s).Valid(), s)
	}
	assert.False(t, AdmissionStatus("xyz").Valid())
	assert.False(t, AdmissionStatus("all").Valid())
	assert.True(t, ContactReplied.Valid())
	assert.False(t, ContactStatus("archived").Valid())
}

// SQLite hands back text timestamps and integer booleans, PostgreSQL int32
// columns; entities must come out the same either way.
func TestFromRow_ToleratesDriverTypes(t *testing.T) {
	row := store.Row{
		"id":             "f-1",
		"name":           "Mrs. Sharma",
		"position":       "Principal",
		"qualifications": "M.Ed",
		"position_order": int32(1),
		"is_active":      int64(1),
		"created_at":     "2024-06-01 08:30:00.5+00:00",
	}
	f := FacultyFromRow(row)
	assert.Equal(t, 1, f.PositionOrder)
	assert.True(t, f.IsActive)
	assert.Equal(t, time.Date(2024, 6, 1, 8, 30, 0, 500000000, time.UTC), f.CreatedAt)

	event := EventFromRow(store.Row{
		"id":          "e-1",
		"event_date":  time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC),
		"is_featured": false,
	})
	assert.Equal(t, "2025-01-26", event.Date.String())

	msg := ContactMessageFromRow(store.Row{"id": "m-1", "phone": nil, "replied_at": nil})
	assert.Nil(t, msg.Phone)
	assert.Nil(t, msg.RepliedAt)
}

func TestAdmin_ValuesRoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a := &Admin{
		ID:           "a-1",
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "hash",
		FullName:     "System Administrator",
		IsActive:     true,
		CreatedAt:    now,
	}

	values := a.Values()
	assert.Nil(t, values["last_login"])

	back := AdminFromRow(store.Row(values))
	assert.Equal(t, a, back)

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hash")
}
