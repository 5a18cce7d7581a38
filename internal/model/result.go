package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
)

// Result is one year's board exam summary for a class. Rates and ranks are
// display strings ("98.5%", "1st").
type Result struct {
	ID           string     `json:"id"`
	ClassLevel   ClassLevel `json:"class_level"`
	Year         int        `json:"year"`
	PassRate     string     `json:"pass_rate"`
	Above90      int        `json:"above_90"`
	Above95      int        `json:"above_95"`
	DistrictRank string     `json:"district_rank"`
	StateRank    string     `json:"state_rank"`
	CreatedAt    time.Time  `json:"-"`
}

func (r *Result) Values() store.Values {
	return store.Values{
		"id":            r.ID,
		"class_level":   string(r.ClassLevel),
		"year":          r.Year,
		"pass_rate":     r.PassRate,
		"above_90":      r.Above90,
		"above_95":      r.Above95,
		"district_rank": r.DistrictRank,
		"state_rank":    r.StateRank,
		"created_at":    r.CreatedAt,
	}
}

func ResultFromRow(row store.Row) *Result {
	return &Result{
		ID:           rowString(row, "id"),
		ClassLevel:   ClassLevel(rowString(row, "class_level")),
		Year:         rowInt(row, "year"),
		PassRate:     rowString(row, "pass_rate"),
		Above90:      rowInt(row, "above_90"),
		Above95:      rowInt(row, "above_95"),
		DistrictRank: rowString(row, "district_rank"),
		StateRank:    rowString(row, "state_rank"),
		CreatedAt:    rowTime(row, "created_at"),
	}
}

type Topper struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ClassLevel  ClassLevel `json:"class_level"`
	Year        int        `json:"year"`
	Percentage  float64    `json:"percentage"`
	Stream      string     `json:"stream"`
	Achievement string     `json:"achievement"`
	PhotoURL    string     `json:"photo_url"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (t *Topper) Values() store.Values {
	return store.Values{
		"id":          t.ID,
		"name":        t.Name,
		"class_level": string(t.ClassLevel),
		"year":        t.Year,
		"percentage":  t.Percentage,
		"stream":      t.Stream,
		"achievement": t.Achievement,
		"photo_url":   t.PhotoURL,
		"created_at":  t.CreatedAt,
	}
}

func TopperFromRow(row store.Row) *Topper {
	return &Topper{
		ID:          rowString(row, "id"),
		Name:        rowString(row, "name"),
		ClassLevel:  ClassLevel(rowString(row, "class_level")),
		Year:        rowInt(row, "year"),
		Percentage:  rowFloat(row, "percentage"),
		Stream:      rowString(row, "stream"),
		Achievement: rowString(row, "achievement"),
		PhotoURL:    rowString(row, "photo_url"),
		CreatedAt:   rowTime(row, "created_at"),
	}
}
