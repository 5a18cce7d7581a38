package handler

import (
	"strings"

	"github.com/deppfellow/schoolsite/internal/lib/utils"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/validation"
)

const (
	// DefaultPageLimit is the page size of admin lists when none is given.
	DefaultPageLimit = 20
	// MaxPageLimit caps the page size a client may ask for.
	MaxPageLimit = 100
	// MaxPageNumber keeps page offsets well inside int range.
	MaxPageNumber = 1_000_000
)

// PageQuery is the status/page/limit query shared by the admin lists.
type PageQuery struct {
	Status string `query:"status"`
	Page   string `query:"page"`
	Limit  string `query:"limit"`

	page repository.Page
}

// validatePage parses page and limit and normalizes Status, mapping "all"
// and the empty string to no filter.
func (q *PageQuery) validatePage() error {
	number, ok := utils.ParsePositiveInt(q.Page, 1)
	if !ok || number > MaxPageNumber {
		return validation.NewError("page", "Invalid page")
	}
	limit, ok := utils.ParsePositiveInt(q.Limit, DefaultPageLimit)
	if !ok || limit > MaxPageLimit {
		return validation.NewError("limit", "Invalid limit")
	}
	q.page = repository.Page{Number: number, Limit: limit}

	q.Status = strings.TrimSpace(q.Status)
	if q.Status == model.StatusAll {
		q.Status = ""
	}
	return nil
}

func invalidStatus() error {
	return validation.NewError("status", "Invalid status")
}
