package repository

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos() *Repositories {
	return newRepositories(store.NewMemory(model.UniqueColumns()))
}

var base = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestContactRepository_ListPaginates(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	for i := 0; i < 45; i++ {
		require.NoError(t, repos.Contact.Create(ctx, &model.ContactMessage{
			ID:          model.NewID(),
			Name:        fmt.Sprintf("visitor %02d", i),
			Email:       "v@example.com",
			Subject:     "hello",
			Message:     "hi",
			Status:      model.ContactUnread,
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	items, total, err := repos.Contact.List(ctx, "", Page{Number: 3, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 45, total)
	assert.Equal(t, 3, TotalPages(total, 20))
	require.Len(t, items, 5)
	// Newest first, so the last page holds the five oldest.
	assert.Equal(t, "visitor 04", items[0].Name)
	assert.Equal(t, "visitor 00", items[4].Name)
}

func TestAdmissionRepository_StatusFilterAndUpdate(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	a := &model.Admission{
		ID:          model.NewID(),
		StudentName: "Asha",
		DateOfBirth: model.NewDate(time.Date(2015, 3, 4, 0, 0, 0, 0, time.UTC)),
		Status:      model.AdmissionPending,
		SubmittedAt: base,
		UpdatedAt:   base,
	}
	require.NoError(t, repos.Admissions.Create(ctx, a))

	notes := "interview on monday"
	require.NoError(t, repos.Admissions.UpdateStatus(ctx, a.ID, model.AdmissionApproved, &notes, base.Add(time.Hour)))

	pending, err := repos.Admissions.Count(ctx, model.AdmissionPending)
	require.NoError(t, err)
	assert.Zero(t, pending)

	got, err := repos.Admissions.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AdmissionApproved, got.Status)
	require.NotNil(t, got.AdminNotes)
	assert.Equal(t, notes, *got.AdminNotes)
	assert.Equal(t, "2015-03-04", got.DateOfBirth.String())

	// nil notes keep what is stored
	require.NoError(t, repos.Admissions.UpdateStatus(ctx, a.ID, model.AdmissionWaitlisted, nil, base.Add(2*time.Hour)))
	got, err = repos.Admissions.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, notes, *got.AdminNotes)

	err = repos.Admissions.UpdateStatus(ctx, "missing", model.AdmissionApproved, nil, base)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNewsRepository_ListActive(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	for i := 0; i < 11; i++ {
		require.NoError(t, repos.News.Create(ctx, &model.News{
			ID:        model.NewID(),
			Title:     fmt.Sprintf("news %02d", i),
			Priority:  model.PriorityNormal,
			IsActive:  true,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repos.News.Create(ctx, &model.News{
		ID:        model.NewID(),
		Title:     "hidden",
		CreatedAt: base.Add(48 * time.Hour),
	}))

	items, err := repos.News.ListActive(ctx, PublicNewsLimit)
	require.NoError(t, err)
	require.Len(t, items, 10)
	assert.Equal(t, "news 10", items[0].Title)
	assert.Equal(t, "news 01", items[9].Title)

	exists, err := repos.News.ExistsByTitle(ctx, "hidden")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEventRepository_OrderAndUpcoming(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	for _, d := range []time.Time{
		time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, repos.Events.Create(ctx, &model.Event{
			ID:       model.NewID(),
			Title:    d.Format("Jan 2"),
			Date:     model.NewDate(d),
			Category: model.EventGeneral,
		}))
	}

	events, err := repos.Events.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2024-12-15", events[0].Date.String())
	assert.Equal(t, "2025-01-26", events[1].Date.String())

	n, err := repos.Events.CountFrom(ctx, model.NewDate(time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repos.Events.CountFrom(ctx, model.NewDate(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestResultRepository_ByClassAndToppers(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	for _, r := range []*model.Result{
		{ID: model.NewID(), ClassLevel: model.Class10, Year: 2022, PassRate: "96%"},
		{ID: model.NewID(), ClassLevel: model.Class10, Year: 2024, PassRate: "100%"},
		{ID: model.NewID(), ClassLevel: model.Class12, Year: 2024, PassRate: "98%"},
	} {
		require.NoError(t, repos.Results.Create(ctx, r))
	}
	require.NoError(t, repos.Results.CreateTopper(ctx, &model.Topper{ID: model.NewID(), Name: "Old", Year: 2021}))
	require.NoError(t, repos.Results.CreateTopper(ctx, &model.Topper{ID: model.NewID(), Name: "New", Year: 2024}))

	class10, err := repos.Results.ListByClass(ctx, model.Class10)
	require.NoError(t, err)
	require.Len(t, class10, 2)
	assert.Equal(t, 2024, class10[0].Year)

	exists, err := repos.Results.Exists(ctx, model.Class12, 2024)
	require.NoError(t, err)
	assert.True(t, exists)

	toppers, err := repos.Results.ListToppers(ctx, PublicToppersLimit)
	require.NoError(t, err)
	require.Len(t, toppers, 2)
	assert.Equal(t, "New", toppers[0].Name)
}

func TestFacultyRepository_ListActive(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	require.NoError(t, repos.Faculty.Create(ctx, &model.Faculty{ID: model.NewID(), Name: "Second", PositionOrder: 2, IsActive: true}))
	require.NoError(t, repos.Faculty.Create(ctx, &model.Faculty{ID: model.NewID(), Name: "First", PositionOrder: 1, IsActive: true}))
	require.NoError(t, repos.Faculty.Create(ctx, &model.Faculty{ID: model.NewID(), Name: "Retired", PositionOrder: 0}))

	items, err := repos.Faculty.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Name)

	n, err := repos.Faculty.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAdminRepository_LookupAndConflict(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	admin := &model.Admin{ID: model.NewID(), Username: "admin", Email: "a@school.edu", IsActive: true, CreatedAt: base}
	require.NoError(t, repos.Admins.Create(ctx, admin))

	dup := &model.Admin{ID: model.NewID(), Username: "admin", Email: "b@school.edu"}
	assert.ErrorIs(t, repos.Admins.Create(ctx, dup), store.ErrConflict)

	got, err := repos.Admins.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.Nil(t, got.LastLogin)

	require.NoError(t, repos.Admins.TouchLastLogin(ctx, admin.ID, base.Add(time.Hour)))
	got, err = repos.Admins.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, got.LastLogin.Equal(base.Add(time.Hour)))

	_, err = repos.Admins.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPage(t *testing.T) {
	assert.Equal(t, 40, Page{Number: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(5, math.MaxInt))
	assert.Equal(t, 0, TotalPages(5, 0))
	assert.Equal(t, 0, Page{Number: 1, Limit: math.MaxInt}.Offset())
	assert.Equal(t, math.MaxInt, Page{Number: math.MaxInt, Limit: 20}.Offset())
}
