package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-work-tracker/internal/logger"
	"github.com/MKhiriev/go-work-tracker/models"
	"github.com/jackc/pgerrcode"
)

func newTestEntryRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &entryRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func entryRows(entries ...models.WorkEntry) *sqlmock.Rows {
	rows := sqlmock.NewRows(entryColumns)
	for _, e := range entries {
		rows.AddRow(e.ID, e.UserID, e.Date.Time, e.Hours, e.Description, e.Completed, e.CreatedAt, e.UpdatedAt)
	}
	return rows
}

func testEntry(id, userID int64) models.WorkEntry {
	date, _ := models.ParseDate("2026-08-31")
	now := time.Now()
	return models.WorkEntry{
		ID:          id,
		UserID:      userID,
		Date:        date,
		Hours:       7.5,
		Description: "code review",
		Completed:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	entry := testEntry(1, 10)

	mock.ExpectQuery("INSERT INTO work_entries").
		WithArgs(entry.UserID, sqlmock.AnyArg(), entry.Hours, entry.Description, entry.Completed).
		WillReturnRows(entryRows(entry))

	saved, err := repo.CreateEntry(ctx, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 1 {
		t.Errorf("expected ID=1, got %d", saved.ID)
	}
	if saved.Description != entry.Description {
		t.Errorf("expected description %q, got %q", entry.Description, saved.Description)
	}
}

func TestCreateEntry_ForeignKeyViolation(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	entry := testEntry(0, 999)

	mock.ExpectQuery("INSERT INTO work_entries").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateEntry(ctx, entry)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestGetEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	entry := testEntry(5, 10)

	mock.ExpectQuery("SELECT id, user_id, date, hours, description, completed, created_at, updated_at").
		WithArgs(entry.ID, entry.UserID).
		WillReturnRows(entryRows(entry))

	found, err := repo.GetEntry(ctx, entry.UserID, entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != entry.ID {
		t.Errorf("expected ID=%d, got %d", entry.ID, found.ID)
	}
	if found.Date.String() != "2026-08-31" {
		t.Errorf("expected date 2026-08-31, got %s", found.Date.String())
	}
}

func TestGetEntry_NotFound(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, date, hours, description, completed, created_at, updated_at").
		WithArgs(int64(404), int64(10)).
		WillReturnRows(entryRows())

	_, err := repo.GetEntry(ctx, 10, 404)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestUpdateEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	entry := testEntry(5, 10)
	hours := 4.0

	mock.ExpectQuery("UPDATE work_entries").
		WillReturnRows(entryRows(entry))

	updated, err := repo.UpdateEntry(ctx, models.EntryUpdate{
		ID:     entry.ID,
		UserID: entry.UserID,
		Hours:  &hours,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != entry.ID {
		t.Errorf("expected ID=%d, got %d", entry.ID, updated.ID)
	}
}

func TestUpdateEntry_NotFound(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	completed := true

	mock.ExpectQuery("UPDATE work_entries").
		WillReturnRows(entryRows())

	_, err := repo.UpdateEntry(ctx, models.EntryUpdate{
		ID:        404,
		UserID:    10,
		Completed: &completed,
	})
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDeleteEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM work_entries").
		WithArgs(int64(5), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteEntry(ctx, 10, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteEntry_NotFound(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM work_entries").
		WithArgs(int64(404), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteEntry(ctx, 10, 404)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestListEntries_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	first := testEntry(2, 10)
	second := testEntry(1, 10)

	mock.ExpectQuery("SELECT id, user_id, date, hours, description, completed, created_at, updated_at").
		WillReturnRows(entryRows(first, second))

	entries, err := repo.ListEntries(ctx, models.EntryFilter{UserID: 10, Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 2 || entries[1].ID != 1 {
		t.Errorf("expected ids [2 1], got [%d %d]", entries[0].ID, entries[1].ID)
	}
}

func TestListEntries_Empty(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, date, hours, description, completed, created_at, updated_at").
		WillReturnRows(entryRows())

	entries, err := repo.ListEntries(ctx, models.EntryFilter{UserID: 10, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty slice, got %d entries", len(entries))
	}
}

func TestCountEntries_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

	total, err := repo.CountEntries(ctx, models.EntryFilter{UserID: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 23 {
		t.Errorf("expected total=23, got %d", total)
	}
}

func TestSumCompletedHours_EmptyWindow(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	from, _ := models.ParseDate("2026-08-24")
	to, _ := models.ParseDate("2026-08-31")

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(10), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	sum, err := repo.SumCompletedHours(ctx, 10, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 0 {
		t.Errorf("expected sum=0, got %f", sum)
	}
}

func TestCountCompletedEntries_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	from, _ := models.ParseDate("2026-08-24")
	to, _ := models.ParseDate("2026-08-31")

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(10), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountCompletedEntries(ctx, 10, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("expected count=4, got %d", count)
	}
}
