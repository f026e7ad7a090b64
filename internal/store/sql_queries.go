package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-work-tracker/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING id, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE id = $1;`

	createEntry = `INSERT INTO work_entries (user_id, date, hours, description, completed)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, date, hours, description, completed, created_at, updated_at;`

	getEntry = `SELECT id, user_id, date, hours, description, completed, created_at, updated_at
    FROM work_entries
    WHERE id = $1 AND user_id = $2;`

	deleteEntry = `DELETE FROM work_entries
    WHERE id = $1 AND user_id = $2;`

	sumCompletedHours = `SELECT COALESCE(SUM(hours), 0)
    FROM work_entries
    WHERE user_id = $1 AND completed = TRUE AND date BETWEEN $2 AND $3;`

	countCompletedEntries = `SELECT COUNT(*)
    FROM work_entries
    WHERE user_id = $1 AND completed = TRUE AND date BETWEEN $2 AND $3;`
)

// entryColumns is the canonical column order scanned into models.WorkEntry.
var entryColumns = []string{"id", "user_id", "date", "hours", "description", "completed", "created_at", "updated_at"}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// entryFilterPredicate translates an [models.EntryFilter] into the WHERE
// clause shared by the listing and counting queries: mandatory owner
// equality plus optional inclusive date bounds.
func entryFilterPredicate(builder sq.SelectBuilder, filter models.EntryFilter) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"user_id": filter.UserID})

	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.EndDate})
	}

	return builder
}

// buildListEntriesQuery produces the paginated listing query. Ordering is
// date descending with id ascending as the tie-break, so pages are stable
// across requests.
func buildListEntriesQuery(filter models.EntryFilter) (string, []any, error) {
	builder := entryFilterPredicate(psql.Select(entryColumns...).From("work_entries"), filter).
		OrderBy("date DESC", "id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountEntriesQuery produces the total count over the filtered but
// unpaginated set.
func buildCountEntriesQuery(filter models.EntryFilter) (string, []any, error) {
	builder := entryFilterPredicate(psql.Select("COUNT(*)").From("work_entries"), filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateEntryQuery produces a single UPDATE statement applying only the
// non-nil fields of update and bumping updated_at. The statement RETURNING
// clause yields the full post-update row, so the caller never needs a
// follow-up read.
func buildUpdateEntryQuery(update models.EntryUpdate) (string, []any, error) {
	builder := psql.Update("work_entries").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Date != nil {
		builder = builder.Set("date", *update.Date)
	}
	if update.Hours != nil {
		builder = builder.Set("hours", *update.Hours)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Completed != nil {
		builder = builder.Set("completed", *update.Completed)
	}

	builder = builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING id, user_id, date, hours, description, completed, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
