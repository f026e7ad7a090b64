package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-work-tracker/internal/logger"
	"github.com/MKhiriev/go-work-tracker/models"
	"github.com/jackc/pgerrcode"
)

// entryRepository is the PostgreSQL-backed implementation of
// [EntryRepository]. Every query carries the owning user's id in its WHERE
// clause — this is the sole ownership-enforcement mechanism, so a missing
// row and a row owned by someone else are indistinguishable to callers.
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// scanEntry reads one row in the canonical column order into a WorkEntry.
func scanEntry(row interface{ Scan(...any) error }, entry *models.WorkEntry) error {
	return row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&entry.Hours,
		&entry.Description,
		&entry.Completed,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}

// CreateEntry persists a new work entry with the owner fixed to
// entry.UserID and returns the canonical database representation including
// server-assigned fields (ID, CreatedAt, UpdatedAt).
func (p *entryRepository) CreateEntry(ctx context.Context, entry models.WorkEntry) (models.WorkEntry, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createEntry, entry.UserID, entry.Date, entry.Hours, entry.Description, entry.Completed)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to execute insert for work entry")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.WorkEntry{}, ErrNoUserWasFound
		default:
			return models.WorkEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	var saved models.WorkEntry
	if err := scanEntry(row, &saved); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to scan created work entry")
		return models.WorkEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetEntry retrieves a single entry scoped by (entryID, userID).
//
// Returns [ErrEntryNotFound] both when no such entry exists and when it is
// owned by a different user.
func (p *entryRepository) GetEntry(ctx context.Context, userID, entryID int64) (models.WorkEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.WorkEntry
	row := p.DB.QueryRowContext(ctx, getEntry, entryID, userID)
	if err := scanEntry(row, &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WorkEntry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "*entryRepository.GetEntry").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to scan work entry row")
		return models.WorkEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// UpdateEntry applies the non-nil fields of update in one UPDATE statement
// and returns the post-update row. The single statement makes partial
// mutation impossible: either every supplied field is applied or none is.
//
// Returns [ErrEntryNotFound] under the same ownership-scoped rule as
// [entryRepository.GetEntry].
func (p *entryRepository) UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.WorkEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.UpdateEntry").
			Int64("user_id", update.UserID).
			Int64("entry_id", update.ID).
			Msg("failed to build update query")
		return models.WorkEntry{}, err
	}

	var entry models.WorkEntry
	row := p.DB.QueryRowContext(ctx, query, args...)
	if err := scanEntry(row, &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WorkEntry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "*entryRepository.UpdateEntry").
			Int64("user_id", update.UserID).
			Int64("entry_id", update.ID).
			Msg("failed to scan updated work entry")
		return models.WorkEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// DeleteEntry removes the entry scoped by (entryID, userID) permanently.
//
// Returns [ErrEntryNotFound] when no row was deleted.
func (p *entryRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteEntry, entryID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to execute delete for work entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// ListEntries returns the page of entries selected by filter, ordered by
// date descending with id ascending as the tie-break.
func (p *entryRepository) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.WorkEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.ListEntries").
			Int64("user_id", filter.UserID).
			Msg("failed to build list query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.ListEntries").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing work entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.WorkEntry, 0, filter.Limit)

	for rows.Next() {
		var entry models.WorkEntry
		if scanErr := scanEntry(rows, &entry); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*entryRepository.ListEntries").
				Int64("user_id", filter.UserID).
				Msg("failed to scan work entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*entryRepository.ListEntries").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// CountEntries returns the total number of entries matching filter,
// ignoring its pagination window.
func (p *entryRepository) CountEntries(ctx context.Context, filter models.EntryFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountEntriesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CountEntries").
			Int64("user_id", filter.UserID).
			Msg("failed to build count query")
		return 0, err
	}

	var total int64
	row := p.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CountEntries").
			Int64("user_id", filter.UserID).
			Msg("failed to scan entries count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

// SumCompletedHours returns the sum of hours over completed entries owned by
// userID with date in [from, to] inclusive. COALESCE in the query guarantees
// zero instead of NULL for an empty window.
func (p *entryRepository) SumCompletedHours(ctx context.Context, userID int64, from, to models.Date) (float64, error) {
	log := logger.FromContext(ctx)

	var sum float64
	row := p.DB.QueryRowContext(ctx, sumCompletedHours, userID, from, to)
	if err := row.Scan(&sum); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.SumCompletedHours").
			Int64("user_id", userID).
			Msg("failed to scan completed hours sum")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sum, nil
}

// CountCompletedEntries returns the number of completed entries owned by
// userID with date in [from, to] inclusive.
func (p *entryRepository) CountCompletedEntries(ctx context.Context, userID int64, from, to models.Date) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := p.DB.QueryRowContext(ctx, countCompletedEntries, userID, from, to)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CountCompletedEntries").
			Int64("user_id", userID).
			Msg("failed to scan completed entries count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
