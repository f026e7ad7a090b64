package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/MKhiriev/go-work-tracker/internal/logger"
	"github.com/MKhiriev/go-work-tracker/internal/store"
	"github.com/MKhiriev/go-work-tracker/models"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100

	statisticsWindowDays = 7
)

// entryService is the concrete implementation of EntryService. It owns all
// validation rules, the pagination arithmetic, and the statistics windows;
// the repository below it only executes owner-scoped SQL.
type entryService struct {
	entryRepository store.EntryRepository
	logger          *logger.Logger
}

// NewEntryService constructs an EntryService wired to the given repository.
func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		logger:          logger,
	}
}

// Create validates the request and persists a new entry owned by userID.
//
// Validation failures (missing fields, bad date, non-positive hours) are
// detected before any write occurs. Completed defaults to false when the
// field is omitted.
func (s *entryService) Create(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.WorkEntry, error) {
	log := logger.FromContext(ctx)

	if req.Date == nil {
		return models.WorkEntry{}, ErrDateRequired
	}
	if req.Hours == nil {
		return models.WorkEntry{}, ErrHoursRequired
	}
	if req.Description == nil || *req.Description == "" {
		return models.WorkEntry{}, ErrDescriptionRequired
	}

	date, err := models.ParseDate(*req.Date)
	if err != nil {
		return models.WorkEntry{}, ErrInvalidDate
	}

	hours := req.Hours.Float()
	if hours <= 0 {
		return models.WorkEntry{}, ErrInvalidHours
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	entry, err := s.entryRepository.CreateEntry(ctx, models.WorkEntry{
		UserID:      userID,
		Date:        date,
		Hours:       hours,
		Description: *req.Description,
		Completed:   completed,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("work entry creation ended with error")
		return models.WorkEntry{}, fmt.Errorf("work entry creation ended with error: %w", err)
	}

	return entry, nil
}

// Get returns the entry scoped by (entryID, userID).
func (s *entryService) Get(ctx context.Context, userID, entryID int64) (models.WorkEntry, error) {
	entry, err := s.entryRepository.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.WorkEntry{}, fmt.Errorf("work entry lookup failed: %w", err)
	}

	return entry, nil
}

// Update applies the fields present in req to the entry scoped by
// (entryID, userID). Each supplied field is re-validated with the same
// rules as Create, and any validation failure aborts the whole update
// before the store is touched, so no partial mutation can happen.
func (s *entryService) Update(ctx context.Context, userID, entryID int64, req models.UpdateEntryRequest) (models.WorkEntry, error) {
	log := logger.FromContext(ctx)

	if req.Date == nil && req.Hours == nil && req.Description == nil && req.Completed == nil {
		return models.WorkEntry{}, ErrInvalidDataProvided
	}

	update := models.EntryUpdate{
		ID:        entryID,
		UserID:    userID,
		Completed: req.Completed,
	}

	if req.Date != nil {
		date, err := models.ParseDate(*req.Date)
		if err != nil {
			return models.WorkEntry{}, ErrInvalidDate
		}
		update.Date = &date
	}

	if req.Hours != nil {
		hours := req.Hours.Float()
		if hours <= 0 {
			return models.WorkEntry{}, ErrInvalidHours
		}
		update.Hours = &hours
	}

	if req.Description != nil {
		if *req.Description == "" {
			return models.WorkEntry{}, ErrDescriptionRequired
		}
		update.Description = req.Description
	}

	entry, err := s.entryRepository.UpdateEntry(ctx, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("work entry update ended with error")
		return models.WorkEntry{}, fmt.Errorf("work entry update ended with error: %w", err)
	}

	return entry, nil
}

// Delete removes the entry scoped by (entryID, userID) permanently.
func (s *entryService) Delete(ctx context.Context, userID, entryID int64) error {
	if err := s.entryRepository.DeleteEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("work entry deletion failed: %w", err)
	}

	return nil
}

// List returns one page of the user's entries plus pagination metadata.
//
// Date bounds must parse as YYYY-MM-DD when present. Page and perPage fall
// back to their defaults (1/10) when non-numeric or non-positive; perPage is
// additionally capped at 100. The total is computed over the filtered but
// unpaginated set.
func (s *entryService) List(ctx context.Context, userID int64, query models.ListQuery) (models.EntryPage, error) {
	log := logger.FromContext(ctx)

	filter := models.EntryFilter{UserID: userID}

	if query.StartDate != "" {
		start, err := models.ParseDate(query.StartDate)
		if err != nil {
			return models.EntryPage{}, ErrInvalidDate
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := models.ParseDate(query.EndDate)
		if err != nil {
			return models.EntryPage{}, ErrInvalidDate
		}
		filter.EndDate = &end
	}

	page := parsePositiveInt(query.Page, defaultPage)
	perPage := parsePositiveInt(query.PerPage, defaultPerPage)
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	total, err := s.entryRepository.CountEntries(ctx, filter)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("counting work entries ended with error")
		return models.EntryPage{}, fmt.Errorf("counting work entries ended with error: %w", err)
	}

	filter.Limit = uint64(perPage)
	filter.Offset = uint64(page-1) * uint64(perPage)

	entries, err := s.entryRepository.ListEntries(ctx, filter)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing work entries ended with error")
		return models.EntryPage{}, fmt.Errorf("listing work entries ended with error: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return models.EntryPage{
		Entries: entries,
		Pagination: models.Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// Statistics computes the fixed-window aggregates over the user's completed
// entries: hours for today, hours and task count for the trailing seven
// days (inclusive bounds). Windows are evaluated against the server's local
// date at request time; sums are rounded to two decimal places.
func (s *entryService) Statistics(ctx context.Context, userID int64) (models.Statistics, error) {
	log := logger.FromContext(ctx)

	today := models.Today()
	weekAgo := today.AddDays(-statisticsWindowDays)

	todayHours, err := s.entryRepository.SumCompletedHours(ctx, userID, today, today)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("summing today's hours ended with error")
		return models.Statistics{}, fmt.Errorf("summing today's hours ended with error: %w", err)
	}

	lastWeekHours, err := s.entryRepository.SumCompletedHours(ctx, userID, weekAgo, today)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("summing last week's hours ended with error")
		return models.Statistics{}, fmt.Errorf("summing last week's hours ended with error: %w", err)
	}

	lastWeekTasks, err := s.entryRepository.CountCompletedEntries(ctx, userID, weekAgo, today)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("counting last week's tasks ended with error")
		return models.Statistics{}, fmt.Errorf("counting last week's tasks ended with error: %w", err)
	}

	return models.Statistics{
		TodayHours:    round2(todayHours),
		LastWeekHours: round2(lastWeekHours),
		LastWeekTasks: lastWeekTasks,
	}, nil
}

// parsePositiveInt parses raw as a positive integer, silently falling back
// to fallback for empty, non-numeric, or non-positive input.
func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
