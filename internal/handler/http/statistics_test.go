package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-work-tracker/models"
)

func TestStatistics_Success(t *testing.T) {
	entries := &mockEntryService{
		statisticsFn: func(_ context.Context, userID int64) (models.Statistics, error) {
			require.Equal(t, int64(10), userID)
			return models.Statistics{
				TodayHours:    2.5,
				LastWeekHours: 14.25,
				LastWeekTasks: 4,
			}, nil
		},
	}

	h := newHandlerWithEntries(t, entries)
	rec := httptest.NewRecorder()

	h.statistics(rec, authedRequest(http.MethodGet, "/entries/statistics", "", 10))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2.5, resp.TodayHours)
	assert.Equal(t, 14.25, resp.LastWeekHours)
	assert.Equal(t, int64(4), resp.LastWeekTasks)
}

func TestStatistics_ServiceError(t *testing.T) {
	entries := &mockEntryService{
		statisticsFn: func(_ context.Context, _ int64) (models.Statistics, error) {
			return models.Statistics{}, errors.New("db is down")
		},
	}

	h := newHandlerWithEntries(t, entries)
	rec := httptest.NewRecorder()

	h.statistics(rec, authedRequest(http.MethodGet, "/entries/statistics", "", 10))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatistics_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithEntries(t, &mockEntryService{})
	req := httptest.NewRequest(http.MethodGet, "/entries/statistics", nil)
	rec := httptest.NewRecorder()

	h.statistics(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
