package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/turisouvenir/Care-Equity/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scorerStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ratings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestScorerClient_FetchRatings(t *testing.T) {
	srv := scorerStub(t, http.StatusOK, `{
		"success": true,
		"data": [
			{
				"hospitalId": "HOSP_001",
				"overallScore": 74.5,
				"overallGrade": "B",
				"equityGapScore": 27.5,
				"groupBreakdown": {
					"Black": {"score": 61.0, "grade": "C"},
					"White": {"score": 88.5, "grade": "A"}
				},
				"updatedAt": "2026-04-01T00:00:00Z"
			}
		]
	}`)
	defer srv.Close()

	client := NewScorerClient(srv.URL, "", zap.NewNop())
	records, err := client.FetchRatings(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "HOSP_001", records[0].HospitalID)
	assert.Equal(t, 74.5, records[0].OverallScore)
	assert.Equal(t, "A", records[0].GroupBreakdown["White"].Grade)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), records[0].UpdatedAt)
}

func TestScorerClient_FetchRatings_ErrorEnvelope(t *testing.T) {
	srv := scorerStub(t, http.StatusOK, `{"success": false, "error": "batch still running"}`)
	defer srv.Close()

	client := NewScorerClient(srv.URL, "", zap.NewNop())
	_, err := client.FetchRatings(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch still running")
}

func TestRatingSyncService_SyncOnce(t *testing.T) {
	srv := scorerStub(t, http.StatusOK, `{
		"success": true,
		"data": [
			{"hospitalId": "HOSP_001", "overallScore": 74.5, "overallGrade": "B", "equityGapScore": 27.5, "updatedAt": "2026-04-01T00:00:00Z"},
			{"hospitalId": "HOSP_002", "overallScore": 90.0, "overallGrade": "A", "equityGapScore": 3.0, "updatedAt": "2026-04-01T00:00:00Z"}
		]
	}`)
	defer srv.Close()

	ratingsRepo := repository.NewMemoryRatingsRepository()
	client := NewScorerClient(srv.URL, "", zap.NewNop())
	sync := NewRatingSyncService(client, ratingsRepo, nil, time.Minute, zap.NewNop())

	require.NoError(t, sync.SyncOnce(context.Background()))

	records, err := ratingsRepo.ListRatings(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "B", records[0].OverallGrade)
	assert.Equal(t, "A", records[1].OverallGrade)
}
