package aggregator_test

import (
	"context"
	"testing"
	"time"

	agg "github.com/turisouvenir/Care-Equity/internal/aggregator"
	"github.com/turisouvenir/Care-Equity/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCache_SentimentRoundTrip(t *testing.T) {
	kv := newFakeKV()
	cache := agg.NewCache(kv, time.Minute, zap.NewNop())
	ctx := context.Background()

	_, ok := cache.GetSentiment(ctx, "HOSP_001")
	assert.False(t, ok)

	view := &models.SentimentView{
		Sentiment:          agg.SentimentPositive,
		Summary:            "Patients report very good experiences at this hospital. Based on 2 reviews.",
		AverageRating:      4.0,
		TotalReviews:       2,
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 2, 5: 0},
	}
	cache.PutSentiment(ctx, "HOSP_001", view)

	got, ok := cache.GetSentiment(ctx, "HOSP_001")
	require.True(t, ok)
	assert.Equal(t, view, got)

	cache.InvalidateSentiment(ctx, "HOSP_001")
	_, ok = cache.GetSentiment(ctx, "HOSP_001")
	assert.False(t, ok)
}

func TestCache_RatingsViewRoundTrip(t *testing.T) {
	kv := newFakeKV()
	cache := agg.NewCache(kv, time.Minute, zap.NewNop())
	ctx := context.Background()

	_, ok := cache.GetRatingsView(ctx)
	assert.False(t, ok)

	score := 77.5
	simple := []models.HospitalRatingView{
		{HospitalID: "HOSP_001", Name: "General Hospital", Location: "Atlanta, GA", OverallGrade: "B", OverallScore: &score},
	}
	cache.PutRatingsView(ctx, simple)

	got, ok := cache.GetRatingsView(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "HOSP_001", got[0].HospitalID)
	require.NotNil(t, got[0].OverallScore)
	assert.Equal(t, 77.5, *got[0].OverallScore)
}

func TestCache_DisabledWhenNoKV(t *testing.T) {
	cache := agg.NewCache(nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	// 无 KV 时写入是 no-op，读取恒为 miss，不报错
	cache.PutSentiment(ctx, "HOSP_001", &models.SentimentView{})
	_, ok := cache.GetSentiment(ctx, "HOSP_001")
	assert.False(t, ok)
}

func TestCache_CorruptedEntryDropped(t *testing.T) {
	kv := newFakeKV()
	cache := agg.NewCache(kv, time.Minute, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "care-equity:sentiment:HOSP_001", "{not json", 0))

	_, ok := cache.GetSentiment(ctx, "HOSP_001")
	assert.False(t, ok)

	// 损坏条目被清掉
	_, err := kv.Get(ctx, "care-equity:sentiment:HOSP_001")
	assert.Error(t, err)
}
