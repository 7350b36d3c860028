package aggregator_test

import (
	"testing"

	agg "github.com/turisouvenir/Care-Equity/internal/aggregator"
	"github.com/turisouvenir/Care-Equity/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewsWithRatings(ratings ...int) []domain.Review {
	out := make([]domain.Review, 0, len(ratings))
	for i, r := range ratings {
		out = append(out, domain.Review{
			ReviewID:       string(rune('a' + i)),
			HospitalID:     "HOSP_001",
			Rating:         r,
			Comment:        "comment",
			RaceEthnicity:  "Other",
			ExperienceType: "General Feedback",
			Anonymous:      true,
		})
	}
	return out
}

func TestComputeSentiment_EmptyIsDefinedDefault(t *testing.T) {
	view := agg.ComputeSentiment(nil, agg.DefaultSentimentThresholds())

	assert.Equal(t, agg.SentimentNeutral, view.Sentiment)
	assert.Equal(t, 0.0, view.AverageRating)
	assert.Equal(t, 0, view.TotalReviews)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, view.RatingDistribution)
	assert.NotEmpty(t, view.Summary)
}

func TestComputeSentiment_PositiveWithDistribution(t *testing.T) {
	// [5,5,5,4,2] → avg 4.2 → positive
	view := agg.ComputeSentiment(reviewsWithRatings(5, 5, 5, 4, 2), agg.DefaultSentimentThresholds())

	assert.Equal(t, 4.2, view.AverageRating)
	assert.Equal(t, agg.SentimentPositive, view.Sentiment)
	assert.Equal(t, 5, view.TotalReviews)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 0, 4: 1, 5: 3}, view.RatingDistribution)
}

func TestComputeSentiment_ThresholdsInclusiveLowerBound(t *testing.T) {
	th := agg.DefaultSentimentThresholds()

	// 恰好 4.0 → positive（含下界）
	assert.Equal(t, agg.SentimentPositive, agg.ComputeSentiment(reviewsWithRatings(4, 4), th).Sentiment)
	// 恰好 3.0 → neutral（含下界）
	assert.Equal(t, agg.SentimentNeutral, agg.ComputeSentiment(reviewsWithRatings(3, 3), th).Sentiment)
	// 3.0 以下 → negative
	assert.Equal(t, agg.SentimentNegative, agg.ComputeSentiment(reviewsWithRatings(2, 3), th).Sentiment)
}

func TestComputeSentiment_ConfigurableThresholds(t *testing.T) {
	strict := agg.SentimentThresholds{PositiveMin: 4.8, NeutralMin: 4.0}

	view := agg.ComputeSentiment(reviewsWithRatings(5, 4, 4), strict)
	assert.Equal(t, 4.3, view.AverageRating)
	assert.Equal(t, agg.SentimentNeutral, view.Sentiment)
}

func TestComputeSentiment_SummaryPluralisation(t *testing.T) {
	one := agg.ComputeSentiment(reviewsWithRatings(5), agg.DefaultSentimentThresholds())
	assert.Contains(t, one.Summary, "1 review.")
	assert.NotContains(t, one.Summary, "1 reviews")

	many := agg.ComputeSentiment(reviewsWithRatings(5, 4, 3), agg.DefaultSentimentThresholds())
	assert.Contains(t, many.Summary, "3 reviews.")
}

func TestComputeSentiment_SummaryBands(t *testing.T) {
	th := agg.DefaultSentimentThresholds()
	cases := []struct {
		name    string
		ratings []int
		want    string
	}{
		{"outstanding", []int{5, 5}, "outstanding"},       // 5.0 >= 4.5
		{"very good", []int{4, 4}, "very good"},           // 4.0
		{"mixed", []int{3, 3}, "mixed"},                   // 3.0
		{"poor", []int{2, 2}, "poor"},                     // 2.0
		{"very poor", []int{1, 1}, "very poor"},           // 1.0
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := agg.ComputeSentiment(reviewsWithRatings(tc.ratings...), th)
			assert.Contains(t, view.Summary, tc.want)
		})
	}
}

func TestComputeSentiment_Deterministic(t *testing.T) {
	reviews := reviewsWithRatings(5, 3, 1, 4, 4, 2)
	th := agg.DefaultSentimentThresholds()

	first := agg.ComputeSentiment(reviews, th)
	second := agg.ComputeSentiment(reviews, th)
	require.Equal(t, first, second)
}
