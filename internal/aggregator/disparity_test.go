package aggregator_test

import (
	"testing"

	agg "github.com/turisouvenir/Care-Equity/internal/aggregator"
	"github.com/turisouvenir/Care-Equity/internal/domain"
	"github.com/turisouvenir/Care-Equity/internal/models"

	"github.com/stretchr/testify/assert"
)

func breakdown(blackGrade, whiteGrade string) map[string]domain.GroupRating {
	m := map[string]domain.GroupRating{}
	if blackGrade != "" {
		m["Black"] = domain.GroupRating{Grade: blackGrade}
	}
	if whiteGrade != "" {
		m["White"] = domain.GroupRating{Grade: whiteGrade}
	}
	return m
}

func TestHasSignificantDisparity(t *testing.T) {
	gap := agg.DefaultDisparityGradeGap

	cases := []struct {
		name  string
		black string
		white string
		want  bool
	}{
		{"A vs D is significant", "A", "D", true},  // |4-1| = 3
		{"A vs C is significant", "A", "C", true},  // |4-2| = 2
		{"D vs B is significant", "D", "B", true},  // 方向无关
		{"B vs C is not significant", "B", "C", false}, // |3-2| = 1
		{"A vs A is not significant", "A", "A", false},
		{"N/A on one side cannot compare", "N/A", "A", false},
		{"missing group cannot compare", "", "A", false},
		{"unknown grade cannot compare", "F", "A", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := agg.HasSignificantDisparity(breakdown(tc.black, tc.white), "Black", "White", gap)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasSignificantDisparity_ConfigurableGap(t *testing.T) {
	bd := breakdown("B", "C") // 序数差 1

	assert.False(t, agg.HasSignificantDisparity(bd, "Black", "White", 2))
	assert.True(t, agg.HasSignificantDisparity(bd, "Black", "White", 1))
}

func TestGradeOrdinal(t *testing.T) {
	assert.Equal(t, 4, agg.GradeOrdinal("A"))
	assert.Equal(t, 3, agg.GradeOrdinal("B"))
	assert.Equal(t, 2, agg.GradeOrdinal("C"))
	assert.Equal(t, 1, agg.GradeOrdinal("D"))
	assert.Equal(t, 0, agg.GradeOrdinal(domain.GradeNA))
	assert.Equal(t, 0, agg.GradeOrdinal(""))
}

func TestFlagDisparities(t *testing.T) {
	views := []models.HospitalRatingView{
		{HospitalID: "HOSP_001", GroupBreakdown: breakdown("A", "D")},
		{HospitalID: "HOSP_002", GroupBreakdown: breakdown("B", "C")},
		{HospitalID: "HOSP_003", GroupBreakdown: map[string]domain.GroupRating{}},
	}

	agg.FlagDisparities(views, "Black", "White", agg.DefaultDisparityGradeGap)

	assert.True(t, views[0].SignificantDisparity)
	assert.False(t, views[1].SignificantDisparity)
	assert.False(t, views[2].SignificantDisparity)
}
