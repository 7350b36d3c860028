package aggregator

import (
	"fmt"
	"math"

	"github.com/turisouvenir/Care-Equity/internal/domain"
	"github.com/turisouvenir/Care-Equity/internal/models"
)

// 情感标签
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// SentimentThresholds 情感分类阈值（产品参数，下界含等于）
type SentimentThresholds struct {
	PositiveMin float64 // averageRating >= PositiveMin → positive
	NeutralMin  float64 // averageRating >= NeutralMin → neutral，否则 negative
}

// DefaultSentimentThresholds 产品默认阈值
func DefaultSentimentThresholds() SentimentThresholds {
	return SentimentThresholds{PositiveMin: 4.0, NeutralMin: 3.0}
}

// ComputeSentiment 聚合单家医院的全部评论
// 空列表是定义好的默认路径（neutral + 全零直方图），不是错误
// 纯函数：同样的输入永远产生同样的输出，不依赖墙钟时间
func ComputeSentiment(reviews []domain.Review, th SentimentThresholds) models.SentimentView {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	if len(reviews) == 0 {
		return models.SentimentView{
			Sentiment:          SentimentNeutral,
			Summary:            "No reviews have been submitted for this hospital yet.",
			AverageRating:      0,
			TotalReviews:       0,
			RatingDistribution: dist,
		}
	}

	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
		if rv.Rating >= 1 && rv.Rating <= 5 {
			dist[rv.Rating]++
		}
	}

	// 展示用平均分保留一位小数；后续没有依赖未取整值的计算
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10

	var sentiment string
	switch {
	case avg >= th.PositiveMin:
		sentiment = SentimentPositive
	case avg >= th.NeutralMin:
		sentiment = SentimentNeutral
	default:
		sentiment = SentimentNegative
	}

	return models.SentimentView{
		Sentiment:          sentiment,
		Summary:            summaryForScore(avg, len(reviews)),
		AverageRating:      avg,
		TotalReviews:       len(reviews),
		RatingDistribution: dist,
	}
}

// summaryForScore 按固定分数段选取文案，并追加评论数（正确单复数）
func summaryForScore(avg float64, total int) string {
	var base string
	switch {
	case avg >= 4.5:
		base = "Patients report outstanding experiences at this hospital."
	case avg >= 4.0:
		base = "Patients report very good experiences at this hospital."
	case avg >= 3.0:
		base = "Patients report mixed experiences at this hospital."
	case avg >= 2.0:
		base = "Patients report poor experiences at this hospital."
	default:
		base = "Patients report very poor experiences at this hospital."
	}

	if total == 1 {
		return base + " Based on 1 review."
	}
	return fmt.Sprintf("%s Based on %d reviews.", base, total)
}
