package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/turisouvenir/Care-Equity/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// scorerResponse 评分服务响应信封
type scorerResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// scorerRating 评分服务的单条评分记录
type scorerRating struct {
	HospitalID     string                        `json:"hospitalId"`
	OverallScore   float64                       `json:"overallScore"`
	OverallGrade   string                        `json:"overallGrade"`
	EquityGapScore float64                       `json:"equityGapScore"`
	GroupBreakdown map[string]domain.GroupRating `json:"groupBreakdown"`
	UpdatedAt      time.Time                     `json:"updatedAt"`
}

// ScorerClient 外部批量评分服务 API 客户端
// 评分计算（结果数据+评论 → 分数/等级/公平性差距）由独立的批处理服务完成，
// 本服务只拉取其产出
type ScorerClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewScorerClient 创建评分服务客户端
func NewScorerClient(baseURL, apiKey string, logger *zap.Logger) *ScorerClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second). // 全量拉取可能较慢
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return &ScorerClient{
		httpClient: client,
		logger:     logger,
	}
}

// FetchRatings 拉取全量评分记录
func (c *ScorerClient) FetchRatings(ctx context.Context) ([]domain.RatingRecord, error) {
	c.logger.Info("Calling scorer API: list ratings")

	var response scorerResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&response).
		Get("/api/v1/ratings")
	if err != nil {
		c.logger.Error("Scorer API call failed", zap.Error(err))
		return nil, fmt.Errorf("failed to call scorer API: %w", err)
	}

	if resp.StatusCode() != 200 || !response.Success {
		c.logger.Error("Scorer API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("error", response.Error),
		)
		return nil, fmt.Errorf("scorer API error: %s (status: %d)", response.Error, resp.StatusCode())
	}

	var ratings []scorerRating
	if err := json.Unmarshal(response.Data, &ratings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ratings: %w", err)
	}

	records := make([]domain.RatingRecord, 0, len(ratings))
	for _, r := range ratings {
		records = append(records, domain.RatingRecord{
			HospitalID:     r.HospitalID,
			OverallScore:   r.OverallScore,
			OverallGrade:   r.OverallGrade,
			EquityGapScore: r.EquityGapScore,
			GroupBreakdown: r.GroupBreakdown,
			UpdatedAt:      r.UpdatedAt,
		})
	}

	c.logger.Info("Successfully retrieved ratings from scorer API",
		zap.Int("rating_count", len(records)),
	)

	return records, nil
}
