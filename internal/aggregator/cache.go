package aggregator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/turisouvenir/Care-Equity/internal/models"
	"github.com/turisouvenir/Care-Equity/internal/store"

	"go.uber.org/zap"
)

// 缓存 key 前缀
const (
	sentimentKeyPrefix = "care-equity:sentiment:"
	ratingsViewKey     = "care-equity:ratings:view"
)

// Cache 聚合结果缓存（Redis KV + TTL）
// 缓存失败只降级为重新计算，绝不让读请求失败
type Cache struct {
	kv     store.KV
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache 创建聚合结果缓存；kv 为 nil 或 ttl<=0 时所有读取都按 miss 处理
func NewCache(kv store.KV, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{kv: kv, ttl: ttl, logger: logger}
}

func (c *Cache) enabled() bool {
	return c != nil && c.kv != nil && c.ttl > 0
}

// GetSentiment 读取缓存的情感聚合结果
func (c *Cache) GetSentiment(ctx context.Context, hospitalID string) (*models.SentimentView, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.kv.Get(ctx, sentimentKeyPrefix+hospitalID)
	if err != nil {
		if err != store.ErrMiss {
			c.logger.Debug("sentiment cache read failed", zap.String("hospital_id", hospitalID), zap.Error(err))
		}
		return nil, false
	}
	var view models.SentimentView
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		c.logger.Warn("sentiment cache entry corrupted, dropping", zap.String("hospital_id", hospitalID), zap.Error(err))
		_ = c.kv.Del(ctx, sentimentKeyPrefix+hospitalID)
		return nil, false
	}
	return &view, true
}

// PutSentiment 写入情感聚合结果
func (c *Cache) PutSentiment(ctx context.Context, hospitalID string, view *models.SentimentView) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, sentimentKeyPrefix+hospitalID, string(raw), c.ttl); err != nil {
		c.logger.Debug("sentiment cache write failed", zap.String("hospital_id", hospitalID), zap.Error(err))
	}
}

// InvalidateSentiment 评论写入后失效对应医院的情感缓存
func (c *Cache) InvalidateSentiment(ctx context.Context, hospitalID string) {
	if !c.enabled() {
		return
	}
	if err := c.kv.Del(ctx, sentimentKeyPrefix+hospitalID); err != nil {
		c.logger.Debug("sentiment cache invalidation failed", zap.String("hospital_id", hospitalID), zap.Error(err))
	}
}

// GetRatingsView 读取缓存的合并评分视图（未过滤、未排序的全量）
func (c *Cache) GetRatingsView(ctx context.Context) ([]models.HospitalRatingView, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.kv.Get(ctx, ratingsViewKey)
	if err != nil {
		if err != store.ErrMiss {
			c.logger.Debug("ratings view cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var views []models.HospitalRatingView
	if err := json.Unmarshal([]byte(raw), &views); err != nil {
		c.logger.Warn("ratings view cache entry corrupted, dropping", zap.Error(err))
		_ = c.kv.Del(ctx, ratingsViewKey)
		return nil, false
	}
	return views, true
}

// PutRatingsView 写入合并评分视图
func (c *Cache) PutRatingsView(ctx context.Context, views []models.HospitalRatingView) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, ratingsViewKey, string(raw), c.ttl); err != nil {
		c.logger.Debug("ratings view cache write failed", zap.Error(err))
	}
}

// InvalidateRatingsView 评分记录同步后失效合并视图缓存
func (c *Cache) InvalidateRatingsView(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.kv.Del(ctx, ratingsViewKey); err != nil {
		c.logger.Debug("ratings view cache invalidation failed", zap.Error(err))
	}
}
