package service

import (
	"context"
	"fmt"
	"time"

	"github.com/turisouvenir/Care-Equity/internal/aggregator"
	"github.com/turisouvenir/Care-Equity/internal/repository"

	"go.uber.org/zap"
)

// RatingSyncService 评分记录同步服务（轮询模式）
// 定时从外部批量评分服务拉取全量记录并 Upsert 到本地存储，
// 成功后失效合并视图缓存
type RatingSyncService struct {
	client      *ScorerClient
	ratingsRepo repository.RatingsRepository
	cache       *aggregator.Cache
	interval    time.Duration
	logger      *zap.Logger
}

// NewRatingSyncService 创建评分同步服务
func NewRatingSyncService(
	client *ScorerClient,
	ratingsRepo repository.RatingsRepository,
	cache *aggregator.Cache,
	interval time.Duration,
	logger *zap.Logger,
) *RatingSyncService {
	return &RatingSyncService{
		client:      client,
		ratingsRepo: ratingsRepo,
		cache:       cache,
		interval:    interval,
		logger:      logger,
	}
}

// Start 启动轮询循环（阻塞直到 ctx 取消）
// 启动时先同步一次，之后按固定间隔执行；单次失败只记录，下个周期重试
func (s *RatingSyncService) Start(ctx context.Context) error {
	s.logger.Info("Starting rating sync service",
		zap.Duration("interval", s.interval),
	)

	if err := s.SyncOnce(ctx); err != nil {
		s.logger.Warn("Initial rating sync failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Rating sync service stopped")
			return nil
		case <-ticker.C:
			if err := s.SyncOnce(ctx); err != nil {
				s.logger.Warn("Rating sync failed", zap.Error(err))
			}
		}
	}
}

// SyncOnce 执行一次全量同步
func (s *RatingSyncService) SyncOnce(ctx context.Context) error {
	records, err := s.client.FetchRatings(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch ratings: %w", err)
	}

	updated := 0
	for i := range records {
		if err := s.ratingsRepo.UpsertRating(ctx, &records[i]); err != nil {
			s.logger.Warn("Failed to upsert rating record",
				zap.String("hospital_id", records[i].HospitalID),
				zap.Error(err),
			)
			continue
		}
		updated++
	}

	// 有任何更新就让下一次读取重建合并视图
	if updated > 0 {
		s.cache.InvalidateRatingsView(ctx)
	}

	s.logger.Info("Rating sync completed",
		zap.Int("fetched", len(records)),
		zap.Int("updated", updated),
	)
	return nil
}
