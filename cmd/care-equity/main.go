package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/turisouvenir/Care-Equity/internal/aggregator"
	"github.com/turisouvenir/Care-Equity/internal/config"
	"github.com/turisouvenir/Care-Equity/internal/database"
	"github.com/turisouvenir/Care-Equity/internal/domain"
	httpapi "github.com/turisouvenir/Care-Equity/internal/http"
	"github.com/turisouvenir/Care-Equity/internal/logger"
	redisx "github.com/turisouvenir/Care-Equity/internal/redis"
	"github.com/turisouvenir/Care-Equity/internal/repository"
	"github.com/turisouvenir/Care-Equity/internal/service"
	"github.com/turisouvenir/Care-Equity/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "care-equity")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	redisClient := redisx.NewClient(cfg)
	var cache *aggregator.Cache
	if err := redisx.Ping(context.Background(), redisClient); err != nil {
		log.Warn("Redis unavailable, aggregation cache disabled", zap.Error(err))
		_ = redisClient.Close()
		redisClient = nil
	} else {
		kv := store.NewRedisKV(redisClient)
		cache = aggregator.NewCache(kv, time.Duration(cfg.Analytics.CacheTTL)*time.Second, log)
	}

	// DB 不可用时退回内存 repo，API 仍可用（本地联调）
	var db *sql.DB
	var hospitalsRepo repository.HospitalsRepository
	var reviewsRepo repository.ReviewsRepository
	var ratingsRepo repository.RatingsRepository
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for care-equity")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory repositories", zap.Error(err))
		}
	}
	if db != nil {
		hospitalsRepo = repository.NewPostgresHospitalsRepository(db)
		reviewsRepo = repository.NewPostgresReviewsRepository(db)
		ratingsRepo = repository.NewPostgresRatingsRepository(db)
	} else {
		memHospitals := repository.NewMemoryHospitalsRepository()
		seedSampleHospitals(memHospitals, log)
		hospitalsRepo = memHospitals
		reviewsRepo = repository.NewMemoryReviewsRepository()
		ratingsRepo = repository.NewMemoryRatingsRepository()
	}

	thresholds := aggregator.SentimentThresholds{
		PositiveMin: cfg.Analytics.SentimentPositiveMin,
		NeutralMin:  cfg.Analytics.SentimentNeutralMin,
	}

	hospitalService := service.NewHospitalService(hospitalsRepo, log)
	reviewService := service.NewReviewService(reviewsRepo, hospitalsRepo, redisClient, cache, log)
	sentimentService := service.NewSentimentService(reviewsRepo, hospitalsRepo, cache, thresholds, log)
	ratingService := service.NewRatingService(hospitalsRepo, ratingsRepo, cache, cfg.Analytics, log)

	router := httpapi.NewRouter(log)
	router.RegisterHealthRoute()
	router.RegisterHospitalRoutes(httpapi.NewHospitalHandler(hospitalService, sentimentService, log))
	router.RegisterReviewRoutes(httpapi.NewReviewHandler(reviewService, log))
	router.RegisterRatingRoutes(httpapi.NewRatingHandler(ratingService, log))
	router.RegisterAdminRosterRoutes(httpapi.NewRosterHandler(hospitalsRepo, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 后台定时拉取批量评分服务的评分记录
	if cfg.Scorer.SyncEnabled {
		scorerClient := service.NewScorerClient(cfg.Scorer.HTTPAddress, cfg.Scorer.APIKey, log)
		sync := service.NewRatingSyncService(
			scorerClient,
			ratingsRepo,
			cache,
			time.Duration(cfg.Scorer.SyncInterval)*time.Second,
			log,
		)
		go func() {
			_ = sync.Start(ctx)
		}()
	}

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case <-errCh:
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}

// seedSampleHospitals 内存模式下预置少量目录数据，便于前端联调
func seedSampleHospitals(repo repository.HospitalsRepository, log *zap.Logger) {
	ctx := context.Background()
	for _, h := range []domain.Hospital{
		{HospitalID: "HOSP_001", Name: "General Hospital", City: "Atlanta", State: "GA"},
		{HospitalID: "HOSP_002", Name: "Mercy Medical Center", City: "Denver", State: "CO"},
		{HospitalID: "HOSP_003", Name: "Lakeside Clinic", City: "Atlanta", State: "GA"},
	} {
		h := h
		if err := repo.UpsertHospital(ctx, &h); err != nil {
			log.Warn("failed to seed hospital", zap.String("hospital_id", h.HospitalID), zap.Error(err))
		}
	}
}
