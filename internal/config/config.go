package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config care-equity（HTTP API）配置
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  DatabaseConfig
	Redis     struct {
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	Scorer    ScorerConfig
	Analytics AnalyticsConfig
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN 获取数据库连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// ScorerConfig 外部批量评分服务配置
// 评分记录由独立的批处理服务产出，本服务定时拉取
type ScorerConfig struct {
	HTTPAddress  string // 评分服务地址
	APIKey       string // API Key（可选）
	SyncEnabled  bool   // 是否启用定时同步（默认 true）
	SyncInterval int    // 同步间隔（秒）
}

// AnalyticsConfig 聚合分析参数
// 阈值是产品参数而不是硬性约定，保留为可配置项以便调整
type AnalyticsConfig struct {
	SentimentPositiveMin float64 // 平均分 >= 此值 → positive
	SentimentNeutralMin  float64 // 平均分 >= 此值 → neutral（否则 negative）
	DisparityGradeGap    int     // 等级序数差 >= 此值 → 显著差异
	DisparityGroupA      string  // 参与差异比较的族裔分组
	DisparityGroupB      string
	CacheTTL             int // 聚合结果缓存 TTL（秒，0 表示不缓存）
}

// ReviewEventStream 评论创建事件流（批量评分服务消费）
const ReviewEventStream = "care-equity:events:reviews"

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to true for local dev: if DB is unavailable, care-equity falls back to
	// in-memory repositories so the API still answers.
	cfg.DBEnabled = getEnv("DB_ENABLED", "true") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "careequity")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	// Scorer 配置
	cfg.Scorer.HTTPAddress = getEnv("SCORER_HTTP_ADDRESS", "http://localhost:9090")
	cfg.Scorer.APIKey = getEnv("SCORER_API_KEY", "")
	cfg.Scorer.SyncEnabled = getEnv("SCORER_SYNC_ENABLED", "true") == "true"
	cfg.Scorer.SyncInterval = parseInt(getEnv("SCORER_SYNC_INTERVAL", "300"), 300)

	// Analytics 配置（默认值来自产品定义）
	cfg.Analytics.SentimentPositiveMin = parseFloat(getEnv("SENTIMENT_POSITIVE_MIN", "4.0"), 4.0)
	cfg.Analytics.SentimentNeutralMin = parseFloat(getEnv("SENTIMENT_NEUTRAL_MIN", "3.0"), 3.0)
	cfg.Analytics.DisparityGradeGap = parseInt(getEnv("DISPARITY_GRADE_GAP", "2"), 2)
	cfg.Analytics.DisparityGroupA = getEnv("DISPARITY_GROUP_A", "Black")
	cfg.Analytics.DisparityGroupB = getEnv("DISPARITY_GROUP_B", "White")
	cfg.Analytics.CacheTTL = parseInt(getEnv("ANALYTICS_CACHE_TTL", "60"), 60)

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
