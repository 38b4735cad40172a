// internal/domain/visitor/service.go
package visitor

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// Service records storefront visit beacons. Everything here is best
// effort: a lost beacon is acceptable, a failed page load is not, so
// failures are logged and absorbed.
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
	logger      *logrus.Logger
}

// NewService creates a new visitor service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
		logger:      logger,
	}
}

// RecordRequest represents a visit beacon from the storefront
type RecordRequest struct {
	VisitorID  string `json:"visitor_id" binding:"required"`
	Path       string `json:"path" binding:"required"`
	SearchTerm string `json:"search_term"`
	Referrer   string `json:"referrer"`
}

// Record stores a visit row and bumps the day's Redis counters
func (s *Service) Record(ctx context.Context, req *RecordRequest, userAgent, clientIP string) {
	visit := Visit{
		VisitorID:  req.VisitorID,
		Path:       req.Path,
		SearchTerm: req.SearchTerm,
		Referrer:   req.Referrer,
		UserAgent:  userAgent,
		ClientIP:   clientIP,
	}

	if err := s.db.WithContext(ctx).Create(&visit).Error; err != nil {
		s.logger.WithError(err).Debug("Failed to record visit")
		return
	}

	day := time.Now().UTC().Format("20060102")

	pipe := s.redisClient.Pipeline()
	pipe.Incr(ctx, fmt.Sprintf("visits:count:%s", day))
	pipe.PFAdd(ctx, fmt.Sprintf("visits:uniques:%s", day), req.VisitorID)
	if req.SearchTerm != "" {
		pipe.ZIncrBy(ctx, fmt.Sprintf("visits:searches:%s", day), 1, req.SearchTerm)
	}
	pipe.Expire(ctx, fmt.Sprintf("visits:count:%s", day), 48*time.Hour)
	pipe.Expire(ctx, fmt.Sprintf("visits:uniques:%s", day), 48*time.Hour)
	pipe.Expire(ctx, fmt.Sprintf("visits:searches:%s", day), 48*time.Hour)

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.WithError(err).Debug("Failed to update visit counters")
	}
}

// GetSummary aggregates visit activity for the admin dashboard
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	var summary Summary

	if err := s.db.Model(&Visit{}).Count(&summary.TotalVisits).Error; err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	day := time.Now().UTC().Format("20060102")

	if count, err := s.redisClient.Get(ctx, fmt.Sprintf("visits:count:%s", day)).Int64(); err == nil {
		summary.VisitsToday = count
	}

	if uniques, err := s.redisClient.PFCount(ctx, fmt.Sprintf("visits:uniques:%s", day)).Result(); err == nil {
		summary.UniquesToday = uniques
	}

	terms, err := s.redisClient.ZRevRange(ctx, fmt.Sprintf("visits:searches:%s", day), 0, 9).Result()
	if err == nil {
		summary.TopSearchTerms = terms
	} else {
		summary.TopSearchTerms = []string{}
	}

	return &summary, nil
}
