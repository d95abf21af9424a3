package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/models"
)

const (
	settingsKeyPrefix = "audit:settings:"

	cachedEnabled  = "1"
	cachedDisabled = "0"
	cachedAbsent   = "-"
)

// CachedSettingsRepository is a Redis read-through, write-through cache in front of a SettingsRepository.
// Redis failures fall back to the underlying repository.
type CachedSettingsRepository struct {
	inner  SettingsRepository
	redis  *redis.Client
	ttl    time.Duration
	logger logrus.FieldLogger
}

// NewCachedSettingsRepository wraps inner with a Redis cache
func NewCachedSettingsRepository(inner SettingsRepository, client *redis.Client, ttl time.Duration, logger logrus.FieldLogger) *CachedSettingsRepository {
	return &CachedSettingsRepository{
		inner:  inner,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func settingsKey(contentType string) string {
	return settingsKeyPrefix + contentType
}

// GetByContentType returns the cached toggle, loading it on a miss.
// Cached hits carry only the content type and enabled flag.
func (c *CachedSettingsRepository) GetByContentType(ctx context.Context, contentType string) (*models.ContentTypeSetting, error) {
	key := settingsKey(contentType)

	cached, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		switch cached {
		case cachedAbsent:
			return nil, nil
		case cachedEnabled, cachedDisabled:
			return &models.ContentTypeSetting{ContentType: contentType, Enabled: cached == cachedEnabled}, nil
		}
	case !errors.Is(err, redis.Nil):
		c.logger.WithError(err).WithField("content_type", contentType).Debug("settings cache read failed")
	}

	setting, err := c.inner.GetByContentType(ctx, contentType)
	if err != nil {
		return nil, err
	}

	value := cachedAbsent
	if setting != nil {
		value = encodeEnabled(setting.Enabled)
	}
	if err := c.redis.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("content_type", contentType).Debug("settings cache write failed")
	}

	return setting, nil
}

// Upsert writes through to the repository and refreshes the cached value
func (c *CachedSettingsRepository) Upsert(ctx context.Context, contentType string, enabled bool) error {
	if err := c.inner.Upsert(ctx, contentType, enabled); err != nil {
		return err
	}

	key := settingsKey(contentType)
	if err := c.redis.Set(ctx, key, encodeEnabled(enabled), c.ttl).Err(); err != nil {
		// A stale cached value would outlive the toggle; drop it instead
		c.logger.WithError(err).WithField("content_type", contentType).Warn("settings cache refresh failed")
		if err := c.redis.Del(ctx, key).Err(); err != nil {
			c.logger.WithError(err).WithField("content_type", contentType).Error("settings cache invalidation failed")
		}
	}

	return nil
}

// GetAll reads straight from the repository
func (c *CachedSettingsRepository) GetAll(ctx context.Context) ([]models.ContentTypeSetting, error) {
	return c.inner.GetAll(ctx)
}

func encodeEnabled(enabled bool) string {
	if enabled {
		return cachedEnabled
	}
	return cachedDisabled
}
