package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type redisSlot struct {
	client    *redis.Client
	keyPrefix string
	log       *logrus.Logger
}

// NewRedisSlot stores slot values as plain redis strings under keyPrefix+key,
// without expiration.
func NewRedisSlot(client *redis.Client, keyPrefix string, logger *logrus.Logger) domain.Slot {
	return &redisSlot{client: client, keyPrefix: keyPrefix, log: logger}
}

func (s *redisSlot) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		s.log.Errorf("Repository: failed to read redis slot %s: %v", key, err)
		return "", false, fmt.Errorf("could not read slot %s: %w", key, err)
	}
	return val, true, nil
}

func (s *redisSlot) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		s.log.Errorf("Repository: failed to write redis slot %s: %v", key, err)
		return fmt.Errorf("could not write slot %s: %w", key, err)
	}
	return nil
}

func (s *redisSlot) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		s.log.Errorf("Repository: failed to delete redis slot %s: %v", key, err)
		return fmt.Errorf("could not delete slot %s: %w", key, err)
	}
	return nil
}
