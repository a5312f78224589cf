package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultLimiterPrefix = "ratelimit:"
	storageOpTimeout     = 2 * time.Second
)

// LimiterStorage реализует fiber.Storage поверх Redis, чтобы счётчики
// rate limiter были общими для всех экземпляров сервиса
type LimiterStorage struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
}

var _ fiber.Storage = (*LimiterStorage)(nil)

// NewLimiterStorage создает хранилище; prefix пустой - используется "ratelimit:"
func NewLimiterStorage(r *Redis, prefix string) *LimiterStorage {
	if prefix == "" {
		prefix = defaultLimiterPrefix
	}
	return &LimiterStorage{
		client: r.client,
		logger: r.logger,
		prefix: prefix,
	}
}

func (s *LimiterStorage) key(k string) string {
	return s.prefix + k
}

// Get возвращает nil, nil для отсутствующего ключа, как того требует fiber.Storage
func (s *LimiterStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageOpTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to get limiter entry", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("limiter storage get: %w", err)
	}

	return val, nil
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageOpTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), val, exp).Err(); err != nil {
		s.logger.Error("Failed to set limiter entry", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("limiter storage set: %w", err)
	}

	return nil
}

func (s *LimiterStorage) Delete(key string) error {
	if key == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageOpTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("limiter storage delete: %w", err)
	}
	return nil
}

// Reset удаляет все ключи с префиксом хранилища
func (s *LimiterStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("limiter storage reset: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("limiter storage reset scan: %w", err)
	}

	return nil
}

// Close ничего не делает: клиентом владеет Redis
func (s *LimiterStorage) Close() error {
	return nil
}
