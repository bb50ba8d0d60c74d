package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheOptions(key string, options []upstream.LocationOption, expiration time.Duration) error
	GetOptions(key string) ([]upstream.LocationOption, error)
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 CacheOptions caches a location option list with expiration
func (s *RedisService) CacheOptions(key string, options []upstream.LocationOption, expiration time.Duration) error {
	return s.Set("location_options:"+key, options, expiration)
}

// 5 GetOptions gets a cached location option list
func (s *RedisService) GetOptions(key string) ([]upstream.LocationOption, error) {
	var options []upstream.LocationOption
	if err := s.Get("location_options:"+key, &options); err != nil {
		return nil, err
	}
	return options, nil
}
