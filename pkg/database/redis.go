package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Hanikakadiya/Master-Quiz/internal/config"
)

// Режимы развертывания Redis
const (
	RedisModeSingle   = "single"
	RedisModeSentinel = "sentinel"
	RedisModeCluster  = "cluster"
)

const redisPingTimeout = 5 * time.Second

// RedisOptions переводит секцию redis конфигурации в опции go-redis.
// В режиме single используется только первый адрес, иначе клиент станет кластерным.
func RedisOptions(cfg config.RedisConfig) (*redis.UniversalOptions, error) {
	addrs := cfg.Addresses()
	if len(addrs) == 0 {
		return nil, errors.New("redis: neither redis.addr nor redis.addrs is set")
	}

	opts := &redis.UniversalOptions{
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoff) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoff) * time.Millisecond,
	}

	switch cfg.Mode {
	case "", RedisModeSingle:
		opts.Addrs = addrs[:1]
	case RedisModeSentinel:
		if cfg.MasterName == "" {
			return nil, errors.New("redis: sentinel mode requires redis.master_name")
		}
		opts.Addrs = addrs
		opts.MasterName = cfg.MasterName
	case RedisModeCluster:
		if cfg.DB != 0 {
			return nil, fmt.Errorf("redis: cluster mode supports only db 0, got %d", cfg.DB)
		}
		opts.Addrs = addrs
	default:
		return nil, fmt.Errorf("redis: unsupported redis mode %q", cfg.Mode)
	}
	return opts, nil
}

// NewUniversalRedisClient создает клиент Redis для сессий, лимитов и ленты лидеров
// и проверяет соединение. При неудачной проверке клиент закрывается.
func NewUniversalRedisClient(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	opts, err := RedisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewUniversalClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %v: %w", opts.Addrs, err)
	}

	log.Printf("[Redis] Подключено к %v (режим %q, канал ленты %q)", opts.Addrs, cfg.Mode, cfg.FeedChannel)
	return client, nil
}
