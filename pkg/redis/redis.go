package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const revokedTokenPrefix = "revoked_token:"

// IRedis keeps the deny-list of access tokens that were logged out before
// they expired.
type IRedis interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	Close() error
}

type redisClient struct {
	client *redis.Client
	log    *logrus.Logger
}

func New(log *logrus.Logger) IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	log.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		log.Info("Successfully connected to Redis")
	}

	return NewWithClient(client, log)
}

func NewWithClient(client *redis.Client, log *logrus.Logger) IRedis {
	return &redisClient{client: client, log: log}
}

func (r *redisClient) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		r.log.WithFields(logrus.Fields{
			"token_id": tokenID,
			"error":    err.Error(),
		}).Error("Failed to revoke token")
		return err
	}

	r.log.WithField("token_id", tokenID).Debug("Token revoked")
	return nil
}

func (r *redisClient) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"token_id": tokenID,
			"error":    err.Error(),
		}).Error("Failed to check token revocation")
		return false, err
	}
	return n > 0, nil
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
