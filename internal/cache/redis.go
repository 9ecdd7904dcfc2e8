package cache

import (
	"context"
	"fmt"
	"os"

	"macrofit/internal/plan"

	"github.com/redis/go-redis/v9"
)

// RedisClient holds the connection used for cached weekly plans.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// PlanCache returns the week-plan cache view for one user, keyed by
// week-start date. Plans are never expired, only overwritten.
func (r *RedisClient) PlanCache(userID uint) plan.Cache {
	return &userPlanCache{client: r.client, userID: userID}
}

type userPlanCache struct {
	client *redis.Client
	userID uint
}

func (c *userPlanCache) key(weekKey string) string {
	return fmt.Sprintf("plan:%d:%s", c.userID, weekKey)
}

func (c *userPlanCache) Get(ctx context.Context, weekKey string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.key(weekKey)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // no cached plan for this week
		}
		return nil, false, fmt.Errorf("failed to get plan from Redis: %w", err)
	}
	return data, true, nil
}

func (c *userPlanCache) Set(ctx context.Context, weekKey string, payload []byte) error {
	if err := c.client.Set(ctx, c.key(weekKey), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store plan in Redis: %w", err)
	}
	return nil
}
