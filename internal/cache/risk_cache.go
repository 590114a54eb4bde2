package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mentara/internal/model"
)

// RiskCache handles Redis operations for computed risk profiles
type RiskCache interface {
	Set(ctx context.Context, clientID string, profile *model.RiskProfile) error
	Get(ctx context.Context, clientID string) (*model.RiskProfile, error)
	Delete(ctx context.Context, clientID string) error
}

type riskCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRiskCache creates a new risk profile cache
func NewRiskCache(client *redis.Client) RiskCache {
	return &riskCache{
		client: client,
		ttl:    24 * time.Hour, // profiles go stale after a day
	}
}

func (c *riskCache) key(clientID string) string {
	return fmt.Sprintf("client:%s:risk", clientID)
}

func (c *riskCache) Set(ctx context.Context, clientID string, profile *model.RiskProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(clientID), data, c.ttl).Err()
}

func (c *riskCache) Get(ctx context.Context, clientID string) (*model.RiskProfile, error) {
	data, err := c.client.Get(ctx, c.key(clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var profile model.RiskProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *riskCache) Delete(ctx context.Context, clientID string) error {
	return c.client.Del(ctx, c.key(clientID)).Err()
}
