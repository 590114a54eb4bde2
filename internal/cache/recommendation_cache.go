package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mentara/internal/model"
)

// RecommendationCache stores the last ranked result set per client: the full
// JSON payload for replay, plus a ZSET keyed by final score so the top-N ids
// can be read without deserializing everything.
type RecommendationCache interface {
	Set(ctx context.Context, clientID string, results []model.MatchResult) error
	Get(ctx context.Context, clientID string) ([]model.MatchResult, error)
	TopIDs(ctx context.Context, clientID string, limit int) ([]RankedID, error)
	Delete(ctx context.Context, clientID string) error
}

// RankedID is one entry of the score-ordered id index.
type RankedID struct {
	TherapistID string  `json:"therapistId"`
	FinalScore  float64 `json:"finalScore"`
	Rank        int     `json:"rank"`
}

type recommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecommendationCache creates a new recommendation cache
func NewRecommendationCache(client *redis.Client) RecommendationCache {
	return &recommendationCache{
		client: client,
		ttl:    time.Hour, // rankings are cheap to recompute
	}
}

func (c *recommendationCache) key(clientID string) string {
	return fmt.Sprintf("client:%s:recs", clientID)
}

func (c *recommendationCache) rankKey(clientID string) string {
	return fmt.Sprintf("client:%s:rank", clientID)
}

func (c *recommendationCache) Set(ctx context.Context, clientID string, results []model.MatchResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(clientID), data, c.ttl).Err(); err != nil {
		return err
	}

	rankKey := c.rankKey(clientID)
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, rankKey)
	for _, r := range results {
		pipe.ZAdd(ctx, rankKey, redis.Z{
			Score:  r.FinalScore,
			Member: r.TherapistID,
		})
	}
	pipe.Expire(ctx, rankKey, c.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *recommendationCache) Get(ctx context.Context, clientID string) ([]model.MatchResult, error) {
	data, err := c.client.Get(ctx, c.key(clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var results []model.MatchResult
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *recommendationCache) TopIDs(ctx context.Context, clientID string, limit int) ([]RankedID, error) {
	zs, err := c.client.ZRevRangeWithScores(ctx, c.rankKey(clientID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]RankedID, len(zs))
	for i, z := range zs {
		entries[i] = RankedID{
			TherapistID: z.Member.(string),
			FinalScore:  z.Score,
			Rank:        i + 1,
		}
	}
	return entries, nil
}

func (c *recommendationCache) Delete(ctx context.Context, clientID string) error {
	return c.client.Del(ctx, c.key(clientID), c.rankKey(clientID)).Err()
}
