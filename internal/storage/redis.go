package storage

import (
	"context"

	"github.com/redis/go-redis/v9"

	"mealdash/internal/domain"
)

// FrequentItemsCache keeps a per-user sorted set of menu item order counts.
type FrequentItemsCache struct {
	Client *redis.Client
}

func NewFrequentItemsCache(client *redis.Client) *FrequentItemsCache {
	return &FrequentItemsCache{Client: client}
}

func (c *FrequentItemsCache) key(userID string) string {
	return "frequent_items:" + userID
}

func (c *FrequentItemsCache) Increment(ctx context.Context, userID, menuItemID string) (int64, error) {
	score, err := c.Client.ZIncrBy(ctx, c.key(userID), 1, menuItemID).Result()
	if err != nil {
		return 0, err
	}
	return int64(score), nil
}

// Top returns the user's most ordered items, highest count first.
func (c *FrequentItemsCache) Top(ctx context.Context, userID string, limit int64) ([]domain.ItemCount, error) {
	members, err := c.Client.ZRevRangeWithScores(ctx, c.key(userID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]domain.ItemCount, 0, len(members))
	for _, member := range members {
		id, ok := member.Member.(string)
		if !ok {
			continue
		}
		counts = append(counts, domain.ItemCount{MenuItemID: id, Count: int64(member.Score)})
	}
	return counts, nil
}
