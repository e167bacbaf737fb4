package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const nameCacheTTL = 10 * time.Minute

// NameCache stores resolved display names with a TTL so leaderboard
// renders don't hammer the transport directory.
type NameCache struct {
	rdb goredis.Cmdable
}

func NewNameCache(rdb goredis.Cmdable) *NameCache {
	return &NameCache{rdb: rdb}
}

func (c *NameCache) Get(ctx context.Context, userID int64) (string, bool, error) {
	name, err := c.rdb.Get(ctx, nameKey(userID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached name for user %d: %w", userID, err)
	}
	return name, true, nil
}

func (c *NameCache) Set(ctx context.Context, userID int64, name string) error {
	if err := c.rdb.Set(ctx, nameKey(userID), name, nameCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache name for user %d: %w", userID, err)
	}
	return nil
}

func nameKey(userID int64) string {
	return "name:" + strconv.FormatInt(userID, 10)
}
