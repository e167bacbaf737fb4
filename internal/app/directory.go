package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/moodguard/moodguard/internal/domain"
)

// Directory resolves user IDs to display names. Lookups are cached and
// deduplicated, so a leaderboard render triggers at most one transport
// call per user.
type Directory struct {
	transport domain.Transport
	cache     domain.NameCache
	group     singleflight.Group
}

func NewDirectory(transport domain.Transport, cache domain.NameCache) *Directory {
	return &Directory{transport: transport, cache: cache}
}

// DisplayName never fails: on lookup errors it falls back to a numeric
// placeholder so rendering can proceed.
func (d *Directory) DisplayName(ctx context.Context, userID int64) string {
	name, found, err := d.cache.Get(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "name cache read failed", "user_id", userID, "error", err)
	} else if found {
		return name
	}

	resolved, err, _ := d.group.Do(strconv.FormatInt(userID, 10), func() (any, error) {
		name, err := d.transport.GetUserDisplayName(ctx, userID)
		if err != nil {
			return "", err
		}
		if err := d.cache.Set(ctx, userID, name); err != nil {
			slog.WarnContext(ctx, "name cache write failed", "user_id", userID, "error", err)
		}
		return name, nil
	})
	if err != nil {
		slog.WarnContext(ctx, "display name lookup failed", "user_id", userID, "error", err)
		return fmt.Sprintf("user %d", userID)
	}
	return resolved.(string)
}
