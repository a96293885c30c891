// README: Session store backed by Redis sorted sets with per-session TTL.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "chat:session:%s"

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewStore returns a session store whose keys expire ttl after the last
// append, after which the whole session may be purged.
func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

// Append writes one turn, scored by its logical timestamp, and refreshes the
// session expiry.
func (s *Store) Append(ctx context.Context, sessionID string, t StoredTurn) error {
	member, err := json.Marshal(t)
	if err != nil {
		return err
	}
	key := sessionKey(sessionID)
	pipe := s.redis.Pipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(t.Timestamp), Member: member})
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to limit most-recent turns in chronological order.
// 2×limit raw records are read newest-first so paired user/assistant rows are
// captured, then the window is trimmed from the front.
func (s *Store) Recent(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	raw, err := s.redis.ZRevRange(ctx, sessionKey(sessionID), 0, int64(2*limit-1)).Result()
	if err != nil {
		return nil, err
	}

	turns := make([]Turn, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- { // reverse to chronological
		var st StoredTurn
		if err := json.Unmarshal([]byte(raw[i]), &st); err != nil {
			return nil, err
		}
		turns = append(turns, Turn{Role: st.Role, Content: st.Content})
	}
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(sessionKeyPrefix, sessionID)
}
