package notify

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

const channelPrefix = "changed:"

// RedisNotifier fans collection-changed events out over redis pub/sub, one
// channel per collection. The payload carries no data; subscribers re-read
// their snapshot on every signal, so a lost message costs at most one stale
// read until the next write.

type RedisNotifier struct {
	client *redis.Client
}

var _ interfaces.IChangeNotifier = (*RedisNotifier)(nil)

// ConnectRedis creates a redis client from environment variables.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) Publish(ctx context.Context, collection string) error {
	return n.client.Publish(ctx, channelPrefix+collection, "1").Err()
}

// Subscribe returns a channel signalled once per remote change. Signals are
// coalesced: a slow consumer sees at least one signal for any burst of
// writes. The channel is closed when ctx is done.
func (n *RedisNotifier) Subscribe(ctx context.Context, collection string) (<-chan struct{}, error) {
	sub := n.client.Subscribe(ctx, channelPrefix+collection)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
