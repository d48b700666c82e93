// Package events carries entity change notifications over Redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"sync"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	channelPrefix = "seguros:changes:"
	eventBuffer   = 16
)

// Channel is the pub/sub channel of kind.
func Channel(kind entities.EntityKind) string {
	return channelPrefix + string(kind)
}

// stream is the part of *redis.PubSub the feed reads from.
type stream interface {
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type RedisChangeFeed struct {
	pub       publisher
	subscribe func(ctx context.Context, channel string) (stream, error)
	logger    *zap.Logger
}

var _ interfaces.IChangeFeed = (*RedisChangeFeed)(nil)

func NewRedisChangeFeed(client *redis.Client, logger *zap.Logger) *RedisChangeFeed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisChangeFeed{
		pub: client,
		subscribe: func(ctx context.Context, channel string) (stream, error) {
			ps := client.Subscribe(ctx, channel)
			// wait for the subscription confirmation
			if _, err := ps.Receive(ctx); err != nil {
				_ = ps.Close()
				return nil, err
			}
			return ps, nil
		},
		logger: logger,
	}
}

func (f *RedisChangeFeed) Publish(ctx context.Context, ev entities.ChangeEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return f.pub.Publish(ctx, Channel(ev.Kind), b).Err()
}

// Subscribe listens on the channel of kind. Events of other owners are
// dropped unless ownerID is empty.
func (f *RedisChangeFeed) Subscribe(ctx context.Context, kind entities.EntityKind, ownerID string) (interfaces.ISubscription, error) {
	ps, err := f.subscribe(ctx, Channel(kind))
	if err != nil {
		f.logger.Warn("[events][redis] subscribe failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}

	sub := &subscription{
		ps:     ps,
		events: make(chan entities.ChangeEvent, eventBuffer),
		done:   make(chan struct{}),
	}
	go sub.pump(ctx, ownerID, f.logger)
	return sub, nil
}

type subscription struct {
	ps     stream
	events chan entities.ChangeEvent
	done   chan struct{}
	once   sync.Once
}

func (s *subscription) Events() <-chan entities.ChangeEvent { return s.events }

func (s *subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}

// pump forwards decoded messages until the redis channel closes, Close is
// called or ctx ends. events is closed on the way out.
func (s *subscription) pump(ctx context.Context, ownerID string, logger *zap.Logger) {
	defer close(s.events)
	msgs := s.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Warn("[events][redis] subscription dropped")
				return
			}
			var ev entities.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logger.Warn("[events][redis] malformed change event", zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			if ownerID != "" && ev.OwnerID != ownerID {
				continue
			}
			select {
			case s.events <- ev:
			case <-ctx.Done():
				return
			case <-s.done:
				return
			}
		}
	}
}
