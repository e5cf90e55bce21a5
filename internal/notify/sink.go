// Package notify delivers "badge unlocked" announcements once a burst of
// progress changes has settled.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/ui/components"
)

// Notification announces one unlocked badge.
type Notification struct {
	// BatchID is shared by every notification sent for one settled burst,
	// so downstream consumers can dedupe redelivered messages.
	BatchID     string    `json:"batchId,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	BadgeID     string    `json:"badgeId"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description,omitempty"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// FromBadge builds the notification for b.
func FromBadge(userID string, b badges.WithStatus, now time.Time) Notification {
	at := now
	if b.UnlockedAt != nil {
		at = *b.UnlockedAt
	}
	return Notification{
		UserID:      userID,
		BadgeID:     b.ID,
		Name:        b.Name,
		Icon:        b.Icon,
		Description: b.Description,
		UnlockedAt:  at,
	}
}

// Sink delivers notifications.
type Sink interface {
	Send(ctx context.Context, n Notification) error
}

// LogSink writes notifications to the structured log.
type LogSink struct {
	Log *logger.Logger
}

func (s LogSink) Send(_ context.Context, n Notification) error {
	s.Log.Info("badge unlocked", "user", n.UserID, "badge", n.BadgeID, "name", n.Name)
	return nil
}

// WriterSink prints a styled toast to W, typically stdout.
type WriterSink struct {
	mu sync.Mutex
	W  io.Writer
}

func (s *WriterSink) Send(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.W, components.Toast(n.Icon, n.Name, n.Description))
	return err
}

// publisher is the slice of the Redis client RedisSink needs.
type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *goredis.IntCmd
}

// RedisSink publishes notifications as JSON on a Redis channel for an
// external push worker.
type RedisSink struct {
	rdb     publisher
	closer  io.Closer
	channel string
}

// NewRedisSink connects to addr and verifies the connection.
func NewRedisSink(ctx context.Context, addr, channel string) (*RedisSink, error) {
	if addr == "" {
		return nil, errors.New("missing redis address")
	}
	if channel == "" {
		return nil, errors.New("missing redis channel")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisSink{rdb: rdb, closer: rdb, channel: channel}, nil
}

func (s *RedisSink) Send(ctx context.Context, n Notification) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := s.rdb.Publish(ctx, s.channel, raw).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// MultiSink fans a notification out to every sink and joins their errors.
type MultiSink []Sink

func (m MultiSink) Send(ctx context.Context, n Notification) error {
	var errs []error
	for _, s := range m {
		if err := s.Send(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
