package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// SessionData is the authenticated session stored behind a bearer token.
type SessionData struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management

func (c *Client) SetSession(token string, data *SessionData, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+token, jsonData, ttl).Err()
}

func (c *Client) GetSession(token string) (*SessionData, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+token).Err()
}

// Tracking lookup cache. Public tracking is the hottest read path, so
// lookups are cached briefly; status updates and payments invalidate.

func (c *Client) SetTrackedShipment(number string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking data: %w", err)
	}

	return c.rdb.Set(ctx, "tracking:"+number, jsonData, ttl).Err()
}

func (c *Client) GetTrackedShipment(number string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "tracking:"+number).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("tracking data not cached")
		}
		return fmt.Errorf("failed to get tracking data: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateTrackedShipment(number string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "tracking:"+number).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
