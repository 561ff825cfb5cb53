// Package redis publishes planning-cycle results to Redis so planning
// components in other processes can read them. Keys are overwritten
// wholesale each cycle.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fatman2021/orionai/internal/results"
)

// Key patterns for published cycle results, namespaced per empire.
func colonyKey(empireID int) string  { return fmt.Sprintf("empire:%d:colony_targets", empireID) }
func outpostKey(empireID int) string { return fmt.Sprintf("empire:%d:outpost_targets", empireID) }
func reachKey(empireID int) string   { return fmt.Sprintf("empire:%d:reach", empireID) }
func turnKey(empireID int) string    { return fmt.Sprintf("empire:%d:turn", empireID) }

// Client wraps the Redis client for cycle-result publication.
type Client struct {
	rdb      *redis.Client
	empireID int
}

// NewClient creates a Redis-backed publisher from a connection URL.
func NewClient(redisURL string, empireID int) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{rdb: rdb, empireID: empireID}, nil
}

// NewClientFromPool wraps an existing redis.Client for use in tests.
func NewClientFromPool(rdb *redis.Client, empireID int) *Client {
	return &Client{rdb: rdb, empireID: empireID}
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Publish overwrites the three result keys and the turn marker.
func (c *Client) Publish(ctx context.Context, cycle results.Cycle) error {
	colony, err := json.Marshal(cycle.Colony)
	if err != nil {
		return fmt.Errorf("marshal colony targets: %w", err)
	}
	outposts, err := json.Marshal(cycle.Outposts)
	if err != nil {
		return fmt.Errorf("marshal outpost targets: %w", err)
	}
	reach, err := json.Marshal(cycle.Reach)
	if err != nil {
		return fmt.Errorf("marshal reach: %w", err)
	}
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, colonyKey(c.empireID), colony, 0)
	pipe.Set(ctx, outpostKey(c.empireID), outposts, 0)
	pipe.Set(ctx, reachKey(c.empireID), reach, 0)
	pipe.Set(ctx, turnKey(c.empireID), cycle.Turn, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish cycle: %w", err)
	}
	return nil
}

// LatestTurn reads the turn marker of the last published cycle; returns -1
// when nothing has been published.
func (c *Client) LatestTurn(ctx context.Context) (int, error) {
	turn, err := c.rdb.Get(ctx, turnKey(c.empireID)).Int()
	if err == redis.Nil {
		return -1, nil
	}
	if err != nil {
		return -1, fmt.Errorf("get turn: %w", err)
	}
	return turn, nil
}
