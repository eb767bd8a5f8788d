// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package episode

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/libraryofui/uilib/internal/platform/constants"
)

// RedisBodyCache implements the BodyCache interface on Redis.
type RedisBodyCache struct {
	client *redis.Client
}

// NewRedisBodyCache creates a Redis-backed episode body cache.
func NewRedisBodyCache(client *redis.Client) *RedisBodyCache {
	return &RedisBodyCache{client: client}
}

// Get returns the cached body for an episode; redis.Nil reads as a miss.
func (cache *RedisBodyCache) Get(context context.Context, episodeID string) (string, bool, error) {
	body, err := cache.client.Get(context, constants.RedisPrefixEpisodeBody+episodeID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis_episode_body_get_failed: %w", err)
	}

	return body, true, nil
}

// Set stores a body under the episode's cache key with the standard TTL.
func (cache *RedisBodyCache) Set(context context.Context, episodeID, body string) error {
	err := cache.client.Set(context, constants.RedisPrefixEpisodeBody+episodeID, body, constants.EpisodeBodyCacheTTL).Err()
	if err != nil {
		return fmt.Errorf("redis_episode_body_set_failed: %w", err)
	}

	return nil
}
