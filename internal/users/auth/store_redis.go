// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] with one key per session.
// Redis expiry is the only expiry mechanism; there is no sweeper.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed [SessionRepository].
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// sessionKey builds the Redis key for a refresh token digest.
func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

/*
Create stores the session JSON under its digest with the given TTL.
*/
func (repository *RedisSessionRepository) Create(context context.Context, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return apperr.Internal(fmt.Errorf("encode_session: %w", err))
	}

	if err := repository.client.Set(context, sessionKey(session.TokenHash), payload, ttl).Err(); err != nil {
		return apperr.Persistence(fmt.Errorf("redis_session_set_failed: %w", err))
	}

	return nil
}

/*
FindByTokenHash loads a live session.

Returns apperr.NotFound when the key is absent or has expired.
*/
func (repository *RedisSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	payload, err := repository.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session")
		}
		return nil, apperr.Persistence(fmt.Errorf("redis_session_get_failed: %w", err))
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, apperr.Internal(fmt.Errorf("decode_session: %w", err))
	}

	return session, nil
}

/*
Delete removes the session key. Absent keys are ignored.
*/
func (repository *RedisSessionRepository) Delete(context context.Context, tokenHash string) error {
	if err := repository.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return apperr.Persistence(fmt.Errorf("redis_session_delete_failed: %w", err))
	}
	return nil
}
