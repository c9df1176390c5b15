package utils

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logout works by blacklisting the presented token for the remainder of its
// 24h lifetime. With REDIS_ADDR set the blacklist is shared through redis so
// a destroyed session is dead on every replica; otherwise it falls back to a
// per-process map.

const blacklistTTL = 24 * time.Hour

var (
	redisClient *redis.Client

	blacklistedTokens = make(map[string]time.Time)
	blacklistMutex    sync.RWMutex
)

// InitTokenStore connects the blacklist to redis. An empty addr keeps the
// in-memory fallback.
func InitTokenStore(addr string) error {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}
	redisClient = client
	return nil
}

func BlacklistToken(token string) {
	if redisClient != nil {
		if err := redisClient.Set(context.Background(), "blacklist:"+token, "1", blacklistTTL).Err(); err != nil {
			ErrorLogger.Errorf("failed to blacklist token in redis: %v", err)
		}
		return
	}

	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()
	blacklistedTokens[token] = time.Now().Add(blacklistTTL)
}

func IsTokenBlacklisted(token string) bool {
	if redisClient != nil {
		res, err := redisClient.Exists(context.Background(), "blacklist:"+token).Result()
		if err != nil {
			ErrorLogger.Errorf("failed to check token blacklist in redis: %v", err)
			return false
		}
		return res > 0
	}

	blacklistMutex.RLock()
	expiry, exists := blacklistedTokens[token]
	blacklistMutex.RUnlock()

	if !exists {
		return false
	}
	if time.Now().After(expiry) {
		blacklistMutex.Lock()
		delete(blacklistedTokens, token)
		blacklistMutex.Unlock()
		return false
	}
	return true
}
