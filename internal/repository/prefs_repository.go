package repository

import (
	"context"

	redisapp "petgallery/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

// RedisPrefsRepo stores per-user preference flags. Values have no TTL: the
// one-time vote prompt flag must survive across sessions.
type RedisPrefsRepo struct {
	Client *redisapp.Client
}

func NewRedisPrefsRepo(client *redisapp.Client) *RedisPrefsRepo {
	return &RedisPrefsRepo{Client: client}
}

func (r *RedisPrefsRepo) Get(ctx context.Context, userID, key string) (string, bool, error) {
	val, err := r.Client.Get(ctx, prefKey(userID, key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisPrefsRepo) Set(ctx context.Context, userID, key, value string) error {
	return r.Client.Set(ctx, prefKey(userID, key), value, 0).Err()
}

func prefKey(userID, key string) string {
	return "prefs:" + userID + ":" + key
}
