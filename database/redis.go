package database

import (
	"context"
	"log"

	"github.com/Ayush5112006/dduhack-sub002/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// InitRedis connects the Redis client used for the auth token denylist
func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unavailable, token revocation disabled: ", err)
		Redis = nil
	}
}
