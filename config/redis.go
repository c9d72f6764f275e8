package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client
var ctx = context.Background()

// InitRedis 初始化Redis客户端
func InitRedis(config Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	// 测试连接
	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("Redis连接测试失败: %v", err)
	}

	return nil
}

// sessionKey 登录会话在Redis中的键
func sessionKey(userID, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", userID, sessionID)
}

// StoreSession 保存登录会话，过期时间与JWT一致
func StoreSession(userID, sessionID string, ttl time.Duration) error {
	return RedisClient.Set(ctx, sessionKey(userID, sessionID), 1, ttl).Err()
}

// SessionExists 检查登录会话是否有效
func SessionExists(userID, sessionID string) bool {
	n, err := RedisClient.Exists(ctx, sessionKey(userID, sessionID)).Result()
	return err == nil && n > 0
}

// DeleteSession 删除登录会话（登出）
func DeleteSession(userID, sessionID string) error {
	return RedisClient.Del(ctx, sessionKey(userID, sessionID)).Err()
}
