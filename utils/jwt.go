package utils

import (
	"fmt"
	"time"

	"MindTrackGo/config"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var jwtKey []byte

// TokenTTL 令牌有效期，与Redis会话过期时间保持一致
const TokenTTL = 24 * time.Hour * 30

// Claims 自定义JWT声明
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken 生成JWT令牌，返回令牌和会话ID
// 会话ID写入Redis后才算登录成功，登出时删除即可使令牌失效
func GenerateToken(userID string) (string, string, error) {
	sessionID := uuid.New().String()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", "", err
	}
	return tokenString, sessionID, nil
}

// ParseToken 解析JWT令牌
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("无效的令牌")
}

// 在init函数中初始化
func init() {
	conf, err := config.LoadConfig(".")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	jwtKey = []byte(conf.JWTSecret)
}
