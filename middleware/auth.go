package middleware

import (
	"net/http"

	"MindTrackGo/config"
	"MindTrackGo/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 认证中间件
// JWT解析成功后还要求Redis中存在对应会话，登出后的令牌在此被拦截
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未提供认证信息"})
			return
		}

		// 解析 JWT
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "无效的认证信息"})
			return
		}

		// 检查会话是否仍然有效
		if !config.SessionExists(claims.UserID, claims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "会话已失效，请重新登录"})
			return
		}

		// 将 uid 和会话ID存储在 gin.Context 中
		c.Set("uid", claims.UserID)
		c.Set("sessionID", claims.ID)
		c.Next()
	}
}
