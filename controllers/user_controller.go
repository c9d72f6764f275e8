package controllers

import (
	"net/http"

	"MindTrackGo/config"
	"MindTrackGo/models"

	"github.com/gin-gonic/gin"
)

// UserController 用户控制器
type UserController struct{}

// GetUser 获取当前用户信息
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("数据库查询失败", "error", err, "userID", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
