package controllers

import (
	"net/http"
	"strings"
	"time"

	"MindTrackGo/config"
	"MindTrackGo/models"
	"MindTrackGo/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthController 认证控制器
type AuthController struct{}

// Register 用户注册
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 检查邮箱是否已注册
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "邮箱已被注册"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "密码加密失败"})
		return
	}

	user := models.User{
		ID:       utils.GenerateID(),
		Username: req.Username,
		Email:    email,
		Password: string(hashed),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("用户创建失败", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
		return
	}

	config.Logger.Infow("用户注册成功", "userID", user.ID, "username", user.Username)

	c.JSON(http.StatusCreated, gin.H{
		"message": "注册成功，请登录",
		"user": models.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}

// Login 用户登录
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
		return
	}

	token, sessionID, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	// 会话写入Redis，登出时删除
	if err := config.StoreSession(user.ID, sessionID, utils.TokenTTL); err != nil {
		config.Logger.Errorw("会话保存失败", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "登录失败"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login", &now).Error; err != nil {
		config.Logger.Warnw("更新登录时间失败", "error", err, "userID", user.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.GetDisplayName(),
			"email":    user.Email,
		},
	})
}

// Logout 用户登出，删除Redis中的会话
func (ac *AuthController) Logout(c *gin.Context) {
	uid := c.GetString("uid")
	sessionID := c.GetString("sessionID")

	if err := config.DeleteSession(uid, sessionID); err != nil {
		config.Logger.Errorw("会话删除失败", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "登出失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已登出"})
}
