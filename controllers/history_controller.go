package controllers

import (
	"encoding/json"
	"net/http"

	"MindTrackGo/config"
	"MindTrackGo/models"

	"github.com/gin-gonic/gin"
)

// HistoryController 历史记录控制器
type HistoryController struct{}

// GetHistory 获取当前用户的检测历史，按创建时间倒序
func (hc *HistoryController) GetHistory(c *gin.Context) {
	uid := c.GetString("uid")

	var records []models.StressRecord
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at desc").
		Find(&records).Error; err != nil {
		config.Logger.Errorw("查询检测历史失败", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询检测历史失败"})
		return
	}

	resp := make([]models.StressRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, models.StressRecordResponse{
			ID:          r.ID,
			TextInput:   r.TextInput,
			VoiceFile:   r.VoiceFile,
			StressLevel: r.StressLevel,
			Result:      json.RawMessage(r.ResultJSON),
			CreatedAt:   r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"records": resp})
}
