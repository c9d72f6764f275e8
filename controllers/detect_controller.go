package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"MindTrackGo/config"
	"MindTrackGo/models"
	"MindTrackGo/services"
	"MindTrackGo/utils"

	"github.com/gin-gonic/gin"
)

// DetectController 压力检测控制器
type DetectController struct {
	stress  *services.StressService
	storage *services.StorageService
}

func NewDetectController(stress *services.StressService, storage *services.StorageService) *DetectController {
	return &DetectController{stress: stress, storage: storage}
}

// Detect 处理一次压力检测提交
// 流程：校验 -> 保存音频 -> 逐模态推理 -> 合并 -> 持久化 -> 返回结果
func (dc *DetectController) Detect(c *gin.Context) {
	uid := c.GetString("uid")

	textInput := strings.TrimSpace(c.PostForm("text_input"))
	fileHeader, err := c.FormFile("voice_file")
	if err != nil {
		fileHeader = nil
	}

	// 音频格式与大小校验，不通过则整个请求拒绝，不触发推理
	if fileHeader != nil {
		if !dc.storage.AllowedFile(fileHeader.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "不支持的音频格式，仅支持 wav/mp3/flac/m4a/ogg/webm"})
			return
		}
		if fileHeader.Size > services.MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "音频文件超过16MB大小限制"})
			return
		}
	}

	if textInput == "" && fileHeader == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供文本或音频"})
		return
	}

	// 推理前先完成音频落盘
	savedFile := ""
	if fileHeader != nil {
		savedFile, err = dc.storage.SaveUpload(fileHeader, uid)
		if err != nil {
			config.Logger.Errorw("音频保存失败", "error", err, "userID", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "音频保存失败"})
			return
		}
	}

	// 逐模态推理，失败只会产生带错误标记的结果，不会中断请求
	var textRes, voiceRes *models.EmotionResult
	if textInput != "" {
		textRes = dc.stress.PredictTextStress(c.Request.Context(), textInput)
	}
	if savedFile != "" {
		voiceRes = dc.stress.PredictVoiceStress(c.Request.Context(), dc.storage.Path(savedFile))
	}

	// 数值压力分：只要该模态被尝试过就参与计分，推理失败按 medium 计
	var scoreText, scoreAudio *float64
	if textRes != nil {
		v := services.StressScore(textRes.Stress)
		scoreText = &v
	}
	if voiceRes != nil {
		v := services.StressScore(voiceRes.Stress)
		scoreAudio = &v
	}

	var severity float64
	switch {
	case scoreText != nil && scoreAudio != nil:
		severity = (*scoreText + *scoreAudio) / 2
	case scoreText != nil:
		severity = *scoreText
	default:
		severity = *scoreAudio
	}
	overall := services.OverallLevel(severity)

	summary := models.ResultSummary{
		TextStress:    "N/A",
		VoiceStress:   "N/A",
		OverallStress: overall,
	}
	if scoreText != nil {
		summary.TextStress = fmt.Sprintf("%.2f", *scoreText)
	}
	if scoreAudio != nil {
		summary.VoiceStress = fmt.Sprintf("%.2f", *scoreAudio)
	}

	// 符号规则的合并档位与上面的数值分属两套并行计算，结果可能不一致，
	// 前者用于明细展示，后者决定入库的最终档位
	combined := dc.stress.CombineStress(textRes, voiceRes)

	payload, err := json.Marshal(models.StressResultPayload{
		Summary:  summary,
		RawText:  textRes,
		RawAudio: voiceRes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "结果序列化失败"})
		return
	}

	record := models.StressRecord{
		ID:          utils.GenerateID(),
		UserID:      uid,
		TextInput:   textInput,
		VoiceFile:   savedFile,
		ResultJSON:  string(payload),
		StressLevel: overall,
	}

	// 持久化失败视为请求失败
	if err := config.DB.Create(&record).Error; err != nil {
		config.Logger.Errorw("检测记录保存失败", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "检测记录保存失败"})
		return
	}

	config.Logger.Infow("检测完成",
		"userID", uid,
		"recordID", record.ID,
		"overall", overall,
		"combined", combined,
	)

	c.JSON(http.StatusOK, models.DetectResponse{
		RecordID:       record.ID,
		Summary:        summary,
		CombinedStress: combined,
		Text:           textRes,
		Voice:          voiceRes,
	})
}

// ServeUpload 返回当前用户可访问的已存储音频文件
func (dc *DetectController) ServeUpload(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少文件名"})
		return
	}
	c.File(dc.storage.Path(filename))
}
