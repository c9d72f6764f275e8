package services

import (
	"context"
	"strings"

	"MindTrackGo/config"
	"MindTrackGo/models"
)

// 情绪标签到压力档位的映射表
var emotionToStress = map[string]string{
	// 低压力 / 积极情绪
	"joy": "low", "happiness": "low", "happy": "low", "relaxed": "low", "calm": "low", "positive": "low",
	// 中等压力 / 中性或混合情绪
	"surprise": "medium", "neutral": "medium", "confident": "medium",
	// 高压力 / 消极情绪
	"anger": "high", "angry": "high", "fear": "high", "sadness": "high", "disgust": "high", "panic": "high",
	"sad": "high", "frustration": "high", "anxiety": "high", "anxious": "high",
}

// 三字母缩写到完整情绪名的映射表（语音模型输出 ang/hap/sad/neu）
var shortLabelMap = map[string]string{
	"ang": "anger",
	"hap": "happy",
	"sad": "sadness",
	"neu": "neutral",
}

// 压力档位对应的代表性数值
var stressScoreMap = map[string]float64{
	"low":    0.2,
	"medium": 0.5,
	"high":   0.9,
}

// NormalizeLabel 将三字母情绪缩写转换为完整名称，未知标签原样返回
func NormalizeLabel(label string) string {
	if label == "" {
		return label
	}
	if full, ok := shortLabelMap[strings.ToLower(label)]; ok {
		return full
	}
	return label
}

// MapEmotionToStress 将情绪标签映射到压力档位，未知标签默认 medium
func MapEmotionToStress(label string) string {
	if stress, ok := emotionToStress[strings.ToLower(label)]; ok {
		return stress
	}
	return "medium"
}

// TopLabel 取置信度最高的标签，同分时保留先出现的
func TopLabel(scores []models.EmotionScore) (string, float64) {
	if len(scores) == 0 {
		return "", 0
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best.Label, best.Score
}

// StressScore 压力档位对应的数值，未知档位取 0.5
func StressScore(stress string) float64 {
	if score, ok := stressScoreMap[stress]; ok {
		return score
	}
	return 0.5
}

// OverallLevel 根据数值压力值划分最终档位
func OverallLevel(severity float64) string {
	if severity < 0.4 {
		return "Low"
	}
	if severity < 0.7 {
		return "Medium"
	}
	return "High"
}

// StressService 压力检测服务
type StressService struct {
	inference *InferenceClient
}

func NewStressService(client *InferenceClient) *StressService {
	return &StressService{inference: client}
}

// PredictTextStress 文本模态压力预测，推理失败时返回带错误标记的结果
func (s *StressService) PredictTextStress(ctx context.Context, text string) *models.EmotionResult {
	raw, err := s.inference.ClassifyText(ctx, text)
	if err != nil {
		config.Logger.Warnw("文本情绪推理失败", "error", err)
		return &models.EmotionResult{Error: err.Error()}
	}
	return buildResult(raw)
}

// PredictVoiceStress 语音模态压力预测，格式与文本模态一致
func (s *StressService) PredictVoiceStress(ctx context.Context, audioPath string) *models.EmotionResult {
	raw, err := s.inference.ClassifyAudio(ctx, audioPath)
	if err != nil {
		config.Logger.Warnw("语音情绪推理失败", "error", err, "audioPath", audioPath)
		return &models.EmotionResult{Error: err.Error()}
	}
	return buildResult(raw)
}

func buildResult(raw []models.EmotionScore) *models.EmotionResult {
	label, conf := TopLabel(raw)
	label = NormalizeLabel(label)
	return &models.EmotionResult{
		Emotion:    label,
		Confidence: conf,
		Stress:     MapEmotionToStress(label),
		Raw:        raw,
	}
}

// CombineStress 合并两个模态的压力档位
// 两个模态一致时取该档位，不一致时取置信度更高的一方（相等时文本优先）；
// 只有一个有效模态时取其档位；都无效时返回 unknown
func (s *StressService) CombineStress(text, voice *models.EmotionResult) string {
	textOK := text != nil && !text.Failed()
	voiceOK := voice != nil && !voice.Failed()

	switch {
	case textOK && voiceOK:
		if text.Stress == voice.Stress {
			return text.Stress
		}
		if text.Confidence >= voice.Confidence {
			return text.Stress
		}
		return voice.Stress
	case textOK:
		return text.Stress
	case voiceOK:
		return voice.Stress
	default:
		return "unknown"
	}
}
