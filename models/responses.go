package models

import (
	"encoding/json"
	"time"
)

// EmotionScore 推理服务返回的单个情绪得分
type EmotionScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// EmotionResult 单一模态的情绪识别结果
// 推理失败时只填充 Error 字段，不中断整个请求
type EmotionResult struct {
	Emotion    string         `json:"emotion,omitempty"`
	Confidence float64        `json:"confidence,omitempty"`
	Stress     string         `json:"stress,omitempty"` // low / medium / high
	Raw        []EmotionScore `json:"raw,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Failed 判断该模态是否推理失败
func (r *EmotionResult) Failed() bool {
	return r == nil || r.Error != ""
}

// ResultSummary 检测结果摘要，数值以字符串形式展示
type ResultSummary struct {
	TextStress    string `json:"text_stress"`    // "0.90" 或 "N/A"
	VoiceStress   string `json:"voice_stress"`   // 同上
	OverallStress string `json:"overall_stress"` // Low / Medium / High
}

// StressResultPayload 持久化到 StressRecord.ResultJSON 的完整结构
type StressResultPayload struct {
	Summary  ResultSummary  `json:"summary"`
	RawText  *EmotionResult `json:"raw_text"`
	RawAudio *EmotionResult `json:"raw_audio"`
}

// DetectResponse 检测接口响应结构体
type DetectResponse struct {
	RecordID       string         `json:"recordId"`
	Summary        ResultSummary  `json:"summary"`
	CombinedStress string         `json:"combinedStress"` // 符号规则得到的档位，可能与摘要不一致
	Text           *EmotionResult `json:"text"`
	Voice          *EmotionResult `json:"voice"`
}

// StressRecordResponse 历史记录响应结构体
type StressRecordResponse struct {
	ID          string          `json:"id"`
	TextInput   string          `json:"textInput,omitempty"`
	VoiceFile   string          `json:"voiceFile,omitempty"`
	StressLevel string          `json:"stressLevel"`
	Result      json.RawMessage `json:"result"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// UserResponse 用户响应结构体
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
