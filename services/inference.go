package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"MindTrackGo/config"
	"MindTrackGo/models"
)

// ErrUnavailable 推理服务未配置或不可用
var ErrUnavailable = errors.New("推理服务不可用")

// InferenceClient HuggingFace 推理API客户端
// 在 main 中初始化一次后注入，调用方通过 Available 判断可用性
type InferenceClient struct {
	apiKey     string
	endpoint   string
	textModel  string
	voiceModel string
	c          *http.Client
}

// NewInferenceClient 创建推理客户端
func NewInferenceClient(conf config.Config) *InferenceClient {
	return &InferenceClient{
		apiKey:     conf.HFAPIKey,
		endpoint:   conf.HFAPIEndpoint,
		textModel:  conf.TextModel,
		voiceModel: conf.VoiceModel,
		c:          &http.Client{Timeout: 60 * time.Second},
	}
}

// Available 推理服务是否可用
func (ic *InferenceClient) Available() bool {
	return ic != nil && ic.apiKey != ""
}

func (ic *InferenceClient) modelURL(model string) string {
	return fmt.Sprintf("%s/models/%s", ic.endpoint, model)
}

func (ic *InferenceClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+ic.apiKey)

	resp, err := ic.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("推理服务返回 %s: %s", resp.Status, string(body))
	}
	return body, nil
}

// ClassifyText 对文本做情绪分类，返回 label/score 列表
func (ic *InferenceClient) ClassifyText(ctx context.Context, text string) ([]models.EmotionScore, error) {
	if !ic.Available() {
		return nil, ErrUnavailable
	}

	b, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ic.modelURL(ic.textModel), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := ic.do(req)
	if err != nil {
		return nil, err
	}

	// 文本分类接口返回嵌套数组 [[{label,score}...]]，部分模型返回扁平数组
	var nested [][]models.EmotionScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}
	var flat []models.EmotionScore
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}
	return nil, fmt.Errorf("无法解析推理结果: %s", string(body))
}

// ClassifyAudio 对音频文件做情绪分类，请求体为原始音频字节
func (ic *InferenceClient) ClassifyAudio(ctx context.Context, audioPath string) ([]models.EmotionScore, error) {
	if !ic.Available() {
		return nil, ErrUnavailable
	}

	data, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ic.modelURL(ic.voiceModel), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	body, err := ic.do(req)
	if err != nil {
		return nil, err
	}

	var scores []models.EmotionScore
	if err := json.Unmarshal(body, &scores); err != nil {
		return nil, fmt.Errorf("无法解析推理结果: %s", string(body))
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("推理结果为空")
	}
	return scores, nil
}
