package services

import (
	"testing"

	"MindTrackGo/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	cases := map[string]string{
		"ang": "anger",
		"hap": "happy",
		"sad": "sadness",
		"neu": "neutral",
		"ANG": "anger",
		"Neu": "neutral",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeLabel(in), "input=%s", in)
	}

	// 未知标签与空标签原样返回
	assert.Equal(t, "joy", NormalizeLabel("joy"))
	assert.Equal(t, "", NormalizeLabel(""))

	// 幂等性：已是完整名称的标签再次归一化不变
	for in := range cases {
		once := NormalizeLabel(in)
		assert.Equal(t, once, NormalizeLabel(once))
	}
}

func TestMapEmotionToStress(t *testing.T) {
	for _, label := range []string{"anger", "angry", "fear", "sadness", "disgust", "panic", "sad", "frustration", "anxiety", "anxious"} {
		assert.Equal(t, "high", MapEmotionToStress(label), "label=%s", label)
	}
	for _, label := range []string{"joy", "happiness", "happy", "relaxed", "calm", "positive"} {
		assert.Equal(t, "low", MapEmotionToStress(label), "label=%s", label)
	}
	for _, label := range []string{"surprise", "neutral", "confident"} {
		assert.Equal(t, "medium", MapEmotionToStress(label), "label=%s", label)
	}

	// 大小写不敏感
	assert.Equal(t, "high", MapEmotionToStress("Anger"))
	assert.Equal(t, "low", MapEmotionToStress("JOY"))

	// 未知或空标签默认 medium
	assert.Equal(t, "medium", MapEmotionToStress("bewilderment"))
	assert.Equal(t, "medium", MapEmotionToStress(""))
}

func TestTopLabel(t *testing.T) {
	label, conf := TopLabel([]models.EmotionScore{
		{Label: "joy", Score: 0.1},
		{Label: "anger", Score: 0.7},
		{Label: "neutral", Score: 0.2},
	})
	assert.Equal(t, "anger", label)
	assert.InDelta(t, 0.7, conf, 1e-9)

	// 同分时保留先出现的
	label, _ = TopLabel([]models.EmotionScore{
		{Label: "joy", Score: 0.5},
		{Label: "anger", Score: 0.5},
	})
	assert.Equal(t, "joy", label)

	label, conf = TopLabel(nil)
	assert.Equal(t, "", label)
	assert.Zero(t, conf)
}

func TestStressScore(t *testing.T) {
	assert.InDelta(t, 0.2, StressScore("low"), 1e-9)
	assert.InDelta(t, 0.5, StressScore("medium"), 1e-9)
	assert.InDelta(t, 0.9, StressScore("high"), 1e-9)
	// 未知档位（含推理失败时的空档位）按 medium 计
	assert.InDelta(t, 0.5, StressScore(""), 1e-9)
	assert.InDelta(t, 0.5, StressScore("unknown"), 1e-9)
}

func TestOverallLevel(t *testing.T) {
	assert.Equal(t, "Low", OverallLevel(0.0))
	assert.Equal(t, "Low", OverallLevel(0.39))
	assert.Equal(t, "Medium", OverallLevel(0.4))
	assert.Equal(t, "Medium", OverallLevel(0.69))
	assert.Equal(t, "High", OverallLevel(0.7))
	assert.Equal(t, "High", OverallLevel(1.0))
}

func TestCombineStress(t *testing.T) {
	s := NewStressService(nil)

	res := func(stress string, conf float64) *models.EmotionResult {
		return &models.EmotionResult{Emotion: "x", Confidence: conf, Stress: stress}
	}
	failed := &models.EmotionResult{Error: "boom"}

	// 两模态一致
	assert.Equal(t, "high", s.CombineStress(res("high", 0.6), res("high", 0.3)))

	// 不一致时置信度高的一方胜出
	assert.Equal(t, "low", s.CombineStress(res("low", 0.9), res("high", 0.3)))
	assert.Equal(t, "high", s.CombineStress(res("low", 0.2), res("high", 0.8)))

	// 置信度相等时文本优先
	assert.Equal(t, "low", s.CombineStress(res("low", 0.5), res("high", 0.5)))

	// 只有一个有效模态
	assert.Equal(t, "medium", s.CombineStress(res("medium", 0.4), nil))
	assert.Equal(t, "high", s.CombineStress(nil, res("high", 0.7)))
	assert.Equal(t, "low", s.CombineStress(failed, res("low", 0.6)))

	// 无有效模态
	assert.Equal(t, "unknown", s.CombineStress(nil, nil))
	assert.Equal(t, "unknown", s.CombineStress(failed, failed))
}
