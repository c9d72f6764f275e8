package models

import "time"

// StressRecord 压力检测记录模型，创建后不再修改
type StressRecord struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index" json:"user_id"`
	TextInput   string    `gorm:"type:text" json:"textInput"`
	VoiceFile   string    `gorm:"type:varchar(300)" json:"voiceFile"`
	ResultJSON  string    `gorm:"type:text" json:"-"` // 序列化的完整检测结果
	StressLevel string    `gorm:"type:varchar(50)" json:"stressLevel"` // Low / Medium / High
	CreatedAt   time.Time `json:"createdAt"`
}
