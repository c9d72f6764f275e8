package config

import (
	"fmt"
	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 数据库配置
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis配置
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// HuggingFace 推理API配置
	HFAPIKey      string `mapstructure:"HF_API_KEY"`
	HFAPIEndpoint string `mapstructure:"HF_API_ENDPOINT"`
	TextModel     string `mapstructure:"TEXT_MODEL"`
	VoiceModel    string `mapstructure:"VOICE_MODEL"`

	// 语音上传目录
	UploadDir string `mapstructure:"UPLOAD_DIR"`

	// JWT配置
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	// 默认配置
	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	if config.HFAPIEndpoint == "" {
		config.HFAPIEndpoint = "https://api-inference.huggingface.co"
	}
	if config.TextModel == "" {
		config.TextModel = "j-hartmann/emotion-english-distilroberta-base"
	}
	if config.VoiceModel == "" {
		config.VoiceModel = "superb/wav2vec2-base-superb-er"
	}
	if config.UploadDir == "" {
		config.UploadDir = "static/uploads/voices"
	}
	return
}

// GetDBConnString 返回数据库连接字符串
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
