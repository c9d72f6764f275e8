package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize 音频上传大小上限 16 MiB
const MaxUploadSize = 16 * 1024 * 1024

// 允许的音频文件扩展名
var allowedAudioExt = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
	".webm": true,
}

// StorageService 语音文件存储服务
type StorageService struct {
	uploadDir string
}

// NewStorageService 创建存储服务并确保上传目录存在
func NewStorageService(uploadDir string) (*StorageService, error) {
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %v", err)
	}
	return &StorageService{uploadDir: uploadDir}, nil
}

// AllowedFile 检查文件扩展名是否在允许的音频格式内
func (ss *StorageService) AllowedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedAudioExt[ext]
}

// SaveUpload 保存上传的音频文件，返回存储后的文件名
// 文件名格式: <用户ID>_<时间戳>_<uuid><扩展名>
func (ss *StorageService) SaveUpload(fileHeader *multipart.FileHeader, userID string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%s_%d_%s%s", userID, time.Now().Unix(), uuid.New().String(), ext)
	dstPath := filepath.Join(ss.uploadDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", err
	}

	return filename, nil
}

// Path 返回已存储文件的完整路径，文件名会被规范化以防目录穿越
func (ss *StorageService) Path(filename string) string {
	return filepath.Join(ss.uploadDir, filepath.Base(filename))
}
