/**
 * 日志:文件输出Hook
 * @author: tangyun
 * @date: 2025.11.03
 * @description: 将不同类型的日志写入不同文件，基于lumberjack做滚动切割
 * @func: FileHook
 */
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"rbacadmin/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileHook 按日志类型分文件输出的Hook
type FileHook struct {
	logConfig *config.LogConfig
	writers   map[string]io.Writer
	formatter logrus.Formatter
	mutex     sync.Mutex
}

// NewFileHook 创建FileHook实例
func NewFileHook(logConfig *config.LogConfig) *FileHook {
	hook := &FileHook{
		logConfig: logConfig,
		writers:   make(map[string]io.Writer),
		formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		},
	}

	// 主日志文件writer
	_ = os.MkdirAll(filepath.Dir(logConfig.FilePath), 0755)
	hook.writers["default"] = hook.newRotatingWriter(logConfig.FilePath)

	return hook
}

// newRotatingWriter 创建带滚动切割的文件writer
func (hook *FileHook) newRotatingWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    hook.logConfig.MaxSize,
		MaxBackups: hook.logConfig.MaxBackups,
		MaxAge:     hook.logConfig.MaxAge,
		Compress:   hook.logConfig.Compress,
	}
}

// Levels 返回此Hook关心的所有日志级别
func (hook *FileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire 在日志触发时执行
func (hook *FileHook) Fire(entry *logrus.Entry) error {
	logType := "default"
	if lt, ok := entry.Data["type"]; ok {
		switch t := lt.(type) {
		case LogType:
			logType = string(t)
		case string:
			logType = t
		}
	}

	writer := hook.getWriter(logType)
	if writer == nil {
		return nil
	}

	formatted, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}

	hook.mutex.Lock()
	defer hook.mutex.Unlock()
	_, err = writer.Write(formatted)
	return err
}

// getWriter 获取指定类型的writer，不存在时创建
func (hook *FileHook) getWriter(logType string) io.Writer {
	hook.mutex.Lock()
	defer hook.mutex.Unlock()

	if writer, exists := hook.writers[logType]; exists {
		return writer
	}

	logDir := filepath.Dir(hook.logConfig.FilePath)

	switch logType {
	case "access", "business", "error", "system":
		// 已知类型各自一个文件
	default:
		return hook.writers["default"]
	}

	filename := filepath.Join(logDir, logType+".log")
	writer := hook.newRotatingWriter(filename)
	hook.writers[logType] = writer

	return writer
}
