package logger

import (
	"os"
	"strconv"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level  string // Log level: debug, info, warn, error
	Format string // Format: json hoặc text
	Output string // Output: stdout, file, both

	// Cấu hình rotation (lumberjack)
	MaxSize    int  // Kích thước tối đa mỗi file log (MB)
	MaxBackups int  // Số file backup giữ lại
	MaxAge     int  // Số ngày giữ file log
	Compress   bool // Nén file log cũ

	// Đường dẫn
	LogPath         string // Thư mục chứa log files
	AppFile         string // File log chính của ứng dụng
	PerformanceFile string // File log performance
	ErrorFile       string // File log errors
}

// DefaultConfig trả về cấu hình logging mặc định, đọc từ environment variables.
// GO_ENV=production: JSON format, ghi cả file và stdout; mặc định: text, stdout.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:           "info",
		Format:          "text",
		Output:          "stdout",
		MaxSize:         100,
		MaxBackups:      5,
		MaxAge:          30,
		Compress:        true,
		LogPath:         "logs",
		AppFile:         "app.log",
		PerformanceFile: "performance.log",
		ErrorFile:       "error.log",
	}

	if os.Getenv("GO_ENV") == "production" {
		cfg.Format = "json"
		cfg.Output = "both"
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSize = n
		}
	}
	if v := os.Getenv("LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxBackups = n
		}
	}
	if v := os.Getenv("LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxAge = n
		}
	}

	return cfg
}
