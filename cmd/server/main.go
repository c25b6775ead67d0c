package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"social_compliance/internal/database"
	"social_compliance/internal/global"
	"social_compliance/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()
	log.WithField("address", cfg.Address).Info("Starting Fiber server")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định (chỉ chạy khi INITMODE=true)
	InitDefaultData()

	defer func() {
		_, _ = global.RegistryCollections.ClearAll(nil)
		if global.MongoDB_Session != nil {
			_ = database.CloseInstance(global.MongoDB_Session)
		}
	}()

	// Chạy Fiber server trên main thread
	main_thread()
}
