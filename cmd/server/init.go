package main

import (
	"context"

	"social_compliance/config"
	"social_compliance/internal/database"
	"social_compliance/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database.
// Toàn bộ là dữ liệu snapshot do hệ thống bên ngoài ghi (danh bạ, ingestion).
func initColNames() {
	global.MongoDB_ColNames.Clients = "clients"
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.InstaPosts = "insta_posts"
	global.MongoDB_ColNames.TiktokPosts = "tiktok_posts"
	global.MongoDB_ColNames.InstaLikes = "insta_likes"
	global.MongoDB_ColNames.TiktokComments = "tiktok_comments"
	global.MongoDB_ColNames.RankTables = "rank_tables"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validator no_xss)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các index cho các collection snapshot
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.CreateDirectoryIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create indexes: %v", err)
	} else {
		logrus.Info("Ensured collection indexes")
	}
}
