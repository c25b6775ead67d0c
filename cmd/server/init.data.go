package main

import (
	"context"
	"time"

	compliancemodels "social_compliance/internal/api/compliance/models"
	"social_compliance/internal/global"
	"social_compliance/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitDefaultData seed dữ liệu tối thiểu để service chạy được trên database trống:
// directorate "nhà" (HOME_CLIENT_ID) và bảng cấp bậc mặc định.
// Chỉ chạy khi INITMODE=true; seed idempotent (upsert), không ghi đè dữ liệu đã có.
func InitDefaultData() {
	log := logger.GetAppLogger()
	if !global.ServerConfig.InitMode {
		log.Info("INITMODE disabled, skipping default data seed")
		return
	}
	log.Info("Starting InitDefaultData...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	now := time.Now().Unix()

	// 1. Directorate "nhà" — scope mặc định khi chưa có danh bạ
	clientColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Clients)
	if !ok {
		log.Fatalf("Collection %s chưa được đăng ký", global.MongoDB_ColNames.Clients)
	}
	homeID := global.ServerConfig.HomeClientID
	_, err := clientColl.UpdateOne(ctx,
		bson.M{"clientId": homeID},
		bson.M{
			"$setOnInsert": compliancemodels.Client{
				ClientID:   homeID,
				Name:       homeID,
				ClientType: compliancemodels.ClientTypeDirectorate,
				IsActive:   true,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.WithError(err).Error("Failed to seed home directorate")
	} else {
		log.Infof("Home directorate %s ensured", homeID)
	}

	// 2. Bảng cấp bậc mặc định (chỉ tạo khi chưa có bảng active nào)
	rankColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.RankTables)
	if !ok {
		log.Fatalf("Collection %s chưa được đăng ký", global.MongoDB_ColNames.RankTables)
	}
	count, err := rankColl.CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		log.WithError(err).Error("Failed to check rank tables")
		return
	}
	if count == 0 {
		_, err = rankColl.InsertOne(ctx, compliancemodels.RankTable{
			Name: "default",
			Ranks: []string{
				"KOMISARIS BESAR POLISI",
				"AKBP",
				"KOMPOL",
				"AKP",
				"IPTU",
				"IPDA",
				"AIPTU",
				"AIPDA",
				"BRIPKA",
				"BRIGADIR",
				"BRIPTU",
				"BRIPDA",
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			log.WithError(err).Error("Failed to seed default rank table")
		} else {
			log.Info("Default rank table seeded")
		}
	}

	log.Info("InitDefaultData completed")
}
