package migrations

import (
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateFormRequestsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating form_requests table...")
	if err := db.AutoMigrate(&models.FormRequest{}); err != nil {
		configslog.Log.Error("Failed to migrate form_requests table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("form_requests table migrated successfully")
	return nil
}
