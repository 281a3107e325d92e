package migrations

import (
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateContactReasonsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating contact_reasons table...")
	if err := db.AutoMigrate(&models.ContactReason{}); err != nil {
		configslog.Log.Error("Failed to migrate contact_reasons table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("contact_reasons table migrated successfully")
	return nil
}
