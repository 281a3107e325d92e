package database

import (
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/database/migrations"
	"github.com/bumbaRasch/medical-practice-site-sub000/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside a single transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed flag given, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Failed to begin database transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization failed (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.Log.Warn("Rolling back initialization after error", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Additional error during rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		configslog.SLog.Info("Running migrations...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrations completed.")
	}

	if seed {
		configslog.SLog.Info("Running seeders...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders completed.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization finished successfully")
}

// RunMigrationsInOrder migrates the reference table before the table
// holding its foreign key.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateContactReasonsTable(db); err != nil {
		configslog.Log.Error("contact_reasons migration failed", zap.Error(err))
		return err
	}
	if err := migrations.MigrateFormRequestsTable(db); err != nil {
		configslog.Log.Error("form_requests migration failed", zap.Error(err))
		return err
	}
	return nil
}

// CheckAndRunSeeders runs the idempotent seeders.
func CheckAndRunSeeders(db *gorm.DB) error {
	if err := seeders.SeedContactReasons(db); err != nil {
		configslog.Log.Error("contact_reasons seeding failed", zap.Error(err))
		return err
	}
	return nil
}
