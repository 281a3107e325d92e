package seeders

import (
	"errors"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/models"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedContactReasons ensures every allowed reason key exists. Existing rows
// are left untouched so administrative edits (sort order, active flag)
// survive repeated runs.
func SeedContactReasons(db *gorm.DB) error {
	// Emergencies belong on the phone (112), so notfall is seeded inactive.
	reasonsToSeed := []models.ContactReason{
		{Key: models.ReasonKeyTermin, SortOrder: 10, IsActive: true},
		{Key: models.ReasonKeyRezept, SortOrder: 20, IsActive: true},
		{Key: models.ReasonKeyUeberweisung, SortOrder: 30, IsActive: true},
		{Key: models.ReasonKeyFrage, SortOrder: 40, IsActive: true},
		{Key: models.ReasonKeyBeschwerde, SortOrder: 50, IsActive: true},
		{Key: models.ReasonKeyNotfall, SortOrder: 60, IsActive: false},
		{Key: models.ReasonKeySonstiges, SortOrder: 70, IsActive: true},
	}

	var createdCount int64
	var errorOccurred bool

	configslog.SLog.Info("Seeding contact reasons...")

	for _, reason := range reasonsToSeed {
		var existing models.ContactReason
		result := db.Where("key = ?", reason.Key).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Contact reason %q already exists, skipping.", reason.Key)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Failed to check contact reason",
				zap.String("key", reason.Key),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		reason.NameDE = i18n.T(i18n.LocaleDE, "reason."+reason.Key)
		reason.NameEN = i18n.T(i18n.LocaleEN, "reason."+reason.Key)

		if err := db.Create(&reason).Error; err != nil {
			configslog.Log.Error("Failed to create contact reason",
				zap.String("key", reason.Key),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Contact reason %q created (ID: %d).", reason.Key, reason.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d new contact reasons seeded.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("All contact reasons already present, nothing added.")
	}

	if errorOccurred {
		return errors.New("at least one error occurred while seeding contact reasons")
	}
	return nil
}
