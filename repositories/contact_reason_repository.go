package repositories

import (
	"context"
	"errors"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IContactReasonRepository covers read access to the contact reason
// reference table. The public site never writes it.
type IContactReasonRepository interface {
	FindActiveOrdered(ctx context.Context) ([]models.ContactReason, error)
	FindByID(ctx context.Context, id uint) (*models.ContactReason, error)
	FindActiveByID(ctx context.Context, id uint) (*models.ContactReason, error)
}

// ContactReasonRepository implements IContactReasonRepository.
type ContactReasonRepository struct {
	db *gorm.DB
}

// NewContactReasonRepository creates a repository on the given connection.
func NewContactReasonRepository(db *gorm.DB) IContactReasonRepository {
	return &ContactReasonRepository{db: db}
}

func (r *ContactReasonRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// FindActiveOrdered returns the active reasons in their configured order.
func (r *ContactReasonRepository) FindActiveOrdered(ctx context.Context) ([]models.ContactReason, error) {
	var reasons []models.ContactReason
	err := r.getDB(ctx).
		Where("is_active = ?", true).
		Order("sort_order asc, id asc").
		Find(&reasons).Error
	if err != nil {
		configslog.Log.Error("ContactReasonRepository.FindActiveOrdered: DB error", zap.Error(err))
		return nil, err
	}
	return reasons, nil
}

// FindByID returns a reason regardless of its active flag.
func (r *ContactReasonRepository) FindByID(ctx context.Context, id uint) (*models.ContactReason, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var reason models.ContactReason
	err := r.getDB(ctx).First(&reason, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ContactReasonRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &reason, nil
}

// FindActiveByID returns a reason only when it exists and is active.
func (r *ContactReasonRepository) FindActiveByID(ctx context.Context, id uint) (*models.ContactReason, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var reason models.ContactReason
	err := r.getDB(ctx).Where("is_active = ?", true).First(&reason, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ContactReasonRepository.FindActiveByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &reason, nil
}

var _ IContactReasonRepository = (*ContactReasonRepository)(nil)
