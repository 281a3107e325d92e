package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// txContextKey carries an open transaction through a context so repository
// calls inside db.Transaction run on the transaction connection.
type txContextKey struct{}

// ContextWithTx attaches a transaction handle to ctx.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// IFormRequestRepository covers persistence of contact form submissions.
type IFormRequestRepository interface {
	Create(ctx context.Context, request *models.FormRequest) error
	FindByID(ctx context.Context, id uint) (*models.FormRequest, error)
	Delete(ctx context.Context, request *models.FormRequest) error
	CountAll(ctx context.Context) (int64, error)
}

// FormRequestRepository implements IFormRequestRepository.
type FormRequestRepository struct {
	db *gorm.DB
}

// NewFormRequestRepository creates a repository on the given connection.
func NewFormRequestRepository(db *gorm.DB) IFormRequestRepository {
	return &FormRequestRepository{db: db}
}

// NewFormRequestRepositoryTx creates a repository bound to an open
// transaction.
func NewFormRequestRepositoryTx(tx *gorm.DB) IFormRequestRepository {
	return &FormRequestRepository{db: tx}
}

func (r *FormRequestRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create inserts a new submission row.
func (r *FormRequestRepository) Create(ctx context.Context, request *models.FormRequest) error {
	if request == nil || request.ContactReasonID == 0 {
		return errors.New("cannot create form request without a contact reason")
	}
	return r.getDB(ctx).Create(request).Error
}

// FindByID returns a submission with its reason preloaded.
func (r *FormRequestRepository) FindByID(ctx context.Context, id uint) (*models.FormRequest, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var request models.FormRequest
	err := r.getDB(ctx).Preload("ContactReason").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRequestRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &request, nil
}

// Delete soft-deletes a submission (administrative removal).
func (r *FormRequestRepository) Delete(ctx context.Context, request *models.FormRequest) error {
	if request == nil || request.ID == 0 {
		return errors.New("cannot delete an unsaved form request")
	}
	now := time.Now().UTC()
	result := r.getDB(ctx).Model(request).
		Where("id = ? AND deleted_at IS NULL", request.ID).
		Update("deleted_at", now)
	if result.Error != nil {
		configslog.Log.Error("FormRequestRepository.Delete: DB error", zap.Uint("id", request.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAll returns the number of live submissions.
func (r *FormRequestRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.FormRequest{}).Count(&count).Error
	return count, err
}

var _ IFormRequestRepository = (*FormRequestRepository)(nil)
