package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "birikim/internal/errors"
	"birikim/internal/logger"
	"birikim/internal/models"
	"birikim/internal/pagination"
)

// portfolioSnapshotService handles portfolio snapshot operations.
type portfolioSnapshotService struct {
	db               *gorm.DB
	portfolioService PortfolioServicer
}

// NewPortfolioSnapshotService creates a new PortfolioSnapshotServicer.
func NewPortfolioSnapshotService(db *gorm.DB, portfolioService PortfolioServicer) PortfolioSnapshotServicer {
	return &portfolioSnapshotService{db: db, portfolioService: portfolioService}
}

// ComputeAndRecordSnapshots values every user with at least one transaction
// and stores the totals at recordedAt. Re-running for the same instant
// overwrites the earlier snapshot.
func (s *portfolioSnapshotService) ComputeAndRecordSnapshots(recordedAt time.Time) (int, error) {
	recordedAt = recordedAt.UTC().Truncate(time.Second)

	var userIDs []uint
	if err := s.db.Model(&models.Transaction{}).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	count := 0
	for _, userID := range userIDs {
		view, err := s.portfolioService.GetPortfolio(userID)
		if err != nil {
			return count, err
		}

		snapshot := &models.PortfolioSnapshot{
			UserID:       userID,
			RecordedAt:   recordedAt,
			TotalCost:    view.Totals.TotalCost,
			TotalValue:   view.Totals.TotalValue,
			ProfitLoss:   view.Totals.ProfitLoss,
			HoldingCount: len(view.Holdings),
		}
		if err := s.upsert(snapshot); err != nil {
			return count, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		count++
	}

	logger.Get().Infow("portfolio snapshots recorded", "count", count, "recorded_at", recordedAt)
	return count, nil
}

// upsert writes the snapshot in one statement so concurrent runs for the
// same user and second collapse onto uq_snapshots_user_time.
func (s *portfolioSnapshotService) upsert(snapshot *models.PortfolioSnapshot) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recorded_at"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_cost", "total_value", "profit_loss", "holding_count"}),
	}).Create(snapshot).Error
}

// GetSnapshots returns paginated snapshots for a user within a date range, newest first.
func (s *portfolioSnapshotService) GetSnapshots(
	userID uint,
	from, to time.Time,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.PortfolioSnapshot], error) {
	page.Defaults()
	if to.Before(from) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "'to' must not be before 'from'")
	}

	base := s.db.Model(&models.PortfolioSnapshot{}).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at <= ?", userID, from.UTC(), to.UTC())

	var totalItems int64
	if err := base.Session(&gorm.Session{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.PortfolioSnapshot
	if err := base.Session(&gorm.Session{}).
		Order("recorded_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
