package chartofaccount

import (
	"context"
	"fmt"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedNode describes one account of a seed tree. A node with children is
// always stored as a group.
type SeedNode struct {
	Code     string
	Name     string
	Type     AccountType
	IsGroup  bool
	Children []SeedNode
}

// Seeder installs a seed tree. Running it again leaves existing accounts in
// place and only fixes their parent links, so it is safe to repeat.
type Seeder struct {
	db       *gorm.DB
	repo     Repository
	recorder activitylog.Recorder
	logger   *zap.Logger
}

func NewSeeder(db *gorm.DB, repo Repository, recorder activitylog.Recorder, logger *zap.Logger) *Seeder {
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Seeder{db: db, repo: repo, recorder: recorder, logger: logger.Named("chartofaccount.seeder")}
}

func (s *Seeder) Seed(ctx context.Context, roots []SeedNode) (SeedResult, error) {
	entry := activitylog.Entry{
		Action: activitylog.ActionSeed,
		Module: auditModule,
		Entity: auditEntity,
	}

	var result SeedResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		for _, root := range roots {
			if err := s.seedNode(ctx, qtx, root, nil, &result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("seed chart of accounts failed", zap.Error(err))
		entry.Description = "Failed to seed chart of accounts"
		s.recorder.Record(ctx, entry.Failed(err))
		return SeedResult{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Seeded chart of accounts (%d created, %d reparented, %d unchanged)",
		result.Created, result.Reparented, result.Unchanged)
	entry.NewValues = result
	s.recorder.Record(ctx, entry)
	s.logger.Info("seed chart of accounts success",
		zap.Int("created", result.Created),
		zap.Int("reparented", result.Reparented),
		zap.Int("unchanged", result.Unchanged),
	)
	return result, nil
}

func (s *Seeder) seedNode(ctx context.Context, qtx Repository, node SeedNode, parentID *uuid.UUID, result *SeedResult) error {
	isGroup := node.IsGroup || len(node.Children) > 0

	acc, err := qtx.FindByCode(ctx, node.Code)
	switch {
	case err == nil:
		changed := false
		if !sameParent(acc.ParentID, parentID) {
			acc.ParentID = parentID
			changed = true
		}
		if isGroup && !acc.IsGroup {
			acc.IsGroup = true
			changed = true
		}
		if changed {
			acc.StampUpdate(ctx)
			if err := qtx.Update(ctx, acc); err != nil {
				return err
			}
			result.Reparented++
		} else {
			result.Unchanged++
		}
	case dberr.IsNotFound(err):
		acc = &Account{
			ID:       uuid.New(),
			Code:     node.Code,
			Name:     node.Name,
			Type:     node.Type,
			IsGroup:  isGroup,
			ParentID: parentID,
			IsActive: true,
		}
		acc.StampCreate(ctx)
		if err := qtx.Create(ctx, acc); err != nil {
			return err
		}
		result.Created++
	default:
		return err
	}

	for _, child := range node.Children {
		if err := s.seedNode(ctx, qtx, child, &acc.ID, result); err != nil {
			return err
		}
	}
	return nil
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
