package chartofaccount

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"speed-hrm/internal/activitylog"
	chartofaccounterrors "speed-hrm/internal/chartofaccount/errors"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/dberr"
	"speed-hrm/internal/shared/model"
	"speed-hrm/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	auditModule = "chart_of_account"
	auditEntity = "chart_of_account"

	// maxDepth bounds the ancestor walk so a corrupted tree cannot loop forever.
	maxDepth = 64
)

//go:generate mockgen -source=chartofaccount_service.go -destination=mock/chartofaccount_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]AccountResponse, error)
	GetTree(ctx context.Context) ([]TreeNode, error)
	GetByID(ctx context.Context, id string) (AccountResponse, error)
	Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateAccountRequest) (response.BulkCreateResult, error)
	Update(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (response.BulkDeleteResult, error)
	Seed(ctx context.Context) (SeedResult, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	seeder   *Seeder
	recorder activitylog.Recorder
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, recorder activitylog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("chartofaccount.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chartofaccount.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{
		db:       db,
		repo:     repo,
		seeder:   NewSeeder(db, repo, recorder, l),
		recorder: recorder,
		logger:   l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]AccountResponse, error) {
	accs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.log(ctx).Error("list accounts failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(accs), nil
}

func (s *service) GetTree(ctx context.Context) ([]TreeNode, error) {
	accs, err := s.repo.FindAll(ctx, ListFilter{})
	if err != nil {
		s.log(ctx).Error("load account tree failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return BuildTree(accs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AccountResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return AccountResponse{}, err
	}

	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*acc), nil
}

func (s *service) Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	acc := newAccount(ctx, req)
	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		EntityID:    acc.ID.String(),
		Description: fmt.Sprintf("Created account %s %q", acc.Code, acc.Name),
		NewValues:   req,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if acc.ParentID != nil {
			if _, err := loadGroupParent(ctx, qtx, acc.ParentID.String()); err != nil {
				return err
			}
		}
		if req.ParentCode != nil {
			parent, err := loadGroupParentByCode(ctx, qtx, *req.ParentCode)
			if err != nil {
				return err
			}
			acc.ParentID = &parent.ID
		}
		return qtx.Create(ctx, &acc)
	})
	if err != nil {
		s.log(ctx).Error("create account failed", zap.String("code", acc.Code), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, entry)
	s.log(ctx).Info("create account success", zap.String("account_id", acc.ID.String()))
	return mapToResponse(acc), nil
}

func (s *service) BulkCreate(ctx context.Context, req BulkCreateAccountRequest) (response.BulkCreateResult, error) {
	accs := make([]Account, len(req.Items))
	parentIDs := make(map[string]struct{})
	for i, r := range req.Items {
		accs[i] = newAccount(ctx, r)
		if accs[i].ParentID != nil {
			parentIDs[accs[i].ParentID.String()] = struct{}{}
		}
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionBulkCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		Description: fmt.Sprintf("Bulk created %d accounts", len(accs)),
		NewValues:   req.Items,
	}

	var created int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if len(parentIDs) > 0 {
			ids := make([]string, 0, len(parentIDs))
			for id := range parentIDs {
				ids = append(ids, id)
			}
			parents, err := qtx.FindByIDs(ctx, ids)
			if err != nil {
				return err
			}
			if len(parents) != len(ids) {
				return chartofaccounterrors.ErrParentNotFound
			}
			for _, p := range parents {
				if !p.IsGroup {
					return chartofaccounterrors.ErrParentNotGroup
				}
			}
		}

		ordered, err := linkBatchParents(ctx, qtx, req.Items, accs)
		if err != nil {
			return err
		}
		created, err = qtx.CreateBulk(ctx, ordered)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk create accounts failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		// A batch parent skipped as a duplicate code leaves its children dangling.
		if dberr.IsForeignKeyViolation(err, parentFK) {
			return response.BulkCreateResult{}, chartofaccounterrors.ErrParentNotFound
		}
		return response.BulkCreateResult{}, mapRepositoryError(err)
	}

	result := response.NewBulkCreateResult(len(accs), created)
	if result.Skipped > 0 {
		entry.Description = fmt.Sprintf("%s, %d skipped as duplicates", entry.Description, result.Skipped)
	}
	s.recorder.Record(ctx, entry)
	return result, nil
}

// Update enforces the tree invariants against the stored tree: the parent
// must be a group, never the account itself or one of its descendants, and
// an account with children stays a group.
func (s *service) Update(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error) {
	accID, err := model.ParseID(id)
	if err != nil {
		return AccountResponse{}, err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var before, after Account
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		acc, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *acc

		switch {
		case req.ClearParent:
			acc.ParentID = nil
		case req.ParentID != nil:
			if *req.ParentID == accID.String() {
				return chartofaccounterrors.ErrSelfParent
			}
			parent, err := loadGroupParent(ctx, qtx, *req.ParentID)
			if err != nil {
				return err
			}
			if err := checkNotDescendant(ctx, qtx, accID, parent); err != nil {
				return err
			}
			acc.ParentID = &parent.ID
		}

		if req.IsGroup != nil && !*req.IsGroup && acc.IsGroup {
			children, err := qtx.CountChildren(ctx, []string{id})
			if err != nil {
				return err
			}
			if children > 0 {
				return chartofaccounterrors.ErrAccountHasChildren
			}
		}

		applyUpdate(acc, req)
		acc.Parent = nil
		acc.StampUpdate(ctx)

		if err := qtx.Update(ctx, acc); err != nil {
			return err
		}
		after = *acc
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update account failed", zap.String("account_id", id), zap.Error(err))
		entry.Description = "Failed to update account"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Updated account %s", after.Code)
	entry.OldValues = mapToResponse(before)
	entry.NewValues = mapToResponse(after)
	s.recorder.Record(ctx, entry)

	return mapToResponse(after), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var removed Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		acc, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *acc

		children, err := qtx.CountChildren(ctx, []string{id})
		if err != nil {
			return err
		}
		if children > 0 {
			return chartofaccounterrors.ErrAccountHasChildren
		}

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete account failed", zap.String("account_id", id), zap.Error(err))
		entry.Description = "Failed to delete account"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted account %s", removed.Code)
	entry.OldValues = mapToResponse(removed)
	s.recorder.Record(ctx, entry)
	return nil
}

func (s *service) BulkDelete(ctx context.Context, ids []string) (response.BulkDeleteResult, error) {
	ids, err := model.ParseIDs(ids)
	if err != nil {
		return response.BulkDeleteResult{}, err
	}

	entry := activitylog.Entry{
		Action: activitylog.ActionBulkDelete,
		Module: auditModule,
		Entity: auditEntity,
	}

	var (
		existing []Account
		deleted  int64
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		existing, err = qtx.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}

		children, err := qtx.CountChildren(ctx, ids)
		if err != nil {
			return err
		}
		if children > 0 {
			return chartofaccounterrors.ErrAccountHasChildren
		}

		deleted, err = qtx.DeleteBulk(ctx, ids)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk delete accounts failed", zap.Error(err))
		entry.Description = "Failed to bulk delete accounts"
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapRepositoryError(err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, acc := range existing {
		found[acc.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d accounts", deleted)
	entry.OldValues = mapToListResponse(existing)
	s.recorder.Record(ctx, entry)
	return result, nil
}

func (s *service) Seed(ctx context.Context) (SeedResult, error) {
	return s.seeder.Seed(ctx, DefaultTree())
}

func loadGroupParent(ctx context.Context, qtx Repository, parentID string) (*Account, error) {
	parent, err := qtx.FindByID(ctx, parentID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, chartofaccounterrors.ErrParentNotFound
		}
		return nil, err
	}
	if !parent.IsGroup {
		return nil, chartofaccounterrors.ErrParentNotGroup
	}
	return parent, nil
}

func loadGroupParentByCode(ctx context.Context, qtx Repository, code string) (*Account, error) {
	parent, err := qtx.FindByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, chartofaccounterrors.ErrParentNotFound
		}
		return nil, err
	}
	if !parent.IsGroup {
		return nil, chartofaccounterrors.ErrParentNotGroup
	}
	return parent, nil
}

// linkBatchParents resolves parent_code for each item, preferring an account
// declared earlier in the same batch over a stored one, and returns accs
// ordered so every in-batch parent is inserted before its children.
func linkBatchParents(ctx context.Context, qtx Repository, items []CreateAccountRequest, accs []Account) ([]Account, error) {
	byCode := make(map[string]int, len(accs))
	for i := range accs {
		if _, dup := byCode[accs[i].Code]; !dup {
			byCode[accs[i].Code] = i
		}
	}

	for i, item := range items {
		if item.ParentCode == nil {
			continue
		}
		code := strings.TrimSpace(*item.ParentCode)
		if j, ok := byCode[code]; ok {
			if j == i {
				return nil, chartofaccounterrors.ErrSelfParent
			}
			if !accs[j].IsGroup {
				return nil, chartofaccounterrors.ErrParentNotGroup
			}
			accs[i].ParentID = &accs[j].ID
			continue
		}
		parent, err := loadGroupParentByCode(ctx, qtx, code)
		if err != nil {
			return nil, err
		}
		accs[i].ParentID = &parent.ID
	}

	return parentsFirst(accs)
}

func parentsFirst(accs []Account) ([]Account, error) {
	const (
		unvisited = iota
		visiting
		placed
	)
	index := make(map[uuid.UUID]int, len(accs))
	for i := range accs {
		index[accs[i].ID] = i
	}

	state := make([]int, len(accs))
	out := make([]Account, 0, len(accs))
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case visiting:
			return chartofaccounterrors.ErrCircularParent
		case placed:
			return nil
		}
		state[i] = visiting
		if p := accs[i].ParentID; p != nil {
			if j, ok := index[*p]; ok {
				if err := visit(j); err != nil {
					return err
				}
			}
		}
		state[i] = placed
		out = append(out, accs[i])
		return nil
	}

	for i := range accs {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkNotDescendant walks up from parent and fails if it meets id.
func checkNotDescendant(ctx context.Context, qtx Repository, id uuid.UUID, parent *Account) error {
	cur := parent
	for depth := 0; cur.ParentID != nil; depth++ {
		if *cur.ParentID == id || depth >= maxDepth {
			return chartofaccounterrors.ErrCircularParent
		}
		next, err := qtx.FindByID(ctx, cur.ParentID.String())
		if err != nil {
			if dberr.IsNotFound(err) {
				return nil
			}
			return err
		}
		cur = next
	}
	return nil
}

// BuildTree nests accounts under their parents. Accounts whose parent is not
// in the slice become roots. Siblings are ordered by code.
func BuildTree(accs []Account) []TreeNode {
	byParent := make(map[uuid.UUID][]Account)
	known := make(map[uuid.UUID]struct{}, len(accs))
	for _, acc := range accs {
		known[acc.ID] = struct{}{}
	}

	var roots []Account
	for _, acc := range accs {
		if acc.ParentID == nil {
			roots = append(roots, acc)
			continue
		}
		if _, ok := known[*acc.ParentID]; !ok {
			roots = append(roots, acc)
			continue
		}
		byParent[*acc.ParentID] = append(byParent[*acc.ParentID], acc)
	}

	var build func(level []Account) []TreeNode
	build = func(level []Account) []TreeNode {
		sort.Slice(level, func(i, j int) bool { return level[i].Code < level[j].Code })
		nodes := make([]TreeNode, len(level))
		for i, acc := range level {
			nodes[i] = TreeNode{
				AccountResponse: mapToResponse(acc),
				Children:        build(byParent[acc.ID]),
			}
		}
		return nodes
	}
	return build(roots)
}

func newAccount(ctx context.Context, req CreateAccountRequest) Account {
	acc := Account{
		ID:       uuid.New(),
		Code:     strings.TrimSpace(req.Code),
		Name:     strings.TrimSpace(req.Name),
		Type:     AccountType(req.Type),
		IsGroup:  req.IsGroup,
		IsActive: true,
	}
	if req.ParentID != nil {
		acc.ParentID = model.UUIDPtr(*req.ParentID)
	}
	if req.Balance != nil {
		acc.Balance = *req.Balance
	}
	if req.IsActive != nil {
		acc.IsActive = *req.IsActive
	}
	acc.StampCreate(ctx)
	return acc
}

func applyUpdate(acc *Account, req UpdateAccountRequest) {
	if req.Code != nil {
		acc.Code = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		acc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		acc.Type = AccountType(*req.Type)
	}
	if req.IsGroup != nil {
		acc.IsGroup = *req.IsGroup
	}
	if req.Balance != nil {
		acc.Balance = *req.Balance
	}
	if req.IsActive != nil {
		acc.IsActive = *req.IsActive
	}
}

func mapToResponse(acc Account) AccountResponse {
	return AccountResponse{
		ID:          acc.ID.String(),
		Code:        acc.Code,
		Name:        acc.Name,
		Type:        string(acc.Type),
		IsGroup:     acc.IsGroup,
		ParentID:    model.UUIDString(acc.ParentID),
		Balance:     acc.Balance,
		IsActive:    acc.IsActive,
		CreatedByID: model.UUIDString(acc.CreatedByID),
		UpdatedByID: model.UUIDString(acc.UpdatedByID),
		CreatedAt:   model.FormatTime(acc.CreatedAt),
		UpdatedAt:   model.FormatTime(acc.UpdatedAt),
	}
}

func mapToListResponse(accs []Account) []AccountResponse {
	out := make([]AccountResponse, len(accs))
	for i, acc := range accs {
		out[i] = mapToResponse(acc)
	}
	return out
}
