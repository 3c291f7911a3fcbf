package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"speed-hrm/internal/activitylog"
	employeeerrors "speed-hrm/internal/employee/errors"
	"speed-hrm/internal/shared/cache"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/counter"
	"speed-hrm/internal/shared/model"
	"speed-hrm/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	auditModule = "employee"
	auditEntity = "employee"

	// OptionsCacheKey holds the active-employee picker list.
	OptionsCacheKey = "employees:options"

	codeCounter = "employee_code"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateEmployeeRequest) (response.BulkCreateResult, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (response.BulkDeleteResult, error)
	Transfer(ctx context.Context, id string, req TransferRequest) (TransferResponse, error)
	GetTransfers(ctx context.Context, id string) ([]TransferResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	counter  counter.Repository
	recorder activitylog.Recorder
	cache    *cache.ListCache
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	counterRepo counter.Repository,
	recorder activitylog.Recorder,
	listCache *cache.ListCache,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		recorder: recorder,
		cache:    listCache,
		logger:   l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error) {
	empls, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.log(ctx).Error("get all employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(empls), total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	return cache.Fetch(ctx, s.cache, OptionsCacheKey, func(ctx context.Context) ([]EmployeeOptionResponse, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		out := make([]EmployeeOptionResponse, len(empls))
		for i, e := range empls {
			out[i] = EmployeeOptionResponse{ID: e.ID.String(), EmployeeCode: e.EmployeeCode, FullName: e.FullName}
		}
		return out, nil
	})
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	empl, err := newEmployee(ctx, req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		EntityID:    empl.ID.String(),
		Description: fmt.Sprintf("Created employee %q", empl.FullName),
		NewValues:   req,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if empl.EmployeeCode == "" {
			code, err := s.nextCode(ctx, tx)
			if err != nil {
				return err
			}
			empl.EmployeeCode = code
		}
		return s.repo.WithTx(tx).Create(ctx, &empl)
	})
	if err != nil {
		s.log(ctx).Error("create employee failed", zap.String("email", empl.Email), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Created employee %s %q", empl.EmployeeCode, empl.FullName)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, OptionsCacheKey)

	s.log(ctx).Info("create employee success",
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return mapToResponse(empl), nil
}

func (s *service) BulkCreate(ctx context.Context, req BulkCreateEmployeeRequest) (response.BulkCreateResult, error) {
	empls := make([]Employee, len(req.Items))
	for i, r := range req.Items {
		empl, err := newEmployee(ctx, r)
		if err != nil {
			return response.BulkCreateResult{}, err
		}
		empls[i] = empl
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionBulkCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		Description: fmt.Sprintf("Bulk created %d employees", len(empls)),
		NewValues:   req.Items,
	}

	var created int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range empls {
			if empls[i].EmployeeCode != "" {
				continue
			}
			code, err := s.nextCode(ctx, tx)
			if err != nil {
				return err
			}
			empls[i].EmployeeCode = code
		}

		var err error
		created, err = s.repo.WithTx(tx).CreateBulk(ctx, empls)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk create employees failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkCreateResult{}, mapRepositoryError(err)
	}

	result := response.NewBulkCreateResult(len(empls), created)
	if result.Skipped > 0 {
		entry.Description = fmt.Sprintf("%s, %d skipped as duplicates", entry.Description, result.Skipped)
	}
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, OptionsCacheKey)

	return result, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return EmployeeResponse{}, err
	}
	if req.Salary != nil && req.Salary.IsNegative() {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var before, after Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *empl

		if err := applyUpdate(empl, req); err != nil {
			return err
		}
		empl.StampUpdate(ctx)

		if err := qtx.Update(ctx, empl); err != nil {
			return err
		}
		after = *empl
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		entry.Description = "Failed to update employee"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Updated employee %s", after.EmployeeCode)
	entry.OldValues = mapToResponse(before)
	entry.NewValues = mapToResponse(after)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, OptionsCacheKey)

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

	var removed Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *empl

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		entry.Description = "Failed to delete employee"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted employee %s", removed.EmployeeCode)
	entry.OldValues = mapToResponse(removed)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, OptionsCacheKey)

	s.log(ctx).Info("delete employee success", zap.String("employee_id", id))
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
		existing []Employee
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

		deleted, err = qtx.DeleteBulk(ctx, ids)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk delete employees failed", zap.Error(err))
		entry.Description = "Failed to bulk delete employees"
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapRepositoryError(err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		found[e.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d employees", deleted)
	entry.OldValues = mapToListResponse(existing)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, OptionsCacheKey)

	return result, nil
}

// Transfer records the move and updates the employee's placement in one
// transaction.
func (s *service) Transfer(ctx context.Context, id string, req TransferRequest) (TransferResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return TransferResponse{}, err
	}
	effective, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return TransferResponse{}, employeeerrors.ErrInvalidEffectiveDate
	}

	entry := activitylog.Entry{
		Action:    activitylog.ActionTransfer,
		Module:    auditModule,
		Entity:    "employee_transfer",
		EntityID:  id,
		NewValues: req,
	}

	var (
		transfer EmployeeTransfer
		before   Employee
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *empl

		toDept := uuid.MustParse(req.ToDepartmentID)
		toDesignation := empl.DesignationID
		if req.ToDesignationID != nil {
			toDesignation = model.UUIDPtr(*req.ToDesignationID)
		}
		if sameUUID(empl.DepartmentID, &toDept) && sameUUID(empl.DesignationID, toDesignation) {
			return employeeerrors.ErrTransferNoChange
		}

		transfer = EmployeeTransfer{
			ID:                uuid.New(),
			EmployeeID:        empl.ID,
			FromDepartmentID:  empl.DepartmentID,
			ToDepartmentID:    toDept,
			FromDesignationID: empl.DesignationID,
			ToDesignationID:   toDesignation,
			EffectiveDate:     effective,
			Reason:            req.Reason,
			CreatedByID:       model.ActorID(ctx),
		}
		if err := qtx.CreateTransfer(ctx, &transfer); err != nil {
			return err
		}

		empl.DepartmentID = &toDept
		empl.Department = nil
		empl.DesignationID = toDesignation
		empl.StampUpdate(ctx)
		return qtx.Update(ctx, empl)
	})
	if err != nil {
		s.log(ctx).Error("transfer employee failed", zap.String("employee_id", id), zap.Error(err))
		entry.Description = "Failed to transfer employee"
		s.recorder.Record(ctx, entry.Failed(err))
		return TransferResponse{}, mapRepositoryError(err)
	}

	resp := mapToTransferResponse(transfer)
	entry.Description = fmt.Sprintf("Transferred employee %s", before.EmployeeCode)
	entry.OldValues = mapToResponse(before)
	entry.NewValues = resp
	s.recorder.Record(ctx, entry)

	s.log(ctx).Info("transfer employee success",
		zap.String("employee_id", id),
		zap.String("to_department_id", req.ToDepartmentID),
	)
	return resp, nil
}

func (s *service) GetTransfers(ctx context.Context, id string) ([]TransferResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	transfers, err := s.repo.FindTransfers(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		out[i] = mapToTransferResponse(t)
	}
	return out, nil
}

func (s *service) nextCode(ctx context.Context, tx *gorm.DB) (string, error) {
	next, err := s.counter.WithTx(tx).GetNextValue(ctx, codeCounter)
	if err != nil {
		return "", fmt.Errorf("generate employee code: %w", err)
	}
	return fmt.Sprintf("EMP-%06d", next), nil
}

func newEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	joining, err := time.Parse(dateLayout, req.JoiningDate)
	if err != nil {
		return Employee{}, employeeerrors.ErrInvalidJoiningDate
	}
	if req.Salary.IsNegative() {
		return Employee{}, employeeerrors.ErrNegativeSalary
	}

	empl := Employee{
		ID:            uuid.New(),
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         req.Phone,
		CNIC:          req.CNIC,
		DepartmentID:  optionalUUID(req.DepartmentID),
		DesignationID: optionalUUID(req.DesignationID),
		Salary:        req.Salary,
		JoiningDate:   joining,
		Status:        model.StatusOrDefault(req.Status),
	}
	if req.EmployeeCode != nil {
		empl.EmployeeCode = strings.ToUpper(strings.TrimSpace(*req.EmployeeCode))
	}
	empl.StampCreate(ctx)
	return empl, nil
}

func applyUpdate(empl *Employee, req UpdateEmployeeRequest) error {
	if req.JoiningDate != nil {
		joining, err := time.Parse(dateLayout, *req.JoiningDate)
		if err != nil {
			return employeeerrors.ErrInvalidJoiningDate
		}
		empl.JoiningDate = joining
	}
	if req.FullName != nil {
		empl.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		empl.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		empl.Phone = req.Phone
	}
	if req.CNIC != nil {
		empl.CNIC = req.CNIC
	}
	if req.DepartmentID != nil {
		empl.DepartmentID = optionalUUID(req.DepartmentID)
		empl.Department = nil
	}
	if req.DesignationID != nil {
		empl.DesignationID = optionalUUID(req.DesignationID)
	}
	if req.Salary != nil {
		empl.Salary = *req.Salary
	}
	if req.Status != nil {
		empl.Status = *req.Status
	}
	return nil
}

func optionalUUID(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	return model.UUIDPtr(*v)
}

func sameUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            empl.ID.String(),
		EmployeeCode:  empl.EmployeeCode,
		FullName:      empl.FullName,
		Email:         empl.Email,
		Phone:         model.StringValue(empl.Phone),
		CNIC:          model.StringValue(empl.CNIC),
		DepartmentID:  model.UUIDString(empl.DepartmentID),
		DesignationID: model.UUIDString(empl.DesignationID),
		Salary:        empl.Salary,
		JoiningDate:   empl.JoiningDate.Format(dateLayout),
		Status:        empl.Status,
		CreatedByID:   model.UUIDString(empl.CreatedByID),
		UpdatedByID:   model.UUIDString(empl.UpdatedByID),
		CreatedAt:     model.FormatTime(empl.CreatedAt),
		UpdatedAt:     model.FormatTime(empl.UpdatedAt),
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func mapToTransferResponse(t EmployeeTransfer) TransferResponse {
	return TransferResponse{
		ID:                t.ID.String(),
		EmployeeID:        t.EmployeeID.String(),
		FromDepartmentID:  model.UUIDString(t.FromDepartmentID),
		ToDepartmentID:    t.ToDepartmentID.String(),
		FromDesignationID: model.UUIDString(t.FromDesignationID),
		ToDesignationID:   model.UUIDString(t.ToDesignationID),
		EffectiveDate:     t.EffectiveDate.Format(dateLayout),
		Reason:            model.StringValue(t.Reason),
		CreatedByID:       model.UUIDString(t.CreatedByID),
		CreatedAt:         model.FormatTime(t.CreatedAt),
	}
}
