package appraisal

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	appraisalerrors "go-hrms/internal/appraisal/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/performance"
	"go-hrms/internal/salarystructure"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ReviewSource reads the review pipeline an appraisal cycle is linked to.
type ReviewSource interface {
	FindCycleByID(ctx context.Context, id string) (*performance.ReviewCycle, error)
	FindReview(ctx context.Context, employeeID, reviewCycleID string) (*performance.PerformanceReview, error)
}

//go:generate mockgen -source=appraisal_service.go -destination=mock/appraisal_service_mock.go -package=mock
type Service interface {
	CreateCycle(ctx context.Context, actor domain.Actor, req CreateCycleRequest) (CycleResponse, error)
	UpdateCycleStatus(ctx context.Context, id, status string) (CycleResponse, error)
	ListCycles(ctx context.Context, status string) ([]CycleResponse, error)

	ProposeIncrement(ctx context.Context, actor domain.Actor, req ProposeIncrementRequest) (RecordResponse, error)
	ApproveAppraisal(ctx context.Context, actor domain.Actor, id string) (RecordResponse, error)
	RejectAppraisal(ctx context.Context, actor domain.Actor, id, reason string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter ListRecordsFilter) ([]RecordResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	reviews    ReviewSource
	employees  employee.Repository
	structures salarystructure.Repository
	outbox     kafka.OutboxRepository
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	reviews ReviewSource,
	employees employee.Repository,
	structures salarystructure.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("appraisal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("appraisal.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		reviews:    reviews,
		employees:  employees,
		structures: structures,
		outbox:     outboxRepo,
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) CreateCycle(ctx context.Context, actor domain.Actor, req CreateCycleRequest) (CycleResponse, error) {
	effectiveFrom, err := time.Parse(dateLayout, req.EffectiveFrom)
	if err != nil {
		return CycleResponse{}, appraisalerrors.ErrInvalidDate
	}

	reviewCycle, err := s.reviews.FindCycleByID(ctx, req.LinkedReviewCycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CycleResponse{}, appraisalerrors.ErrReviewCycleNotFound
		}
		return CycleResponse{}, err
	}

	cycle := &AppraisalCycle{
		ID:                  uuid.New(),
		Name:                strings.TrimSpace(req.Name),
		LinkedReviewCycleID: reviewCycle.ID,
		EffectiveFrom:       effectiveFrom,
		Status:              CycleDraft,
		CreatedBy:           parseOptional(actor.UserID),
	}
	if err := s.repo.CreateCycle(ctx, cycle); err != nil {
		if apperror.IsUniqueViolation(err, "uq_appraisal_cycle_review_cycle") {
			return CycleResponse{}, appraisalerrors.ErrCycleAlreadyLinked
		}
		return CycleResponse{}, err
	}
	return mapCycle(*cycle), nil
}

var nextCycleStatus = map[string]string{
	CycleDraft:  CycleActive,
	CycleActive: CycleClosed,
}

func (s *service) UpdateCycleStatus(ctx context.Context, id, status string) (CycleResponse, error) {
	cycle, err := s.findCycle(ctx, s.repo, id)
	if err != nil {
		return CycleResponse{}, err
	}
	if next, ok := nextCycleStatus[cycle.Status]; !ok || next != status {
		return CycleResponse{}, appraisalerrors.ErrInvalidCycleTransition
	}

	cycle.Status = status
	if err := s.repo.UpdateCycle(ctx, cycle); err != nil {
		return CycleResponse{}, err
	}
	return mapCycle(*cycle), nil
}

func (s *service) ListCycles(ctx context.Context, status string) ([]CycleResponse, error) {
	cycles, err := s.repo.FindCycles(ctx, status)
	if err != nil {
		return nil, err
	}
	resp := make([]CycleResponse, len(cycles))
	for i, c := range cycles {
		resp[i] = mapCycle(c)
	}
	return resp, nil
}

// ProposeIncrement records a proposal against the employee's finalized review for the
// linked review cycle.
func (s *service) ProposeIncrement(ctx context.Context, actor domain.Actor, req ProposeIncrementRequest) (RecordResponse, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(req.IncrementValue))
	if err != nil || value.IsNegative() {
		return RecordResponse{}, appraisalerrors.ErrInvalidIncrement
	}

	cycle, err := s.findCycle(ctx, s.repo, req.AppraisalCycleID)
	if err != nil {
		return RecordResponse{}, err
	}
	if cycle.Status != CycleActive {
		return RecordResponse{}, appraisalerrors.ErrCycleNotActive
	}

	emp, err := s.repo.FindEmployee(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, appraisalerrors.ErrEmployeeNotFound
		}
		return RecordResponse{}, err
	}

	review, err := s.reviews.FindReview(ctx, req.EmployeeID, cycle.LinkedReviewCycleID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, appraisalerrors.ErrNoFinalizedReview
		}
		return RecordResponse{}, err
	}
	if review.Status != performance.ReviewFinalized {
		return RecordResponse{}, appraisalerrors.ErrNoFinalizedReview
	}

	rec := &AppraisalRecord{
		ID:                    uuid.New(),
		EmployeeID:            emp.ID,
		AppraisalCycleID:      cycle.ID,
		PerformanceReviewID:   review.ID,
		FinalRating:           review.FinalRating,
		IncrementType:         req.IncrementType,
		IncrementValue:        value,
		OldCTC:                emp.Salary,
		NewCTC:                NewCTC(emp.Salary, req.IncrementType, value),
		ProposedDesignationID: parseOptional(req.ProposedDesignationID),
		Remarks:               req.Remarks,
		Status:                StatusProposed,
		ProposedBy:            parseOptional(actor.UserID),
	}
	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		if apperror.IsUniqueViolation(err, "uq_appraisal_employee_cycle") {
			return RecordResponse{}, appraisalerrors.ErrDuplicateProposal
		}
		return RecordResponse{}, err
	}

	s.logger.Info("appraisal proposed",
		zap.String("record_id", rec.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("new_ctc", rec.NewCTC.StringFixed(2)),
	)
	rec.Employee = emp
	return mapRecord(*rec), nil
}

// ApproveAppraisal applies the increment in one transaction: the employee's CTC and
// designation, a rotated salary structure, the record status and the outbox event.
func (s *service) ApproveAppraisal(ctx context.Context, actor domain.Actor, id string) (RecordResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return RecordResponse{}, appraisalerrors.ErrRecordNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := s.findRecord(ctx, qtx, id)
	if err != nil {
		return RecordResponse{}, err
	}
	if rec.Status != StatusProposed {
		return RecordResponse{}, appraisalerrors.ErrInvalidStatusTransition
	}
	cycle, err := s.findCycle(ctx, qtx, rec.AppraisalCycleID.String())
	if err != nil {
		return RecordResponse{}, err
	}

	var designationID *string
	if rec.ProposedDesignationID != nil {
		v := rec.ProposedDesignationID.String()
		designationID = &v
	}
	if err := s.employees.WithTx(tx).UpdateCompensation(ctx, rec.EmployeeID.String(), rec.NewCTC, designationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, appraisalerrors.ErrEmployeeNotFound
		}
		log.Error("appraisal approve salary update failed", zap.String("record_id", id), zap.Error(err))
		return RecordResponse{}, err
	}

	next := salarystructure.NewFromCTC(rec.EmployeeID, rec.NewCTC, cycle.EffectiveFrom)
	next.CreatedBy = parseOptional(actor.UserID)
	if err := salarystructure.Rotate(ctx, s.structures.WithTx(tx), next); err != nil {
		log.Error("appraisal approve structure rotation failed", zap.String("record_id", id), zap.Error(err))
		return RecordResponse{}, err
	}

	now := s.now().UTC()
	rec.Status = StatusApproved
	rec.ApprovedBy = parseOptional(actor.UserID)
	rec.ApprovedAt = &now
	if err := qtx.UpdateRecord(ctx, rec); err != nil {
		return RecordResponse{}, err
	}

	ev, err := kafka.NewOutboxEvent(ctx, "appraisal", rec.ID.String(), events.AppraisalApproved, events.AppraisalTopic, events.AppraisalApprovedEvent{
		EventType:     events.AppraisalApproved,
		RecordID:      rec.ID.String(),
		EmployeeID:    rec.EmployeeID.String(),
		OldCTC:        rec.OldCTC.StringFixed(2),
		NewCTC:        rec.NewCTC.StringFixed(2),
		DesignationID: stringValue(designationID),
		ApprovedBy:    actor.UserID,
		OccurredAt:    now,
	})
	if err != nil {
		return RecordResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
		log.Error("appraisal approve outbox failed", zap.String("record_id", id), zap.Error(err))
		return RecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	log.Info("appraisal approved",
		zap.String("record_id", id),
		zap.String("employee_id", rec.EmployeeID.String()),
		zap.String("structure_id", next.ID.String()),
	)
	return mapRecord(*rec), nil
}

func (s *service) RejectAppraisal(ctx context.Context, actor domain.Actor, id, reason string) (RecordResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return RecordResponse{}, appraisalerrors.ErrRejectionReasonRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return RecordResponse{}, appraisalerrors.ErrRecordNotFound
	}

	rec, err := s.findRecord(ctx, s.repo, id)
	if err != nil {
		return RecordResponse{}, err
	}
	if rec.Status != StatusProposed {
		return RecordResponse{}, appraisalerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	rec.Status = StatusRejected
	rec.RejectedBy = parseOptional(actor.UserID)
	rec.RejectedAt = &now
	rec.RejectionReason = &reason
	if err := s.repo.UpdateRecord(ctx, rec); err != nil {
		return RecordResponse{}, err
	}
	return mapRecord(*rec), nil
}

func (s *service) ListRecords(ctx context.Context, filter ListRecordsFilter) ([]RecordResponse, error) {
	records, err := s.repo.FindRecords(ctx, RecordFilter{
		AppraisalCycleID: filter.AppraisalCycleID,
		EmployeeID:       filter.EmployeeID,
		Status:           filter.Status,
	})
	if err != nil {
		return nil, err
	}
	resp := make([]RecordResponse, len(records))
	for i, r := range records {
		resp[i] = mapRecord(r)
	}
	return resp, nil
}

func (s *service) findCycle(ctx context.Context, repo Repository, id string) (*AppraisalCycle, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, appraisalerrors.ErrCycleNotFound
	}
	cycle, err := repo.FindCycleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appraisalerrors.ErrCycleNotFound
		}
		return nil, err
	}
	return cycle, nil
}

func (s *service) findRecord(ctx context.Context, repo Repository, id string) (*AppraisalRecord, error) {
	rec, err := repo.FindRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appraisalerrors.ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

func parseOptional(id string) *uuid.UUID {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return &u
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mapCycle(c AppraisalCycle) CycleResponse {
	return CycleResponse{
		ID:                  c.ID.String(),
		Name:                c.Name,
		LinkedReviewCycleID: c.LinkedReviewCycleID.String(),
		EffectiveFrom:       c.EffectiveFrom.Format(dateLayout),
		Status:              c.Status,
	}
}

func mapRecord(r AppraisalRecord) RecordResponse {
	resp := RecordResponse{
		ID:                  r.ID.String(),
		EmployeeID:          r.EmployeeID.String(),
		AppraisalCycleID:    r.AppraisalCycleID.String(),
		PerformanceReviewID: r.PerformanceReviewID.String(),
		FinalRating:         r.FinalRating.StringFixed(2),
		IncrementType:       r.IncrementType,
		IncrementValue:      r.IncrementValue.StringFixed(2),
		OldCTC:              r.OldCTC.StringFixed(2),
		NewCTC:              r.NewCTC.StringFixed(2),
		Remarks:             r.Remarks,
		Status:              r.Status,
		RejectionReason:     r.RejectionReason,
	}
	if r.Employee != nil {
		resp.EmployeeCode = r.Employee.EmployeeCode
		resp.EmployeeName = r.Employee.FullName()
	}
	if r.ProposedDesignationID != nil {
		v := r.ProposedDesignationID.String()
		resp.ProposedDesignationID = &v
	}
	if r.ApprovedBy != nil {
		v := r.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if r.ApprovedAt != nil {
		v := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}
