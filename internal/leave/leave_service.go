package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/calendar"
	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttendanceWriter is the part of the attendance ledger that leave approval drives.
type AttendanceWriter interface {
	MarkLeaveDays(ctx context.Context, tx *sql.Tx, employeeID string, dates []time.Time, actorID string) error
	ClearLeaveDays(ctx context.Context, tx *sql.Tx, employeeID string, dates []time.Time) error
}

// CalendarWriter publishes the team-visibility events that mirror approved leave.
type CalendarWriter interface {
	CreateEvent(ctx context.Context, in calendar.CreateEventInput) (calendar.EventResponse, error)
	DeleteEvent(ctx context.Context, eventType, sourceID string) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context, includeInactive bool) ([]LeaveTypeResponse, error)
	UpsertPolicy(ctx context.Context, req UpsertPolicyRequest) (LeavePolicyResponse, error)
	ListPolicies(ctx context.Context) ([]LeavePolicyResponse, error)

	Apply(ctx context.Context, actor domain.Actor, req ApplyLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, filter ListLeavesFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor domain.Actor, id, reason string) (LeaveResponse, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	Balance(ctx context.Context, actor domain.Actor, employeeID string, year int) ([]BalanceResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	attendance AttendanceWriter
	calendar   CalendarWriter
	outbox     kafka.OutboxRepository
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	attendanceWriter AttendanceWriter,
	calendarWriter CalendarWriter,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		attendance: attendanceWriter,
		calendar:   calendarWriter,
		outbox:     outboxRepo,
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	t := &LeaveType{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(req.Name),
		Code:              strings.ToUpper(strings.TrimSpace(req.Code)),
		IsPaid:            boolOr(req.IsPaid, true),
		HasQuota:          boolOr(req.HasQuota, true),
		AffectsAttendance: boolOr(req.AffectsAttendance, true),
		IsActive:          true,
	}

	if err := s.repo.CreateType(ctx, t); err != nil {
		if apperror.IsUniqueViolation(err, "uq_leave_types_name") {
			return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeExists
		}
		return LeaveTypeResponse{}, err
	}

	return mapTypeToResponse(*t), nil
}

func (s *service) ListLeaveTypes(ctx context.Context, includeInactive bool) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindTypes(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	res := make([]LeaveTypeResponse, len(types))
	for i, t := range types {
		res[i] = mapTypeToResponse(t)
	}
	return res, nil
}

func (s *service) UpsertPolicy(ctx context.Context, req UpsertPolicyRequest) (LeavePolicyResponse, error) {
	t, err := s.findType(ctx, s.repo, req.LeaveTypeID)
	if err != nil {
		return LeavePolicyResponse{}, err
	}

	p := &LeavePolicy{ID: uuid.New(), LeaveTypeID: t.ID, AnnualQuota: req.AnnualQuota}
	if err := s.repo.UpsertPolicy(ctx, p); err != nil {
		return LeavePolicyResponse{}, err
	}
	p.LeaveType = t

	return mapPolicyToResponse(*p), nil
}

func (s *service) ListPolicies(ctx context.Context) ([]LeavePolicyResponse, error) {
	policies, err := s.repo.FindPolicies(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]LeavePolicyResponse, len(policies))
	for i, p := range policies {
		res[i] = mapPolicyToResponse(p)
	}
	return res, nil
}

func (s *service) Apply(ctx context.Context, actor domain.Actor, req ApplyLeaveRequest) (LeaveResponse, error) {
	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = actor.EmployeeID
	}
	if employeeID != actor.EmployeeID && !actor.IsHRAdmin() {
		return LeaveResponse{}, leaveerrors.ErrNotLeaveOwner
	}

	s.logger.Debug("apply leave requested",
		zap.String("actor_id", actor.UserID),
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	appliedBy, err := uuid.Parse(actor.UserID)
	if err != nil {
		appliedBy = employeeUUID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if req.IsHalfDay && !startDate.Equal(endDate) {
		return LeaveResponse{}, leaveerrors.ErrHalfDaySingleDate
	}
	totalDays := TotalDays(startDate, endDate, req.IsHalfDay)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leaveType, err := s.findType(ctx, qtx, req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !leaveType.IsActive {
		return LeaveResponse{}, leaveerrors.ErrLeaveTypeInactive
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, employeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("apply leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("apply leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	if leaveType.QuotaLimited() {
		available, err := s.available(ctx, qtx, employeeID, leaveType.ID.String(), startDate.Year())
		if err != nil {
			return LeaveResponse{}, err
		}
		if totalDays > available {
			s.logger.Warn("apply leave insufficient balance",
				zap.String("employee_id", employeeID),
				zap.String("leave_type_id", req.LeaveTypeID),
				zap.Float64("requested", totalDays),
				zap.Float64("available", available),
			)
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}
	}

	l := &LeaveApplication{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		LeaveTypeID: leaveType.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		IsHalfDay:   req.IsHalfDay,
		TotalDays:   totalDays,
		Reason:      req.Reason,
		Status:      StatusPending,
		AppliedBy:   appliedBy,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
	)

	l.LeaveType = leaveType
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, filter ListLeavesFilter) ([]LeaveResponse, error) {
	af := ApplicationFilter{EmployeeID: filter.EmployeeID, Year: filter.Year}
	if filter.Status != "" {
		af.Statuses = []string{filter.Status}
	}

	leaves, err := s.repo.FindAll(ctx, af)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	l, err := s.find(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !actor.IsPrivileged() && l.EmployeeID.String() != actor.EmployeeID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*l), nil
}

// Approve re-checks the balance, writes the leave attendance rows, flips the status and
// queues the event in one transaction. The calendar event is best effort.
func (s *service) Approve(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	l, err := s.find(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}
	if l.EmployeeID.String() == actor.EmployeeID {
		return LeaveResponse{}, leaveerrors.ErrSelfApproval
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("approve leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if l.LeaveType != nil && l.LeaveType.QuotaLimited() {
		employeeID, leaveTypeID := l.EmployeeID.String(), l.LeaveTypeID.String()
		if err := qtx.LockBalance(ctx, employeeID, leaveTypeID); err != nil {
			return LeaveResponse{}, err
		}
		available, err := s.available(ctx, qtx, employeeID, leaveTypeID, l.StartDate.Year())
		if err != nil {
			return LeaveResponse{}, err
		}
		if l.TotalDays > available {
			log.Warn("approve leave insufficient balance",
				zap.String("leave_id", id),
				zap.Float64("requested", l.TotalDays),
				zap.Float64("available", available),
			)
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}
	}

	if l.LeaveType != nil && l.LeaveType.AffectsAttendance {
		if err := s.attendance.MarkLeaveDays(ctx, tx, l.EmployeeID.String(), l.Dates(), actor.UserID); err != nil {
			log.Error("approve leave attendance write failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	now := s.now().UTC()
	l.Status = StatusApproved
	l.ApprovedBy = parseOptional(actor.UserID)
	l.ApprovedAt = &now
	l.RejectionReason = nil

	if err := s.transition(ctx, tx, qtx, l, StatusPending, events.LeaveApproved, actor); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("approve leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if _, err := s.calendar.CreateEvent(ctx, calendar.CreateEventInput{
		EventType:     calendar.EventTypeLeave,
		SourceID:      l.ID.String(),
		Title:         calendarTitle(*l),
		ParticipantID: l.EmployeeID.String(),
		StartDate:     l.StartDate,
		EndDate:       l.EndDate,
		CreatedBy:     actor.UserID,
	}); err != nil {
		log.Warn("approve leave calendar event failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
	}

	log.Info("approve leave success", zap.String("leave_id", id))
	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id, reason string) (LeaveResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := findApplication(ctx, qtx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("reject leave invalid state",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}
	if l.EmployeeID.String() == actor.EmployeeID {
		return LeaveResponse{}, leaveerrors.ErrSelfApproval
	}

	l.Status = StatusRejected
	l.RejectionReason = &reason
	l.ApprovedBy = nil
	l.ApprovedAt = nil

	if err := s.transition(ctx, tx, qtx, l, StatusPending, "", actor); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("reject leave success", zap.String("leave_id", id))
	return mapToResponse(*l), nil
}

// Cancel lets the owner withdraw a pending application. Approved leave can be cancelled
// by a privileged role until its first day, and its leave attendance rows and calendar
// event are removed.
func (s *service) Cancel(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	l, err := s.find(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	isOwner := l.EmployeeID.String() == actor.EmployeeID

	switch l.Status {
	case StatusPending:
		if !isOwner && !actor.IsPrivileged() {
			return LeaveResponse{}, leaveerrors.ErrNotLeaveOwner
		}
	case StatusApproved:
		if !actor.IsPrivileged() {
			return LeaveResponse{}, leaveerrors.ErrCancelApprovedForbidden
		}
		today := truncateDay(s.now())
		if !l.StartDate.After(today) {
			return LeaveResponse{}, leaveerrors.ErrLeaveAlreadyStarted
		}
	default:
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	from := l.Status
	wasApproved := from == StatusApproved

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if wasApproved && l.LeaveType != nil && l.LeaveType.AffectsAttendance {
		if err := s.attendance.ClearLeaveDays(ctx, tx, l.EmployeeID.String(), l.Dates()); err != nil {
			log.Error("cancel leave attendance clear failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	now := s.now().UTC()
	l.Status = StatusCancelled
	l.CancelledBy = parseOptional(actor.UserID)
	l.CancelledAt = &now

	eventType := ""
	if wasApproved {
		eventType = events.LeaveCancelled
	}
	if err := s.transition(ctx, tx, qtx, l, from, eventType, actor); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("cancel leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if wasApproved {
		if err := s.calendar.DeleteEvent(ctx, calendar.EventTypeLeave, l.ID.String()); err != nil {
			log.Warn("cancel leave calendar delete failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
		}
	}

	log.Info("cancel leave success",
		zap.String("leave_id", id),
		zap.Bool("was_approved", wasApproved),
	)
	return mapToResponse(*l), nil
}

func (s *service) Balance(ctx context.Context, actor domain.Actor, employeeID string, year int) ([]BalanceResponse, error) {
	if employeeID == "" {
		employeeID = actor.EmployeeID
	}
	if employeeID != actor.EmployeeID && !actor.IsPrivileged() {
		return nil, leaveerrors.ErrNotLeaveOwner
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	if year == 0 {
		year = s.now().Year()
	}

	types, err := s.repo.FindTypes(ctx, false)
	if err != nil {
		return nil, err
	}
	policies, err := s.repo.FindPolicies(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.repo.FindAll(ctx, ApplicationFilter{
		EmployeeID: employeeID,
		Statuses:   []string{StatusPending, StatusApproved},
		Year:       year,
	})
	if err != nil {
		return nil, err
	}

	quotas := make(map[uuid.UUID]float64, len(policies))
	for _, p := range policies {
		quotas[p.LeaveTypeID] = p.AnnualQuota
	}
	used := make(map[uuid.UUID]float64)
	pending := make(map[uuid.UUID]float64)
	for _, a := range apps {
		if a.Status == StatusApproved {
			used[a.LeaveTypeID] += a.TotalDays
		} else {
			pending[a.LeaveTypeID] += a.TotalDays
		}
	}

	res := make([]BalanceResponse, 0, len(types))
	for _, t := range types {
		b := BalanceResponse{
			LeaveTypeID:   t.ID.String(),
			LeaveTypeName: t.Name,
			Limited:       t.QuotaLimited(),
			Used:          used[t.ID],
			Pending:       pending[t.ID],
		}
		if b.Limited {
			quota := quotas[t.ID]
			available := quota - b.Used
			b.Quota = &quota
			b.Available = &available
		}
		res = append(res, b)
	}
	return res, nil
}

// available is the policy quota minus approved days of the type in year. A type without
// a policy row has a quota of zero.
func (s *service) available(ctx context.Context, repo Repository, employeeID, leaveTypeID string, year int) (float64, error) {
	var quota float64
	policy, err := repo.FindPolicyByType(ctx, leaveTypeID)
	switch {
	case err == nil:
		quota = policy.AnnualQuota
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return 0, err
	}

	used, err := repo.SumApprovedDays(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		return 0, err
	}
	return quota - used, nil
}

// transition moves l out of from inside tx and queues eventType when one is given. A row
// that already left from fails with ErrInvalidStatusTransition.
func (s *service) transition(ctx context.Context, tx *sql.Tx, qtx Repository, l *LeaveApplication, from, eventType string, actor domain.Actor) error {
	ok, err := qtx.TransitionStatus(ctx, l, from)
	if err != nil {
		s.logger.Error("leave status persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.String("status", l.Status),
			zap.Error(err),
		)
		return err
	}
	if !ok {
		s.logger.Warn("leave status changed concurrently",
			zap.String("leave_id", l.ID.String()),
			zap.String("from_status", from),
		)
		return leaveerrors.ErrInvalidStatusTransition
	}
	if eventType == "" {
		return nil
	}

	ev, err := kafka.NewOutboxEvent(ctx, "leave", l.ID.String(), eventType, events.LeaveTopic, events.LeaveEvent{
		EventType:     eventType,
		ApplicationID: l.ID.String(),
		EmployeeID:    l.EmployeeID.String(),
		LeaveTypeID:   l.LeaveTypeID.String(),
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		TotalDays:     l.TotalDays,
		ActorID:       actor.UserID,
		OccurredAt:    s.now().UTC(),
	})
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
		s.logger.Error("leave outbox persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) find(ctx context.Context, id string) (*LeaveApplication, error) {
	return findApplication(ctx, s.repo, id)
}

func (s *service) findType(ctx context.Context, repo Repository, id string) (*LeaveType, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrLeaveTypeNotFound
	}
	t, err := repo.FindTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

func findApplication(ctx context.Context, repo Repository, id string) (*LeaveApplication, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	l, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func calendarTitle(l LeaveApplication) string {
	name := "Leave"
	if l.LeaveType != nil {
		name = l.LeaveType.Name
	}
	if l.Employee != nil {
		return l.Employee.FullName() + " - " + name
	}
	return name
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseOptional(id string) *uuid.UUID {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return &u
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func mapTypeToResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                t.ID.String(),
		Name:              t.Name,
		Code:              t.Code,
		IsPaid:            t.IsPaid,
		HasQuota:          t.HasQuota,
		AffectsAttendance: t.AffectsAttendance,
		IsActive:          t.IsActive,
	}
}

func mapPolicyToResponse(p LeavePolicy) LeavePolicyResponse {
	resp := LeavePolicyResponse{
		ID:          p.ID.String(),
		LeaveTypeID: p.LeaveTypeID.String(),
		AnnualQuota: p.AnnualQuota,
	}
	if p.LeaveType != nil {
		resp.LeaveTypeName = p.LeaveType.Name
	}
	return resp
}

func mapToResponse(l LeaveApplication) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveTypeID: l.LeaveTypeID.String(),
		StartDate:   l.StartDate.Format("2006-01-02"),
		EndDate:     l.EndDate.Format("2006-01-02"),
		IsHalfDay:   l.IsHalfDay,
		TotalDays:   l.TotalDays,
		Reason:      l.Reason,
		Status:      l.Status,
		AppliedBy:   l.AppliedBy.String(),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName()
	}
	if l.LeaveType != nil {
		resp.LeaveTypeName = l.LeaveType.Name
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if l.CancelledAt != nil {
		v := l.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &v
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(leaves []LeaveApplication) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
