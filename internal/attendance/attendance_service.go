package attendance

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/location"
	"go-hrms/internal/reporting"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, actor domain.Actor) (AttendanceResponse, error)
	CheckOut(ctx context.Context, actor domain.Actor) (AttendanceResponse, error)
	ManualEntry(ctx context.Context, actor domain.Actor, req ManualEntryRequest) (AttendanceResponse, error)
	BulkMark(ctx context.Context, actor domain.Actor, req BulkMarkRequest) (BulkMarkResponse, error)
	ToggleLock(ctx context.Context, actor domain.Actor, req ToggleLockRequest) (ToggleLockResponse, error)
	Query(ctx context.Context, filter QueryFilter) (QueryResponse, error)
	Export(ctx context.Context, filter QueryFilter) (ExportResponse, error)
	MarkLeaveDays(ctx context.Context, tx *sql.Tx, employeeID string, dates []time.Time, actorID string) error
	ClearLeaveDays(ctx context.Context, tx *sql.Tx, employeeID string, dates []time.Time) error
}

var exportHeaders = []string{
	"Employee Code", "Employee Name", "Date", "Check In", "Check Out", "Worked Hours", "Status", "Locked",
}

type service struct {
	db       *sql.DB
	repo     Repository
	exporter reporting.Exporter
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, exporter reporting.Exporter, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, exporter: exporter, now: time.Now, logger: l}
}

func (s *service) CheckIn(ctx context.Context, actor domain.Actor) (AttendanceResponse, error) {
	employeeID, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoEmployeeProfile
	}

	loc, err := s.employeeLocation(ctx, actor.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	now := s.now().UTC()
	day := LocalDay(now, loc)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDate(ctx, actor.EmployeeID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	if row != nil {
		if row.IsLocked {
			return AttendanceResponse{}, attendanceerrors.ErrLocked
		}
		if row.CheckIn != nil {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		row.CheckIn = &now
		row.Status = StatusPresent
		row.UpdatedBy = parseActor(actor.UserID)
		if err := qtx.Update(ctx, row); err != nil {
			return AttendanceResponse{}, err
		}
	} else {
		row = &Attendance{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			AttendanceDate: day,
			CheckIn:        &now,
			Status:         StatusPresent,
			MarkedBy:       parseActor(actor.UserID),
		}
		if err := qtx.Create(ctx, row); err != nil {
			if apperror.IsUniqueViolation(err, "uq_attendance_employee_date") {
				return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
			}
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, actor domain.Actor) (AttendanceResponse, error) {
	if _, err := uuid.Parse(actor.EmployeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoEmployeeProfile
	}

	loc, err := s.employeeLocation(ctx, actor.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	now := s.now().UTC()
	day := LocalDay(now, loc)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDate(ctx, actor.EmployeeID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
		}
		return AttendanceResponse{}, err
	}
	if row.IsLocked {
		return AttendanceResponse{}, attendanceerrors.ErrLocked
	}
	if row.CheckIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if row.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	row.CheckOut = &now
	row.Recompute(true)
	row.UpdatedBy = parseActor(actor.UserID)

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

// ManualEntry upserts a day. An explicit status is kept as an override; without one the
// status is classified from the worked hours.
func (s *service) ManualEntry(ctx context.Context, actor domain.Actor, req ManualEntryRequest) (AttendanceResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, apperror.InvalidField("employee_id")
	}
	day, err := ParseDay(req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	if req.Status != "" && !IsValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	checkIn, err := parseStamp(req.CheckIn, "check_in")
	if err != nil {
		return AttendanceResponse{}, err
	}
	checkOut, err := parseStamp(req.CheckOut, "check_out")
	if err != nil {
		return AttendanceResponse{}, err
	}
	if checkIn != nil && checkOut != nil && !checkOut.After(*checkIn) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTimeRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	isNew := row == nil
	if isNew {
		row = &Attendance{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			AttendanceDate: day,
			Status:         StatusAbsent,
			MarkedBy:       parseActor(actor.UserID),
		}
	} else if row.IsLocked {
		return AttendanceResponse{}, attendanceerrors.ErrLocked
	}

	if checkIn != nil {
		row.CheckIn = checkIn
	}
	if checkOut != nil {
		row.CheckOut = checkOut
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}
	if row.CheckIn != nil && row.CheckOut != nil && !row.CheckOut.After(*row.CheckIn) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTimeRange
	}

	row.Recompute(req.Status == "")
	if req.Status != "" {
		row.Status = req.Status
	}
	row.UpdatedBy = parseActor(actor.UserID)

	if isNew {
		err = qtx.Create(ctx, row)
	} else {
		err = qtx.Update(ctx, row)
	}
	if err != nil {
		if apperror.IsUniqueViolation(err, "uq_attendance_employee_date") {
			return AttendanceResponse{}, apperror.Duplicate("Attendance for this employee and date already exists")
		}
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

// BulkMark applies one status to many employees. Each employee is written on its own,
// failures are collected and do not stop the batch.
func (s *service) BulkMark(ctx context.Context, actor domain.Actor, req BulkMarkRequest) (BulkMarkResponse, error) {
	day, err := ParseDay(req.Date)
	if err != nil {
		return BulkMarkResponse{}, attendanceerrors.ErrInvalidDate
	}
	if !IsValidStatus(req.Status) {
		return BulkMarkResponse{}, attendanceerrors.ErrInvalidStatus
	}

	res := BulkMarkResponse{Updated: []string{}, Errors: []BulkMarkError{}}
	seen := make(map[string]struct{}, len(req.EmployeeIDs))

	for _, id := range req.EmployeeIDs {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if err := s.markOne(ctx, actor, id, day, req.Status); err != nil {
			s.logger.Warn("bulk mark employee failed",
				zap.String("employee_id", id),
				zap.String("date", req.Date),
				zap.Error(err),
			)
			res.Errors = append(res.Errors, BulkMarkError{EmployeeID: id, Message: apperror.ToHTTP(err).Message})
			continue
		}
		res.Updated = append(res.Updated, id)
	}

	return res, nil
}

func (s *service) markOne(ctx context.Context, actor domain.Actor, employeeID string, day time.Time, status string) error {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return apperror.InvalidField("employee_id")
	}

	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if row == nil {
		return s.repo.Create(ctx, &Attendance{
			ID:             uuid.New(),
			EmployeeID:     empID,
			AttendanceDate: day,
			Status:         status,
			MarkedBy:       parseActor(actor.UserID),
			UpdatedBy:      parseActor(actor.UserID),
		})
	}

	if row.IsLocked {
		return attendanceerrors.ErrLocked
	}
	row.Recompute(false)
	row.Status = status
	row.UpdatedBy = parseActor(actor.UserID)
	return s.repo.Update(ctx, row)
}

func (s *service) ToggleLock(ctx context.Context, actor domain.Actor, req ToggleLockRequest) (ToggleLockResponse, error) {
	day, err := ParseDay(req.Date)
	if err != nil {
		return ToggleLockResponse{}, attendanceerrors.ErrInvalidDate
	}
	if req.Locked == nil {
		return ToggleLockResponse{}, apperror.RequiredField("locked")
	}

	affected, err := s.repo.SetLockByDate(ctx, day, *req.Locked)
	if err != nil {
		return ToggleLockResponse{}, err
	}

	s.logger.Info("attendance day lock changed",
		zap.String("date", req.Date),
		zap.Bool("locked", *req.Locked),
		zap.Int64("affected", affected),
		zap.String("actor_id", actor.UserID),
	)

	return ToggleLockResponse{Date: req.Date, Locked: *req.Locked, Affected: affected}, nil
}

func (s *service) Query(ctx context.Context, filter QueryFilter) (QueryResponse, error) {
	rows, err := s.find(ctx, filter)
	if err != nil {
		return QueryResponse{}, err
	}

	records := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		records[i] = mapToResponse(r)
	}

	return QueryResponse{Records: records, Summary: summarize(rows)}, nil
}

func (s *service) Export(ctx context.Context, filter QueryFilter) (ExportResponse, error) {
	rows, err := s.find(ctx, filter)
	if err != nil {
		return ExportResponse{}, err
	}

	table := make([][]any, len(rows))
	for i, r := range rows {
		resp := mapToResponse(r)
		table[i] = []any{
			resp.EmployeeCode,
			resp.EmployeeName,
			resp.AttendanceDate,
			deref(resp.CheckIn),
			deref(resp.CheckOut),
			resp.WorkedHours,
			resp.Status,
			resp.IsLocked,
		}
	}

	path, err := s.exporter.Export(ctx, "attendance", exportHeaders, table)
	if err != nil {
		s.logger.Error("export attendance failed", zap.Error(err))
		return ExportResponse{}, err
	}

	return ExportResponse{Path: path, Rows: len(table)}, nil
}

// MarkLeaveDays writes a leave row for every date. Existing rows are overwritten and the
// day lock is not consulted, so approving the same leave twice is harmless. A non-nil tx
// makes the write part of the caller's transaction.
func (s *service) MarkLeaveDays(ctx context.Context, tx *sql.Tx, employeeID string, dates []time.Time, actorID string) error {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return apperror.InvalidField("employee_id")
	}

	now := s.now().UTC()
	actor := parseActor(actorID)
	rows := make([]Attendance, len(dates))
	for i, d := range dates {
		rows[i] = Attendance{
			ID:             uuid.New(),
			EmployeeID:     empID,
			AttendanceDate: d,
			Status:         StatusLeave,
			MarkedBy:       actor,
			UpdatedBy:      actor,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	return s.repo.WithTx(tx).UpsertLeaveDays(ctx, rows)
}

func (s *service) ClearLeaveDays(ctx context.Context, tx *sql.Tx, employeeID string, dates []time.Time) error {
	removed, err := s.repo.WithTx(tx).DeleteLeaveDays(ctx, employeeID, dates)
	if err != nil {
		return err
	}

	s.logger.Debug("leave attendance cleared",
		zap.String("employee_id", employeeID),
		zap.Int("dates", len(dates)),
		zap.Int64("removed", removed),
	)
	return nil
}

func (s *service) find(ctx context.Context, filter QueryFilter) ([]Attendance, error) {
	rf := RecordFilter{EmployeeID: filter.EmployeeID, Status: filter.Status}
	if filter.From != "" {
		from, err := ParseDay(filter.From)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
		rf.From = &from
	}
	if filter.To != "" {
		to, err := ParseDay(filter.To)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
		rf.To = &to
	}
	return s.repo.FindAll(ctx, rf)
}

func (s *service) employeeLocation(ctx context.Context, employeeID string) (*time.Location, error) {
	tz, err := s.repo.FindEmployeeTimezone(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return location.ResolveTimezone(tz), nil
}

func summarize(rows []Attendance) SummaryResponse {
	var sum SummaryResponse
	for _, r := range rows {
		switch r.Status {
		case StatusPresent:
			sum.Present++
		case StatusHalfDay:
			sum.HalfDay++
		case StatusAbsent:
			sum.Absent++
		case StatusHoliday:
			sum.Holiday++
		case StatusLeave:
			sum.Leave++
		}
		sum.TotalWorkedHours += r.WorkedHours
	}
	sum.TotalWorkedHours = math.Round(sum.TotalWorkedHours*100) / 100
	return sum
}

func parseStamp(v *string, field string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*v))
	if err != nil {
		return nil, apperror.InvalidField(field)
	}
	t = t.UTC()
	return &t, nil
}

func parseActor(id string) *uuid.UUID {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return &u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		WorkedHours:    a.WorkedHours,
		Status:         a.Status,
		IsLocked:       a.IsLocked,
		Notes:          a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeCode = a.Employee.EmployeeCode
		resp.EmployeeName = a.Employee.FullName()
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
