package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/domain"
	reportingmock "go-hrms/internal/reporting/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeRepo keeps rows in memory keyed by employee and day.
type fakeRepo struct {
	rows      map[string]*Attendance
	timezone  string
	createErr error
	updateErr map[string]error
	deleted   []time.Time
	lockCalls []bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[string]*Attendance{}, updateErr: map[string]error{}}
}

func key(employeeID string, day time.Time) string {
	return employeeID + "|" + day.Format("2006-01-02")
}

func (f *fakeRepo) put(a Attendance) {
	f.rows[key(a.EmployeeID.String(), a.AttendanceDate)] = &a
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *a
	f.rows[key(a.EmployeeID.String(), a.AttendanceDate)] = &cp
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error {
	if err := f.updateErr[a.EmployeeID.String()]; err != nil {
		return err
	}
	cp := *a
	f.rows[key(a.EmployeeID.String(), a.AttendanceDate)] = &cp
	return nil
}

func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	row, ok := f.rows[key(employeeID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeRepo) FindAll(ctx context.Context, filter RecordFilter) ([]Attendance, error) {
	var out []Attendance
	for _, r := range f.rows {
		if filter.EmployeeID != "" && r.EmployeeID.String() != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepo) SetLockByDate(ctx context.Context, date time.Time, locked bool) (int64, error) {
	f.lockCalls = append(f.lockCalls, locked)
	var n int64
	for _, r := range f.rows {
		if r.AttendanceDate.Equal(date) {
			r.IsLocked = locked
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) UpsertLeaveDays(ctx context.Context, rows []Attendance) error {
	for _, r := range rows {
		k := key(r.EmployeeID.String(), r.AttendanceDate)
		if existing, ok := f.rows[k]; ok {
			existing.Status = StatusLeave
			existing.CheckIn, existing.CheckOut, existing.WorkedHours = nil, nil, 0
			continue
		}
		cp := r
		f.rows[k] = &cp
	}
	return nil
}

func (f *fakeRepo) DeleteLeaveDays(ctx context.Context, employeeID string, dates []time.Time) (int64, error) {
	var n int64
	for _, d := range dates {
		k := key(employeeID, d)
		if r, ok := f.rows[k]; ok && r.Status == StatusLeave {
			delete(f.rows, k)
			n++
		}
	}
	f.deleted = append(f.deleted, dates...)
	return n, nil
}

func (f *fakeRepo) FindEmployeeTimezone(ctx context.Context, employeeID string) (string, error) {
	return f.timezone, nil
}

func newTestService(t *testing.T, repo Repository) (*service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewService(db, repo, nil, zap.NewNop()).(*service)
	return svc, mock
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_CheckInAndCheckOut(t *testing.T) {
	repo := newFakeRepo()
	repo.timezone = "Asia/Kolkata"
	svc, mock := newTestService(t, repo)

	employeeID := uuid.New()
	actor := domain.Actor{UserID: uuid.New().String(), EmployeeID: employeeID.String(), Role: domain.RoleEmployee}
	ctx := context.Background()

	// 09:00 IST and 18:15 IST on 2 March.
	checkInAt := time.Date(2026, 3, 2, 3, 30, 0, 0, time.UTC)
	checkOutAt := time.Date(2026, 3, 2, 12, 45, 0, 0, time.UTC)

	svc.now = func() time.Time { return checkInAt }
	mock.ExpectBegin()
	mock.ExpectCommit()
	in, err := svc.CheckIn(ctx, actor)
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-02", in.AttendanceDate)
	assert.Equal(t, StatusPresent, in.Status)

	svc.now = func() time.Time { return checkOutAt }
	mock.ExpectBegin()
	mock.ExpectCommit()
	out, err := svc.CheckOut(ctx, actor)
	assert.NoError(t, err)
	assert.Equal(t, 9.25, out.WorkedHours)
	assert.Equal(t, StatusPresent, out.Status)
	assert.NotNil(t, out.CheckOut)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.CheckOut(ctx, actor)
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_UsesLocationDay(t *testing.T) {
	repo := newFakeRepo()
	repo.timezone = "Asia/Kolkata"
	svc, mock := newTestService(t, repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC) }

	actor := domain.Actor{EmployeeID: uuid.New().String()}

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.CheckIn(context.Background(), actor)
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-02", resp.AttendanceDate)
}

func TestService_CheckIn_Failures(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("already checked in", func(t *testing.T) {
		repo := newFakeRepo()
		svc, mock := newTestService(t, repo)
		svc.now = func() time.Time { return now }
		employeeID := uuid.New()
		repo.put(Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: day(2026, 3, 2), CheckIn: &now})

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.CheckIn(ctx, domain.Actor{EmployeeID: employeeID.String()})
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent insert hits unique index", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}
		svc, mock := newTestService(t, repo)
		svc.now = func() time.Time { return now }

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.CheckIn(ctx, domain.Actor{EmployeeID: uuid.New().String()})
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})

	t.Run("locked day", func(t *testing.T) {
		repo := newFakeRepo()
		svc, mock := newTestService(t, repo)
		svc.now = func() time.Time { return now }
		employeeID := uuid.New()
		repo.put(Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: day(2026, 3, 2), Status: StatusAbsent, IsLocked: true})

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.CheckIn(ctx, domain.Actor{EmployeeID: employeeID.String()})
		assert.ErrorIs(t, err, attendanceerrors.ErrLocked)
	})

	t.Run("no employee profile", func(t *testing.T) {
		svc, _ := newTestService(t, newFakeRepo())
		_, err := svc.CheckIn(ctx, domain.Actor{UserID: uuid.New().String()})
		assert.ErrorIs(t, err, attendanceerrors.ErrNoEmployeeProfile)
	})
}

func TestService_CheckOut_NotCheckedIn(t *testing.T) {
	svc, mock := newTestService(t, newFakeRepo())

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckOut(context.Background(), domain.Actor{EmployeeID: uuid.New().String()})
	assert.ErrorIs(t, err, attendanceerrors.ErrNotCheckedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ManualEntry(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleHR}
	in := "2026-03-02T09:00:00Z"
	out := "2026-03-02T14:30:00Z"

	t.Run("classifies when no status is given", func(t *testing.T) {
		repo := newFakeRepo()
		svc, mock := newTestService(t, repo)
		employeeID := uuid.New().String()

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.ManualEntry(ctx, actor, ManualEntryRequest{EmployeeID: employeeID, Date: "2026-03-02", CheckIn: &in, CheckOut: &out})
		assert.NoError(t, err)
		assert.Equal(t, 5.5, resp.WorkedHours)
		assert.Equal(t, StatusHalfDay, resp.Status)
	})

	t.Run("explicit status overrides classification", func(t *testing.T) {
		repo := newFakeRepo()
		svc, mock := newTestService(t, repo)
		employeeID := uuid.New().String()

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.ManualEntry(ctx, actor, ManualEntryRequest{EmployeeID: employeeID, Date: "2026-03-02", CheckIn: &in, CheckOut: &out, Status: StatusPresent})
		assert.NoError(t, err)
		assert.Equal(t, 5.5, resp.WorkedHours)
		assert.Equal(t, StatusPresent, resp.Status)
	})

	t.Run("locked day is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc, mock := newTestService(t, repo)
		employeeID := uuid.New()
		repo.put(Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: day(2026, 3, 2), IsLocked: true})

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.ManualEntry(ctx, actor, ManualEntryRequest{EmployeeID: employeeID.String(), Date: "2026-03-02", Status: StatusPresent})
		assert.ErrorIs(t, err, attendanceerrors.ErrLocked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		svc, _ := newTestService(t, newFakeRepo())
		_, err := svc.ManualEntry(ctx, actor, ManualEntryRequest{EmployeeID: uuid.New().String(), Date: "2026-03-02", CheckIn: &out, CheckOut: &in})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTimeRange)
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _ := newTestService(t, newFakeRepo())
		_, err := svc.ManualEntry(ctx, actor, ManualEntryRequest{EmployeeID: uuid.New().String(), Date: "02/03/2026"})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
	})
}

func TestService_BulkMark_CollectsErrors(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(t, repo)

	ok := uuid.New()
	locked := uuid.New()
	broken := uuid.New()
	repo.put(Attendance{ID: uuid.New(), EmployeeID: locked, AttendanceDate: day(2026, 3, 2), IsLocked: true})
	repo.put(Attendance{ID: uuid.New(), EmployeeID: broken, AttendanceDate: day(2026, 3, 2), Status: StatusAbsent})
	repo.updateErr[broken.String()] = errors.New("connection reset")

	resp, err := svc.BulkMark(context.Background(), domain.Actor{UserID: uuid.New().String()}, BulkMarkRequest{
		EmployeeIDs: []string{ok.String(), locked.String(), broken.String(), ok.String()},
		Date:        "2026-03-02",
		Status:      StatusHoliday,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{ok.String()}, resp.Updated)
	assert.Len(t, resp.Errors, 2)
	assert.Equal(t, locked.String(), resp.Errors[0].EmployeeID)
	assert.Equal(t, "Attendance for this day is locked", resp.Errors[0].Message)
	assert.Equal(t, broken.String(), resp.Errors[1].EmployeeID)

	row, _ := repo.FindByEmployeeAndDate(context.Background(), ok.String(), day(2026, 3, 2))
	assert.Equal(t, StatusHoliday, row.Status)
}

func TestService_ToggleLock(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(t, repo)
	repo.put(Attendance{ID: uuid.New(), EmployeeID: uuid.New(), AttendanceDate: day(2026, 3, 2)})
	repo.put(Attendance{ID: uuid.New(), EmployeeID: uuid.New(), AttendanceDate: day(2026, 3, 2)})
	repo.put(Attendance{ID: uuid.New(), EmployeeID: uuid.New(), AttendanceDate: day(2026, 3, 3)})

	locked := true
	resp, err := svc.ToggleLock(context.Background(), domain.Actor{}, ToggleLockRequest{Date: "2026-03-02", Locked: &locked})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), resp.Affected)
	assert.True(t, resp.Locked)
}

func TestService_LeaveDaysRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	employeeID := uuid.New()
	other := uuid.New()
	in := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	// An ordinary present day just outside the range, and another employee's day inside it.
	repo.put(Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: day(2026, 3, 4), CheckIn: &in, Status: StatusPresent})
	repo.put(Attendance{ID: uuid.New(), EmployeeID: other, AttendanceDate: day(2026, 3, 2), Status: StatusPresent})
	// A locked absent day inside the range is still overwritten by leave.
	repo.put(Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: day(2026, 3, 3), Status: StatusAbsent, IsLocked: true})

	dates := []time.Time{day(2026, 3, 2), day(2026, 3, 3)}

	assert.NoError(t, svc.MarkLeaveDays(ctx, nil, employeeID.String(), dates, uuid.New().String()))
	assert.NoError(t, svc.MarkLeaveDays(ctx, nil, employeeID.String(), dates, uuid.New().String()))

	leaveRows, _ := repo.FindAll(ctx, RecordFilter{EmployeeID: employeeID.String(), Status: StatusLeave})
	assert.Len(t, leaveRows, 2)

	assert.NoError(t, svc.ClearLeaveDays(ctx, nil, employeeID.String(), dates))

	remaining, _ := repo.FindAll(ctx, RecordFilter{EmployeeID: employeeID.String()})
	assert.Len(t, remaining, 1)
	assert.Equal(t, StatusPresent, remaining[0].Status)

	others, _ := repo.FindAll(ctx, RecordFilter{EmployeeID: other.String()})
	assert.Len(t, others, 1)
}

func TestService_QuerySummary(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(t, repo)
	employeeID := uuid.New()

	repo.put(Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: day(2026, 3, 2), Status: StatusPresent, WorkedHours: 8.5})
	repo.put(Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: day(2026, 3, 3), Status: StatusHalfDay, WorkedHours: 4.25})
	repo.put(Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: day(2026, 3, 4), Status: StatusLeave})

	resp, err := svc.Query(context.Background(), QueryFilter{EmployeeID: employeeID.String()})
	assert.NoError(t, err)
	assert.Len(t, resp.Records, 3)
	assert.Equal(t, SummaryResponse{Present: 1, HalfDay: 1, Leave: 1, TotalWorkedHours: 12.75}, resp.Summary)

	_, err = svc.Query(context.Background(), QueryFilter{From: "March"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}

func TestService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	exporter := reportingmock.NewMockExporter(ctrl)

	repo := newFakeRepo()
	db, _, _ := sqlmock.New()
	defer db.Close()
	svc := NewService(db, repo, exporter, zap.NewNop())

	repo.put(Attendance{
		ID:             uuid.New(),
		EmployeeID:     uuid.New(),
		AttendanceDate: day(2026, 3, 2),
		Status:         StatusAbsent,
		Employee:       &EmployeeRef{EmployeeCode: "EMP-0001", FirstName: "Asha", LastName: "Rao"},
	})

	exporter.EXPECT().
		Export(gomock.Any(), "attendance", exportHeaders, [][]any{
			{"EMP-0001", "Asha Rao", "2026-03-02", "", "", 0.0, StatusAbsent, false},
		}).
		Return("/tmp/attendance.xlsx", nil)

	resp, err := svc.Export(context.Background(), QueryFilter{})
	assert.NoError(t, err)
	assert.Equal(t, ExportResponse{Path: "/tmp/attendance.xlsx", Rows: 1}, resp)
}
