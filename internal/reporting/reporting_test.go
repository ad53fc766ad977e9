package reporting

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestXLSXExporter_Export(t *testing.T) {
	dir := t.TempDir()
	exp := &xlsxExporter{
		dir:    dir,
		now:    func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) },
		logger: zap.NewNop(),
	}

	path, err := exp.Export(context.Background(), "Payroll Register 03/2026",
		[]string{"Employee Code", "Net Salary"},
		[][]any{{"EMP-0001", "27000.00"}, {"EMP-0002", "15000.50"}},
	)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "payroll_register_03_2026_20260301T100000.xlsx"), path)

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Employee Code", "Net Salary"},
		{"EMP-0001", "27000.00"},
		{"EMP-0002", "15000.50"},
	}, rows)
}

func TestXLSXExporter_CanceledContext(t *testing.T) {
	exp := NewXLSXExporter(t.TempDir(), zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exp.Export(ctx, "x", []string{"a"}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "report", sanitize("  "))
	assert.Equal(t, "attendance_2026-03", sanitize("Attendance 2026-03"))
}
