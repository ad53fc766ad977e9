package reporting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheetName = "Report"

// Exporter renders tabular rows to a file and returns its path.
//
//go:generate mockgen -source=reporting.go -destination=mock/reporting_mock.go -package=mock
type Exporter interface {
	Export(ctx context.Context, name string, headers []string, rows [][]any) (string, error)
}

type xlsxExporter struct {
	dir    string
	now    func() time.Time
	logger *zap.Logger
}

func NewXLSXExporter(dir string, logger ...*zap.Logger) Exporter {
	l := zap.L().Named("reporting.xlsx")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.xlsx")
	}
	return &xlsxExporter{dir: dir, now: time.Now, logger: l}
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func (e *xlsxExporter) Export(ctx context.Context, name string, headers []string, rows [][]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return "", err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return "", err
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)

		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, col, col, float64(max(len(h)+4, 14)))
	}

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		values := row
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", sanitize(name), e.now().UTC().Format("20060102T150405"))
	path := filepath.Join(e.dir, fileName)
	if err := f.SaveAs(path); err != nil {
		e.logger.Error("save xlsx report failed", zap.String("path", path), zap.Error(err))
		return "", err
	}

	e.logger.Info("report exported", zap.String("path", path), zap.Int("rows", len(rows)))
	return path, nil
}

func sanitize(name string) string {
	s := unsafeName.ReplaceAllString(strings.TrimSpace(name), "_")
	if s == "" {
		return "report"
	}
	return strings.ToLower(s)
}
