package ingest

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
)

// OpenWorkbook opens the source workbook. An unreadable file is a
// pass-level error; everything below sheet level degrades gracefully.
func OpenWorkbook(path string) (*xlsx.File, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open workbook %s", path)
	}
	return f, nil
}

// SheetRows returns all rows of the named sheet as string slices. A
// missing sheet returns nil so the source is treated as empty.
func SheetRows(f *xlsx.File, name string) [][]string {
	if f == nil || name == "" {
		return nil
	}
	sheet, ok := f.Sheet[name]
	if !ok {
		zap.L().Info("ingest: sheet not found", zap.String("sheet", name))
		return nil
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows
}
