package fileio

import (
	"bytes"
	"io"

	excelize "github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet of a workbook with headerRow (1-based).
// An empty sheet is a valid, empty result, same as an empty CSV.
func readXLSX(r io.Reader, headerRow int) ([]map[string]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := pickHeader(rows, headerRow)
	return rowsToMaps(rows, h, headerRow), nil
}
