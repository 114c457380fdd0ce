package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// parseSpreadsheet reads the first sheet of an XLSX workbook and feeds its
// rows through the same header-keyed logic as the delimited format. Blank
// rows are dropped, matching how spreadsheet exports are usually padded.
func parseSpreadsheet(file []byte) Result {
	wb, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("spreadsheet open error: %s", err)}}
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return Result{Errors: []string{"spreadsheet has no sheets"}}
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("spreadsheet read error: %s", err)}}
	}

	var kept [][]string
	for _, record := range rows {
		blank := true
		for _, cell := range record {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if !blank {
			kept = append(kept, record)
		}
	}

	if len(kept) < 2 {
		return Result{Errors: []string{"spreadsheet must have a header row and at least one data row"}}
	}

	header := kept[0]
	var res Result
	for i, record := range kept[1:] {
		rowNum := i + 2
		row := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(record) {
				row[strings.TrimSpace(name)] = strings.TrimSpace(record[j])
			}
		}
		if q, ok := parseRow(row, rowNum, &res.Errors); ok {
			res.Questions = append(res.Questions, q)
		}
	}
	return res
}
