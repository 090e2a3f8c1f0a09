package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTSV writes the rows as tab separated values, one record per row.
func WriteTSV(f io.Writer, rows [][]any) error {
	if len(rows) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = clean(v)
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func clean(v any) string {
	switch value := v.(type) {
	case nil:
		return ""

	case string:
		return strings.TrimSpace(value)

	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)

	case bool:
		return strconv.FormatBool(value)

	default:
		return strings.TrimSpace(fmt.Sprintf("%v", value))
	}
}
