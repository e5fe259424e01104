package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"studio-booking/internal/pkg/errs"
)

// ExportFilename is the download name of the reservation dump.
const ExportFilename = "reservations.csv"

// utf8BOM keeps spreadsheet applications from misreading the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{
	"id", "date", "time", "space", "people", "options", "price", "name", "contact", "created_at",
}

// ExportReservationsCSV dumps every reservation verbatim: header row,
// one row per reservation, UTF-8 with byte-order mark.
func (q *adminQueriesImpl) ExportReservationsCSV(ctx context.Context) ([]byte, error) {
	rows, err := q.reservations.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, errs.Wrap(err, "failed to write CSV header")
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Date,
			row.Time,
			row.Space,
			strconv.Itoa(row.People),
			strings.Join(row.Options, ","),
			strconv.FormatInt(row.Price, 10),
			row.Name,
			row.Contact,
			row.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, errs.Wrap(err, "failed to write CSV record")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errs.Wrap(err, "failed to flush CSV")
	}

	return buf.Bytes(), nil
}
