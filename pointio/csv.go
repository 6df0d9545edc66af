// Package pointio reads and writes point sets as CSV.
//
// Input rows are "x,y" with an optional header line; any extra columns
// are ignored. Output rows are "x,y,cluster" behind a header.
package pointio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/lloyd/model"
)

// ErrMalformedRow is returned when a row cannot be parsed as a point.
var ErrMalformedRow = errors.New("pointio: malformed row")

// RowError reports the 1-based record number of a malformed row.
type RowError struct {
	Record int
	cause error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%v at record %d: %v", ErrMalformedRow, e.Record, e.cause)
}

// Is reports whether target is ErrMalformedRow.
func (e *RowError) Is(target error) bool { return target == ErrMalformedRow }

func (e *RowError) Unwrap() error { return e.cause }

// ReadCSV parses points from r.
// The first row is treated as a header when its first field is not a number.
func ReadCSV(r io.Reader) ([]model.Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var points []model.Point
	for line := 1; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pointio: read csv: %w", err)
		}

		if len(rec) < 2 {
			return nil, &RowError{Record: line, cause: fmt.Errorf("expected 2 columns, got %d", len(rec))}
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if line == 1 && errX != nil {
				continue // header
			}
			return nil, &RowError{Record: line, cause: errors.Join(errX, errY)}
		}

		points = append(points, model.Point{X: x, Y: y})
	}

	return points, nil
}

// WriteCSV writes points with their labels to w.
func WriteCSV(w io.Writer, points []model.Point) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"x", "y", "cluster"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.Itoa(p.Cluster),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
