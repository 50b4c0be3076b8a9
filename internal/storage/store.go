package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoSeries indicates the input did not contain any data rows.
	ErrNoSeries = errors.New("storage: no series in input")
)

var requiredColumns = []string{"series", "timestamp", "value"}

// OpenSeriesFile loads series from a CSV file on disk.
func OpenSeriesFile(path string) ([]SeriesData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series file: %w", err)
	}
	defer file.Close()

	return LoadSeriesCSV(file)
}

// LoadSeriesCSV reads long-format rows (series,timestamp,value[,unit]) and
// groups them per series in order of first appearance. Timestamps may be
// RFC3339 or epoch milliseconds.
func LoadSeriesCSV(r io.Reader) ([]SeriesData, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSeries
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var (
		order  []string
		points = map[string][]Point{}
	)

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		point, err := parsePoint(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if _, ok := points[point.Series]; !ok {
			order = append(order, point.Series)
		}
		points[point.Series] = append(points[point.Series], point)
	}

	if len(order) == 0 {
		return nil, ErrNoSeries
	}

	result := make([]SeriesData, 0, len(order))
	for _, name := range order {
		result = append(result, buildSeries(name, points[name]))
	}
	return result, nil
}

// ParseTimestamp accepts RFC3339 or epoch milliseconds.
func ParseTimestamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}

	ms, err := decimal.NewFromString(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC3339 or epoch milliseconds", v)
	}
	return time.UnixMilli(ms.IntPart()).UTC(), nil
}

func columnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing %q column in header", name)
		}
	}
	return columns, nil
}

func parsePoint(record []string, columns map[string]int) (Point, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := field("series")
	if name == "" {
		return Point{}, errors.New("series name is empty")
	}

	ts, err := ParseTimestamp(field("timestamp"))
	if err != nil {
		return Point{}, err
	}

	value, err := strconv.ParseFloat(field("value"), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid value %q: %w", field("value"), err)
	}

	return Point{Series: name, Time: ts, Value: value, Unit: field("unit")}, nil
}

func buildSeries(name string, points []Point) SeriesData {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})

	data := SeriesData{
		Name:   name,
		Times:  make([]float64, len(points)),
		Values: make([]float64, len(points)),
	}
	for i, p := range points {
		data.Times[i] = float64(p.Time.UnixMilli())
		data.Values[i] = p.Value
		if data.Unit == "" {
			data.Unit = p.Unit
		}
	}
	return data
}
