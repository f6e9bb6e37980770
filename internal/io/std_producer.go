package io

import (
	"encoding/csv"
	"errors"
	"fmt"
	stdio "io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mapgrid/geoscene/internal/data"
)

// CSVProducer reads input records from a CSV file and submits them as
// WorkUnits. Rows carry two or three numeric columns; a single leading
// header row is skipped.
type CSVProducer struct {
	path string
}

func NewCSVProducer(path string) *CSVProducer {
	return &CSVProducer{
		path: path,
	}
}

// Parses the input file and submits WorkUnits to the provided work channel.
// Closes the channel when all rows are submitted or a read error occurred.
func (p *CSVProducer) Produce(work chan *WorkUnit, errchan chan error, wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(work)

	file, err := os.Open(p.path)
	if err != nil {
		errchan <- err
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	line := 0
	seq := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, stdio.EOF) {
				return
			}

			errchan <- fmt.Errorf("reading %s: %w", p.path, err)
			return
		}

		line++

		point, err := parseRecord(record, line)
		if err != nil {
			// tolerate one header row, reject anything else non-numeric
			if line == 1 {
				continue
			}

			errchan <- fmt.Errorf("%s line %d: %w", p.path, line, err)
			return
		}

		work <- &WorkUnit{Seq: seq, Point: point}
		seq++
	}
}

func parseRecord(record []string, line int) (*data.Point, error) {
	if len(record) != 2 && len(record) != 3 {
		return nil, fmt.Errorf("expected 2 or 3 columns, got %d", len(record))
	}

	values := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		values[i] = v
	}

	if len(values) == 3 {
		return data.NewPointWithHeight(values[0], values[1], values[2], line), nil
	}

	return data.NewPoint(values[0], values[1], line), nil
}
