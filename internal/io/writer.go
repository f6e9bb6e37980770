package io

import (
	"encoding/csv"
	stdio "io"
	"sync"

	"github.com/shopspring/decimal"
)

// localPrecision is the number of decimals kept in the output. Scene
// coordinates are float32 meters, so millimeters is already generous.
const localPrecision = 3

// CSVWriter drains conversion results and writes them as CSV rows
// x,y,z with fixed-precision decimal formatting. Results may arrive in any
// order; rows are written in input order using the Seq carried by each
// Result.
type CSVWriter struct {
	out       stdio.Writer
	writeErrs []error
}

func NewCSVWriter(out stdio.Writer) *CSVWriter {
	return &CSVWriter{
		out: out,
	}
}

// Write drains the result channel until it is closed. Runs as a single
// goroutine so rows never interleave. After a write error the channel is
// still drained so the consumers feeding it never block.
func (w *CSVWriter) Write(results chan *Result, wg *sync.WaitGroup) {
	defer wg.Done()

	writer := csv.NewWriter(w.out)
	defer writer.Flush()

	failed := false
	if err := writer.Write([]string{"x", "y", "z"}); err != nil {
		w.writeErrs = append(w.writeErrs, err)
		failed = true
	}

	// results buffered until their predecessors in input order arrive
	pending := make(map[int]*Result)
	next := 0

	for res := range results {
		if failed {
			continue
		}

		pending[res.Seq] = res

		for {
			buffered, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)

			if err := writer.Write(formatRow(buffered)); err != nil {
				w.writeErrs = append(w.writeErrs, err)
				failed = true
				break
			}

			next++
		}
	}

	if failed {
		return
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		w.writeErrs = append(w.writeErrs, err)
	}
}

// Err reports the first write error, if any. Only meaningful after the
// writer goroutine has finished.
func (w *CSVWriter) Err() error {
	if len(w.writeErrs) == 0 {
		return nil
	}

	return w.writeErrs[0]
}

func formatRow(res *Result) []string {
	return []string{
		formatComponent(res.Local.X),
		formatComponent(res.Local.Y),
		formatComponent(res.Local.Z),
	}
}

func formatComponent(v float32) string {
	d := decimal.NewFromFloat32(v).Round(localPrecision)

	// keep a stable column format: always localPrecision decimals
	return d.StringFixed(localPrecision)
}

// FormatCoordinate renders a float64 coordinate with the given number of
// decimals, for log and console output.
func FormatCoordinate(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
