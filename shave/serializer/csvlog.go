// Package serializer implements the optional CSV query logger (component
// O) that records every query the CostModel facade answers, one row per
// query, in the same encoding/csv style the teacher uses for its tabular
// benchmark data.
package serializer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"

	"github.com/shavecost/shavecost/shave"
)

// QueryLogger records a completed query for later inspection.
type QueryLogger interface {
	Log(wl shave.SHAVEWorkload, cycles shave.CyclesInterfaceType, sourceTag string) error
	Close() error
}

// CSVQueryLogger writes one row per query to an underlying writer, with
// parameter columns padded out to maxNumParams so every row has the same
// column count regardless of which kernel produced it.
type CSVQueryLogger struct {
	mu            sync.Mutex
	w             *csv.Writer
	closer        io.Closer
	maxNumParams  int
	headerWritten bool
}

// NewCSVQueryLogger wraps w (and, if non-nil, closer) as a QueryLogger. The
// header row is written lazily on the first Log call so a logger that never
// logs anything produces an empty file rather than a header-only one.
func NewCSVQueryLogger(w io.Writer, closer io.Closer, maxNumParams int) *CSVQueryLogger {
	return &CSVQueryLogger{w: csv.NewWriter(w), closer: closer, maxNumParams: maxNumParams}
}

func (l *CSVQueryLogger) writeHeader() error {
	header := []string{"kernel", "device", "input_w", "input_h", "input_c", "input_b", "input_layout",
		"output_w", "output_h", "output_c", "output_b", "output_layout"}
	for i := 0; i < l.maxNumParams; i++ {
		header = append(header, fmt.Sprintf("param_%d", i))
	}
	header = append(header, "source", "cycles")
	return l.w.Write(header)
}

// Log appends one row describing wl's query and its outcome.
func (l *CSVQueryLogger) Log(wl shave.SHAVEWorkload, cycles shave.CyclesInterfaceType, sourceTag string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.headerWritten {
		if err := l.writeHeader(); err != nil {
			return err
		}
		l.headerWritten = true
	}

	var in, out shave.VPUTensor
	if len(wl.Inputs) > 0 {
		in = wl.Inputs[0]
	}
	if len(wl.Outputs) > 0 {
		out = wl.Outputs[0]
	}

	row := []string{
		wl.Name, wl.Device.String(),
		fmt.Sprint(in.W), fmt.Sprint(in.H), fmt.Sprint(in.C), fmt.Sprint(in.B), in.Layout.String(),
		fmt.Sprint(out.W), fmt.Sprint(out.H), fmt.Sprint(out.C), fmt.Sprint(out.B), out.Layout.String(),
	}
	for i := 0; i < l.maxNumParams; i++ {
		if i < len(wl.Params) {
			row = append(row, wl.Params[i].String())
		} else {
			row = append(row, "")
		}
	}
	row = append(row, sourceTag, fmt.Sprint(uint32(cycles)))

	if err := l.w.Write(row); err != nil {
		return err
	}
	l.w.Flush()
	return l.w.Error()
}

// Close flushes any pending writes and closes the underlying writer, if
// one was provided.
func (l *CSVQueryLogger) Close() error {
	l.mu.Lock()
	l.w.Flush()
	err := l.w.Error()
	l.mu.Unlock()
	if err != nil {
		return err
	}
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// NopQueryLogger discards every query; used when CSV logging is disabled.
type NopQueryLogger struct{}

func (NopQueryLogger) Log(shave.SHAVEWorkload, shave.CyclesInterfaceType, string) error { return nil }
func (NopQueryLogger) Close() error                                                     { return nil }
