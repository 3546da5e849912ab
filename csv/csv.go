// SPDX-License-Identifier: MIT

// Package csv: loaders and writer.

package csv

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/numflow/buffer"
	"github.com/katalvlaran/numflow/files"
	"github.com/katalvlaran/numflow/matrix"
	"github.com/katalvlaran/numflow/stream"
)

// Indexed2D is anything Write can serialize; *matrix.Matrix satisfies it.
type Indexed2D interface {
	Rows() int
	Cols() int
	Get(i, j int) (float64, error)
}

var _ Indexed2D = (*matrix.Matrix)(nil)

// ParseLine splits one record into values. An empty record yields nil and
// unparsable fields yield NaN.
func ParseLine(line string) []float64 {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil
	}
	fields := strings.Split(line, ",")
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			v = math.NaN()
		}
		row[i] = v
	}

	return row
}

// LoadStream streams the records of path, skipping blank lines.
func LoadStream(path string, opts ...Option) *stream.Stream[[]float64] {
	o := gatherOptions(opts...)
	lines := files.ReadLines(path, o.streamOpts...)
	skip := o.skipFirst

	return stream.FlatMap(lines, func(line string) stream.Emitter[[]float64] {
		if skip {
			skip = false
			return nil
		}
		row := ParseLine(line)
		if row == nil {
			return nil
		}
		return stream.Items[[]float64]{row}
	})
}

// LoadBuffer fills buf row-major with the values of path and returns how
// many were written.
func LoadBuffer(ctx context.Context, path string, buf *buffer.Buffer, opts ...Option) (int, error) {
	n := 0
	var overflow error
	records := LoadStream(path, opts...)
	records.Subscribe(func(row []float64) {
		if overflow != nil {
			return
		}
		for _, v := range row {
			if n >= buf.Len() {
				overflow = fmt.Errorf("LoadBuffer %q: %w (length %d)", path, ErrBufferOverflow, buf.Len())
				records.Error(overflow)
				return
			}
			buf.Store(n, v)
			n++
		}
	})
	if err := records.Wait(ctx); err != nil {
		return n, err
	}

	return n, nil
}

// Load reads path into a matrix of the configured kind (Float32 by default).
func Load(ctx context.Context, path string, opts ...Option) (*matrix.Matrix, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	rows, err := LoadStream(path, opts...).Collect(ctx)
	if err != nil {
		return nil, err
	}
	m, err := matrix.FromData(rows, matrix.WithKind(o.kind))
	if err != nil {
		return nil, fmt.Errorf("Load %q: %w", path, err)
	}

	return m, nil
}

// Write serializes m one record per row, creating the parent folders.
func Write(path string, m Indexed2D) error {
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			v, err := m.Get(i, j)
			if err != nil {
				return fmt.Errorf("Write %q: %w", path, err)
			}
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		b.WriteByte('\n')
	}

	return files.WriteFile(path, []byte(b.String()))
}

// StringFromObject renders the values of obj ordered by key and joined
// with ", ".
func StringFromObject(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(obj[k])
	}

	return strings.Join(parts, ", ")
}
