package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/csv"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/dustin/go-humanize"
	"github.com/labstack/gommon/log"
)

// ErrHeader is returned when the header row does not name exactly the
// columns left, right and height.
var ErrHeader = errors.New("header must name the columns left, right and height")

const chunkRows = 4096

var columnNames = []string{"left", "right", "height"}

// LoadColumnar reads a building CSV file into a ColumnStore.
func LoadColumnar(path string) (*ColumnStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open buildings: %w", err)
	}
	defer f.Close()

	return ReadColumnar(f)
}

// ReadColumnar decodes CSV rows chunk by chunk and appends each column.
// Columns are matched by header name, in any order.
func ReadColumnar(r io.Reader) (*ColumnStore, error) {
	start := time.Now()

	br := bufio.NewReader(r)
	schema, pos, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	rdr := csv.NewReader(br, schema,
		csv.WithHeader(false),
		csv.WithChunk(chunkRows),
		csv.WithAllocator(memory.NewGoAllocator()),
	)
	defer rdr.Release()

	store := &ColumnStore{}
	for rdr.Next() {
		rec := rdr.Record()
		lefts := rec.Column(pos["left"]).(*array.Float64)
		rights := rec.Column(pos["right"]).(*array.Float64)
		heights := rec.Column(pos["height"]).(*array.Float64)

		rows := int(rec.NumRows())
		for j := 0; j < rows; j++ {
			if lefts.IsNull(j) || rights.IsNull(j) || heights.IsNull(j) {
				return nil, fmt.Errorf("row %d: missing value", store.Len()+1)
			}
			store.Lefts = append(store.Lefts, lefts.Value(j))
			store.Rights = append(store.Rights, rights.Value(j))
			store.Heights = append(store.Heights, heights.Value(j))
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, fmt.Errorf("read buildings csv: %w", err)
	}

	log.Infof("Load Complete. Buildings: %s. Time: %v", humanize.Comma(int64(store.Len())), time.Since(start))
	return store, nil
}

// readHeader consumes the header row and returns a float64 schema in file
// order along with each column's position.
func readHeader(br *bufio.Reader) (*arrow.Schema, map[string]int, error) {
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("read buildings header: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, nil, fmt.Errorf("%w: empty header", ErrHeader)
	}

	names := strings.Split(line, ",")
	pos := make(map[string]int, len(names))
	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		name = strings.ToLower(strings.Trim(name, "\" \t"))
		if _, dup := pos[name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate column %q", ErrHeader, name)
		}
		pos[name] = i
		fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64, Nullable: true}
	}

	if len(names) != len(columnNames) {
		return nil, nil, fmt.Errorf("%w: got %q", ErrHeader, line)
	}
	for _, want := range columnNames {
		if _, ok := pos[want]; !ok {
			return nil, nil, fmt.Errorf("%w: got %q", ErrHeader, line)
		}
	}

	return arrow.NewSchema(fields, nil), pos, nil
}
