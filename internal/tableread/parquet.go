package tableread

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/billscrub/internal/model"
)

const readBatchSize = 256

// readParquet reads a Parquet billing table into the same untyped Table
// shape as CSV input. Only columns present in the file schema are carried,
// so the normalizer sees identical column-presence semantics for both
// formats.
func readParquet(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[model.RawBillingRow](pf)
	defer reader.Close()

	var columns []string
	for _, field := range reader.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	var rows [][]string
	buf := make([]model.RawBillingRow, readBatchSize)
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			cells := buf[i].Cells()
			row := make([]string, len(columns))
			for j, col := range columns {
				if v := cells[strings.TrimSpace(col)]; v != nil {
					row[j] = *v
				}
			}
			rows = append(rows, row)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read parquet rows: %w", readErr)
		}
	}
	return &Table{Columns: columns, Rows: rows}, nil
}
