// Package reader loads Apache Parquet files into tables.
//
// It uses the parquet-go library to read files and builds columnar tables
// with column order taken from the file schema, ready for relation
// declarations and filtering.
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/relcat-io/relcat/table"
)

// Reader reads a parquet file.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader opens the file at path and validates it as a parquet file.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadAll reads all rows into memory, one map per row keyed by column
// name. The entire file is loaded, so this is not suitable for files that
// do not fit in memory.
func (r *Reader) ReadAll() ([]map[string]any, error) {
	rows := make([]map[string]any, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]any)
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Schema returns the parquet file schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// ReadTable reads the whole file into a table with the given name. Column
// order follows the file schema; rows missing an optional field get a nil
// cell.
func (r *Reader) ReadTable(name string) (*table.Table, error) {
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	fields := r.Schema().Fields()
	cols := make([]*table.Column, 0, len(fields))
	for _, field := range fields {
		values := make([]any, len(rows))
		for i, row := range rows {
			values[i] = row[field.Name()]
		}
		cols = append(cols, table.NewColumn(field.Name(), values))
	}

	return table.New(name, cols...)
}

// Close closes the reader and releases associated resources. It is safe to
// call Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadTable loads a parquet file into a table with the given name.
func ReadTable(path, name string) (*table.Table, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadTable(name)
}
