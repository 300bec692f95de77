// Package metrics loads per-user metric observations for the continuous
// tests and summarises them.
package metrics

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wesleyorama2/abstat/pkg/jsonpath"
)

// Read loads the observations in file. The format follows the extension:
//
//	.xlsx  first column of the first sheet
//	.csv   first column
//	other  a JSON array of numbers, or one number per line
//
// For .xlsx and .csv a non-numeric first row is treated as a header. In
// line files blank lines and lines starting with # are skipped.
func Read(file string) ([]float64, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx":
		return readExcel(file)
	case ".csv":
		return readCSV(file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		values, err := jsonpath.ExtractFloats(string(trimmed), "$")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return values, nil
	}
	return readLines(file, data)
}

func readLines(file string, data []byte) ([]float64, error) {
	var values []float64
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid number %q", file, line, text)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return values, nil
}

func readExcel(file string) ([]float64, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", file)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheets[0], err)
	}
	return firstColumn(file, rows)
}

func readCSV(file string) ([]float64, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer fh.Close()

	reader := csv.NewReader(fh)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return firstColumn(file, rows)
}

// firstColumn parses the first cell of every row. Rows with an empty first
// cell are skipped; a non-numeric first row is a header.
func firstColumn(file string, rows [][]string) ([]float64, error) {
	var values []float64
	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		cell := strings.TrimSpace(row[0])
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%s: row %d: invalid number %q", file, i+1, cell)
		}
		values = append(values, v)
	}
	return values, nil
}
