// Package catalog loads games into the catalog from uploaded files and from the
// external game-listing API.
package catalog

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gamesrank/backend/internal/models"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrNoRows            = errors.New("file contains no games")
	// ErrInvalidFile marks files that could not be decoded at all.
	ErrInvalidFile       = errors.New("invalid file")
)

// Parser turns an uploaded file into catalog games. skipped counts rows that had no name.
type Parser interface {
	Parse(r io.Reader) (games []models.Game, skipped int, err error)
}

// ParserFor picks the parser matching the file extension.
func ParserFor(filename string) (Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return CSVParser{}, nil
	case ".xlsx":
		return XLSXParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

type CSVParser struct{}

func (CSVParser) Parse(r io.Reader) ([]models.Game, int, error) {
	br := bufio.NewReader(r)
	// Spreadsheet exports often start with a UTF-8 byte order mark.
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read CSV: %v", ErrInvalidFile, err)
	}
	return gamesFromRows(records)
}

type XLSXParser struct{}

func (XLSXParser) Parse(r io.Reader) ([]models.Game, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: open XLSX: %v", ErrInvalidFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, ErrNoRows
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read sheet %q: %v", ErrInvalidFile, sheets[0], err)
	}
	return gamesFromRows(rows)
}

// gamesFromRows maps a header row plus data rows onto games.
func gamesFromRows(rows [][]string) ([]models.Game, int, error) {
	if len(rows) < 2 {
		return nil, 0, ErrNoRows
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var games []models.Game
	skipped := 0
	for _, row := range rows[1:] {
		rec := record{header: header, row: row}
		if isBlank(row) {
			continue
		}
		name := rec.text("Name")
		if name == "" {
			skipped++
			continue
		}
		games = append(games, models.Game{
			BGGID:          rec.number("BGGId"),
			Name:           name,
			Description:    rec.text("Description"),
			YearPublished:  rec.number("YearPublished"),
			GameWeight:     rec.decimal("GameWeight"),
			AvgRating:      rec.decimal("AvgRating"),
			MinPlayers:     rec.number("MinPlayers"),
			MaxPlayers:     rec.number("MaxPlayers"),
			NumUserRatings: rec.number("NumUserRatings"),
			NumExpansions:  rec.number("NumExpansions"),
			Family:         rec.text("Family"),
			ImagePath:      rec.text("ImagePath"),
		})
	}
	if len(games) == 0 {
		return nil, skipped, ErrNoRows
	}
	return games, skipped, nil
}

type record struct {
	header map[string]int
	row    []string
}

func (r record) text(column string) string {
	i, ok := r.header[strings.ToLower(column)]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

// number parses a whole number. Missing or malformed cells are 0; "12.0" is accepted.
func (r record) number(column string) int {
	s := r.text(column)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func (r record) decimal(column string) float64 {
	v, err := strconv.ParseFloat(r.text(column), 64)
	if err != nil {
		return 0
	}
	return v
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
