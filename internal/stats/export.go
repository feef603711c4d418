package stats

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	RankingSheet    = "Ranking"
	VotesSheet      = "Votes"
	CategoriesSheet = "Categories"
)

// ExportXLSX writes the report as a workbook with one sheet per section.
func ExportXLSX(report Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RankingSheet); err != nil {
		return nil, err
	}
	for _, name := range []string{VotesSheet, CategoriesSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	ranking := [][]any{{"Position", "Game ID", "Name", "Appearances", "Average position"}}
	for i, s := range report.Ranking {
		ranking = append(ranking, []any{i + 1, s.GameID, s.Name, s.Appearances, s.AveragePosition})
	}

	votes := [][]any{{"Game ID", "Name", "Average stars", "Votes", "Comments"}}
	for _, v := range report.Votes {
		votes = append(votes, []any{v.GameID, v.Name, v.AverageStars, v.TotalVotes, strings.Join(v.Comments, " | ")})
	}

	categories := [][]any{{"Category", "Rankings", "Average filled", "Leader", "Average stars", "Votes"}}
	for _, c := range report.Categories {
		leader, stars := "", any("")
		if c.Leader != nil {
			leader = c.Leader.Name
		}
		if c.AverageStars != nil {
			stars = *c.AverageStars
		}
		categories = append(categories, []any{c.Name, c.Rankings, c.AverageFilled, leader, stars, c.Votes})
	}

	for sheet, rows := range map[string][][]any{RankingSheet: ranking, VotesSheet: votes, CategoriesSheet: categories} {
		if err := writeRows(f, sheet, rows); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
