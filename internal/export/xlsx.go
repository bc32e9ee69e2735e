// Package export writes the visible recipe list to a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hammamikhairi/recipebox/internal/render"
)

// SheetName is the worksheet the cards are written to.
const SheetName = "Recipes"

// ContentType is the MIME type of the workbook WriteXLSX produces.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []interface{}{"id", "title", "time", "difficulty", "description"}

func build(cards []render.Card) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening stream writer: %w", err)
	}
	if err := sw.SetRow("A1", header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for i, c := range cards {
		row := []interface{}{c.ID, c.Title, c.Minutes, c.Difficulty, c.Description}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, fmt.Errorf("flushing rows: %w", err)
	}
	return f, nil
}

// WriteXLSX writes a header row plus one row per card to w.
func WriteXLSX(w io.Writer, cards []render.Card) error {
	f, err := build(cards)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the cards to a workbook at path.
func SaveXLSX(path string, cards []render.Card) error {
	f, err := build(cards)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
