package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biring/BomCheck-sub001/internal/bom"
)

func cleanBoard() bom.Board {
	return bom.Board{
		SheetName: "Main Board",
		Header: bom.Header{
			ModelNo:      "AB1234",
			BoardName:    "Main PCBA",
			Manufacturer: "Acme Electronics",
			BuildStage:   "P1",
			Date:         "2026-08-30",
			MaterialCost: "0.6",
			OverheadCost: "0.4",
			TotalCost:    "1.0",
		},
		Rows: []bom.Row{
			{
				Item:           "1",
				ComponentType:  "Resistor",
				DevicePackage:  "0603",
				Description:    "1k,1%,0.5W",
				Unit:           "PCS",
				Classification: "A",
				Manufacturer:   "Acme Electronics",
				MfgPartNumber:  "RC0603FR-071KL",
				ULVDENumber:    "E1234",
				ValidatedAt:    "P1",
				Qty:            "2",
				Designator:     "R1,R2",
				UnitPrice:      "0.05",
				SubTotal:       "0.1",
			},
			{
				Item:           "2",
				ComponentType:  "Capacitor",
				DevicePackage:  "0805",
				Description:    "1uF,10%,50V",
				Unit:           "PCS",
				Classification: "B",
				Manufacturer:   "Acme Electronics",
				MfgPartNumber:  "CL21B105KBFNNNE",
				ULVDENumber:    "E5678",
				ValidatedAt:    "P1",
				Qty:            "1",
				Designator:     "C1",
				UnitPrice:      "0.5",
				SubTotal:       "0.5",
			},
		},
	}
}

func TestCheckCleanBom(t *testing.T) {
	b := bom.Bom{FileName: "clean.xlsx", Boards: []bom.Board{cleanBoard()}}
	assert.Empty(t, Check(b))
}

func TestCheckReportsRowFindingsWithContext(t *testing.T) {
	board := cleanBoard()
	board.Rows[1].Qty = "3" // designator count and sub-total no longer line up

	b := bom.Bom{FileName: "dirty.xlsx", Boards: []bom.Board{board}}
	findings := Check(b)
	require.NotEmpty(t, findings)

	for _, f := range findings {
		assert.True(t, strings.HasPrefix(f, "Checker | dirty.xlsx | Main Board | Row: 2 | "), f)
	}
}

func TestCheckReportsHeaderFindings(t *testing.T) {
	board := cleanBoard()
	board.Header.TotalCost = "9.9"

	b := bom.Bom{FileName: "dirty.xlsx", Boards: []bom.Board{board}}
	findings := Check(b)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "Checker | dirty.xlsx | Main Board | Header | ")
	assert.Contains(t, findings[0], "'Total' = '9.9' is not correct.")
}

func TestCheckCoversEveryBoard(t *testing.T) {
	first := cleanBoard()
	second := cleanBoard()
	second.SheetName = "Daughter Board"
	second.Rows[0].Designator = "r1" // lower case fails the format rule

	b := bom.Bom{FileName: "multi.xlsx", Boards: []bom.Board{first, second}}
	findings := Check(b)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "Daughter Board | Row: 1 |")
	assert.Contains(t, findings[0], "Invalid 'Designator' = 'r1'")
}
