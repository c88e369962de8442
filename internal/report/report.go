// =============================================================================
// BOM Check - Audit Report
// =============================================================================
//
// This module renders the outcome of a checker/fixer run as a line-oriented
// text report and writes it to the output directory under a unique,
// run-stamped name.
//
// REPORT STRUCTURE:
//   BOM Check - Audit Report
//   ================================================================================
//   Run ID:     a1b2c3d4-....
//   Generated:  2024-01-15 14:30:22
//   Workbook:   main_board.xlsx
//   Cost BOM:   yes
//
//   Issues (2):
//     Checker | main_board.xlsx | Main Board | Row: 3 | 'Qty' = '0' is not ...
//     ...
//
//   Changes (1):
//     fixer | main_board.xlsx | Main Board | Row: 3 | 'Designator' changed ...
//
//   ================================================================================
//   End of Report
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/biring/BomCheck-sub001/internal/bom"
	"github.com/biring/BomCheck-sub001/pkg/utils"
)

// fileNameSeparator joins the metadata parts of a report base name.
const fileNameSeparator = "-"

// suffixCheckerLog marks audit report files.
const suffixCheckerLog = "CheckerLog"

// =============================================================================
// REPORT
// =============================================================================

// Report is the outcome of one audit run over a single workbook.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string

	// FileName is the audited workbook's file name.
	FileName string

	// IsCostBom records the workbook's cost classification.
	IsCostBom bool

	// Issues are the rendered checker findings.
	Issues []string

	// Changes are the rendered fixer audit entries.
	Changes []string

	// Generated is when the report was created.
	Generated time.Time
}

// New creates a report for one workbook with a fresh run id.
func New(b bom.Bom) *Report {
	return &Report{
		RunID:     uuid.New().String(),
		FileName:  b.FileName,
		IsCostBom: b.IsCostBom,
		Generated: time.Now(),
	}
}

// Render returns the report as text lines, ready to print or write.
func (r *Report) Render() []string {
	costBom := "no"
	if r.IsCostBom {
		costBom = "yes"
	}

	lines := []string{
		"BOM Check - Audit Report",
		strings.Repeat("=", 80),
		fmt.Sprintf("Run ID:     %s", r.RunID),
		fmt.Sprintf("Generated:  %s", r.Generated.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Workbook:   %s", r.FileName),
		fmt.Sprintf("Cost BOM:   %s", costBom),
		"",
	}

	lines = append(lines, fmt.Sprintf("Issues (%d):", len(r.Issues)))
	if len(r.Issues) == 0 {
		lines = append(lines, "  none")
	}
	for _, issue := range r.Issues {
		lines = append(lines, "  "+issue)
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Changes (%d):", len(r.Changes)))
	if len(r.Changes) == 0 {
		lines = append(lines, "  none")
	}
	for _, change := range r.Changes {
		lines = append(lines, "  "+change)
	}
	lines = append(lines, "")

	lines = append(lines, strings.Repeat("=", 80))
	lines = append(lines, "End of Report")

	return lines
}

// Write renders the report into outputDir under a unique name built from the
// BOM metadata base name and returns the written path.
func (r *Report) Write(outputDir, baseName string) (string, error) {
	name := utils.UniqueFileName(baseName, ".txt")
	path := filepath.Join(outputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, line := range r.Render() {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return "", fmt.Errorf("failed to write report: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush report: %w", err)
	}

	return path, nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// BaseName builds the report base name from BOM header metadata: model
// number, build stage and, for single-board workbooks, the board name. All
// whitespace is removed so the name stays filesystem safe.
func BaseName(b bom.Bom) string {
	if len(b.Boards) == 0 {
		return suffixCheckerLog
	}

	header := b.Boards[0].Header
	parts := []string{header.ModelNo, header.BuildStage}

	// Board name is omitted for multi-board workbooks.
	if len(b.Boards) == 1 && header.BoardName != "" {
		parts = append(parts, header.BoardName)
	}
	parts = append(parts, suffixCheckerLog)

	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	name := strings.Join(kept, fileNameSeparator)
	return strings.ReplaceAll(name, " ", "")
}
