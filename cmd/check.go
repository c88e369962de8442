// =============================================================================
// BOM Check - Check Command
// =============================================================================
//
// This file defines the 'check' command, which runs the audit pipeline over
// one or more BOM workbooks.
//
// COMMAND USAGE:
//   bomcheck check [flags]
//
// FLAGS:
//   --file     : Audit a single workbook instead of scanning the input dir
//   --fix      : Apply auto-corrections and write a corrected workbook
//   --dry-run  : Run the audit but write no files and archive nothing
//
// PROCESSING PIPELINE:
//   1. Load configuration and the component type dictionary
//   2. Discover .xlsx workbooks in the input directory (or take --file)
//   3. For each workbook (concurrently):
//      a. Parse the version 3 board sheets
//      b. With --fix: run the auto-correctors, collect the change log
//      c. Run the checkers, collect the issue log
//      d. Write the text report and, with --fix, the corrected workbook
//   4. Archive processed workbooks
//   5. Print a summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/biring/BomCheck-sub001/internal/bom"
	"github.com/biring/BomCheck-sub001/internal/bomparser"
	"github.com/biring/BomCheck-sub001/internal/checker"
	"github.com/biring/BomCheck-sub001/internal/config"
	"github.com/biring/BomCheck-sub001/internal/corrector"
	"github.com/biring/BomCheck-sub001/internal/fixer"
	"github.com/biring/BomCheck-sub001/internal/lookup"
	"github.com/biring/BomCheck-sub001/internal/report"
	"github.com/biring/BomCheck-sub001/pkg/utils"
)

// dryRun runs the audit without writing output files or archiving inputs.
var dryRun bool

// applyFix enables the auto-correction pass.
var applyFix bool

// singleFilePath audits one workbook instead of scanning the input dir.
var singleFilePath string

// checkCmd represents the 'check' command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit BOM workbooks and report rule violations",
	Long: `The check command scans the input directory for .xlsx workbooks that use
the version 3 BOM template and audits each one against the cross-field
consistency rules.

With --fix, the auto-correctors run first: cell cleanup, component type
normalization, designator range expansion and derived cost repair. Every
change is recorded in the report, and a corrected copy of the workbook is
written to the output directory.

On successful processing:
  - A text report (issues + changes) is written to the output directory
  - The workbook is moved to the archive directory

On error:
  - The workbook stays in the input directory
  - Processing continues for the remaining workbooks`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(
		&applyFix,
		"fix",
		false,
		"Apply auto-corrections and write a corrected workbook",
	)

	checkCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the audit without writing files or archiving inputs",
	)

	checkCmd.Flags().StringVar(
		&singleFilePath,
		"file",
		"",
		"Audit a single workbook instead of scanning the input directory",
	)
}

// checkResult is the outcome of auditing one workbook.
type checkResult struct {
	FilePath   string
	ReportPath string
	Issues     int
	Changes    int
	Err        error
}

// runCheck orchestrates the audit pipeline.
func runCheck() error {
	startTime := time.Now()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir)
	fm.ArchiveOnSuccess = !dryRun && singleFilePath == ""
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	var dict *lookup.Dictionary
	if applyFix {
		dict, err = lookup.Load(cfg.LookupFile)
		if err != nil {
			return fmt.Errorf("failed to load component type dictionary: %w", err)
		}
		logger.Debugw("dictionary loaded",
			"file", cfg.LookupFile, "types", dict.Len())
	}

	files, err := workbooksToAudit(fm)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No .xlsx workbooks found in the input directory.")
		return nil
	}

	fmt.Println("=== BOM Check ===")
	fmt.Printf("Found %d workbook(s) to audit\n", len(files))

	correctorCfg := corrector.Config{
		IgnoreMask:           cfg.Matching.IgnoreMask,
		JaccardThreshold:     cfg.Matching.JaccardThreshold,
		LevenshteinThreshold: cfg.Matching.LevenshteinThreshold,
	}

	var wg sync.WaitGroup
	results := make(chan checkResult, len(files))

	for _, file := range files {
		wg.Add(1)

		go func(filePath string) {
			defer wg.Done()
			results <- auditWorkbook(filePath, fm, dict, correctorCfg, logger)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var okCount, errCount, issueCount, changeCount int
	for result := range results {
		if result.Err != nil {
			errCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Err)
			continue
		}
		okCount++
		issueCount += result.Issues
		changeCount += result.Changes
		if result.ReportPath != "" {
			fmt.Printf("  ✓ %s -> %s (%d issue(s), %d change(s))\n",
				filepath.Base(result.FilePath), filepath.Base(result.ReportPath),
				result.Issues, result.Changes)
		} else {
			fmt.Printf("  ✓ %s (%d issue(s), %d change(s))\n",
				filepath.Base(result.FilePath), result.Issues, result.Changes)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Audit Complete ===")
	fmt.Printf("Total workbooks: %d\n", len(files))
	fmt.Printf("Audited:         %d\n", okCount)
	fmt.Printf("Failed:          %d\n", errCount)
	fmt.Printf("Issues found:    %d\n", issueCount)
	fmt.Printf("Changes made:    %d\n", changeCount)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	if errCount > 0 {
		return fmt.Errorf("%d workbook(s) failed to process", errCount)
	}
	return nil
}

// workbooksToAudit returns the list of workbooks for this run: the --file
// argument when given, otherwise the input directory scan.
func workbooksToAudit(fm *utils.FileManager) ([]string, error) {
	if singleFilePath != "" {
		if !utils.FileExists(singleFilePath) {
			return nil, fmt.Errorf("workbook %q does not exist", singleFilePath)
		}
		return []string{singleFilePath}, nil
	}
	return fm.DiscoverWorkbooks()
}

// auditWorkbook runs the full pipeline over a single workbook.
func auditWorkbook(filePath string, fm *utils.FileManager, dict *lookup.Dictionary,
	correctorCfg corrector.Config, logger *zap.SugaredLogger) checkResult {

	result := checkResult{FilePath: filePath}

	parsed, err := bomparser.Parse(filePath)
	if err != nil {
		result.Err = err
		return result
	}
	logger.Debugw("workbook parsed",
		"file", parsed.FileName, "boards", len(parsed.Boards), "costBom", parsed.IsCostBom)

	var changes []string
	audited := parsed
	if dict != nil {
		fixed, changeLog, err := fixer.Fix(parsed, dict, correctorCfg)
		if err != nil {
			result.Err = fmt.Errorf("fix pass failed: %w", err)
			return result
		}
		audited = fixed
		changes = changeLog
	}

	issues := checker.Check(audited)
	result.Issues = len(issues)
	result.Changes = len(changes)

	logger.Infow("workbook audited",
		"file", parsed.FileName, "issues", len(issues), "changes", len(changes))

	if dryRun {
		return result
	}

	rpt := report.New(audited)
	rpt.Issues = issues
	rpt.Changes = changes

	reportPath, err := rpt.Write(fm.OutputDir, report.BaseName(audited))
	if err != nil {
		result.Err = err
		return result
	}
	result.ReportPath = reportPath

	if dict != nil && len(changes) > 0 {
		if err := writeCorrectedWorkbook(audited, fm.OutputDir); err != nil {
			result.Err = err
			return result
		}
	}

	if _, err := fm.ArchiveInputFile(filePath); err != nil {
		result.Err = err
		return result
	}

	return result
}

// writeCorrectedWorkbook saves the corrected BOM next to the report.
func writeCorrectedWorkbook(b bom.Bom, outputDir string) error {
	name := utils.UniqueFileName(utils.BaseNameWithoutExt(b.FileName)+"_corrected", ".xlsx")
	return report.WriteWorkbook(b, filepath.Join(outputDir, name))
}
