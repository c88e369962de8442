// =============================================================================
// BOM Check - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the audit pipeline:
//   - Workbook discovery in the input directory
//   - Archival of processed workbooks
//   - Unique output file naming
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Input workbooks are moved to the archive directory after a successful
//     run so the next run does not re-process them
//   - Failed workbooks remain in the input directory
//   - Reports and corrected workbooks are written to the output directory
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the audit pipeline.
type FileManager struct {
	// InputDir is the directory scanned for BOM workbooks.
	InputDir string

	// OutputDir is the directory where reports and corrected workbooks go.
	OutputDir string

	// ArchiveDir is the directory where processed workbooks are moved.
	ArchiveDir string

	// ArchiveOnSuccess determines whether inputs are archived after a
	// successful run.
	ArchiveOnSuccess bool
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(inputDir, outputDir, archiveDir string) *FileManager {
	return &FileManager{
		InputDir:         inputDir,
		OutputDir:        outputDir,
		ArchiveDir:       archiveDir,
		ArchiveOnSuccess: true,
	}
}

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.InputDir,
		fm.OutputDir,
		fm.ArchiveDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverWorkbooks scans the input directory for .xlsx workbooks. Excel
// lock files ("~$name.xlsx") and subdirectories are skipped.
func (fm *FileManager) DiscoverWorkbooks() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(fm.InputDir, "*.xlsx"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	var files []string
	for _, file := range matches {
		if strings.HasPrefix(filepath.Base(file), "~$") {
			continue
		}
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			files = append(files, file)
		}
	}

	return files, nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveInputFile moves a processed workbook to the archive directory and
// returns the archived path. When ArchiveOnSuccess is off the file stays put.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	if !fm.ArchiveOnSuccess {
		return filePath, nil
	}

	archivePath := filepath.Join(fm.ArchiveDir, filepath.Base(filePath))

	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := os.Rename(filePath, archivePath); err != nil {
		// Rename fails across devices; fall back to copy and delete.
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}

	return archivePath, nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// UniqueFileName builds a collision-free output file name from a base name,
// the current timestamp and a short random id.
//
// EXAMPLE:
//
//	UniqueFileName("main_board", ".txt")
//	-> "main_board_20240115_143022_a1b2c3d4.txt"
func UniqueFileName(base, extension string) string {
	stamp := time.Now().Format("20060102_150405")
	short := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s_%s%s", base, stamp, short, extension)
}

// BaseNameWithoutExt returns the file name with its directory and extension
// stripped.
func BaseNameWithoutExt(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
