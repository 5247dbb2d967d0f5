// Package pipeline drives one batch run: enumerate the input directory,
// reconcile each file's dates, write the output copies and report.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"photodate/pkg/config"
	"photodate/pkg/copy"
	"photodate/pkg/exifdate"
	"photodate/pkg/filedate"
	"photodate/pkg/reconcile"
	"photodate/pkg/scan"
)

// runDirLayout names the per-run output subdirectory after the run's start.
const runDirLayout = "20060102_150405"

// Run processes every JPEG in cfg.InputDir once, writing one output file per
// input into a fresh timestamped subdirectory of cfg.OutputDir. Console
// narration goes to w in enumeration order. Per-file failures are contained;
// the run always completes with a report.
func Run(w io.Writer, cfg config.Config, now func() time.Time) (reconcile.Report, error) {
	var report reconcile.Report

	files, err := scan.Files(os.DirFS(cfg.InputDir))
	if err != nil {
		return report, fmt.Errorf("scan input directory: %w", err)
	}

	fmt.Fprintf(w, "Found %d image(s) to process\n", len(files))
	if len(files) == 0 {
		fmt.Fprintln(w, "No .jpg files found in input directory")
		return report, nil
	}

	runDir := filepath.Join(cfg.OutputDir, now().Format(runDirLayout))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return report, fmt.Errorf("create run directory: %w", err)
	}

	for _, name := range files {
		processFile(w, filepath.Join(cfg.InputDir, name), filepath.Join(runDir, name), &report)
	}

	fmt.Fprintf(w, "\nProcessing complete. Check the %q directory for results.\n", runDir)
	fmt.Fprintln(w, "Update Report:")
	fmt.Fprint(w, report.AsText())

	return report, nil
}

// processFile handles one image: extract the filename date, read the embedded
// date, decide, execute. Every failure settles on a verbatim copy.
func processFile(w io.Writer, srcPath, dstPath string, report *reconcile.Report) {
	name := filepath.Base(srcPath)
	fmt.Fprintf(w, "\nProcessing: %s\n", name)

	filenameDate, ok := filedate.Extract(name)
	if !ok {
		fmt.Fprintf(w, "  Could not extract date from filename: %s\n", name)
		copyVerbatim(w, srcPath, dstPath, report)
		return
	}
	fmt.Fprintf(w, "  Date from filename: %s\n", filenameDate.Format("2006-01-02"))

	embedded, res := readEmbeddedDate(srcPath)
	switch res {
	case exifdate.Found:
		fmt.Fprintf(w, "  Date from EXIF: %s\n", embedded.Format("2006-01-02 15:04:05"))
	case exifdate.NoExif:
		fmt.Fprintf(w, "  No EXIF data found in %s\n", name)
	case exifdate.NoDateField:
		fmt.Fprintf(w, "  No date fields found in EXIF data for %s\n", name)
	case exifdate.MalformedDate:
		fmt.Fprintf(w, "  Malformed EXIF date value in %s\n", name)
	}

	switch reconcile.Decide(filenameDate, true, embedded, res == exifdate.Found) {
	case reconcile.ActionPreserve:
		fmt.Fprintln(w, "  Dates match - copying file without changes")
		if copyVerbatim(w, srcPath, dstPath, report) {
			report.Preserved++
		}
	case reconcile.ActionAdd:
		fmt.Fprintln(w, "  No EXIF date found - adding date from filename")
		if applyDate(w, srcPath, dstPath, filenameDate, report) {
			fmt.Fprintln(w, "  Successfully added EXIF date")
			report.Added++
		}
	case reconcile.ActionOverwrite:
		fmt.Fprintln(w, "  Dates don't match - updating EXIF data")
		if applyDate(w, srcPath, dstPath, filenameDate, report) {
			fmt.Fprintln(w, "  Successfully updated EXIF date")
			report.Updated++
		}
	}
}

// readEmbeddedDate opens the file and reads its EXIF date. An unreadable file
// is treated the same as one without EXIF.
func readEmbeddedDate(path string) (time.Time, exifdate.ReadResult) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, exifdate.NoExif
	}
	defer f.Close()

	return exifdate.ReadDate(f)
}

// copyVerbatim copies a file unchanged. A failing copy counts the file as
// failed.
func copyVerbatim(w io.Writer, src, dst string, report *reconcile.Report) bool {
	if err := copy.File(src, dst); err != nil {
		fmt.Fprintf(w, "  Failed to copy %s: %v\n", filepath.Base(src), err)
		report.Failed++
		return false
	}
	return true
}

// applyDate writes the corrected date into a new copy. On failure the
// original is copied unchanged and the file counts as failed.
func applyDate(w io.Writer, src, dst string, date time.Time, report *reconcile.Report) bool {
	if err := exifdate.Apply(src, dst, date); err != nil {
		fmt.Fprintf(w, "  Failed to update EXIF date - copying original (%v)\n", err)
		report.Failed++
		_ = os.Remove(dst)
		if copyErr := copy.File(src, dst); copyErr != nil {
			fmt.Fprintf(w, "  Failed to copy %s: %v\n", filepath.Base(src), copyErr)
		}
		return false
	}
	return true
}
