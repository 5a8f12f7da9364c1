// Package bundle walks a source tree and concatenates every readable
// text file into a single output file, one headered record per file.
package bundle

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrSourceMissing indicates the configured source directory does not
// exist, or exists but is not a directory. No output file is created
// in that case.
var ErrSourceMissing = errors.New("source directory does not exist")

// Run walks every regular file under args.Source and appends one record
// per readable UTF-8 file to args.Output, which is created fresh. Files
// that cannot be read or decoded are logged and collected in the
// returned Summary; only failures on the output stream abort the run.
func Run(fsys afero.Fs, args Arguments, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	logger.Info("Starting bundle run",
		zap.String("source", args.Source),
		zap.String("output", args.Output))

	info, err := fsys.Stat(args.Source)
	if err != nil || !info.IsDir() {
		return Summary{}, fmt.Errorf("%w: %s", ErrSourceMissing, args.Source)
	}

	outFile, err := fsys.Create(args.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", args.Output), zap.Error(err))
		return Summary{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", args.Output), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	var summary Summary

	walkErr := afero.Walk(fsys, args.Source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		relPath, relErr := filepath.Rel(args.Source, path)
		if relErr != nil {
			relPath = path // Fallback to the full path
		}
		relPath = filepath.ToSlash(relPath)

		// The whole file is read before anything is written, so a
		// record never appears partially in the output.
		content, readErr := afero.ReadFile(fsys, path)
		if readErr != nil {
			logger.Warn("Skipping unreadable file",
				zap.String("path", relPath),
				zap.Error(readErr))
			summary.Skipped = append(summary.Skipped, FileResult{Path: relPath, Err: readErr})
			return nil
		}

		if !utf8.Valid(content) {
			decodeErr := fmt.Errorf("content of %s is not valid UTF-8 text", relPath)
			logger.Warn("Skipping undecodable file",
				zap.String("path", relPath),
				zap.Error(decodeErr))
			summary.Skipped = append(summary.Skipped, FileResult{Path: relPath, Err: decodeErr})
			return nil
		}

		if writeErr := writeRecord(writer, relPath, content); writeErr != nil {
			logger.Error("Failed to write record",
				zap.String("path", relPath),
				zap.Error(writeErr))
			return fmt.Errorf("failed to write record for %s: %w", relPath, writeErr)
		}

		summary.Bundled++
		logger.Debug("Bundled file",
			zap.String("path", relPath),
			zap.Int("contentSizeBytes", len(content)))
		return nil
	})
	if walkErr != nil {
		return summary, walkErr
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", args.Output), zap.Error(err))
		return summary, fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Info("Bundle run completed",
		zap.Int("bundledFiles", summary.Bundled),
		zap.Int("skippedFiles", len(summary.Skipped)),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
