package bundle

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// WriteTree renders an indented listing of the directory tree rooted at
// root and writes it to outputPath.
func WriteTree(fsys afero.Fs, root, outputPath string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(root + "/\n")

	if err := renderSubtree(fsys, root, "  ", &treeBuilder); err != nil {
		logger.Error("Failed to render tree structure", zap.String("root", root), zap.Error(err))
		return fmt.Errorf("failed to render tree structure: %w", err)
	}

	if err := afero.WriteFile(fsys, outputPath, []byte(treeBuilder.String()), 0o644); err != nil {
		logger.Error("Failed to write tree file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write tree file: %w", err)
	}

	logger.Debug("Wrote tree structure", zap.String("file", outputPath))
	return nil
}

// renderSubtree appends one directory level to the listing, directories
// first, each level indented by two more spaces.
func renderSubtree(fsys afero.Fs, directory, indent string, treeBuilder *strings.Builder) error {
	entries, err := afero.ReadDir(fsys, directory)
	if err != nil {
		return fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for _, entry := range entries {
		if entry.IsDir() {
			treeBuilder.WriteString(indent + entry.Name() + "/\n")
			if err := renderSubtree(fsys, filepath.Join(directory, entry.Name()), indent+"  ", treeBuilder); err != nil {
				return err
			}
		} else {
			treeBuilder.WriteString(indent + entry.Name() + "\n")
		}
	}
	return nil
}
