package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func ReadDownloadList(filePath string) ([]DownloadEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	}
	var entries []DownloadEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing YAML file: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyDownloadList
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry.URL) == "" {
			return nil, fmt.Errorf("missing link for entry %d", i+1)
		}
	}
	return entries, nil
}

func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// TempDir is the directory holding in-progress part files for outputPath.
func TempDir(outputPath string) string {
	return filepath.Join(filepath.Dir(outputPath), TempDirName)
}

// CleanTemp removes leftover part files from the temp directory inside dir.
// If the temp directory ends up empty it is removed as well. A missing
// directory is not an error.
func CleanTemp(dir string) (int, error) {
	tempDir := filepath.Join(dir, TempDirName)
	files, err := os.ReadDir(tempDir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), PartSuffix) {
			continue
		}
		if err := os.Remove(filepath.Join(tempDir, file.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	remainingFiles, err := os.ReadDir(tempDir)
	if err != nil {
		return removed, err
	}
	if len(remainingFiles) == 0 {
		if err := os.Remove(tempDir); err != nil {
			return removed, err
		}
	}
	return removed, nil
}
