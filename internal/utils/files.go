package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadFloatPairs reads two whitespace separated numbers per line. Empty lines and
// lines starting with # are skipped.
func ReadFloatPairs(filename string) ([][2]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	var result [][2]float64

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid format in line: %q - expected 2 numbers, got %d", line, len(parts))
		}

		var pair [2]float64
		for i := range parts {
			pair[i], err = strconv.ParseFloat(parts[i], 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing float in line %q: %w", line, err)
			}
		}
		result = append(result, pair)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return result, nil
}

func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OpenFile creates outputPath/suffix/name.ext when makeDir is set,
// outputPath/name_suffix.ext otherwise.
func OpenFile(makeDir bool, outputPath, fileSuffix, name, ext string) (*os.File, error) {
	if makeDir && fileSuffix != "" && fileSuffix != "." {
		dir := filepath.Join(outputPath, fileSuffix)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, err
		}
		return os.Create(filepath.Join(dir, name+ext))
	}
	if outputPath != "" {
		if err := os.MkdirAll(outputPath, 0750); err != nil {
			return nil, err
		}
	}
	if fileSuffix == "" {
		return os.Create(filepath.Join(outputPath, name+ext))
	}
	return os.Create(filepath.Join(outputPath, name+"_"+fileSuffix+ext))
}
