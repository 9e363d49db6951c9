package main

import (
	"bufio"
	"os"
	"strings"
)

// loadPositions reads one position per line. Blank lines and lines starting
// with # are skipped.
func loadPositions(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var positions []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		positions = append(positions, line)
	}
	return positions, scanner.Err()
}
