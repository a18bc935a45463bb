package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// parseWorkers parses the --workers value: either a single count applied
// to both phases, or "N1:N2" for independent per-phase counts. 0 means
// "all available cores".
func parseWorkers(s string) (phase1, phase2 int, err error) {
	parts := strings.SplitN(s, ":", 2)

	n1, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid worker count %q", parts[0])
	}
	n2 := n1
	if len(parts) == 2 {
		n2, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid worker count %q", parts[1])
		}
	}
	return resolveWorkers(n1), resolveWorkers(n2), nil
}

func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// validateReportTarget ensures the --report destination does not already
// exist; snapdiff never overwrites a file.
func validateReportTarget(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("report file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return nil
}

// validateSnapshotRoot ensures path exists and is a directory.
func validateSnapshotRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", path)
	}
	return nil
}
