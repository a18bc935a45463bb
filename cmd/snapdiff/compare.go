package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/jotaen/snapdiff/internal/filter"
	"github.com/jotaen/snapdiff/internal/hasher"
	"github.com/jotaen/snapdiff/internal/pathlist"
	"github.com/jotaen/snapdiff/internal/progress"
	"github.com/jotaen/snapdiff/internal/scanner"
	"github.com/jotaen/snapdiff/internal/snapshot"
	"github.com/spf13/cobra"
)

// compareOptions holds CLI flags for the compare command.
type compareOptions struct {
	workersStr      string
	reportFile      string
	includeSymlinks bool
	includeDotPaths bool
	noColor         bool
}

// newCompareCmd creates the compare subcommand.
func newCompareCmd() *cobra.Command {
	opts := &compareOptions{workersStr: "0"}

	cmd := &cobra.Command{
		Use:   "compare snap1_path snap2_path",
		Short: "Compare two snapshot directory trees and classify every file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCompare(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.workersStr, "workers", "w", opts.workersStr, "Hashing workers per phase: N or N1:N2. 0 means all available cores")
	cmd.Flags().StringVar(&opts.workersStr, "worker", opts.workersStr, "Alias of --workers")
	_ = cmd.Flags().MarkHidden("worker")

	cmd.Flags().StringVarP(&opts.reportFile, "report", "r", "", "Write the detailed per-file listing to FILE (must not already exist)")
	cmd.Flags().StringVar(&opts.reportFile, "report-file", "", "Alias of --report")
	_ = cmd.Flags().MarkHidden("report-file")

	cmd.Flags().BoolVarP(&opts.includeSymlinks, "include-symlinks", "s", false, "Include symlinks, recorded at size 0")
	cmd.Flags().BoolVarP(&opts.includeDotPaths, "include-dot-paths", "d", false, "Include dot-prefixed paths and directories")

	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Strip ANSI styling from the summary")
	cmd.Flags().BoolVar(&opts.noColor, "no-colour", false, "Alias of --no-color")
	_ = cmd.Flags().MarkHidden("no-colour")

	return cmd
}

// runCompare drives the two-phase pipeline: scan+hash root1 into
// Snapshot-1, scan+hash root2 into Snapshot-2 (classifying against
// Snapshot-1 as it streams), then conclude and render the report. Phase 2
// never starts until phase 1's workers have all joined, which this
// function's straight-line sequencing guarantees for free.
func runCompare(root1, root2 string, opts *compareOptions) error {
	if err := validateSnapshotRoot(root1); err != nil {
		return err
	}
	if err := validateSnapshotRoot(root2); err != nil {
		return err
	}
	if err := validateReportTarget(opts.reportFile); err != nil {
		return err
	}

	workers1, workers2, err := parseWorkers(opts.workersStr)
	if err != nil {
		return fmt.Errorf("invalid --workers: %w", err)
	}

	var cancel atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			cancel.Store(true)
		}
	}()

	f := filter.New(opts.includeSymlinks, opts.includeDotPaths)
	keepDetail := opts.reportFile != ""

	res1 := scanner.New(root1, f, workers1 > 1, workers1).Scan()
	cursor1 := pathlist.NewCursor(res1.Large, res1.Small)
	snap1 := snapshot.NewSnapshot1()
	tracker1 := progress.NewTracker("Snap 1", true)
	pool1 := &hasher.Pool{Root: root1, Cursor: cursor1, Snapshot: snap1, Progress: tracker1, Cancel: &cancel, Workers: workers1}
	if err := pool1.Run(); err != nil {
		return fmt.Errorf("hashing %s: %w", root1, err)
	}
	tracker1.Finish()

	res2 := scanner.New(root2, f, workers2 > 1, workers2).Scan()
	cursor2 := pathlist.NewCursor(res2.Large, res2.Small)
	snap2 := snapshot.NewSnapshot2(snap1, keepDetail)
	tracker2 := progress.NewTracker("Snap 2", true)
	pool2 := &hasher.Pool{Root: root2, Cursor: cursor2, Snapshot: snap2, Progress: tracker2, Cancel: &cancel, Workers: workers2}
	if err := pool2.Run(); err != nil {
		return fmt.Errorf("hashing %s: %w", root2, err)
	}
	tracker2.Finish()

	rep := snap2.Conclude()

	if opts.reportFile != "" {
		out, err := os.Create(opts.reportFile)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer func() { _ = out.Close() }()
		if err := rep.WriteDetail(out); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	fmt.Print(rep.WriteSummary(!opts.noColor))
	return nil
}
