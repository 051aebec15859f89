package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nephila016/emailcanon/internal/debug"
	"github.com/nephila016/emailcanon/internal/inspector"
	"github.com/nephila016/emailcanon/internal/output"
	"github.com/nephila016/emailcanon/internal/worker"
)

var (
	bulkFile       string
	bulkOutputs    []string
	bulkWorkers    int
	bulkDuplicates bool
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Inspect multiple emails from a file",
	Long: `Inspect email addresses from an input file using concurrent workers.

Features:
  - Concurrent inspection with configurable workers
  - Progress bar and statistics
  - Several outputs at once, format picked from each file extension
  - Duplicate mailbox report (addresses sharing a canonical form)
  - Graceful shutdown on Ctrl+C

A .txt output receives each distinct canonical address of the valid
inputs once, which makes it a deduplicated mailing list. The output "-"
prints one line per result to stdout.

Examples:
  emailcanon bulk -f emails.txt -o results.csv
  emailcanon bulk -f emails.txt -o results.jsonl -o unique.txt -w 8
  emailcanon bulk -f emails.txt --duplicates`,
	RunE: runBulk,
}

func init() {
	rootCmd.AddCommand(bulkCmd)

	bulkCmd.Flags().StringVarP(&bulkFile, "file", "f", "", "Input file with emails (required)")
	bulkCmd.Flags().StringSliceVarP(&bulkOutputs, "output", "o", []string{"results.csv"}, "Output file (repeatable)")
	bulkCmd.Flags().IntVarP(&bulkWorkers, "workers", "w", 0, "Number of concurrent workers (default from config)")
	bulkCmd.Flags().BoolVar(&bulkDuplicates, "duplicates", false, "Print groups of inputs that reach the same mailbox")

	bulkCmd.MarkFlagRequired("file")
}

type bulkStats struct {
	valid      int
	invalid    int
	malformed  int
	disposable int
	free       int
	corporate  int
	usable     int
	duplicates int
}

func runBulk(cmd *cobra.Command, args []string) error {
	log := debug.GetLogger()
	startTime := time.Now()

	// Load emails
	emails, err := loadEmails(bulkFile)
	if err != nil {
		return err
	}

	if len(emails) == 0 {
		return fmt.Errorf("no emails found in %s", bulkFile)
	}

	workers := bulkWorkers
	if workers <= 0 {
		workers = cfg.Bulk.Workers
	}

	// Print settings
	if !cfg.Quiet {
		printBulkSettings(len(emails), workers)
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, err := newInspector(ctx)
	if err != nil {
		return err
	}

	// Create output writers
	writer, err := output.OpenAll(bulkOutputs...)
	if err != nil {
		return err
	}
	defer writer.Close()

	pool := worker.NewPool(ctx, in, &worker.PoolConfig{
		Workers:    workers,
		BufferSize: cfg.Bulk.BufferSize,
	})

	// Progress bar, hidden while debug lines share stderr
	var bar *progressbar.ProgressBar
	if !cfg.Quiet && !debug.GetLogger().Enabled(debug.LevelBasic) {
		bar = progressbar.NewOptions(len(emails),
			progressbar.OptionSetDescription("Inspecting"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("emails"),
		)
	}

	// Start workers
	pool.Start()

	// Submit jobs
	go func() {
		for i, email := range emails {
			if !pool.Submit(email, i) {
				break
			}
		}
		pool.Close()
	}()

	// Results are written from this goroutine only, in completion order.
	var stats bulkStats
	results := make([]*inspector.Result, len(emails))
	var writeErr error
	for out := range pool.Results() {
		result := out.Result
		results[out.Index] = result
		stats.add(result)

		if writeErr == nil {
			writeErr = writer.Write(result)
		}

		if bar != nil {
			bar.Add(1)
		}

		log.Detail("RESULT", "%s: %s -> %s", result.Email, result.Status, result.Canonical)
	}

	if bar != nil {
		bar.Finish()
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write results: %w", writeErr)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	groups := output.DuplicateGroups(results)
	for _, g := range groups {
		stats.duplicates += len(g.Emails) - 1
	}

	interrupted := ctx.Err() != nil
	if interrupted {
		fmt.Println("\nInterrupted, partial results were saved")
	}

	if !cfg.Quiet {
		printBulkSummary(&stats, pool.GetStats(startTime))
		if bulkDuplicates {
			printDuplicateGroups(groups)
		}
	} else if bulkDuplicates {
		for _, g := range groups {
			fmt.Printf("%s\t%s\n", g.Canonical, strings.Join(g.Emails, ","))
		}
	}

	if !cfg.Quiet {
		fmt.Printf("\nResults saved to: %s\n", strings.Join(bulkOutputs, ", "))
	}

	return nil
}

func (s *bulkStats) add(r *inspector.Result) {
	if r.IsUsable() {
		s.usable++
	}

	switch r.Status {
	case inspector.StatusValid:
		s.valid++
	case inspector.StatusInvalid:
		s.invalid++
	case inspector.StatusMalformed:
		s.malformed++
		return
	}

	switch {
	case r.Disposable:
		s.disposable++
	case r.Free:
		s.free++
	default:
		s.corporate++
	}
}

func loadEmails(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var emails []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		emails = append(emails, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return emails, nil
}

func printBulkSettings(count, workers int) {
	printBanner("Email Canonicalizer")

	fmt.Printf("Emails to inspect: %d\n", count)
	fmt.Printf("Workers:           %d\n", workers)
	if cfg.ExtendedProviders {
		fmt.Printf("Providers:         extended\n")
	} else {
		fmt.Printf("Providers:         default\n")
	}
	if cfg.Inspect.Strict {
		fmt.Printf("Strict canonical:  yes\n")
	}
	fmt.Printf("Output:            %s\n", strings.Join(bulkOutputs, ", "))
	fmt.Println()
}

func printBulkSummary(stats *bulkStats, poolStats *worker.Stats) {
	printBanner("SUMMARY")

	fmt.Printf("Total Inspected:   %d\n", poolStats.Processed)
	green.Printf("Valid:             %d\n", stats.valid)
	red.Printf("Invalid:           %d\n", stats.invalid)
	red.Printf("Malformed:         %d\n", stats.malformed)
	fmt.Println()
	red.Printf("Disposable:        %d\n", stats.disposable)
	yellow.Printf("Free:              %d\n", stats.free)
	fmt.Printf("Corporate:         %d\n", stats.corporate)
	green.Printf("Usable:            %d\n", stats.usable)
	yellow.Printf("Duplicates:        %d\n", stats.duplicates)
	fmt.Println()
	fmt.Printf("Duration:          %s\n", poolStats.Duration.Round(time.Millisecond))
	fmt.Printf("Rate:              %.2f emails/sec\n", poolStats.Rate)
}

func printDuplicateGroups(groups []output.DuplicateGroup) {
	fmt.Println()
	if len(groups) == 0 {
		green.Println("No duplicate mailboxes found")
		return
	}

	cyan.Printf("Duplicate mailboxes (%d):\n", len(groups))
	for _, g := range groups {
		white.Printf("  %s", g.Canonical)
		fmt.Printf(" (%s)\n", g.Provider)
		for _, email := range g.Emails {
			fmt.Printf("    %s\n", email)
		}
	}
}
