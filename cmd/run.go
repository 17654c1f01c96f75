package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/tanq16/scooper/internal/fetch"
	"github.com/tanq16/scooper/internal/output"
	"github.com/tanq16/scooper/internal/report"
	"github.com/tanq16/scooper/internal/scheduler"
	"github.com/tanq16/scooper/internal/utils"
)

// runDownloads is the shared pipeline behind the root and batch commands:
// build one task per URL, drain the pool in completion order, fold outcomes
// into the aggregator and the run log, then render the report.
func runDownloads(urls []string) {
	utils.InitLogger(debug)
	output.SetColorEnabled(!noColor)
	policy, err := buildPolicy()
	if err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}

	runLog, err := output.NewRunLog(logFile)
	if err != nil {
		output.PrintError(fmt.Sprintf("Failed to open log file: %v", err))
		os.Exit(1)
	}
	defer runLog.Close()

	client := utils.NewHTTPClient(policy.ProxyURL)
	names := fetch.NewNameRegistry()
	tasks := make([]scheduler.Task, 0, len(urls))
	for _, u := range urls {
		tasks = append(tasks, fetch.NewTask(u, policy, client, names))
	}

	output.PrintInfo(fmt.Sprintf("Downloading %d file(s) with %d threads...", len(urls), policy.Threads))

	// An interrupt stops dispatch of queued tasks; running attempts finish.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	agg := report.NewAggregator(policy)
	progress := output.NewProgress(len(tasks))
	log := utils.GetLogger("run")
	for outcome := range scheduler.Run(ctx, tasks, policy.Threads) {
		if err := runLog.Write(agg.Add(outcome)); err != nil {
			log.Warn().Err(err).Msg("Failed to append to run log")
		}
		progress.Increment()
	}
	progress.Finish()
	agg.Render(runLog.Path())

	if len(agg.Failures) > 0 {
		os.Exit(1)
	}
}
