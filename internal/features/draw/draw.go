package draw

// Turns a chart request into chart jobs and runs them one by one:
// render, hand to the display sink, print a confirmation line.
// A failing job stops the run; later jobs are not attempted.

import (
	"context"
	"fmt"
	"io"
	"time"

	"chart-demo/internal/charts"
	"chart-demo/internal/display"
	logging "chart-demo/internal/infra/log"

	"go.uber.org/zap"
)

// Request is what the user asked for on the command line.
type Request struct {
	Kind  charts.Kind
	Title string
}

// Job is one chart to render.
type Job struct {
	Kind  charts.Kind
	Title string
}

// Plan expands a request into jobs with their final titles.
func Plan(req Request) []Job {
	if req.Kind == charts.All {
		jobs := make([]Job, 0, len(charts.Concrete()))
		for _, kind := range charts.Concrete() {
			title := kind.DefaultLabel()
			if req.Title != "" {
				title = fmt.Sprintf("%s - %s", req.Title, title)
			}
			jobs = append(jobs, Job{Kind: kind, Title: title})
		}
		return jobs
	}

	title := req.Title
	if title == "" {
		title = req.Kind.SingleTitle()
	}
	return []Job{{Kind: req.Kind, Title: title}}
}

// Confirmation is the line printed after a chart was displayed.
func Confirmation(job Job) string {
	return fmt.Sprintf("✅ %s displayed: %s", job.Kind.ConfirmLabel(), job.Title)
}

// Runner executes requests against a display sink.
type Runner struct {
	Sink    display.Sink
	Out     io.Writer
	Options charts.Options
}

// Run prints the banner, then renders and displays every planned job in order.
func (r *Runner) Run(ctx context.Context, req Request) error {
	start := time.Now()
	jobs := Plan(req)

	PrintBanner(r.Out)

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		fig, err := charts.Render(job.Kind, job.Title, r.Options)
		if err != nil {
			logging.LogError("Failed to render chart", zap.String("kind", job.Kind.String()), zap.Error(err))
			return err
		}

		if err := r.Sink.Show(ctx, fig); err != nil {
			logging.LogError("Failed to display chart", zap.String("kind", job.Kind.String()), zap.Error(err))
			return fmt.Errorf("failed to display %s: %w", job.Title, err)
		}

		fmt.Fprintln(r.Out, Confirmation(job))
	}

	logging.LogSuccess("Charts displayed",
		zap.String("request", req.Kind.String()),
		zap.Int("charts", len(jobs)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
