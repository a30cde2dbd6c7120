package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/ytget/media-downloader/internal/model"
)

// maxBarTitle bounds the title shown next to the bar
const maxBarTitle = 30

// progressReporter mirrors task updates onto a terminal progress bar
type progressReporter struct {
	mu    sync.Mutex
	out   io.Writer
	label string
	bar   *progressbar.ProgressBar
}

func newProgressReporter(out io.Writer, label string) *progressReporter {
	return &progressReporter{out: out, label: label}
}

// Update receives task snapshots from the download service
func (r *progressReporter) Update(task *model.DownloadTask) {
	if !task.Status.IsActive() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bar == nil {
		r.bar = progressbar.NewOptions(100,
			progressbar.OptionSetWriter(r.out),
			progressbar.OptionSetDescription(r.label),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSetRenderBlankState(true),
		)
	}

	r.bar.Describe(r.describe(task))
	_ = r.bar.Set(task.Percent)
}

// describe renders "<label> <title> <speed> ETA <eta>", leaving out what is unknown
func (r *progressReporter) describe(task *model.DownloadTask) string {
	desc := r.label + " " + shorten(task.GetDisplayTitle(), maxBarTitle)
	if task.Speed != "" {
		desc += fmt.Sprintf(" %s ETA %s", task.Speed, task.GetETAString())
	}
	return desc
}

// Done closes the bar once task is finished, filling it on completion
func (r *progressReporter) Done(task *model.DownloadTask) {
	if !task.Status.IsFinished() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bar == nil {
		return
	}
	if task.Status == model.TaskStatusCompleted {
		_ = r.bar.Finish()
	}
	fmt.Fprintln(r.out)
	r.bar = nil
}

func shorten(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
