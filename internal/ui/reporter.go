package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ytget/yt-thumbnails/internal/model"
)

// Reporter prints run progress to a console writer
type Reporter struct {
	out     io.Writer
	verbose bool
}

// NewReporter creates a reporter writing to out (stdout when nil)
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out}
}

// SetVerbose makes per-item failure lines include the classified reason
func (r *Reporter) SetVerbose(verbose bool) {
	r.verbose = verbose
}

// Writer returns the underlying writer
func (r *Reporter) Writer() io.Writer {
	return r.out
}

// Title prints the application banner
func (r *Reporter) Title() {
	fmt.Fprintf(r.out, "%s %s\n\n", IconTitle, AppTitle)
}

// ToolUnavailable prints the abort message with manual install instructions
func (r *Reporter) ToolUnavailable(tool, hint string) {
	fmt.Fprintf(r.out, "%s "+MsgInstallFailed+"\n", IconError, tool)
	fmt.Fprintln(r.out, hint)
}

// ToolMissing prints the abort message when the tool is missing and no
// install was attempted
func (r *Reporter) ToolMissing(tool, hint string) {
	fmt.Fprintf(r.out, "%s "+MsgToolMissing+"\n", IconError, tool)
	fmt.Fprintln(r.out, hint)
}

// PrepareFailed prints the abort message for an unusable output directory
func (r *Reporter) PrepareFailed(err error) {
	fmt.Fprintf(r.out, "%s "+MsgPrepareFailed+"\n", IconError, err)
}

// FetchingStarted prints the phase banner before the item loop
func (r *Reporter) FetchingStarted() {
	fmt.Fprintf(r.out, "%s %s\n\n", IconFetching, MsgFetching)
}

// ItemStarted prints the progress line for one item
func (r *Reporter) ItemStarted(item model.WorkItem) {
	fmt.Fprintf(r.out, "%s %s: %s\n", IconItem, item.Filename, item.URL)
}

// ItemFinished prints the status line for one item
func (r *Reporter) ItemFinished(result model.ItemResult) {
	switch result.Status {
	case model.ItemStatusSuccess:
		fmt.Fprintf(r.out, "%s%s %s\n\n", StatusIndent, IconSuccess, MsgSaved)
	case model.ItemStatusFileNotCreated:
		r.failureLine(MsgFileNotCreated, result.Reason)
	default:
		r.failureLine(MsgDownloadFailed, result.Reason)
	}
}

func (r *Reporter) failureLine(msg, reason string) {
	if r.verbose && reason != "" {
		fmt.Fprintf(r.out, "%s%s %s: %s\n\n", StatusIndent, IconError, msg, reason)
		return
	}
	fmt.Fprintf(r.out, "%s%s %s\n\n", StatusIndent, IconError, msg)
}

// Summary prints the final banner and, when anything was saved, the next step
func (r *Reporter) Summary(summary *model.Summary, dirName string) {
	banner := strings.Repeat(BannerChar, BannerWidth)
	fmt.Fprintln(r.out, banner)
	fmt.Fprintf(r.out, "%s "+SummaryFormat+"\n", IconSummary, summary.Succeeded(), summary.Total())
	fmt.Fprintf(r.out, "%s\n\n", banner)

	if failed := summary.Failed(); r.verbose && len(failed) > 0 {
		fmt.Fprintln(r.out, MsgFailedItems)
		for _, result := range failed {
			fmt.Fprintf(r.out, "%s%s %s: %s\n", StatusIndent, IconError, result.Item.Filename, result.Reason)
		}
		fmt.Fprintln(r.out)
	}

	if summary.Succeeded() > 0 {
		fmt.Fprintf(r.out, "%s "+SavedToFormat+"\n", IconSuccess, dirName)
		fmt.Fprintln(r.out, MsgNextStep)
	}
}
