package report

import (
	"fmt"

	"github.com/tanq16/scooper/internal/fetch"
	"github.com/tanq16/scooper/internal/output"
	"github.com/tanq16/scooper/internal/utils"
)

// Line renders one outcome without styling, for the run log and the report
// buckets.
func Line(o fetch.Outcome, policy *utils.DownloadPolicy) string {
	switch o.Kind {
	case fetch.Success:
		return fmt.Sprintf("[✓] %-30s → %d (%s)  (%s)", o.Filename, o.StatusCode, utils.FormatSize(o.Size), o.URL)
	case fetch.Skipped:
		return fmt.Sprintf("[!] Skipped (%s): %s", skipReason(o, policy), o.URL)
	default:
		return fmt.Sprintf("[✗] Failed to download %s after %d attempt(s): %v", o.URL, o.Attempts, o.Err)
	}
}

// styledLine is the terminal rendering: colored marker and, for successes,
// the status code colorized by class.
func styledLine(o fetch.Outcome, policy *utils.DownloadPolicy) string {
	switch o.Kind {
	case fetch.Success:
		marker := output.FSuccess("[" + output.StyleSymbols["pass"] + "]")
		return fmt.Sprintf("%s %-30s %s %s (%s)  %s",
			marker, o.Filename, output.StyleSymbols["arrow"], colorizeStatus(o.StatusCode),
			utils.FormatSize(o.Size), output.FDebug("("+o.URL+")"))
	case fetch.Skipped:
		marker := output.FWarning("[" + output.StyleSymbols["warning"] + "]")
		return fmt.Sprintf("%s Skipped (%s): %s", marker, skipReason(o, policy), o.URL)
	default:
		marker := output.FError("[" + output.StyleSymbols["fail"] + "]")
		return fmt.Sprintf("%s Failed to download %s after %d attempt(s): %v", marker, o.URL, o.Attempts, o.Err)
	}
}

// skipReason expands size rejections with the configured bound.
func skipReason(o fetch.Outcome, policy *utils.DownloadPolicy) string {
	switch o.Reason {
	case fetch.ReasonTooSmall:
		return fmt.Sprintf("%s < %s", o.Reason, utils.FormatSize(policy.MinSize))
	case fetch.ReasonTooLarge:
		return fmt.Sprintf("%s > %s", o.Reason, utils.FormatSize(policy.MaxSize))
	}
	return o.Reason
}

func colorizeStatus(code int) string {
	status := fmt.Sprintf("%d", code)
	switch {
	case code >= 200 && code < 300:
		return output.FSuccess(status)
	case code >= 300 && code < 400:
		return output.FWarning(status)
	default:
		return output.FError(status)
	}
}

// Render prints the grouped report and summary. The totals line appears
// only when at least one qualifying download occurred.
func (a *Aggregator) Render(logPath string) {
	fmt.Println()
	output.PrintHeader("Download Summary:")
	if len(a.Successes) > 0 {
		fmt.Println()
		output.PrintSuccess("Successfully downloaded:")
		for _, o := range a.Successes {
			fmt.Println(styledLine(o, a.policy))
		}
	}
	if len(a.Skips) > 0 {
		fmt.Println()
		output.PrintWarning("Skipped files:")
		for _, o := range a.Skips {
			fmt.Println(styledLine(o, a.policy))
		}
	}
	if len(a.Failures) > 0 {
		fmt.Println()
		output.PrintError("Failed downloads:")
		for _, o := range a.Failures {
			fmt.Println(styledLine(o, a.policy))
		}
	}
	fmt.Println()
	output.PrintInfo(fmt.Sprintf("Saved to: %s/", a.policy.OutputDir))
	output.PrintInfo(fmt.Sprintf("Log saved to: %s", logPath))
	if a.Downloaded > 0 {
		output.PrintSuccess2(fmt.Sprintf("Total downloaded: %d file(s), %s", a.Downloaded, utils.FormatSize(a.TotalBytes)))
	}
}
