package report

import (
	"github.com/tanq16/scooper/internal/fetch"
	"github.com/tanq16/scooper/internal/utils"
)

// Aggregator folds completed outcomes into three ordered buckets and the
// qualifying totals. Buckets preserve completion order, which is whatever
// order the pool produced — never submission order.
type Aggregator struct {
	policy     *utils.DownloadPolicy
	Successes  []fetch.Outcome
	Skips      []fetch.Outcome
	Failures   []fetch.Outcome
	Downloaded int
	TotalBytes int64
}

func NewAggregator(policy *utils.DownloadPolicy) *Aggregator {
	return &Aggregator{policy: policy}
}

// Add classifies one outcome and returns its plain rendered line for the
// run log. Only qualifying successes (status 200, non-empty body) move the
// numeric totals; other successes are still bucketed for display.
func (a *Aggregator) Add(o fetch.Outcome) string {
	switch o.Kind {
	case fetch.Success:
		a.Successes = append(a.Successes, o)
	case fetch.Skipped:
		a.Skips = append(a.Skips, o)
	case fetch.Failed:
		a.Failures = append(a.Failures, o)
	}
	if o.Qualifies() {
		a.Downloaded++
		a.TotalBytes += o.Size
	}
	return Line(o, a.policy)
}

// SuccessLines, SkipLines and FailureLines render the buckets as plain
// report lines in completion order.
func (a *Aggregator) SuccessLines() []string { return lines(a.Successes, a.policy) }
func (a *Aggregator) SkipLines() []string    { return lines(a.Skips, a.policy) }
func (a *Aggregator) FailureLines() []string { return lines(a.Failures, a.policy) }

func lines(outcomes []fetch.Outcome, policy *utils.DownloadPolicy) []string {
	result := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		result = append(result, Line(o, policy))
	}
	return result
}
