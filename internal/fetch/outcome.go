package fetch

// Kind is the terminal classification of one download attempt sequence.
type Kind int

const (
	Success Kind = iota
	Skipped
	Failed
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Skip reasons. Policy rejections are outcomes, never errors.
const (
	ReasonTooSmall   = "too small"
	ReasonTooLarge   = "too large"
	ReasonNoFilename = "no filename"
	ReasonNotAllowed = "not allowed type"
)

// Outcome is the tagged result of executing one task. Immutable once produced.
type Outcome struct {
	URL        string
	Kind       Kind
	Filename   string
	StatusCode int
	Size       int64
	Reason     string // set for Skipped
	Err        error  // set for Failed
	Attempts   int
}

// Qualifies reports whether the outcome counts toward the numeric download
// and byte totals: a Success with status exactly 200 and a non-empty body.
// Successes with other statuses are still displayed, just not counted.
func (o Outcome) Qualifies() bool {
	return o.Kind == Success && o.StatusCode == 200 && o.Size > 0
}
