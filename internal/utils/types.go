package utils

// User-agent randomization modes. At most one may be active per run.
const (
	UAModeNone    = ""
	UAModeDesktop = "desktop"
	UAModeMobile  = "mobile"
)

// DownloadPolicy is the shared, read-only configuration governing
// filtering and retry behavior for every task in a run.
type DownloadPolicy struct {
	Headers       map[string]string
	ProxyURL      string
	Threads       int
	Retries       int
	AllowedTypes  map[string]bool // lowercase extensions without dot; "*" allows all
	MinSize       int64           // 0 means unset
	MaxSize       int64           // 0 means unset
	UserAgentMode string
	OutputDir     string
}

// AllowsAll reports whether the extension allow-list is the wildcard.
func (p *DownloadPolicy) AllowsAll() bool {
	return p.AllowedTypes["*"]
}
