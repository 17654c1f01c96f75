package fetch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tanq16/scooper/internal/utils"
)

// Task is the unit of work: one URL bound to the run policy. Created once
// per URL, consumed once by a pool worker.
type Task struct {
	ID      string
	URL     string
	policy  *utils.DownloadPolicy
	headers map[string]string
	client  *http.Client
	names   *NameRegistry
	rand    *rand.Rand
	sleep   func(time.Duration)
	log     zerolog.Logger
}

func NewTask(rawURL string, policy *utils.DownloadPolicy, client *http.Client, names *NameRegistry) *Task {
	return &Task{
		ID:      uuid.New().String(),
		URL:     rawURL,
		policy:  policy,
		headers: utils.CopyHeaders(policy.Headers),
		client:  client,
		names:   names,
		// Seeded from the shared source: wall-clock seeds collide when
		// tasks are built in a tight loop on coarse-clock platforms.
		rand:    rand.New(rand.NewSource(rand.Int63())),
		sleep:   time.Sleep,
		log:     utils.GetLogger("fetch"),
	}
}

// Execute runs the retry state machine to a terminal outcome. Transport and
// filesystem errors share the same retry path: any attempt that errors is
// retried after a 2^attempt second backoff until the retry budget runs out.
// HTTP status codes never trigger a retry.
func (t *Task) Execute(ctx context.Context) Outcome {
	var lastErr error
	for attempt := 1; attempt <= t.policy.Retries; attempt++ {
		outcome, err := t.attempt(ctx)
		if err == nil {
			outcome.Attempts = attempt
			return outcome
		}
		lastErr = err
		t.log.Debug().Str("jobID", t.ID).Str("url", t.URL).Int("attempt", attempt).Err(err).Msg("Attempt failed")
		if attempt < t.policy.Retries {
			t.sleep(time.Duration(1<<attempt) * time.Second)
		}
	}
	return Outcome{URL: t.URL, Kind: Failed, Err: lastErr, Attempts: t.policy.Retries}
}

func (t *Task) attempt(ctx context.Context) (Outcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("error creating GET request: %v", err)
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	if ua := utils.RandomUserAgent(t.policy.UserAgentMode, t.rand); ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return Outcome{}, err
	}
	defer resp.Body.Close()

	// The whole body is buffered before filtering, so bandwidth is spent
	// even on files the filters reject.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("error reading response body: %v", err)
	}
	size := int64(len(body))
	if t.policy.MinSize > 0 && size < t.policy.MinSize {
		return t.skip(ReasonTooSmall), nil
	}
	if t.policy.MaxSize > 0 && size > t.policy.MaxSize {
		return t.skip(ReasonTooLarge), nil
	}
	filename := lastPathSegment(t.URL)
	if filename == "" {
		return t.skip(ReasonNoFilename), nil
	}
	if !t.allowedExtension(filename) {
		return t.skip(ReasonNotAllowed), nil
	}
	if err := os.MkdirAll(t.policy.OutputDir, 0755); err != nil {
		return Outcome{}, fmt.Errorf("error creating output directory: %v", err)
	}
	filename = t.names.Reserve(t.policy.OutputDir, filename)
	if err := os.WriteFile(filepath.Join(t.policy.OutputDir, filename), body, 0644); err != nil {
		return Outcome{}, fmt.Errorf("error writing output file: %v", err)
	}
	t.log.Debug().Str("jobID", t.ID).Str("filename", filename).Int64("size", size).Msg("Download written")
	return Outcome{
		URL:        t.URL,
		Kind:       Success,
		Filename:   filename,
		StatusCode: resp.StatusCode,
		Size:       size,
	}, nil
}

func (t *Task) skip(reason string) Outcome {
	return Outcome{URL: t.URL, Kind: Skipped, Reason: reason}
}

// allowedExtension matches the lowercased substring after the last dot
// against the policy set, unless the set is the wildcard.
func (t *Task) allowedExtension(filename string) bool {
	if t.policy.AllowsAll() {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return t.policy.AllowedTypes[ext]
}

func lastPathSegment(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	p := parsed.Path
	return p[strings.LastIndex(p, "/")+1:]
}
