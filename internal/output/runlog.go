package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tanq16/scooper/internal/utils"
)

// RunLog is the run-scoped log file: one plain rendered line per outcome,
// appended in completion order, opened at run start and closed at run end.
type RunLog struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// NewRunLog opens the log file, creating parent directories. An empty path
// selects the default timestamped file under the logs directory.
func NewRunLog(path string) (*RunLog, error) {
	if path == "" {
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		path = filepath.Join(utils.LogDir, fmt.Sprintf("scooper_%s.log", timestamp))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating log directory: %v", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating log file: %v", err)
	}
	return &RunLog{file: file, path: path}, nil
}

func (l *RunLog) Write(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := fmt.Fprintln(l.file, line)
	return err
}

func (l *RunLog) Path() string {
	return l.path
}

func (l *RunLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
