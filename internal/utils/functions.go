package utils

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// RandomUserAgent picks a user agent uniformly from the pool for the given
// mode. The random source is an explicit parameter so selection is testable.
func RandomUserAgent(mode string, r *rand.Rand) string {
	switch mode {
	case UAModeDesktop:
		return DesktopUserAgents[r.Intn(len(DesktopUserAgents))]
	case UAModeMobile:
		return MobileUserAgents[r.Intn(len(MobileUserAgents))]
	}
	return ""
}

// ParseHeaderArgs converts repeated "Key: Value" flag values into a header
// map. Malformed entries are dropped; duplicate keys keep the last value.
func ParseHeaderArgs(headers []string) map[string]string {
	result := make(map[string]string)
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			result[key] = value
		}
	}
	return result
}

// CopyHeaders returns a private copy so per-attempt mutation (random
// User-Agent) never leaks across tasks.
func CopyHeaders(headers map[string]string) map[string]string {
	result := make(map[string]string, len(headers))
	for k, v := range headers {
		result[k] = v
	}
	return result
}

// ParseTypes builds the allowed extension set from a comma-separated list.
// "*" anywhere makes the set the wildcard.
func ParseTypes(types string) map[string]bool {
	result := make(map[string]bool)
	for _, t := range strings.Split(types, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			result[t] = true
		}
	}
	return result
}

// FormatSize renders a byte count with 1024 scaling and one decimal place.
func FormatSize(numBytes int64) string {
	value := float64(numBytes)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f PB", value)
}

// ParseSize parses a human size like "10KB", "1.5MB" or "2GB" into bytes.
// An empty string means unset and parses to 0.
func ParseSize(sizeStr string) (int64, error) {
	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))
	if sizeStr == "" {
		return 0, nil
	}
	multiplier := int64(1)
	switch {
	case strings.HasSuffix(sizeStr, "GB"):
		multiplier = 1024 * 1024 * 1024
		sizeStr = strings.TrimSuffix(sizeStr, "GB")
	case strings.HasSuffix(sizeStr, "MB"):
		multiplier = 1024 * 1024
		sizeStr = strings.TrimSuffix(sizeStr, "MB")
	case strings.HasSuffix(sizeStr, "KB"):
		multiplier = 1024
		sizeStr = strings.TrimSuffix(sizeStr, "KB")
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(sizeStr), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %v", sizeStr, err)
	}
	return int64(value * float64(multiplier)), nil
}

// ReadURLFile reads a line-delimited URL list, skipping blank lines.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
