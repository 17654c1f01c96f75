package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanq16/scooper/internal/utils"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestBuildPolicyUserAgentConflict(t *testing.T) {
	randomUA, mobileUA = true, true
	t.Cleanup(func() { randomUA, mobileUA = false, false })

	// The conflict must surface from flag validation, before any task is
	// built or the pool starts.
	policy, err := buildPolicy()
	require.Error(t, err)
	assert.Nil(t, policy)
	assert.Contains(t, err.Error(), "--random-useragent and --mobile-useragent")
}

func TestBuildPolicyUserAgentModes(t *testing.T) {
	t.Cleanup(func() { randomUA, mobileUA = false, false })

	randomUA, mobileUA = true, false
	policy, err := buildPolicy()
	require.NoError(t, err)
	assert.Equal(t, utils.UAModeDesktop, policy.UserAgentMode)

	randomUA, mobileUA = false, true
	policy, err = buildPolicy()
	require.NoError(t, err)
	assert.Equal(t, utils.UAModeMobile, policy.UserAgentMode)

	randomUA, mobileUA = false, false
	policy, err = buildPolicy()
	require.NoError(t, err)
	assert.Equal(t, utils.UAModeNone, policy.UserAgentMode)
}

func TestBuildPolicyDefaultsAndSizes(t *testing.T) {
	minSizeStr, maxSizeStr = "10KB", "5MB"
	t.Cleanup(func() { minSizeStr, maxSizeStr = "", "" })

	policy, err := buildPolicy()
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultThreads, policy.Threads)
	assert.Equal(t, utils.DefaultRetries, policy.Retries)
	assert.Equal(t, int64(10*1024), policy.MinSize)
	assert.Equal(t, int64(5*1024*1024), policy.MaxSize)
	assert.Equal(t, map[string]bool{"js": true}, policy.AllowedTypes)
}

func TestBuildPolicyRejectsBadSize(t *testing.T) {
	minSizeStr = "abc"
	t.Cleanup(func() { minSizeStr = "" })

	_, err := buildPolicy()
	assert.Error(t, err)
}

func TestRootNoURLsPrintsHintWithoutStartingPool(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	rootCmd.SetArgs([]string{})

	out := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "No URLs provided")

	// The run returned before the pool: no run log and no output directory.
	_, err = os.Stat(utils.LogDir)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(utils.DefaultOutputDir)
	assert.True(t, os.IsNotExist(err))
}
