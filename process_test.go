package osd

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	assert := assert.New(t)

	const name = "OSD_TEST_ENV"
	t.Setenv(name, "first")

	value, ok := Getenv(name)
	assert.True(ok)
	assert.Equal("first", value)

	require.NoError(t, Setenv(name, "second", false))
	value, _ = Getenv(name)
	assert.Equal("first", value, "overwrite=false keeps the value")

	require.NoError(t, Setenv(name, "third", true))
	value, _ = Getenv(name)
	assert.Equal("third", value)

	require.NoError(t, os.Unsetenv(name))
	_, ok = Getenv(name)
	assert.False(ok)

	require.NoError(t, Setenv(name, "fourth", false))
	value, ok = Getenv(name)
	assert.True(ok)
	assert.Equal("fourth", value)
}

func TestGetpid(t *testing.T) {
	assert.Equal(t, os.Getpid(), Getpid())
}

func TestClipboard(t *testing.T) {
	assert.NoError(t, SetClipboardText("copied"))
	assert.Empty(t, ClipboardText())
}

// withLogger sends package logging to a test hook for the rest of the test.
func withLogger(t *testing.T) *test.Hook {
	t.Helper()

	l, hook := test.NewNullLogger()
	l.SetLevel(log.DebugLevel)
	Configure(Config{Logger: l})
	t.Cleanup(func() { Configure(Config{}) })

	return hook
}

func TestBreakIntoDebugger_Disabled(t *testing.T) {
	hook := withLogger(t)

	BreakIntoDebugger("bad opcode")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, "Ignoring exception", entry.Message)
	assert.Equal(t, "bad opcode", entry.Data["message"])
}

func TestConfigure(t *testing.T) {
	hook := withLogger(t)

	r, err := Reserve([]int{1}, AccessReadWrite)
	require.NoError(t, err)
	require.NoError(t, r.Release())

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{"Reserve memory", "Release memory"}, messages)

	Configure(Config{})
	assert.Equal(t, log.StandardLogger(), logger)
	assert.False(t, debugBreak)
}
