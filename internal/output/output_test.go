package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogging_DebugHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(false)
	SetWriter(&buf)

	Debug("hidden")
	Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupLogging_VerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(true)
	SetWriter(&buf)
	t.Cleanup(func() { SetupLogging(false) })

	Debug("rendering", "name", "Player")

	assert.Contains(t, buf.String(), "rendering")
	assert.Contains(t, buf.String(), "name=Player")
}

func TestGeneratedAndDone(t *testing.T) {
	var buf bytes.Buffer
	Generated(&buf, "Player.cs")
	Done(&buf)

	assert.Contains(t, buf.String(), "Player.cs")
	assert.Contains(t, buf.String(), "generated")
	assert.Contains(t, buf.String(), "Done!")
}
