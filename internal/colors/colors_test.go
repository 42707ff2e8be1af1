package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	levels   []string
	messages []string
}

func (r *recordingLogger) record(level, msg string) {
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, msg)
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg) }

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetQuiet(false)
		SetDebug(false)
		SetLogger(nil)
	})
	return &out, &errOut
}

func TestError(t *testing.T) {
	_, errOut := captureOutput(t)

	Error("something went wrong")

	output := errOut.String()
	assert.Contains(t, output, "Error:")
	assert.Contains(t, output, "something went wrong")
	assert.Contains(t, output, Red)
}

func TestSuccess(t *testing.T) {
	out, _ := captureOutput(t)

	Success("operation completed")

	output := out.String()
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "operation completed")
	assert.Contains(t, output, Green)
}

func TestWarningGoesToStderr(t *testing.T) {
	out, errOut := captureOutput(t)

	Warning("careful", "now")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, errOut.String(), "careful now")
}

func TestInfo(t *testing.T) {
	out, _ := captureOutput(t)

	Info("hello")

	assert.Contains(t, out.String(), Blue+"hello")
}

func TestDebugRespectsFlag(t *testing.T) {
	_, errOut := captureOutput(t)

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "shown")
}

func TestQuietSuppressesInfoAndSuccess(t *testing.T) {
	out, errOut := captureOutput(t)
	SetQuiet(true)

	Info("info")
	Success("done")
	Error("still printed")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "still printed")
}

func TestLoggerMirror(t *testing.T) {
	captureOutput(t)
	rec := &recordingLogger{}
	SetLogger(rec)

	Error("e")
	Warning("w")
	Info("i")
	Success("s")

	assert.Equal(t, []string{"error", "warn", "info", "info"}, rec.levels)
	assert.Equal(t, []string{"e", "w", "i", "s"}, rec.messages)
}
