package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerSplitsByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := logrus.New()
	require.NoError(t, SetupLogger(l, "debug", &out, &errOut))

	l.Debug("resize")
	l.Info("window created")
	l.Warn("vsync unavailable")
	l.Error("context lost")
	l.Trace("hidden")

	assert.Contains(t, out.String(), "resize")
	assert.Contains(t, out.String(), "window created")
	assert.NotContains(t, out.String(), "vsync unavailable")
	assert.NotContains(t, out.String(), "hidden")

	assert.Contains(t, errOut.String(), "vsync unavailable")
	assert.Contains(t, errOut.String(), "context lost")
	assert.NotContains(t, errOut.String(), "window created")
}

func TestSetupLoggerRespectsLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := logrus.New()
	require.NoError(t, SetupLogger(l, "warn", &out, &errOut))

	l.Info("quiet")
	l.Warn("loud")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "loud")
}

func TestSetupLoggerBadLevel(t *testing.T) {
	err := SetupLogger(logrus.New(), "chatty", &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
