package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

var (
	stderrLevels = []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
	}
	stdoutLevels = []logrus.Level{
		logrus.InfoLevel,
		logrus.DebugLevel,
		logrus.TraceLevel,
	}
)

// Setup configures the standard logrus logger: info and below on stdout,
// warnings and above on stderr.
func Setup(level string) error {
	return SetupLogger(logrus.StandardLogger(), level, os.Stdout, os.Stderr)
}

// SetupLogger configures l to write entries at level or above, routing
// warnings and above to errOut and the rest to out.
func SetupLogger(l *logrus.Logger, level string, out, errOut io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// hooks do the writing
	l.SetOutput(io.Discard)
	l.ReplaceHooks(make(logrus.LevelHooks))
	l.AddHook(&writer.Hook{Writer: errOut, LogLevels: stderrLevels})
	l.AddHook(&writer.Hook{Writer: out, LogLevels: stdoutLevels})
	return nil
}
