package wld

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the codec's diagnostic sink. The source (log.c/log.h) carries a
// process-wide FILE* and six severities (note, warn, error, fatal, debug,
// verbose); wldgo threads an owned *Logger through every codec call instead
// of a global, per the "process-wide state" design note.
//
// Fatal terminates the process, matching log_fatal's behavior in the
// source; callers that cannot tolerate that should not call it directly
// (the codec itself never calls it; every codec failure is a returned
// error).
type Logger struct {
	l *logrus.Logger
}

// NewLogger builds a Logger writing to w (stderr-equivalent). A nil w
// discards all output, useful for tests and silent library embedding.
func NewLogger(w io.Writer) *Logger {
	l := logrus.New()
	if w == nil {
		l.SetOutput(io.Discard)
	} else {
		l.SetOutput(w)
	}
	l.SetLevel(logrus.TraceLevel)
	return &Logger{l: l}
}

// OpenFile mirrors every subsequent message to a side log file, in addition
// to whatever sink NewLogger was given (log_open_file in the source).
func (lg *Logger) OpenFile(path string) error {
	f, err := openAppend(path)
	if err != nil {
		return newErr(IoError, "Logger.OpenFile", err)
	}
	lg.l.SetOutput(io.MultiWriter(lg.l.Out, f))
	return nil
}

func (lg *Logger) Note(format string, args ...any)    { lg.l.Infof(format, args...) }
func (lg *Logger) Warn(format string, args ...any)     { lg.l.Warnf(format, args...) }
func (lg *Logger) Error(format string, args ...any)    { lg.l.Errorf(format, args...) }
func (lg *Logger) Fatal(format string, args ...any)    { lg.l.Fatalf(format, args...) }
func (lg *Logger) Debug(format string, args ...any)    { lg.l.Debugf(format, args...) }
func (lg *Logger) Verbose(format string, args ...any)  { lg.l.Tracef(format, args...) }
func (lg *Logger) WithField(k string, v any) *logrus.Entry {
	return lg.l.WithField(k, v)
}
