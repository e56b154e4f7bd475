// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

func NewPrefixLogger(prefix string) *PrefixLogger {
	stringPrefix := fmt.Sprintf("%s:\t", prefix)

	formatter := &logrus.TextFormatter{}
	formatter.FullTimestamp = true
	formatter.TimestampFormat = "15:04:05"
	formatter.DisableColors = strings.Contains(runtime.GOOS, "windows")
	return &PrefixLogger{
		formatter,
		[]byte(stringPrefix),
	}
}

type PrefixLogger struct {
	formatter logrus.Formatter
	prefix    []byte
}

func (f *PrefixLogger) Format(entry *logrus.Entry) ([]byte, error) {
	text, err := f.formatter.Format(entry)
	if err != nil {
		return nil, err
	}
	return append(f.prefix, text...), nil
}

const (
	LOG_MAIN        = "MA"
	LOG_SYNC        = "SY"
	LOG_IMAP        = "IM"
	LOG_PERSISTENCE = "PI"
	LOG_RECEIVER    = "RC"
	LOG_DEMON       = "DM"
	LOG_TOPICS      = "TP"
	LOG_SPAM        = "SA"
)

var prefixes = []string{
	LOG_MAIN,
	LOG_SYNC,
	LOG_IMAP,
	LOG_PERSISTENCE,
	LOG_RECEIVER,
	LOG_DEMON,
	LOG_TOPICS,
	LOG_SPAM,
}

func getLevel(loglevel string) logrus.Level {
	switch strings.ToLower(loglevel) {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "panic":
		return logrus.PanicLevel
	case "fatal":
		return logrus.FatalLevel
	}

	// Info is default
	return logrus.InfoLevel
}

// Loggers holds one prefixed logger per component. It is created once by the
// entry point and handed to every component that logs.
type Loggers struct {
	loggers map[string]*logrus.Logger
}

func NewLoggers(loglevel string) *Loggers {
	l := &Loggers{loggers: make(map[string]*logrus.Logger)}
	for _, prefix := range prefixes {
		logger := logrus.New()
		logger.Level = getLevel(loglevel)
		logger.Formatter = NewPrefixLogger(prefix)
		l.loggers[prefix] = logger
	}

	return l
}

// NullLoggers discards everything, for tests.
func NullLoggers() *Loggers {
	l := NewLoggers("error")
	l.SetOutput(io.Discard)
	return l
}

func (l *Loggers) SetLevel(loglevel string) {
	for _, v := range l.loggers {
		v.Level = getLevel(loglevel)
	}
}

func (l *Loggers) SetOutput(w io.Writer) {
	for _, v := range l.loggers {
		v.SetOutput(w)
	}
}

func (l *Loggers) AddHook(hook logrus.Hook) {
	for _, v := range l.loggers {
		v.AddHook(hook)
	}
}

func (l *Loggers) Logger(logger string) *logrus.Logger {
	v, ok := l.loggers[logger]
	if !ok {
		panic("Logger " + logger + " unknown")
	}

	return v
}
