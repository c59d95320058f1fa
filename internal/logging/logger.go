package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/fittrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	rotateMaxSizeMB  = 50
	rotateMaxBackups = 10
	rotateMaxAgeDays = 180
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. Errors and worse go to sentry
// when it's enabled.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	out := Output(params.LogFileName, params.LogToStdout)
	logrus.SetOutput(out)
	logrus.WithFields(logrus.Fields{
		"file":   params.LogFileName,
		"stdout": params.LogToStdout || params.LogFileName == "",
	}).Info("log output configured")
}

func setupSentry(params LoggerSetupParams) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.SentryDSN,
		Environment:      params.Environment,
		ServerName:       params.SentryServerName,
		TracesSampleRate: 1.0,
	}); err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Debugln("sentry hook added")
}

// Output builds the log sink: stdout alone when no file is given, otherwise a
// rotating file, optionally mirrored to stdout.
func Output(fileName string, alsoStdout bool) io.Writer {
	if fileName == "" {
		return os.Stdout
	}

	if filepath.Ext(fileName) != ".log" {
		fileName += ".log"
	}
	rotating := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    rotateMaxSizeMB,
		MaxBackups: rotateMaxBackups,
		MaxAge:     rotateMaxAgeDays,
		Compress:   true,
	}
	if !alsoStdout {
		return rotating
	}
	return pkg.NewFanoutWriter(os.Stdout, rotating)
}

// GetLevel falls back to info for anything logrus doesn't know.
func GetLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
