// Copyright (c) 2020 - for information on the respective copyright owner
// see the NOTICE file and/or the repository at
// https://github.com/direct-state-transfer/walletkit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a for now, a type alias of Logrus.Logger.
type Logger = logrus.Logger

// Fields is a type alias of logrus.Fields, used for adding structured data to log entries.
type Fields = logrus.Fields

// Rotation settings for log files.
const (
	maxLogFileSizeMB = 10
	maxLogFileBackup = 5
	maxLogFileAgeDay = 30
)

// NewLogger returns a logger set to the given level and log file.
// Supported log levels are "debug", "info" and "error".
// Logs to stdout if logFile is an empty string. Log files are rotated when they grow beyond 10MB.
func NewLogger(levelStr, logFile string) (*Logger, error) {
	logger := logrus.New()

	if !IsSupportedLevel(levelStr) {
		return nil, errors.New("Unsupported log level, use debug, info or error")
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	logger.SetLevel(level)

	out, err := newOutput(logFile)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(out)

	logger.SetFormatter(&customTextFormatter{logrus.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        "2006-01-02 15:04:05 Z0700",
		DisableLevelTruncation: true,
	}})
	return logger, nil
}

// customTextFormatter is defined to override default formating options for log entry.
type customTextFormatter struct {
	logrus.TextFormatter
}

// Format modifies the default logging format.
func (f *customTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	originalText, err := f.TextFormatter.Format(entry)
	return append([]byte("▶ "), originalText...), err
}

// IsSupportedLevel checks if the log level is one of "debug", "info" or "error".
func IsSupportedLevel(levelStr string) bool {
	return levelStr == "debug" || levelStr == "info" || levelStr == "error"
}

// NewDiscardLogger returns a logger that discards all entries. It is used when logging is not configured.
func NewDiscardLogger() *Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newOutput(logFile string) (io.Writer, error) {
	if logFile == "" {
		return os.Stdout, nil
	}
	logFile = filepath.Clean(logFile)
	if err := os.MkdirAll(filepath.Dir(logFile), 0700); err != nil {
		return nil, errors.WithStack(err)
	}
	// Open once to report permission errors here, rather than on the first write.
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err = f.Close(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxLogFileSizeMB,
		MaxBackups: maxLogFileBackup,
		MaxAge:     maxLogFileAgeDay,
	}, nil
}
