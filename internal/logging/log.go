//
// Corvid - a UCI-compatible chess engine written in Go
//
// MIT License
//
// Copyright (c) 2020-2026 Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging sets up the engine's leveled loggers on top of
// github.com/op/go-logging. There are three independent loggers: the
// general engine log, a dedicated search-trace log (also written to a
// file next to the executable) and a test log used from _test.go files.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	logging "github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

var (
	engineLog *logging.Logger
	searchLog *logging.Logger
	testLog   *logging.Logger
	once      sync.Once
)

func setup() {
	engineLog = newStdoutLogger("engine", config.Settings.Log.LogLevel)
	searchLog = newSearchLogger("search", config.Settings.Log.SearchLogLevel)
	testLog = newStdoutLogger("test", config.Settings.Log.TestLogLevel)
}

// GetLog returns the general engine logger, lazily initialized.
func GetLog() *logging.Logger {
	once.Do(setup)
	return engineLog
}

// GetSearchLog returns the dedicated search-trace logger, lazily
// initialized. Besides stdout it writes to "<exe-dir>/logs/<exe>_search.log".
func GetSearchLog() *logging.Logger {
	once.Do(setup)
	return searchLog
}

// GetTestLog returns the logger used by tests, lazily initialized.
func GetTestLog() *logging.Logger {
	once.Do(setup)
	return testLog
}

func newStdoutLogger(name string, level int) *logging.Logger {
	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}

func newSearchLogger(name string, level int) *logging.Logger {
	l := logging.MustGetLogger(name)
	stdoutBackend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	stdoutFormatted := logging.NewBackendFormatter(stdoutBackend, standardFormat)

	backends := []logging.Backend{stdoutFormatted}

	if f, err := openLogFile(name); err == nil {
		fileBackend := logging.NewLogBackend(f, "", log.Lmsgprefix)
		fileFormatted := logging.NewBackendFormatter(fileBackend, standardFormat)
		backends = append(backends, fileFormatted)
	} else {
		fmt.Fprintf(os.Stderr, "logging: could not open search log file: %v\n", err)
	}

	leveled := logging.AddModuleLevel(logging.MultiLogger(backends...))
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}

func openLogFile(name string) (*os.File, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(filepath.Dir(exe), "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	exeName := filepath.Base(exe)
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.log", exeName, name))
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
