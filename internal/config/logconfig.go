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

package config

// logConfiguration holds the log levels for the engine's three loggers.
// Levels follow github.com/op/go-logging's Level scale (0=CRITICAL ..
// 5=DEBUG).
type logConfiguration struct {
	LogLevel       int
	SearchLogLevel int
	TestLogLevel   int
}

func init() {
	Settings.Log = logConfiguration{
		LogLevel:       LogLevel,
		SearchLogLevel: SearchLogLevel,
		TestLogLevel:   TestLogLevel,
	}
}

func setupLogLvl() {
	if Settings.Log.LogLevel == 0 {
		Settings.Log.LogLevel = LogLevel
	}
	if Settings.Log.SearchLogLevel == 0 {
		Settings.Log.SearchLogLevel = SearchLogLevel
	}
	if Settings.Log.TestLogLevel == 0 {
		Settings.Log.TestLogLevel = TestLogLevel
	}
}
