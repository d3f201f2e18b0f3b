// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/featurebasedb/bitmapindex/logger"
)

func TestStandardLoggerVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewStandardLogger(&buf)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug output not suppressed: %q", out)
	}
	if !strings.Contains(out, "INFO:  shown 2") {
		t.Errorf("info line missing: %q", out)
	}
	if !strings.Contains(out, "ERROR: also shown") {
		t.Errorf("error line missing: %q", out)
	}

	buf.Reset()
	logger.NewVerboseLogger(&buf).Debugf("now visible")
	if !strings.Contains(buf.String(), "DEBUG: now visible") {
		t.Errorf("verbose debug line missing: %q", buf.String())
	}
}

func TestStandardLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger.NewStandardLogger(&buf).Infof("x")
	// 2006-01-02T15:04:05.000000Z plus the message.
	line := buf.String()
	if len(line) < 28 || line[4] != '-' || line[10] != 'T' || line[19] != '.' {
		t.Errorf("timestamp not in expected layout: %q", line)
	}
}

func TestStandardLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewStandardLogger(&buf).WithPrefix("build: ")
	l.Infof("done")
	if !strings.Contains(buf.String(), "build: ") {
		t.Errorf("prefix missing: %q", buf.String())
	}
}

func TestBufferLogger(t *testing.T) {
	b := logger.NewBufferLogger()
	b.Infof("one %d", 1)
	b.Warnf("two")
	out := b.String()
	if !strings.Contains(out, "INFO:  one 1") || !strings.Contains(out, "WARN:  two") {
		t.Errorf("unexpected buffer contents: %q", out)
	}
}

func TestNopLogger(t *testing.T) {
	// Must simply not panic.
	logger.NopLogger.Printf("a")
	logger.NopLogger.Errorf("b")
	logger.NopLogger.WithPrefix("c").Debugf("d")
}
