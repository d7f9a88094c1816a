package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphgen/pkg/pipeline"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("Wrote 8 files")

	if !bytes.Contains(buf.Bytes(), []byte("Wrote 8 files")) {
		t.Errorf("progress.done() output %q should contain message", buf.String())
	}
}

func TestWithLogger(t *testing.T) {
	logger := log.Default()
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the same logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}
}

func TestAttachLogFile(t *testing.T) {
	var stderr bytes.Buffer
	c := New(&stderr, log.InfoLevel)
	path := filepath.Join(t.TempDir(), "graphgen.log")

	if err := c.attachLogFile(pipeline.LogConfig{File: path, MaxSize: 1, MaxAge: 1}); err != nil {
		t.Fatalf("attachLogFile: %v", err)
	}
	c.Logger.Info("hello file")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file %q should contain the message", data)
	}
	if !strings.Contains(stderr.String(), "hello file") {
		t.Errorf("stderr %q should still receive the message", stderr.String())
	}

	// After Close the logger writes to stderr only.
	c.Logger.Info("after close")
	data, _ = os.ReadFile(path)
	if strings.Contains(string(data), "after close") {
		t.Error("closed log file should not receive new messages")
	}
}

func TestAttachLogFileEmptyIsNoop(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	if err := c.attachLogFile(pipeline.LogConfig{}); err != nil {
		t.Fatalf("attachLogFile: %v", err)
	}
	if c.logFile != nil {
		t.Error("empty config should not open a log file")
	}
}
