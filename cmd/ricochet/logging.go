package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lixenwraith/ricochet/constant"
)

// setupLogging builds the run logger
// debug writes to dir/ricochet.log (previous file rotated to .old past MaxLogSize);
// headless additionally writes to stderr; otherwise output is discarded
// The returned file is nil when no log file was opened
func setupLogging(dir string, debug, headless bool, level string) (*log.Logger, *os.File, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}

	var (
		writers []io.Writer
		logFile *os.File
	)

	if debug {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("log dir: %w", err)
		}

		logPath := filepath.Join(dir, constant.LogFileName)
		if info, err := os.Stat(logPath); err == nil && info.Size() > constant.MaxLogSize {
			if err := os.Rename(logPath, logPath+".old"); err != nil {
				return nil, nil, fmt.Errorf("log rotate: %w", err)
			}
		}

		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("log open: %w", err)
		}
		writers = append(writers, logFile)
	}

	if headless {
		writers = append(writers, os.Stderr)
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Prefix:          "ricochet",
		Level:           lvl,
	}).With("run", uuid.NewString())

	return logger, logFile, nil
}
