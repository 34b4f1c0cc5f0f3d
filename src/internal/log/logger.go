package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var (
	verbose     = false
	disableLogs = false
	forceStdErr = false

	mu        sync.Mutex
	stdout    io.Writer = os.Stdout
	stderr    io.Writer = os.Stderr
	fileOut   io.WriteCloser
	exitFunc  = os.Exit
	nowFunc   = time.Now
	logLevels = map[int]string{
		levelDebug: "[DBG]",
		levelInfo:  "[INF]",
		levelWarn:  "[WRN]",
		levelError: "[ERR]",
	}
	logPrefixes = map[int]string{
		levelDebug: "\033[37m[DBG]\033[0m", // White
		levelInfo:  "\033[36m[INF]\033[0m", // Cyan
		levelWarn:  "\033[33m[WRN]\033[0m", // Yellow
		levelError: "\033[31m[ERR]\033[0m", // Red
	}
)

// FileConfig describes the rotating log file.
type FileConfig struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func SetVerbose(v bool) {
	verbose = v
}

// DisableLogs disables all logging.
func DisableLogs() {
	disableLogs = true
}

// SetForceStdErr sends every level to stderr.
func SetForceStdErr(v bool) {
	forceStdErr = v
}

// SetOutput replaces the console writers. A nil writer restores the default stream.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout = out
	stderr = errOut
}

// SetLogFile tees every message into a size-rotated file. An empty filename
// closes the current file, if any.
func SetLogFile(cfg FileConfig) error {
	mu.Lock()
	defer mu.Unlock()

	if fileOut != nil {
		if err := fileOut.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %v", err)
		}
		fileOut = nil
	}

	if cfg.Filename == "" {
		return nil
	}

	fileOut = &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return nil
}

// CloseLogFile flushes and closes the log file opened by SetLogFile.
func CloseLogFile() error {
	return SetLogFile(FileConfig{})
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	if verbose {
		logMessage(levelDebug, format, args...)
	}
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
	_ = CloseLogFile()
	exitFunc(1)
}

// logMessage formats and writes a log message with the specified log level.
func logMessage(level int, format string, args ...interface{}) {
	if disableLogs {
		return
	}
	message := fmt.Sprintf(format, args...)

	mu.Lock()
	defer mu.Unlock()

	output := logPrefixes[level] + " " + message + "\n"
	if forceStdErr || level == levelError {
		_, _ = io.WriteString(stderr, output)
	} else {
		_, _ = io.WriteString(stdout, output)
	}

	if fileOut != nil {
		// No colour codes in the file
		row := nowFunc().Format(time.RFC3339) + " " + logLevels[level] + " " + message + "\n"
		_, _ = io.WriteString(fileOut, row)
	}
}
