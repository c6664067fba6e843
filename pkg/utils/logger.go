// Package utils holds small shared helpers, chiefly the rotating file
// logger the CLI writes to.
package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes diagnostic output to a rotating log file. The library
// packages stay silent; only the CLI layer logs.
type Logger struct {
	logger        *log.Logger
	jsonMode      bool
	correlationID string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the singleton logger, backed by a rotating file under
// .skim/. JSON output is enabled with SKIM_JSON_LOGS=1 and a correlation
// id is picked up from SKIM_CORRELATION_ID.
func GetLogger() *Logger {
	once.Do(func() {
		logFile := &lumberjack.Logger{
			Filename:   ".skim/skim.log",
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		globalLogger = &Logger{
			logger: log.New(logFile, "", log.LstdFlags),
		}
	})
	globalLogger.jsonMode = os.Getenv("SKIM_JSON_LOGS") == "1"
	globalLogger.correlationID = os.Getenv("SKIM_CORRELATION_ID")
	return globalLogger
}

// Close closes the underlying log file.
func (w *Logger) Close() error {
	if logFile, ok := w.logger.Writer().(*lumberjack.Logger); ok {
		return logFile.Close()
	}
	return nil
}

// Log writes a general message to the log file.
func (w *Logger) Log(message string) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "info", "msg": message, "cid": w.correlationID})
		return
	}
	w.logger.Print(message)
}

// Logf writes a formatted message to the log file.
func (w *Logger) Logf(format string, v ...interface{}) {
	if w.jsonMode {
		w.Log(fmt.Sprintf(format, v...))
		return
	}
	w.logger.Printf(format, v...)
}

// LogError writes an error to the log file.
func (w *Logger) LogError(err error) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "error", "error": err.Error(), "cid": w.correlationID})
		return
	}
	w.logger.Printf("Error: %s", err)
}
