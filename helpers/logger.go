package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
)

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// InitLoggerFromConfig builds the service logger: JSON lines on stdout with
// an RFC3339 log_time field, credentials scrubbed from keys, values and
// database URLs.
func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logLevel, err := parseLogLevel(conf.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %s\n", err.Error())
		os.Exit(1)
	}

	keyPatterns := []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken", "[Aa]pi[Kk]ey"}
	sink, err := NewRedactingSink(os.Stdout, logLevel, keyPatterns, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create redacting sink: %s\n", err.Error())
		os.Exit(1)
	}

	logger := lager.NewLogger(name)
	logger.RegisterSink(sink)
	return logger
}

func parseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level %q", level)
	}
}

type redactingSink struct {
	writer      io.Writer
	minLogLevel lager.LogLevel
	redacter    *CredRedacter

	mu sync.Mutex
}

func NewRedactingSink(writer io.Writer, minLogLevel lager.LogLevel, keyPatterns []string, valuePatterns []string) (lager.Sink, error) {
	redacter, err := NewCredRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &redactingSink{
		writer:      writer,
		minLogLevel: minLogLevel,
		redacter:    redacter,
	}, nil
}

func (sink *redactingSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLogLevel {
		return
	}
	line := sink.redacter.Redact(timestampedEntry(log).toJSON())

	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.writer.Write(line)
	sink.writer.Write([]byte("\n"))
}

// timestampedLog carries the entry's wall-clock time alongside lager's
// epoch-seconds Timestamp string.
type timestampedLog struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func timestampedEntry(log lager.LogFormat) timestampedLog {
	epochSeconds, err := strconv.ParseFloat(log.Timestamp, 64)
	if err != nil {
		epochSeconds = 0
	}
	return timestampedLog{
		LogFormat: log,
		LogTime:   time.Unix(int64(epochSeconds), 0).Format(time.RFC3339),
	}
}

func (t timestampedLog) toJSON() []byte {
	content, err := json.Marshal(t)
	if err == nil {
		return content
	}
	switch err.(type) {
	case *json.UnsupportedTypeError, *json.MarshalerError:
		t.Data = map[string]interface{}{
			"log_serialization_error": err.Error(),
			"data_dump":               fmt.Sprintf("%#v", t.Data),
		}
		content, err = json.Marshal(t)
	}
	if err != nil {
		panic(err)
	}
	return content
}
