package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
)

// Log levels, lowest first
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARNING"
	LevelError = "ERROR"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// StdLogger writes log lines through the standard library logger in text or json format
type StdLogger struct {
	out      *log.Logger
	minLevel int
	json     bool
}

// NewStdLogger creates a logger writing to w.
// level is one of debug, info, warning, error; format is text or json.
func NewStdLogger(w io.Writer, level, format string) *StdLogger {
	rank, ok := levelRank[normalizeLevel(level)]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	return &StdLogger{
		out:      log.New(w, "", log.LstdFlags),
		minLevel: rank,
		json:     strings.EqualFold(format, "json"),
	}
}

// Log writes the message when level reaches the configured minimum
func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	level = normalizeLevel(level)
	rank, ok := levelRank[level]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	if rank < l.minLevel {
		return
	}

	if l.json {
		record := make(map[string]interface{}, len(metadata)+2)
		for k, v := range metadata {
			record[k] = v
		}
		record["level"] = level
		record["message"] = message
		encoded, err := json.Marshal(record)
		if err != nil {
			l.out.Printf("[%s] %s (metadata not encodable: %v)", level, message, err)
			return
		}
		l.out.Println(string(encoded))
		return
	}

	l.out.Printf("[%s] %s%s", level, message, formatMetadata(metadata))
}

func normalizeLevel(level string) string {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "INFO":
		return LevelInfo
	}
	return strings.ToUpper(level)
}

func formatMetadata(metadata map[string]interface{}) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, metadata[k])
	}
	return b.String()
}
