package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var levelDesc = []string{"PANC", "FATL", "ERRO", "WARN", "INFO", "DEBG", "TRAC"}

// TextFormatter formats log entries as a single line with a fixed-width
// level tag and sorted key=value fields.
type TextFormatter struct {
	timestampFormat string
}

// NewTextFormatter creates a TextFormatter using an RFC3339 timestamp.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{timestampFormat: time.RFC3339}
}

// Format renders a single log entry.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields string
	if len(keys) > 0 {
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, entry.Data[k]))
		}
		fields = " " + strings.Join(parts, " ")
	}

	level := "????"
	if int(entry.Level) < len(levelDesc) {
		level = levelDesc[entry.Level]
	}

	line := fmt.Sprintf("%s [%s]%s %s\n",
		entry.Time.Format(f.timestampFormat), level, fields, entry.Message)
	return []byte(line), nil
}
