// Package formatter renders patcher log entries as one text line or as JSON.
package formatter

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	// SourceField holds the caller location added by SourceHook
	SourceField = "source"
	// RunField holds the id correlating every entry of one patch run
	RunField = "run"

	timestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

var levelTags = [...]string{"PANC", "FATL", "ERRO", "WARN", "INFO", "DEBG", "TRAC"}

// TextFormatter renders `<time> <LEVEL> [run=<id> key=value ...] <source>: <message>`.
// The run id always leads so the lines of one patch run line up.
type TextFormatter struct{}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString(entry.Time.Format(timestampFormat))
	b.WriteByte(' ')
	b.WriteString(levelTag(entry.Level))
	b.WriteByte(' ')

	if fields := fieldKeys(entry.Data); len(fields) > 0 {
		b.WriteByte('[')
		for i, k := range fields {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Data[k])
		}
		b.WriteString("] ")
	}

	if src, ok := entry.Data[SourceField]; ok {
		fmt.Fprintf(&b, "%v: ", src)
	}
	b.WriteString(entry.Message)
	b.WriteByte('\n')

	return b.Bytes(), nil
}

// fieldKeys returns the keys to print: the run id first, the rest sorted, the source left out
func fieldKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if k == SourceField || k == RunField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if _, ok := data[RunField]; ok {
		keys = append([]string{RunField}, keys...)
	}
	return keys
}

func levelTag(level logrus.Level) string {
	if int(level) >= len(levelTags) {
		return "UNKN"
	}
	return levelTags[level]
}
