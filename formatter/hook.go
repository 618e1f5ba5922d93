package formatter

import (
	"fmt"
	"path"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
)

const repoDirName = "eopatcher/"

// SourceHook stores the caller as `<path relative to the module>:<line>` in SourceField
type SourceHook struct {
	prefixes []string
}

func NewSourceHook() *SourceHook {
	prefixes := []string{repoDirName}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		prefixes = append([]string{info.Main.Path + "/"}, prefixes...)
	}
	return &SourceHook{prefixes: prefixes}
}

func (h *SourceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *SourceHook) Fire(entry *logrus.Entry) error {
	if entry.Caller == nil {
		return nil
	}
	entry.Data[SourceField] = fmt.Sprintf("%s:%d", h.relative(entry.Caller.File), entry.Caller.Line)
	return nil
}

// relative cuts file after the last occurrence of a known prefix.
// Files outside the module keep their directory and base name.
func (h *SourceHook) relative(file string) string {
	file = path.Clean(strings.ReplaceAll(file, "\\", "/"))
	for _, prefix := range h.prefixes {
		if i := strings.LastIndex(file, prefix); i >= 0 {
			return file[i+len(prefix):]
		}
	}
	return path.Join(path.Base(path.Dir(file)), path.Base(file))
}
