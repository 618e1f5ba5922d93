// Package status defines the channel through which the patcher reports human readable progress.
package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

const progressPrefix = "Extracting... "

// Sink receives status texts. It may be invoked from several goroutines.
type Sink func(status string)

// Discard drops every status
func Discard(string) {}

// Synchronized returns a Sink that serializes calls to sink. A nil sink discards everything.
func Synchronized(sink Sink) Sink {
	if sink == nil {
		return Discard
	}

	var mu sync.Mutex
	return func(status string) {
		mu.Lock()
		defer mu.Unlock()
		sink(status)
	}
}

// Progress renders a deployment percentage
func Progress(percent int) string {
	return fmt.Sprintf("%s%d%%", progressPrefix, percent)
}

// ParseProgress extracts the percentage of a status produced by Progress
func ParseProgress(status string) (int, bool) {
	rest, ok := strings.CutPrefix(status, progressPrefix)
	if !ok {
		return 0, false
	}
	percent, err := strconv.Atoi(strings.TrimSuffix(rest, "%"))
	if err != nil {
		return 0, false
	}
	return percent, true
}
