// Package appversion models the version of the managed application and reads the one installed locally.
package appversion

import (
	"errors"
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

const unknownText = "unknown"

// ErrInvalidVersionFormat is matched by every FormatError
var ErrInvalidVersionFormat = errors.New("invalid version format")

// FormatError is returned when a text does not have the dotted numeric shape of a version
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid version format %q", e.Text)
	}
	return fmt.Sprintf("invalid version format %q: %v", e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidVersionFormat
}

// Version is an immutable, totally ordered version identifier.
// The zero value is Unknown, which sorts below every parsed version.
type Version struct {
	v *goversion.Version
}

// Unknown returns the version used when nothing is installed
func Unknown() Version {
	return Version{}
}

// Parse parses dotted numeric text such as "1.2" or "v1.2.0". Missing components count as zero.
func Parse(text string) (Version, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Version{}, &FormatError{Text: text}
	}

	v, err := goversion.NewVersion(trimmed)
	if err != nil {
		return Version{}, &FormatError{Text: text, Err: err}
	}
	return Version{v: v}, nil
}

// MustParse is like Parse but panics on malformed input
func MustParse(text string) Version {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// IsUnknown reports whether v is the Unknown sentinel
func (v Version) IsUnknown() bool {
	return v.v == nil
}

// Compare returns -1, 0 or +1 depending on whether v is less than, equal to or greater than other
func (v Version) Compare(other Version) int {
	switch {
	case v.IsUnknown() && other.IsUnknown():
		return 0
	case v.IsUnknown():
		return -1
	case other.IsUnknown():
		return 1
	}
	return v.v.Compare(other.v)
}

// Compare is the package level form of a.Compare(b)
func Compare(a, b Version) int {
	return a.Compare(b)
}

func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// String renders the canonical form, which parses back to an equal Version
func (v Version) String() string {
	if v.IsUnknown() {
		return unknownText
	}
	return v.v.String()
}
