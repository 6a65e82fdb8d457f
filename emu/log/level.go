package log

import (
	"fmt"
	"strings"

	"gopkg.in/Sirupsen/logrus.v0"
)

// Level is the severity of a log entry. Lower values are more severe, as in
// logrus.
type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

var levelNames = [...]string{"panic", "fatal", "error", "warn", "info", "debug"}

func (lvl Level) String() string {
	if int(lvl) < len(levelNames) {
		return levelNames[lvl]
	}
	return fmt.Sprintf("Level(%d)", uint32(lvl))
}

func (lvl Level) logrus() logrus.Level {
	return logrus.Level(lvl)
}

// An InvalidLevelError is returned when a log level name can't be parsed.
type InvalidLevelError struct {
	Name string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid levels: %s)", e.Name, strings.Join(levelNames[:], ", "))
}

// ParseLevel returns the level corresponding to name. 'warning' is accepted as
// an alias of 'warn'.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return WarnLevel, nil
	}
	for i, s := range levelNames {
		if s == name {
			return Level(i), nil
		}
	}
	return 0, &InvalidLevelError{Name: name}
}

// MarshalText implements encoding.TextMarshaler.
func (lvl Level) MarshalText() ([]byte, error) {
	return []byte(lvl.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (lvl *Level) UnmarshalText(text []byte) error {
	l, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*lvl = l
	return nil
}
