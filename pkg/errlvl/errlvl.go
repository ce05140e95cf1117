// Package errlvl tags errors with a severity that survives wrapping,
// so that reporting layers can map an error chain to an alert level
// without knowing where it originated.
package errlvl

import (
	"errors"
	"fmt"
)

// Severity of an error in the application.
type Severity uint8

const (
	Debug Severity = iota + 1
	Info
	Warn
	Error
	Fatal
)

var (
	ErrDebug = errors.New("[DEBUG]")
	ErrInfo  = errors.New("[INFO]")
	ErrWarn  = errors.New("[WARN]")
	ErrError = errors.New("[ERROR]")
	ErrFatal = errors.New("[FATAL]")
)

var sentinels = map[Severity]error{
	Debug: ErrDebug,
	Info:  ErrInfo,
	Warn:  ErrWarn,
	Error: ErrError,
	Fatal: ErrFatal,
}

// Wrap tags err with the given severity. An error that already carries a
// severity is returned unchanged - the innermost tag wins.
func Wrap(err error, s Severity) error {
	if err == nil {
		return nil
	}
	if _, tagged := severityOf(err); tagged {
		return err
	}

	sentinel, ok := sentinels[s]
	if !ok {
		sentinel = ErrError
	}
	return fmt.Errorf("%w %w", sentinel, err)
}

// Of returns the severity carried by err, defaulting to Error for
// untagged (and non-nil) errors and Debug for nil.
func Of(err error) Severity {
	if err == nil {
		return Debug
	}
	if s, ok := severityOf(err); ok {
		return s
	}
	return Error
}

func severityOf(err error) (Severity, bool) {
	for s, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return s, true
		}
	}
	return 0, false
}
