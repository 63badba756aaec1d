package session

import (
	"fmt"

	"github.com/yildizm/swdex/internal/people"
)

// Status is the load state of a Holder. Exactly one of Idle, Loading,
// Loaded or Failed.
type Status interface {
	fmt.Stringer
	status()
}

// Idle means no fetch has been started
type Idle struct{}

// Loading means the fetch is in flight
type Loading struct{}

// Loaded carries the records of a successful fetch in fetch order
type Loaded struct {
	Records []people.Record
}

// Failed carries the text of the fetch error. Message is never empty.
type Failed struct {
	Message string
}

func (Idle) status()    {}
func (Loading) status() {}
func (Loaded) status()  {}
func (Failed) status()  {}

func (Idle) String() string    { return "idle" }
func (Loading) String() string { return "loading" }
func (Loaded) String() string  { return "loaded" }
func (Failed) String() string  { return "failed" }

// IsLoading reports whether s is Loading
func IsLoading(s Status) bool {
	_, ok := s.(Loading)
	return ok
}

// IsSettled reports whether s is Loaded or Failed
func IsSettled(s Status) bool {
	switch s.(type) {
	case Loaded, Failed:
		return true
	default:
		return false
	}
}

// ErrorText returns the failure message, or "" unless s is Failed
func ErrorText(s Status) string {
	if f, ok := s.(Failed); ok {
		return f.Message
	}
	return ""
}

// RecordsOf returns the records of a Loaded status, or nil
func RecordsOf(s Status) []people.Record {
	if l, ok := s.(Loaded); ok {
		return l.Records
	}
	return nil
}
