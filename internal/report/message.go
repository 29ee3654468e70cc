// Package report collects diagnostic messages produced while evaluating,
// healing, and building a road network. It has no dependency on any other
// internal package so every layer of the pipeline can report through it.
package report

import "fmt"

// Severity classifies how serious a diagnostic is.
type Severity string

const (
	// SeverityFatal means the pipeline cannot continue for this input.
	SeverityFatal Severity = "fatal_error"
	// SeverityError is a serious but non-fatal defect.
	SeverityError Severity = "error"
	// SeverityWarning is a defect that was (or could be) repaired automatically.
	SeverityWarning Severity = "warning"
	// SeverityInfo is purely informational.
	SeverityInfo Severity = "info"
)

// SourceID identifies the entity a message is about, e.g. a road or lane id.
type SourceID struct {
	Kind string // "road", "junction", "lane", "object", "signal", ...
	ID   string
}

func (s SourceID) String() string {
	if s.Kind == "" && s.ID == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.ID)
}

// Message is a single diagnostic, fatal or non-fatal.
type Message struct {
	Location    map[string]string `json:"location,omitempty"`
	Code        string            `json:"code"`
	Description string            `json:"description"`
	Source      SourceID          `json:"source_id"`
	Severity    Severity          `json:"severity"`
	WasFixed    bool              `json:"was_fixed"`
}

func (m Message) String() string {
	return fmt.Sprintf("[%s] %s %s: %s", m.Severity, m.Code, m.Source, m.Description)
}

// MessageList is an ordered collection of diagnostics. Order reflects
// traversal order of the component that produced them (§7).
type MessageList []Message

// Add appends a message and returns the extended list, for fluent building.
func (l MessageList) Add(msg Message) MessageList {
	return append(l, msg)
}

// Fatal appends a fatal message.
func (l MessageList) Fatal(code, desc string, src SourceID) MessageList {
	return l.Add(Message{Code: code, Description: desc, Source: src, Severity: SeverityFatal})
}

// Fixed appends a warning-level message for an automatic repair.
func (l MessageList) Fixed(code, desc string, src SourceID) MessageList {
	return l.Add(Message{Code: code, Description: desc, Source: src, Severity: SeverityWarning, WasFixed: true})
}

// Reported appends a message for a defect that was merely observed, not repaired.
func (l MessageList) Reported(code, desc string, src SourceID, sev Severity) MessageList {
	return l.Add(Message{Code: code, Description: desc, Source: src, Severity: sev, WasFixed: false})
}

// HasFatal reports whether the list contains any fatal message.
func (l MessageList) HasFatal() bool {
	for _, m := range l {
		if m.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// CountBySeverity counts messages by severity level.
func (l MessageList) CountBySeverity(sev Severity) int {
	n := 0
	for _, m := range l {
		if m.Severity == sev {
			n++
		}
	}
	return n
}

// Merge appends another list's entries, preserving traversal order.
func (l MessageList) Merge(other MessageList) MessageList {
	return append(l, other...)
}
