package model

import "fmt"

// IssueKind classifies a data problem found during normalization.
type IssueKind int

const (
	IssueMissingID IssueKind = iota
	IssueMissingStart
	IssueStopBeforeStart
	IssueClockSkew
)

func (k IssueKind) String() string {
	switch k {
	case IssueMissingID:
		return "missing id"
	case IssueMissingStart:
		return "missing start"
	case IssueStopBeforeStart:
		return "stop before start"
	case IssueClockSkew:
		return "clock skew"
	default:
		return "unknown"
	}
}

// Issue describes one malformed or suspicious raw entry. Issues are
// accumulated and returned alongside the valid entries so that one bad record
// never hides a day's data; only IssueClockSkew leaves the affected entry in
// the result set (with a zero duration).
type Issue struct {
	EntryID int64
	Kind    IssueKind
	Detail  string
}

func (i Issue) String() string {
	return fmt.Sprintf("entry %d: %s (%s)", i.EntryID, i.Kind, i.Detail)
}
