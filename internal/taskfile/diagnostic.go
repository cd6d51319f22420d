package taskfile

// Severity classifies how much of a load a diagnostic affected.
type Severity int

const (
	// SeverityRecord marks problems scoped to one task object or one of
	// its fields; the rest of the file is still usable.
	SeverityRecord Severity = iota

	// SeverityFile marks problems that invalidate the whole file; the
	// load degrades to an empty task list.
	SeverityFile
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityRecord:
		return "record"
	case SeverityFile:
		return "file"
	default:
		return "unknown"
	}
}

// Diagnostic describes a tolerated problem encountered while decoding a
// task file. Diagnostics are collected rather than raised: no decode
// failure propagates as an error to the caller.
type Diagnostic struct {
	Severity Severity
	Message  string
}

func recordDiag(message string) Diagnostic {
	return Diagnostic{Severity: SeverityRecord, Message: message}
}

func fileDiag(message string) Diagnostic {
	return Diagnostic{Severity: SeverityFile, Message: message}
}
