package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	ParseError      = 3
	AuditError      = 4
	ExportError     = 5
)
