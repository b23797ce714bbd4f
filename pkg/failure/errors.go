package failure

type Severity int

// scheduler control flow
const (
	SeverityFatal Severity = iota
	SeverityRecoverable
)

// ClassifiedError is the error vocabulary every pipeline stage speaks.
// Stages classify their failures; only the scheduler decides what a
// classification means for the run.
type ClassifiedError interface {
	error
	Severity() Severity
}
