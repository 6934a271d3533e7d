package ingest

// Reason identifies why a source row was excluded from the aggregate.
type Reason string

const (
	ReasonMissingFields         Reason = "missingFields"
	ReasonInternalGuideMismatch Reason = "internalGuideMismatch"
	ReasonCourseNotFound        Reason = "courseNotFound"
	ReasonStudentNotFound       Reason = "studentNotFound"
	ReasonRowError              Reason = "rowError"
)

// Reasons lists every rejection bucket in reporting order.
var Reasons = []Reason{
	ReasonInternalGuideMismatch,
	ReasonMissingFields,
	ReasonCourseNotFound,
	ReasonStudentNotFound,
	ReasonRowError,
}

// Report accumulates the outcome of one upload run. Every source row ends up
// either contributing to a created/reused participant or incrementing exactly
// one SkippedByReason bucket.
type Report struct {
	CreatedProjects   int
	AddedParticipants int
	SkippedRows       int
	SkippedByReason   map[Reason]int
}

// NewReport creates an empty report with all buckets present.
func NewReport() *Report {
	byReason := make(map[Reason]int, len(Reasons))
	for _, reason := range Reasons {
		byReason[reason] = 0
	}
	return &Report{SkippedByReason: byReason}
}

// Skip records one skipped row under the given reason.
func (r *Report) Skip(reason Reason) {
	r.SkipN(reason, 1)
}

// SkipN records n skipped rows under the given reason.
func (r *Report) SkipN(reason Reason, n int) {
	if n <= 0 {
		return
	}
	r.SkippedRows += n
	r.SkippedByReason[reason] += n
}

// TotalSkipped sums the per-reason buckets. It always equals SkippedRows.
func (r *Report) TotalSkipped() int {
	total := 0
	for _, n := range r.SkippedByReason {
		total += n
	}
	return total
}
