package dto

// UploadReportResponse is the full observable contract of a roster upload call.
// Partial success is expressed through counters, never exceptions.
type UploadReportResponse struct {
	CreatedProjects   int                 `json:"createdProjects" example:"4"`
	AddedParticipants int                 `json:"addedParticipants" example:"17"`
	SkippedRows       int                 `json:"skippedRows" example:"2"`
	SkippedByReason   SkippedByReasonBody `json:"skippedByReason"`
}

// SkippedByReasonBody breaks skipped rows down by rejection reason
type SkippedByReasonBody struct {
	InternalGuideMismatch int `json:"internalGuideMismatch" example:"1"`
	MissingFields         int `json:"missingFields" example:"1"`
	CourseNotFound        int `json:"courseNotFound" example:"0"`
	StudentNotFound       int `json:"studentNotFound" example:"0"`
	RowError              int `json:"rowError" example:"0"`
}
