package ingest

import (
	"strconv"
	"strings"
)

// Canonical roster fields.
const (
	fieldGroupNo           = "groupNo"
	fieldGroupName         = "groupName"
	fieldProjectTitle      = "projectTitle"
	fieldProjectDesc       = "projectDescription"
	fieldFileURL           = "fileUrl"
	fieldInternalGuide     = "internalGuideEmail"
	fieldExternalGuideName = "externalGuideName"
	fieldCourseCode        = "courseCode"
	fieldStudentEmail      = "studentEmail"
)

// fieldAliases maps each canonical field to the header spellings that resolve
// to it. Header matching is case-insensitive, so a single lowercase alias
// covers both camelCase and PascalCase exports. Adding a new alias is a data
// change here, not a code change.
var fieldAliases = map[string][]string{
	fieldGroupNo:           {"groupno"},
	fieldGroupName:         {"groupname"},
	fieldProjectTitle:      {"projecttitle", "title"},
	fieldProjectDesc:       {"projectdescription", "description"},
	fieldFileURL:           {"fileurl"},
	fieldInternalGuide:     {"internalguideemail"},
	fieldExternalGuideName: {"externalguidename"},
	fieldCourseCode:        {"coursecode"},
	fieldStudentEmail:      {"studentemail"},
}

// Identity is the authenticated faculty member performing the upload.
type Identity struct {
	UserID int64
	Email  string
}

// NormalizedRow is one validated (group, student) pairing. Email and course
// code are lower-cased; all fields are trimmed.
type NormalizedRow struct {
	GroupNo           int
	GroupName         string
	Title             string
	Description       string
	FileURL           string
	ExternalGuideName string
	CourseCode        string
	StudentEmail      string
}

// Rejection explains why a row was excluded. Rejections are reported, never
// thrown; the pipeline continues with the next row.
type Rejection struct {
	Reason Reason
}

// fieldValue resolves a canonical field from a raw row via the alias table.
// First matching alias wins.
func fieldValue(row Row, canonical string) string {
	for _, alias := range fieldAliases[canonical] {
		for header, value := range row {
			if strings.EqualFold(strings.TrimSpace(header), alias) {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}

// NormalizeRow validates a single raw row against the uploading faculty
// member's identity. A row has exactly one rejection reason: the first failing
// check wins.
func NormalizeRow(row Row, guide Identity) (NormalizedRow, *Rejection) {
	groupNoRaw := fieldValue(row, fieldGroupNo)
	courseCode := strings.ToLower(fieldValue(row, fieldCourseCode))
	studentEmail := strings.ToLower(fieldValue(row, fieldStudentEmail))

	if groupNoRaw == "" || courseCode == "" || studentEmail == "" {
		return NormalizedRow{}, &Rejection{Reason: ReasonMissingFields}
	}

	guideEmail := strings.ToLower(fieldValue(row, fieldInternalGuide))
	if guideEmail != strings.ToLower(strings.TrimSpace(guide.Email)) {
		return NormalizedRow{}, &Rejection{Reason: ReasonInternalGuideMismatch}
	}

	groupNo, err := strconv.Atoi(groupNoRaw)
	if err != nil {
		// A non-numeric group number is a rejection, not a crash.
		return NormalizedRow{}, &Rejection{Reason: ReasonMissingFields}
	}

	return NormalizedRow{
		GroupNo:           groupNo,
		GroupName:         fieldValue(row, fieldGroupName),
		Title:             fieldValue(row, fieldProjectTitle),
		Description:       fieldValue(row, fieldProjectDesc),
		FileURL:           fieldValue(row, fieldFileURL),
		ExternalGuideName: fieldValue(row, fieldExternalGuideName),
		CourseCode:        courseCode,
		StudentEmail:      studentEmail,
	}, nil
}
