package ingest

// groupKey identifies one project group within an upload.
type groupKey struct {
	GroupNo    int
	CourseCode string
}

// GroupDraft is the in-memory aggregate of one group before persistence.
type GroupDraft struct {
	GroupNo           int
	CourseCode        string
	GroupName         string
	Title             string
	Description       string
	FileURL           string
	ExternalGuideName string

	// Students holds the group's distinct student emails in first-seen order.
	Students []string

	// SourceRows counts every normalized row folded into this draft, including
	// duplicate student rows. Used for group-granularity skip accounting.
	SourceRows int

	seen map[string]struct{}
}

// AggregateRows folds validated rows into group drafts keyed by
// (groupNo, courseCode). The first row seen for a key supplies the group-level
// fields; later rows contribute only their student email. Duplicate student
// emails within a group collapse silently.
func AggregateRows(rows []NormalizedRow) []*GroupDraft {
	drafts := make(map[groupKey]*GroupDraft)
	var order []*GroupDraft

	for _, row := range rows {
		key := groupKey{GroupNo: row.GroupNo, CourseCode: row.CourseCode}

		draft, ok := drafts[key]
		if !ok {
			draft = &GroupDraft{
				GroupNo:           row.GroupNo,
				CourseCode:        row.CourseCode,
				GroupName:         row.GroupName,
				Title:             row.Title,
				Description:       row.Description,
				FileURL:           row.FileURL,
				ExternalGuideName: row.ExternalGuideName,
				seen:              make(map[string]struct{}),
			}
			drafts[key] = draft
			order = append(order, draft)
		}

		draft.SourceRows++
		if _, dup := draft.seen[row.StudentEmail]; !dup {
			draft.seen[row.StudentEmail] = struct{}{}
			draft.Students = append(draft.Students, row.StudentEmail)
		}
	}

	return order
}
