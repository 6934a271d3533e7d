package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRowsFirstWriteWins(t *testing.T) {
	rows := []NormalizedRow{
		{GroupNo: 1, CourseCode: "it501", GroupName: "Alpha", Title: "First Title", StudentEmail: "a@s.edu"},
		{GroupNo: 1, CourseCode: "it501", GroupName: "Beta", Title: "Second Title", StudentEmail: "b@s.edu"},
	}

	drafts := AggregateRows(rows)
	require.Len(t, drafts, 1)

	assert.Equal(t, "Alpha", drafts[0].GroupName)
	assert.Equal(t, "First Title", drafts[0].Title)
	assert.Equal(t, []string{"a@s.edu", "b@s.edu"}, drafts[0].Students)
	assert.Equal(t, 2, drafts[0].SourceRows)
}

func TestAggregateRowsDistinctGroups(t *testing.T) {
	rows := []NormalizedRow{
		{GroupNo: 1, CourseCode: "it501", StudentEmail: "a@s.edu"},
		{GroupNo: 2, CourseCode: "it501", StudentEmail: "b@s.edu"},
		// Same group number in a different course is a different group.
		{GroupNo: 1, CourseCode: "it502", StudentEmail: "c@s.edu"},
	}

	drafts := AggregateRows(rows)
	require.Len(t, drafts, 3)

	// Drafts come out in first-appearance order.
	assert.Equal(t, 1, drafts[0].GroupNo)
	assert.Equal(t, "it501", drafts[0].CourseCode)
	assert.Equal(t, 2, drafts[1].GroupNo)
	assert.Equal(t, "it502", drafts[2].CourseCode)
}

func TestAggregateRowsDuplicateStudentCollapses(t *testing.T) {
	rows := []NormalizedRow{
		{GroupNo: 1, CourseCode: "it501", StudentEmail: "a@s.edu"},
		{GroupNo: 1, CourseCode: "it501", StudentEmail: "a@s.edu"},
		{GroupNo: 1, CourseCode: "it501", StudentEmail: "b@s.edu"},
	}

	drafts := AggregateRows(rows)
	require.Len(t, drafts, 1)

	assert.Equal(t, []string{"a@s.edu", "b@s.edu"}, drafts[0].Students)
	// Duplicate rows still count as source rows for skip accounting.
	assert.Equal(t, 3, drafts[0].SourceRows)
}

func TestAggregateRowsEmpty(t *testing.T) {
	assert.Empty(t, AggregateRows(nil))
}
