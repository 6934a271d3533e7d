package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitterFatalStoreErrorAbortsRun(t *testing.T) {
	store := newFakeStore()
	store.findCourseErr = &FatalError{Err: errors.New("connection refused")}

	drafts := []*GroupDraft{
		{GroupNo: 1, CourseCode: "it501", Students: []string{"a@s.edu"}, SourceRows: 1},
	}

	report := NewReport()
	err := NewCommitter(store, zerolog.Nop()).Commit(context.Background(), drafts, profIdentity, report)
	require.Error(t, err)

	var fatal *FatalError
	assert.ErrorAs(t, err, &fatal)
}

func TestCommitterContextCancellationAbortsRun(t *testing.T) {
	store := newFakeStore()
	store.findCourseErr = context.Canceled

	drafts := []*GroupDraft{
		{GroupNo: 1, CourseCode: "it501", Students: []string{"a@s.edu"}, SourceRows: 1},
	}

	err := NewCommitter(store, zerolog.Nop()).Commit(context.Background(), drafts, profIdentity, NewReport())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommitterRowScopedCourseLookupError(t *testing.T) {
	store := newFakeStore()
	store.findCourseErr = errors.New("transient lookup failure")

	drafts := []*GroupDraft{
		{GroupNo: 1, CourseCode: "it501", Students: []string{"a@s.edu", "b@s.edu"}, SourceRows: 2},
	}

	report := NewReport()
	err := NewCommitter(store, zerolog.Nop()).Commit(context.Background(), drafts, profIdentity, report)
	require.NoError(t, err)

	assert.Equal(t, 2, report.SkippedByReason[ReasonRowError])
	assert.Equal(t, 2, report.SkippedRows)
}

func TestCommitterProjectUpsertFailureChargesRemainingRows(t *testing.T) {
	store := newFakeStore()
	store.addCourse("IT501")
	store.addStudent("a@s.edu")
	store.addStudent("b@s.edu")
	store.ensureProjectErr = errors.New("insert failed")

	// 3 source rows, one of them an unknown student. The upsert failure must
	// charge only the rows not already skipped.
	drafts := []*GroupDraft{
		{GroupNo: 1, CourseCode: "it501", Students: []string{"a@s.edu", "b@s.edu", "ghost@s.edu"}, SourceRows: 3},
	}

	report := NewReport()
	err := NewCommitter(store, zerolog.Nop()).Commit(context.Background(), drafts, profIdentity, report)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SkippedByReason[ReasonStudentNotFound])
	assert.Equal(t, 2, report.SkippedByReason[ReasonRowError])
	assert.Equal(t, 3, report.SkippedRows)
	assert.Equal(t, 0, report.CreatedProjects)
}

func TestCommitterParticipantUpsertFailureIsRowScoped(t *testing.T) {
	store := newFakeStore()
	store.addCourse("IT501")
	store.addStudent("a@s.edu")
	store.addStudent("b@s.edu")
	store.ensureParticipantErr = errors.New("insert failed")

	drafts := []*GroupDraft{
		{GroupNo: 1, CourseCode: "it501", Students: []string{"a@s.edu", "b@s.edu"}, SourceRows: 2},
	}

	report := NewReport()
	err := NewCommitter(store, zerolog.Nop()).Commit(context.Background(), drafts, profIdentity, report)
	require.NoError(t, err)

	// The project is still created; each participant row is charged separately.
	assert.Equal(t, 1, report.CreatedProjects)
	assert.Equal(t, 0, report.AddedParticipants)
	assert.Equal(t, 2, report.SkippedByReason[ReasonRowError])
}

func TestCommitterContinuesAfterSkippedGroup(t *testing.T) {
	store := newFakeStore()
	store.addCourse("IT501")
	store.addStudent("a@s.edu")

	drafts := []*GroupDraft{
		{GroupNo: 1, CourseCode: "it999", Students: []string{"x@s.edu"}, SourceRows: 1},
		{GroupNo: 2, CourseCode: "it501", Students: []string{"a@s.edu"}, SourceRows: 1},
	}

	report := NewReport()
	err := NewCommitter(store, zerolog.Nop()).Commit(context.Background(), drafts, profIdentity, report)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SkippedByReason[ReasonCourseNotFound])
	assert.Equal(t, 1, report.CreatedProjects)
	assert.Equal(t, 1, report.AddedParticipants)
}
