package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type participantKey struct {
	ProjectID int64
	StudentID int64
}

type projectKey struct {
	CourseID int64
	GuideID  int64
	GroupNo  int
}

// fakeStore is an in-memory Store with the same find-or-create semantics as
// the real repositories.
type fakeStore struct {
	courses      map[string]*models.Course
	students     map[string]*models.User
	projects     map[projectKey]*models.Project
	participants map[participantKey]bool
	nextID       int64

	findCourseErr        error
	findStudentErr       error
	ensureProjectErr     error
	ensureParticipantErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		courses:      make(map[string]*models.Course),
		students:     make(map[string]*models.User),
		projects:     make(map[projectKey]*models.Project),
		participants: make(map[participantKey]bool),
	}
}

func (s *fakeStore) addCourse(code string) *models.Course {
	s.nextID++
	course := &models.Course{ID: s.nextID, CourseCode: code}
	s.courses[strings.ToLower(code)] = course
	return course
}

func (s *fakeStore) addStudent(email string) *models.User {
	s.nextID++
	student := &models.User{ID: s.nextID, Email: email, Role: models.RoleStudent}
	s.students[strings.ToLower(email)] = student
	return student
}

func (s *fakeStore) FindCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if s.findCourseErr != nil {
		return nil, s.findCourseErr
	}
	course, ok := s.courses[strings.ToLower(code)]
	if !ok {
		return nil, ErrNotFound
	}
	return course, nil
}

func (s *fakeStore) FindStudentByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.findStudentErr != nil {
		return nil, s.findStudentErr
	}
	student, ok := s.students[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return student, nil
}

func (s *fakeStore) EnsureProject(ctx context.Context, project *models.Project) (bool, error) {
	if s.ensureProjectErr != nil {
		return false, s.ensureProjectErr
	}
	key := projectKey{CourseID: project.CourseID, GuideID: project.InternalGuideID, GroupNo: project.GroupNo}
	if existing, ok := s.projects[key]; ok {
		project.ID = existing.ID
		return false, nil
	}
	s.nextID++
	project.ID = s.nextID
	stored := *project
	s.projects[key] = &stored
	return true, nil
}

func (s *fakeStore) EnsureParticipant(ctx context.Context, projectID, studentID int64) (bool, error) {
	if s.ensureParticipantErr != nil {
		return false, s.ensureParticipantErr
	}
	key := participantKey{ProjectID: projectID, StudentID: studentID}
	if s.participants[key] {
		return false, nil
	}
	s.participants[key] = true
	return true, nil
}

var profIdentity = Identity{UserID: 100, Email: "prof@x.edu"}

const rosterHeader = "groupNo,groupName,projectTitle,internalGuideEmail,courseCode,studentEmail\n"

func TestPipelineSingleGroupUpload(t *testing.T) {
	store := newFakeStore()
	store.addCourse("IT501")
	store.addStudent("a@s.edu")
	store.addStudent("b@s.edu")

	csv := rosterHeader +
		"1,Alpha,Inventory,prof@x.edu,IT501,a@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT501,b@s.edu\n"

	report, err := NewPipeline(store, zerolog.Nop()).Run(context.Background(), strings.NewReader(csv), profIdentity)
	require.NoError(t, err)

	assert.Equal(t, 1, report.CreatedProjects)
	assert.Equal(t, 2, report.AddedParticipants)
	assert.Equal(t, 0, report.SkippedRows)
	for _, reason := range Reasons {
		assert.Zero(t, report.SkippedByReason[reason], "bucket %s must be zero", reason)
	}
}

func TestPipelineRejectsOtherGuidesRows(t *testing.T) {
	store := newFakeStore()
	store.addCourse("IT501")
	store.addStudent("a@s.edu")
	store.addStudent("b@s.edu")

	csv := rosterHeader +
		"1,Alpha,Inventory,prof@x.edu,IT501,a@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT501,b@s.edu\n"

	otherGuide := Identity{UserID: 200, Email: "someone.else@x.edu"}
	report, err := NewPipeline(store, zerolog.Nop()).Run(context.Background(), strings.NewReader(csv), otherGuide)
	require.NoError(t, err)

	assert.Equal(t, 0, report.CreatedProjects)
	assert.Equal(t, 0, report.AddedParticipants)
	assert.Equal(t, 2, report.SkippedRows)
	assert.Equal(t, 2, report.SkippedByReason[ReasonInternalGuideMismatch])
	assert.Empty(t, store.projects, "mismatched rows must never create a project")
}

func TestPipelineIdempotence(t *testing.T) {
	store := newFakeStore()
	store.addCourse("IT501")
	store.addStudent("a@s.edu")
	store.addStudent("b@s.edu")
	store.addStudent("c@s.edu")

	csv := rosterHeader +
		"1,Alpha,Inventory,prof@x.edu,IT501,a@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT501,b@s.edu\n" +
		"2,Beta,Billing,prof@x.edu,IT501,c@s.edu\n"

	pipeline := NewPipeline(store, zerolog.Nop())

	first, err := pipeline.Run(context.Background(), strings.NewReader(csv), profIdentity)
	require.NoError(t, err)
	assert.Equal(t, 2, first.CreatedProjects)
	assert.Equal(t, 3, first.AddedParticipants)

	second, err := pipeline.Run(context.Background(), strings.NewReader(csv), profIdentity)
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedProjects)
	assert.Equal(t, 0, second.AddedParticipants)
	assert.Equal(t, 0, second.SkippedRows)

	assert.Len(t, store.projects, 2)
	assert.Len(t, store.participants, 3)
}

func TestPipelinePartialGroupTolerance(t *testing.T) {
	store := newFakeStore()
	store.addCourse("IT501")
	store.addStudent("a@s.edu")
	store.addStudent("b@s.edu")
	// c@s.edu is deliberately not registered.

	csv := rosterHeader +
		"1,Alpha,Inventory,prof@x.edu,IT501,a@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT501,b@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT501,c@s.edu\n"

	report, err := NewPipeline(store, zerolog.Nop()).Run(context.Background(), strings.NewReader(csv), profIdentity)
	require.NoError(t, err)

	assert.Equal(t, 1, report.CreatedProjects)
	assert.Equal(t, 2, report.AddedParticipants)
	assert.Equal(t, 1, report.SkippedRows)
	assert.Equal(t, 1, report.SkippedByReason[ReasonStudentNotFound])
	assert.Len(t, store.participants, 2)
}

func TestPipelineUnknownCourseChargesEveryRow(t *testing.T) {
	store := newFakeStore()
	store.addStudent("a@s.edu")
	store.addStudent("b@s.edu")

	csv := rosterHeader +
		"1,Alpha,Inventory,prof@x.edu,IT999,a@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT999,b@s.edu\n"

	report, err := NewPipeline(store, zerolog.Nop()).Run(context.Background(), strings.NewReader(csv), profIdentity)
	require.NoError(t, err)

	assert.Equal(t, 0, report.CreatedProjects)
	assert.Equal(t, 2, report.SkippedRows)
	assert.Equal(t, 2, report.SkippedByReason[ReasonCourseNotFound])
}

func TestPipelineRowCountConservation(t *testing.T) {
	store := newFakeStore()
	store.addCourse("IT501")
	store.addStudent("a@s.edu")
	store.addStudent("b@s.edu")

	// 6 data rows: 2 good, 1 missing email, 1 wrong guide, 1 unknown course,
	// 1 unknown student. No duplicate students, so every surviving row adds
	// exactly one participant.
	csv := rosterHeader +
		"1,Alpha,Inventory,prof@x.edu,IT501,a@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT501,b@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT501,\n" +
		"1,Alpha,Inventory,rival@x.edu,IT501,c@s.edu\n" +
		"2,Beta,Billing,prof@x.edu,IT999,d@s.edu\n" +
		"1,Alpha,Inventory,prof@x.edu,IT501,missing@s.edu\n"

	report, err := NewPipeline(store, zerolog.Nop()).Run(context.Background(), strings.NewReader(csv), profIdentity)
	require.NoError(t, err)

	assert.Equal(t, 6, report.AddedParticipants+report.SkippedRows)
	assert.Equal(t, report.SkippedRows, report.TotalSkipped())
	assert.Equal(t, 1, report.SkippedByReason[ReasonMissingFields])
	assert.Equal(t, 1, report.SkippedByReason[ReasonInternalGuideMismatch])
	assert.Equal(t, 1, report.SkippedByReason[ReasonCourseNotFound])
	assert.Equal(t, 1, report.SkippedByReason[ReasonStudentNotFound])
}

func TestPipelineMalformedFile(t *testing.T) {
	store := newFakeStore()

	csv := rosterHeader + "1,Alpha\n"

	report, err := NewPipeline(store, zerolog.Nop()).Run(context.Background(), strings.NewReader(csv), profIdentity)
	require.Error(t, err)
	assert.Nil(t, report)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestPipelineEmptyFile(t *testing.T) {
	report, err := NewPipeline(newFakeStore(), zerolog.Nop()).Run(context.Background(), strings.NewReader(""), profIdentity)
	require.NoError(t, err)

	assert.Equal(t, 0, report.CreatedProjects)
	assert.Equal(t, 0, report.AddedParticipants)
	assert.Equal(t, 0, report.SkippedRows)
}
