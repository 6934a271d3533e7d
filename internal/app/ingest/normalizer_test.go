package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGuide = Identity{UserID: 7, Email: "prof@x.edu"}

func validRow() Row {
	return Row{
		"groupNo":            "1",
		"groupName":          "Team Rocket",
		"projectTitle":       "Inventory System",
		"projectDescription": "Tracks stock",
		"fileUrl":            "https://files.example/p1.pdf",
		"internalGuideEmail": "prof@x.edu",
		"externalGuideName":  "Dr. Y",
		"courseCode":         "IT501",
		"studentEmail":       "a@s.edu",
	}
}

func TestNormalizeRowValid(t *testing.T) {
	nr, rejection := NormalizeRow(validRow(), testGuide)
	require.Nil(t, rejection)

	assert.Equal(t, 1, nr.GroupNo)
	assert.Equal(t, "Team Rocket", nr.GroupName)
	assert.Equal(t, "Inventory System", nr.Title)
	assert.Equal(t, "Tracks stock", nr.Description)
	assert.Equal(t, "https://files.example/p1.pdf", nr.FileURL)
	assert.Equal(t, "Dr. Y", nr.ExternalGuideName)
	assert.Equal(t, "it501", nr.CourseCode)
	assert.Equal(t, "a@s.edu", nr.StudentEmail)
}

func TestNormalizeRowHeaderAliases(t *testing.T) {
	// PascalCase headers and the short title/description aliases resolve to the
	// same fields.
	row := Row{
		"GroupNo":            "2",
		"Title":              "Aliased Title",
		"Description":        "Aliased description",
		"InternalGuideEmail": "PROF@X.EDU",
		"CourseCode":         "it501",
		"StudentEmail":       "B@S.EDU",
	}

	nr, rejection := NormalizeRow(row, testGuide)
	require.Nil(t, rejection)

	assert.Equal(t, 2, nr.GroupNo)
	assert.Equal(t, "Aliased Title", nr.Title)
	assert.Equal(t, "Aliased description", nr.Description)
	assert.Equal(t, "it501", nr.CourseCode)
	assert.Equal(t, "b@s.edu", nr.StudentEmail)
}

func TestNormalizeRowMissingFields(t *testing.T) {
	for _, field := range []string{"groupNo", "courseCode", "studentEmail"} {
		row := validRow()
		row[field] = "  "

		_, rejection := NormalizeRow(row, testGuide)
		require.NotNil(t, rejection, "blank %s must reject", field)
		assert.Equal(t, ReasonMissingFields, rejection.Reason)
	}
}

func TestNormalizeRowGuideMismatch(t *testing.T) {
	row := validRow()
	row["internalGuideEmail"] = "other@x.edu"

	_, rejection := NormalizeRow(row, testGuide)
	require.NotNil(t, rejection)
	assert.Equal(t, ReasonInternalGuideMismatch, rejection.Reason)
}

func TestNormalizeRowGuideEmailCaseInsensitive(t *testing.T) {
	row := validRow()
	row["internalGuideEmail"] = "Prof@X.edu"

	_, rejection := NormalizeRow(row, Identity{UserID: 7, Email: "PROF@x.EDU"})
	assert.Nil(t, rejection)
}

func TestNormalizeRowMissingFieldsBeforeGuideCheck(t *testing.T) {
	// A row that is both incomplete and misattributed is charged to
	// missingFields: the completeness check runs first.
	row := validRow()
	row["studentEmail"] = ""
	row["internalGuideEmail"] = "other@x.edu"

	_, rejection := NormalizeRow(row, testGuide)
	require.NotNil(t, rejection)
	assert.Equal(t, ReasonMissingFields, rejection.Reason)
}

func TestNormalizeRowNonNumericGroupNo(t *testing.T) {
	row := validRow()
	row["groupNo"] = "one"

	_, rejection := NormalizeRow(row, testGuide)
	require.NotNil(t, rejection)
	assert.Equal(t, ReasonMissingFields, rejection.Reason)
}
