package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salam-35/PhdTrack-sub000/internal/llm"
)

func TestExtractCourseDocument_ChatCompletionsShape(t *testing.T) {
	raw := []byte(`{
		"choices": [
			{"message": {"content": "{\"courses\":[{\"code\":\"CSE101\",\"name\":\"Intro to Programming\",\"grade\":\"A\",\"credit_hours\":3}]}"}}
		]
	}`)
	doc, err := llm.ExtractCourseDocument(raw)
	require.NoError(t, err)

	list, err := llm.DecodeCourseList(doc)
	require.NoError(t, err)
	require.Len(t, list.Courses, 1)
	assert.Equal(t, "CSE101", list.Courses[0].Code)
	assert.Equal(t, 3.0, list.Courses[0].CreditHours)
}

func TestExtractCourseDocument_LegacyOutputShape(t *testing.T) {
	raw := []byte(`{
		"output": [
			{"content": [{"type": "output_text", "text": "{\"courses\":[{\"code\":\"MAT201\",\"name\":\"Calculus II\",\"grade\":\"B+\",\"credit_hours\":4}]}"}]}
		]
	}`)
	doc, err := llm.ExtractCourseDocument(raw)
	require.NoError(t, err)

	list, err := llm.DecodeCourseList(doc)
	require.NoError(t, err)
	require.Len(t, list.Courses, 1)
	assert.Equal(t, "MAT201", list.Courses[0].Code)
}

func TestExtractCourseDocument_StripsCodeFence(t *testing.T) {
	raw := []byte(`{"choices":[{"message":{"content":"` + "```json\\n{\\\"courses\\\":[]}\\n```" + `"}}]}`)
	doc, err := llm.ExtractCourseDocument(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"courses":[]}`, string(doc))
}

func TestExtractCourseDocument_UnrecognizedShape(t *testing.T) {
	_, err := llm.ExtractCourseDocument([]byte(`{"result": "nope"}`))
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestDecodeCourseList_MissingArrayIsEmpty(t *testing.T) {
	list, err := llm.DecodeCourseList([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, list.Courses)
}

func TestSanitizeCourseDocument(t *testing.T) {
	doc := []byte(`{
		"courses": [
			{"code": "CSE101", "name": "Intro", "grade": "A", "credit_hours": "3.0", "term": "Fall"},
			{"code": 101, "name": "Numeric Code Course", "grade": null, "credit_hours": null}
		],
		"gpa": 3.9
	}`)
	cleaned, notes, err := llm.SanitizeCourseDocument(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, notes)

	require.NoError(t, llm.ValidateJSONAgainstSchema(llm.BuildCourseListJSONSchema(), cleaned))

	list, err := llm.DecodeCourseList(cleaned)
	require.NoError(t, err)
	require.Len(t, list.Courses, 2)
	assert.Equal(t, 3.0, list.Courses[0].CreditHours)
	assert.Equal(t, "101", list.Courses[1].Code)
	assert.Equal(t, "", list.Courses[1].Grade)
}

func TestValidateJSONAgainstSchema_RejectsNegativeCredits(t *testing.T) {
	doc := []byte(`{"courses":[{"code":"A","name":"B","grade":"C","credit_hours":-1}]}`)
	assert.Error(t, llm.ValidateJSONAgainstSchema(llm.BuildCourseListJSONSchema(), doc))
}
