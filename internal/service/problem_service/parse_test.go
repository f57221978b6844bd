package problem_service

import (
	"testing"

	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
	"title": "Two Sum",
	"description": "Find two numbers that add up to a target.",
	"examples": [
		{"input": "[2,7,11,15], 9", "output": "[0,1]", "explanation": "2 + 7 = 9"}
	],
	"constraints": ["1<=n<=100"],
	"starterCode": {"javascript": "function twoSum() {}", "python": "def two_sum():", "java": "class Solution {}"},
	"hints": ["use a hash map"]
}`

func TestParseGeneratedProblemValid(t *testing.T) {
	parsed, err := parseGeneratedProblem(validReply)
	require.NoError(t, err)

	assert.Equal(t, "Two Sum", parsed.Title)
	assert.Equal(t, "Find two numbers that add up to a target.", parsed.Description)
	require.Len(t, parsed.Examples, 1)
	assert.Equal(t, "[2,7,11,15], 9", parsed.Examples[0].Input)
	assert.Equal(t, "[0,1]", parsed.Examples[0].Output)
	assert.Equal(t, "2 + 7 = 9", parsed.Examples[0].Explanation)
	assert.Equal(t, []string{"1<=n<=100"}, parsed.Constraints)
	require.NotNil(t, parsed.StarterCode.Python)
	assert.Equal(t, "def two_sum():", *parsed.StarterCode.Python)
	assert.Equal(t, []string{"use a hash map"}, parsed.Hints)
}

func TestParseGeneratedProblemNotJson(t *testing.T) {
	_, err := parseGeneratedProblem("not json")
	assert.ErrorIs(t, err, pair_errors.ErrMalformedResponse)
}

func TestParseGeneratedProblemWrongFieldType(t *testing.T) {
	// valid JSON with a wrongly typed field is a schema problem, not a
	// malformed reply
	reply := `{
		"title": "t",
		"description": "d",
		"examples": "oops",
		"starterCode": {"javascript": "", "python": "", "java": ""}
	}`
	_, err := parseGeneratedProblem(reply)
	assert.ErrorIs(t, err, pair_errors.ErrSchemaViolation)
	assert.NotErrorIs(t, err, pair_errors.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "examples")
}

func TestParseGeneratedProblemMissingTitle(t *testing.T) {
	reply := `{
		"description": "d",
		"examples": [{"input": "i", "output": "o"}],
		"starterCode": {"javascript": "", "python": "", "java": ""}
	}`
	_, err := parseGeneratedProblem(reply)
	assert.ErrorIs(t, err, pair_errors.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "title")
}

func TestParseGeneratedProblemEmptyExamples(t *testing.T) {
	reply := `{
		"title": "t",
		"description": "d",
		"examples": [],
		"starterCode": {"javascript": "", "python": "", "java": ""}
	}`
	_, err := parseGeneratedProblem(reply)
	assert.ErrorIs(t, err, pair_errors.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "examples")
}

func TestParseGeneratedProblemExampleMissingOutput(t *testing.T) {
	reply := `{
		"title": "t",
		"description": "d",
		"examples": [{"input": "i"}],
		"starterCode": {"javascript": "", "python": "", "java": ""}
	}`
	_, err := parseGeneratedProblem(reply)
	assert.ErrorIs(t, err, pair_errors.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "examples[0].output")
}

func TestParseGeneratedProblemIncompleteStarterCode(t *testing.T) {
	reply := `{
		"title": "t",
		"description": "d",
		"examples": [{"input": "i", "output": "o"}],
		"starterCode": {"javascript": "", "python": ""}
	}`
	_, err := parseGeneratedProblem(reply)
	assert.ErrorIs(t, err, pair_errors.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "starterCode.java")
}

func TestParseGeneratedProblemEmptyStubsAreValid(t *testing.T) {
	// all three keys present with empty stubs is a valid record
	reply := `{
		"title": "t",
		"description": "d",
		"examples": [{"input": "i", "output": "o"}],
		"starterCode": {"javascript": "", "python": "", "java": ""}
	}`
	parsed, err := parseGeneratedProblem(reply)
	require.NoError(t, err)
	assert.Equal(t, "", *parsed.StarterCode.Java)
}
