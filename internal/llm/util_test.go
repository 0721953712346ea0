package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlockStripsJSONFence(t *testing.T) {
	input := "```json\n{\"name\": \"Ahmed\"}\n```"

	assert.Equal(t, `{"name": "Ahmed"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlockStripsGenericFence(t *testing.T) {
	input := "```\n{\"name\": \"Ahmed\"}\n```"

	assert.Equal(t, `{"name": "Ahmed"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlockLeavesBareJSONUntouched(t *testing.T) {
	input := `{"name": "Ahmed"}`

	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlockTrimsWhitespace(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock("  \n{\"a\": 1}\n  "))
}

func TestRepairTruncatedJSONClosesOpenBrackets(t *testing.T) {
	truncated := `{"name": "Ahmed", "skills": ["revit", "autocad"]`

	repaired := RepairTruncatedJSON(truncated)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
	assert.Equal(t, "Ahmed", parsed["name"])
}

func TestRepairTruncatedJSONDropsPartialTrailingValue(t *testing.T) {
	truncated := `{"skills": ["revit"], "summary": "cut off mid sent`

	repaired := RepairTruncatedJSON(truncated)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
	assert.Contains(t, parsed, "skills")
}

func TestRepairTruncatedJSONLeavesCompleteObjectIntact(t *testing.T) {
	complete := `{"name": "Ahmed", "skills": ["revit"]}`

	assert.Equal(t, complete, RepairTruncatedJSON(complete))
}

func TestRepairTruncatedJSONIgnoresNonObjectInput(t *testing.T) {
	assert.Equal(t, "plain text", RepairTruncatedJSON("plain text"))
	assert.Equal(t, "", RepairTruncatedJSON("   "))
}
