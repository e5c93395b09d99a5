package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals_HasIssues(t *testing.T) {
	t.Parallel()

	assert.False(t, Totals{}.HasIssues())
	assert.True(t, Totals{Issues: 1}.HasIssues())
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.False(t, SortField("severity").IsValid())
	assert.False(t, SortField("").IsValid())
}

func TestReport_JSONShape(t *testing.T) {
	t.Parallel()

	report := &Report{
		Version: ReportVersion,
		Totals:  Totals{Files: 2, Issues: 1},
		Diagnostics: []DiagnosticEntry{
			{FilePath: "A.java", Code: "UpperEll", Message: "m", StartLine: 1, StartColumn: 2},
		},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"filesChecked":2`)
	assert.Contains(t, string(data), `"code":"UpperEll"`)
	// Empty fix list is omitted entirely.
	assert.NotContains(t, string(data), `"fixes"`)
}
