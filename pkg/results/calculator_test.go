package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// observations builds n rows for a cohort, converted of which converted.
func observations(cohort string, n, converted int) []Observation {
	rows := make([]Observation, 0, n)
	for i := 0; i < n; i++ {
		row := Observation{Cohort: cohort}
		if i < converted {
			row.Converted = 1
		}
		rows = append(rows, row)
	}
	return rows
}

func TestCalculate_TwoCohorts(t *testing.T) {
	rows := append(observations("control", 100, 10), observations("treatment", 100, 30)...)

	analysis := Calculate(rows)

	assert.Equal(t, 200, analysis.Subjects)
	require.Len(t, analysis.Table, 2)

	// Table rows come back in cohort name order.
	control := analysis.Table[0]
	treatment := analysis.Table[1]
	assert.Equal(t, "control", control.Cohort)
	assert.Equal(t, 100, control.Subjects)
	assert.InDelta(t, 0.10, control.ConversionRate, 1e-9)
	assert.Equal(t, "treatment", treatment.Cohort)
	assert.InDelta(t, 0.30, treatment.ConversionRate, 1e-9)

	require.NotNil(t, analysis.PValue)
	require.NotNil(t, analysis.Significant)
	assert.Less(t, *analysis.PValue, 0.05, "a 10 vs 30 percent split on n=200 is a clear difference")
	assert.True(t, *analysis.Significant)
}

func TestCalculate_IdenticalRates(t *testing.T) {
	rows := append(observations("control", 50, 25), observations("treatment", 50, 25)...)

	analysis := Calculate(rows)

	require.NotNil(t, analysis.PValue)
	assert.InDelta(t, 1.0, *analysis.PValue, 1e-9, "no between-group variance means F=0")
	require.NotNil(t, analysis.Significant)
	assert.False(t, *analysis.Significant)
}

func TestCalculate_UndefinedStatistic(t *testing.T) {
	t.Run("No observations", func(t *testing.T) {
		analysis := Calculate(nil)
		assert.Equal(t, 0, analysis.Subjects)
		assert.Empty(t, analysis.Table)
		assert.Nil(t, analysis.PValue)
		assert.Nil(t, analysis.Significant)
	})

	t.Run("Single cohort", func(t *testing.T) {
		analysis := Calculate(observations("control", 10, 5))
		assert.Nil(t, analysis.PValue)
		assert.Nil(t, analysis.Significant)
	})

	t.Run("No within-group degrees of freedom", func(t *testing.T) {
		rows := append(observations("control", 1, 1), observations("treatment", 1, 0)...)
		analysis := Calculate(rows)
		assert.Nil(t, analysis.PValue)
	})

	t.Run("Zero variance everywhere", func(t *testing.T) {
		rows := append(observations("control", 10, 10), observations("treatment", 10, 10)...)
		analysis := Calculate(rows)
		assert.Nil(t, analysis.PValue, "0/0 F-statistic has no p-value")
	})
}

func TestCalculate_CohortDispersion(t *testing.T) {
	rows := append(observations("control", 2, 1), observations("treatment", 10, 5)...)

	analysis := Calculate(rows)
	require.Len(t, analysis.Table, 2)

	control := analysis.Table[0]
	require.NotNil(t, control.SD)
	require.NotNil(t, control.SE)
	require.NotNil(t, control.CILower)
	require.NotNil(t, control.CIUpper)

	// n=2 with values {1, 0}: sd = sqrt(0.5), se = 0.5, and the t
	// quantile at df=1 is 12.706.
	assert.InDelta(t, 0.70710678, *control.SD, 1e-6)
	assert.InDelta(t, 0.5, *control.SE, 1e-9)
	assert.InDelta(t, 0.5-12.7062*0.5, *control.CILower, 1e-3)
	assert.InDelta(t, 0.5+12.7062*0.5, *control.CIUpper, 1e-3)
}

func TestCalculate_SingleSampleCohortHasNoDispersion(t *testing.T) {
	rows := append(observations("control", 1, 1), observations("treatment", 5, 2)...)

	analysis := Calculate(rows)
	require.Len(t, analysis.Table, 2)

	control := analysis.Table[0]
	assert.Equal(t, 1, control.Subjects)
	assert.Nil(t, control.SD)
	assert.Nil(t, control.SE)
	assert.Nil(t, control.CILower)
	assert.Nil(t, control.CIUpper)

	treatment := analysis.Table[1]
	assert.NotNil(t, treatment.SD)
}
