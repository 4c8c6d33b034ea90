package results

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// SignificanceThreshold is the p-value below which an experiment is
// reported as significant. A deliberately loose design constant, not a
// statistical universal.
const SignificanceThreshold = 0.1

// Observation is one exposure row joined with its conversion outcome.
type Observation struct {
	Cohort    string
	Converted float64
	Value     *float64
}

// CohortSummary describes one treatment arm of the experiment.
type CohortSummary struct {
	Cohort         string   `json:"cohort"`
	Subjects       int      `json:"subjects"`
	ConversionRate float64  `json:"conversion_rate"`
	SD             *float64 `json:"sd"`
	SE             *float64 `json:"se"`
	CILower        *float64 `json:"ci_lower"`
	CIUpper        *float64 `json:"ci_upper"`
}

// Analysis is the outcome of one calculator run over the loaded rows.
// PValue and Significant are nil when the ANOVA cannot produce a
// defined statistic; callers must treat that as "not enough data", not
// as "no difference".
type Analysis struct {
	Subjects    int             `json:"subjects"`
	Table       []CohortSummary `json:"table"`
	PValue      *float64        `json:"p_value"`
	Significant *bool           `json:"significant"`
}

// Calculate groups the observations by cohort, summarizes each arm, and
// fits a one-way ANOVA of converted-or-not on the cohort grouping.
func Calculate(rows []Observation) *Analysis {
	analysis := &Analysis{Subjects: len(rows)}

	groups := make(map[string][]float64)
	for _, row := range rows {
		groups[row.Cohort] = append(groups[row.Cohort], row.Converted)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		analysis.Table = append(analysis.Table, summarize(name, groups[name]))
	}

	if p := anovaPValue(groups, len(rows)); p != nil {
		analysis.PValue = p
		significant := *p < SignificanceThreshold
		analysis.Significant = &significant
	}
	return analysis
}

// summarize computes count, mean conversion rate, standard deviation,
// standard error, and a 95% confidence interval for one cohort. The
// dispersion fields are nil for single-sample cohorts, where they are
// undefined.
func summarize(name string, values []float64) CohortSummary {
	n := len(values)
	summary := CohortSummary{
		Cohort:         name,
		Subjects:       n,
		ConversionRate: mean(values),
	}
	if n < 2 {
		return summary
	}

	sd := math.Sqrt(sampleVariance(values, summary.ConversionRate))
	se := sd / math.Sqrt(float64(n))

	// researcher's t-based interval for the mean
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(0.975)
	lower := summary.ConversionRate - t*se
	upper := summary.ConversionRate + t*se

	summary.SD = &sd
	summary.SE = &se
	summary.CILower = &lower
	summary.CIUpper = &upper
	return summary
}

// anovaPValue runs a one-way ANOVA over the cohort groups and returns
// the F-statistic's p-value, or nil when the statistic is undefined:
// fewer than two cohorts, no within-group degrees of freedom, or a
// degenerate F (NaN or infinite).
func anovaPValue(groups map[string][]float64, total int) *float64 {
	k := len(groups)
	if k < 2 {
		return nil
	}
	dfBetween := float64(k - 1)
	dfWithin := float64(total - k)
	if dfWithin < 1 {
		return nil
	}

	var grandSum float64
	for _, values := range groups {
		for _, v := range values {
			grandSum += v
		}
	}
	grandMean := grandSum / float64(total)

	var ssBetween, ssWithin float64
	for _, values := range groups {
		m := mean(values)
		ssBetween += float64(len(values)) * (m - grandMean) * (m - grandMean)
		for _, v := range values {
			ssWithin += (v - m) * (v - m)
		}
	}

	f := (ssBetween / dfBetween) / (ssWithin / dfWithin)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}

	p := distuv.F{D1: dfBetween, D2: dfWithin}.Survival(f)
	if math.IsNaN(p) || p < 0 {
		return nil
	}
	return &p
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleVariance(values []float64, m float64) float64 {
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return ss / float64(len(values)-1)
}
