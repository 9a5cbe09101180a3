// Package consistency cross-checks a computed breakdown against the
// authoritative summary total.
//
// The summary total comes from the aggregation backend and is treated as the
// source of truth; the check flags drift between it and the locally computed
// cash+cheque sum. A mismatch is advisory: the breakdown is still usable, the
// caller decides how loudly to surface the gap.
package consistency

import (
	"fmt"
	"math"

	"github.com/itsutakahope/churching-sub001/internal/domain/breakdown"
)

// Tolerance is the maximum acceptable absolute gap between calculated and
// summary totals, in whole currency units. It absorbs floating-point and
// currency-rounding drift.
const Tolerance = 1.0

// Result contains the outcome of one consistency check.
type Result struct {
	// Consistent is true if the calculated total agrees with the summary
	// total within Tolerance.
	Consistent bool

	// CalculatedTotal is cash total + cheque total.
	CalculatedTotal float64

	// SummaryTotal is the authoritative total being checked against.
	SummaryTotal float64

	// Difference is the absolute gap between the two.
	Difference float64

	// Tolerance echoes the tolerance the verdict was made under.
	Tolerance float64

	// Errors explains why the check failed (empty when consistent).
	Errors []string
}

// Check compares a breakdown's total against the summary total. It never
// fails: every problem is reported through Result.Errors with
// Consistent=false.
func Check(b breakdown.Breakdown, summaryTotal float64) Result {
	res := Result{SummaryTotal: summaryTotal, Tolerance: Tolerance}

	if !isFinite(summaryTotal) {
		res.Errors = append(res.Errors, "summary total must be a finite number")
		return res
	}

	// Report both totals when both are bad.
	if !isFinite(b.CashTotal) {
		res.Errors = append(res.Errors, "cash total must be a finite number")
	}
	if !isFinite(b.ChequeTotal) {
		res.Errors = append(res.Errors, "cheque total must be a finite number")
	}
	if len(res.Errors) > 0 {
		return res
	}

	res.CalculatedTotal = b.CashTotal + b.ChequeTotal
	res.Difference = math.Abs(res.CalculatedTotal - summaryTotal)
	res.Consistent = res.Difference <= Tolerance

	if !res.Consistent {
		res.Errors = append(res.Errors,
			fmt.Sprintf("calculated total differs from summary total by %g", res.Difference))
	}
	return res
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
