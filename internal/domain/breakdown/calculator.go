// Package breakdown computes the cash/cheque split of a batch of dedication
// records.
//
// Individual invalid records are skipped, never fatal: they are counted,
// logged, and excluded from the totals. The batch as a whole fails only when
// the input is not a record sequence, when every record is invalid, or when
// accumulation reaches a state that should be impossible.
package breakdown

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/itsutakahope/churching-sub001/internal/domain/dedication"
)

// Breakdown is the per-method split of a batch of dedications.
type Breakdown struct {
	CashTotal   float64 `json:"cashTotal"`
	ChequeTotal float64 `json:"chequeTotal"`

	// HasCheque is set the moment any valid cheque record is processed,
	// independent of the final cheque total.
	HasCheque bool `json:"hasCheque"`
}

// Counts summarizes how a batch was processed.
type Counts struct {
	Total   int
	Valid   int
	Invalid int
	Cash    int
	Cheque  int
}

// SkippedRecord retains the diagnostics for one skipped record.
type SkippedRecord struct {
	Index  int
	Errors []string
}

// Summary is the full result of one calculation pass.
type Summary struct {
	Breakdown Breakdown
	Counts    Counts
	Skipped   []SkippedRecord
}

// Calculator runs record validation and per-method accumulation over raw
// record batches. Each call operates on its own accumulator, so a single
// Calculator is safe for concurrent use.
type Calculator struct {
	validator *dedication.Validator
	logger    *slog.Logger
}

// NewCalculator creates a calculator. A nil logger falls back to slog.Default.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		validator: dedication.NewValidator(logger),
		logger:    logger.With("component", "breakdown_calculator"),
	}
}

// Calculate computes the breakdown for a raw record batch.
//
// Failure modes: *InvalidInputError when input is not a []any,
// *DataValidationError when a non-empty batch contains no valid record, and
// *CalculationError when accumulation produces a negative or non-finite
// total. An empty batch is not an error and yields the zero Breakdown.
func (c *Calculator) Calculate(input any) (Breakdown, error) {
	sum, err := c.CalculateSummary(input)
	if err != nil {
		return Breakdown{}, err
	}
	return sum.Breakdown, nil
}

// CalculateSummary is Calculate plus the processing counts and per-record
// skip diagnostics.
func (c *Calculator) CalculateSummary(input any) (*Summary, error) {
	records, ok := input.([]any)
	if !ok {
		err := &InvalidInputError{TypeName: fmt.Sprintf("%T", input)}
		c.logger.Error("rejected calculator input", "type", err.TypeName)
		return nil, err
	}

	sum := &Summary{Counts: Counts{Total: len(records)}}
	if len(records) == 0 {
		return sum, nil
	}

	for i, raw := range records {
		if err := c.accumulate(sum, raw, i); err != nil {
			c.logger.Error("accumulation failed", "record", i+1, "error", err)
			return nil, err
		}
	}

	if sum.Counts.Valid == 0 {
		err := &DataValidationError{TotalRecords: sum.Counts.Total}
		c.logger.Error("no valid dedication records in batch", "total_records", sum.Counts.Total)
		return nil, err
	}

	// Should never trip under correct accumulation of validated records.
	b := sum.Breakdown
	if b.CashTotal < 0 || b.ChequeTotal < 0 {
		return nil, &CalculationError{Reason: "accumulated totals are negative"}
	}
	if !isFinite(b.CashTotal) || !isFinite(b.ChequeTotal) {
		return nil, &CalculationError{Reason: "accumulated totals are not finite"}
	}

	c.logger.Info("breakdown calculated",
		"total_records", sum.Counts.Total,
		"valid_records", sum.Counts.Valid,
		"invalid_records", sum.Counts.Invalid,
		"cash_records", sum.Counts.Cash,
		"cheque_records", sum.Counts.Cheque,
		"cash_total", b.CashTotal,
		"cheque_total", b.ChequeTotal,
	)
	if sum.Counts.Invalid > 0 {
		c.logger.Warn("skipped invalid dedication records",
			"skipped", sum.Counts.Invalid,
			"details", sum.Skipped,
		)
	}
	return sum, nil
}

// accumulate validates and folds in one record. A panic while processing the
// record is converted to a *CalculationError naming its 1-based position; the
// validator already contains every failure it can anticipate, so this guard
// exists only for the genuinely unexpected.
func (c *Calculator) accumulate(sum *Summary, raw any, index int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CalculationError{
				Position: index + 1,
				Reason:   fmt.Sprintf("unexpected failure: %v", r),
			}
		}
	}()

	res := c.validator.Validate(raw, index)
	if !res.Valid {
		sum.Counts.Invalid++
		sum.Skipped = append(sum.Skipped, SkippedRecord{Index: index, Errors: res.Errors})
		return nil
	}

	sum.Counts.Valid++
	switch res.Record.Method {
	case dedication.MethodCash:
		sum.Breakdown.CashTotal += res.Record.Amount
		sum.Counts.Cash++
	case dedication.MethodCheque:
		sum.Breakdown.ChequeTotal += res.Record.Amount
		sum.Breakdown.HasCheque = true
		sum.Counts.Cheque++
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
