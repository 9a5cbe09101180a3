package dedication

import (
	"log/slog"
	"math"
	"strings"
)

// Result is the outcome of validating one raw record.
type Result struct {
	// Valid is true when no field check failed.
	Valid bool

	// Errors lists the field-level failures in check order. At most one
	// error is reported per field.
	Errors []string

	// Record holds the typed record. Populated only when Valid is true.
	Record Record
}

// Validator checks the shape and field constraints of raw dedication values.
type Validator struct {
	logger *slog.Logger
}

// NewValidator creates a validator. A nil logger falls back to slog.Default.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger.With("component", "record_validator")}
}

// Validate checks a single raw record. The index is used only for log
// correlation, never for logic. Validate never panics: every failure mode is
// reported through Result.Errors.
func (v *Validator) Validate(value any, index int) Result {
	raw, ok := value.(map[string]any)
	if !ok {
		res := Result{Errors: []string{"record is not a valid object"}}
		v.logger.Warn("dedication record rejected", "index", index, "errors", res.Errors)
		return res
	}

	var res Result
	var rec Record

	// Amount: one error at most, the not-a-number check takes priority.
	if amount, ok := asNumber(raw["amount"]); !ok {
		res.Errors = append(res.Errors, "amount must be a number")
	} else if amount <= 0 {
		res.Errors = append(res.Errors, "amount must be greater than 0")
	} else if math.IsNaN(amount) || math.IsInf(amount, 0) {
		res.Errors = append(res.Errors, "amount must be a finite value")
	} else {
		rec.Amount = amount
	}

	if mv, present := raw["method"]; !present || mv == nil || mv == "" {
		res.Errors = append(res.Errors, "missing payment method")
	} else if method, ok := mv.(string); !ok {
		res.Errors = append(res.Errors, "payment method must be a string")
	} else if method != string(MethodCash) && method != string(MethodCheque) {
		res.Errors = append(res.Errors, "payment method must be cash or cheque")
	} else {
		rec.Method = Method(method)
	}

	rec.Category = v.requireText(raw, "dedicationCategory", "dedication category", &res)
	rec.DedicatorID = v.requireText(raw, "dedicatorId", "dedicator id", &res)
	rec.Date = v.requireText(raw, "dedicationDate", "dedication date", &res)

	res.Valid = len(res.Errors) == 0
	if res.Valid {
		res.Record = rec
	} else {
		v.logger.Warn("dedication record rejected", "index", index, "errors", res.Errors)
	}
	return res
}

// requireText applies the shared missing / wrong-type / empty-after-trim chain
// to a string field and returns the value when it passes.
func (v *Validator) requireText(raw map[string]any, key, label string, res *Result) string {
	fv, present := raw[key]
	if !present || fv == nil || fv == "" {
		res.Errors = append(res.Errors, "missing "+label)
		return ""
	}
	s, ok := fv.(string)
	if !ok {
		res.Errors = append(res.Errors, label+" must be a string")
		return ""
	}
	if strings.TrimSpace(s) == "" {
		res.Errors = append(res.Errors, label+" must not be empty")
		return ""
	}
	return s
}

// asNumber accepts the numeric types a decoded record can plausibly carry.
// JSON decoding always yields float64; the integer cases cover records built
// in-process.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
