// Package dedication defines the donation record model and its field-level
// validation.
//
// Records cross the boundary as decoded JSON (form submissions, store
// snapshots), so validation operates on untyped values and produces a typed
// Record only when every field check passes. Validation never rejects a whole
// batch: callers decide what to do with individual failures.
package dedication

// Method identifies how a dedication was paid.
type Method string

const (
	MethodCash   Method = "cash"
	MethodCheque Method = "cheque"
)

// Record is a single validated dedication entry.
type Record struct {
	// Amount is the donated amount in whole currency units. Always finite
	// and strictly positive for a validated record.
	Amount float64

	// Method is the payment method, restricted to cash or cheque.
	Method Method

	// Category is the free-form dedication category label (e.g. "十一", "感恩").
	Category string

	// DedicatorID is an opaque identifier of the donor.
	DedicatorID string

	// Date is the caller-supplied date representation. No calendar
	// validation is performed beyond non-emptiness.
	Date string
}
