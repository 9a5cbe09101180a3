package breakdown

import "fmt"

// Stable tags carried in error messages. The classifier matches on these, so
// they must not change between releases.
const (
	TagInvalidInput   = "INVALID_INPUT"
	TagDataValidation = "DATA_VALIDATION_ERROR"
	TagCalculation    = "CALCULATION_ERROR"
)

// InvalidInputError reports that the calculator input was not a record
// sequence. The message names the runtime type that was actually received.
type InvalidInputError struct {
	TypeName string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: dedication records must be a list, got %s", TagInvalidInput, e.TypeName)
}

// DataValidationError reports that every record in a non-empty batch failed
// field-level validation.
type DataValidationError struct {
	TotalRecords int
}

func (e *DataValidationError) Error() string {
	return fmt.Sprintf("%s: all %d dedication records failed validation", TagDataValidation, e.TotalRecords)
}

// CalculationError reports an impossible accumulation state, or an unexpected
// panic while processing a specific record.
type CalculationError struct {
	// Position is the 1-based record position, or 0 when the failure is not
	// tied to a single record.
	Position int
	Reason   string
	Err      error
}

func (e *CalculationError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("%s: record %d: %s", TagCalculation, e.Position, e.Reason)
	}
	return fmt.Sprintf("%s: %s", TagCalculation, e.Reason)
}

func (e *CalculationError) Unwrap() error { return e.Err }
