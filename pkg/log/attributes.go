// Package log defines standard attribute keys for matrix operations.
//
// Using these keys consistently across the library enables structured log
// analysis and filtering: every kernel operation reports the same shape and
// operation attributes regardless of which package emitted the record.

package log

// Operation context.
// These attributes identify the component and operation being performed.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "matrix", "linalg"
	ComponentKey = "component"

	// OperationKey specifies the matrix operation being performed.
	// Standard values: "lu", "det", "inv", "matmul", "transpose"
	OperationKey = "op"
)

// Shape and data characteristics.
const (
	// RowsKey indicates the number of rows of the matrix being processed.
	RowsKey = "matrix.rows"

	// ColsKey indicates the number of columns of the matrix being processed.
	ColsKey = "matrix.cols"

	// DataTypeKey specifies the element type of the container.
	// Examples: "float64", "int", "int32"
	DataTypeKey = "matrix.dtype"
)

// Decomposition context.
const (
	// PivotIndexKey records the pivot column currently being eliminated.
	PivotIndexKey = "lu.pivot"

	// PivotValueKey records the value of the diagonal pivot L[k][k].
	PivotValueKey = "lu.pivot_value"

	// ToleranceKey records the singularity tolerance in effect.
	ToleranceKey = "lu.tolerance"
)

// Error context.
const (
	// ErrAttrKey is the conventional key under which an error value is
	// attached to a record. The zerolog backend extracts stack trace
	// information from cockroachdb/errors values logged under this key.
	ErrAttrKey = "error"

	// StacktraceAttrKey carries the extracted stack trace, when present.
	StacktraceAttrKey = "stacktrace"
)

// Standard attribute value constants for common operations.
const (
	OperationLU        = "lu"
	OperationDet       = "det"
	OperationInv       = "inv"
	OperationMatMul    = "matmul"
	OperationTranspose = "transpose"
)
