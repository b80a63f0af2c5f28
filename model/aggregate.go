package model

// AggregateKind selects a reduction over a set of rows.
type AggregateKind uint8

const (
	// AggregateSum adds all non-null values using a widened accumulator.
	AggregateSum AggregateKind = iota + 1
	// AggregateMean is the truncated average of all non-null values.
	AggregateMean
	// AggregateMin is the smallest non-null value.
	AggregateMin
	// AggregateMax is the largest non-null value.
	AggregateMax
	// AggregateFirst is the stored value at the first supplied row.
	AggregateFirst
	// AggregateCount is the number of non-null rows.
	AggregateCount
	// AggregateVar is the sample variance of all non-null values.
	AggregateVar
	// AggregateStdDev is the sample standard deviation of all non-null values.
	AggregateStdDev
)

// AggregateKinds lists every reduction in a stable display order.
var AggregateKinds = []AggregateKind{
	AggregateCount,
	AggregateSum,
	AggregateMean,
	AggregateMin,
	AggregateMax,
	AggregateVar,
	AggregateStdDev,
	AggregateFirst,
}

// String returns the string representation of the AggregateKind.
func (k AggregateKind) String() string {
	switch k {
	case AggregateSum:
		return "Sum"
	case AggregateMean:
		return "Mean"
	case AggregateMin:
		return "Min"
	case AggregateMax:
		return "Max"
	case AggregateFirst:
		return "First"
	case AggregateCount:
		return "Count"
	case AggregateVar:
		return "Var"
	case AggregateStdDev:
		return "StdDev"
	default:
		return "Unknown"
	}
}
