package usecase

import "context"

// GeometryCorrection is one stored geometry rewritten by an axis swap.
type GeometryCorrection struct {
	Target  string
	ID      int64
	Before  string
	After   string
	Swapped int
}

// GeometryFailure is stored geometry that is invalid and cannot be repaired.
type GeometryFailure struct {
	Target string
	ID     int64
	Reason string
}

// GeometryRepairReport summarizes one maintenance pass.
type GeometryRepairReport struct {
	Scanned      int
	Applied      bool
	Corrections  []GeometryCorrection
	Unrepairable []GeometryFailure
}

// GeometryRepairUsecase finds stored geometry with swapped axes. When apply
// is false nothing is written.
type GeometryRepairUsecase interface {
	Repair(ctx context.Context, apply bool) (*GeometryRepairReport, error)
}
