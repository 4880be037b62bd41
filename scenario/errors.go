package scenario

import "errors"

var (
	// ErrInvalidScenario indicates a document that fails schema, decode or semantic checks.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
	// ErrUnknownOp indicates a query op outside the supported set.
	ErrUnknownOp = errors.New("scenario: unknown query op")
	// ErrMissingCells indicates a components or bridge query without cells.
	ErrMissingCells = errors.New("scenario: query op needs cells")
)
