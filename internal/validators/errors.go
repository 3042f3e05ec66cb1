package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrEmptyInstrument    = errors.New("instrument url is required")
	ErrEmptySymbol        = errors.New("instrument symbol is required")
	ErrInvalidSide        = errors.New("invalid order side")
	ErrInvalidOrderType   = errors.New("invalid order type")
	ErrInvalidTrigger     = errors.New("invalid order trigger")
	ErrInvalidTimeInForce = errors.New("invalid time in force")
	ErrMissingLimitPrice  = errors.New("limit order requires a price")
	ErrMissingStopPrice   = errors.New("stop order requires a stop price")
	ErrInvalidPrice       = errors.New("price must be positive")
)
