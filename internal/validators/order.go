package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-robinhood/models"
)

// Field names accepted by OrderValidator for field-level scoping.
const (
	FieldQuantity    = "quantity"
	FieldInstrument  = "instrument"
	FieldSide        = "side"
	FieldType        = "type"
	FieldTrigger     = "trigger"
	FieldTimeInForce = "time_in_force"
	FieldPrice       = "price"
	FieldStopPrice   = "stop_price"
)

var allOrderFields = []string{
	FieldQuantity, FieldInstrument, FieldSide, FieldType,
	FieldTrigger, FieldTimeInForce, FieldPrice, FieldStopPrice,
}

var (
	allowedSides        = []models.Side{models.SideBuy, models.SideSell}
	allowedOrderTypes   = []models.OrderType{models.OrderTypeMarket, models.OrderTypeLimit}
	allowedTriggers     = []models.Trigger{models.TriggerImmediate, models.TriggerStop}
	allowedTimesInForce = []models.TimeInForce{
		models.TimeInForceGFD, models.TimeInForceGTC, models.TimeInForceIOC, models.TimeInForceOPG,
	}
)

// OrderValidator checks a models.OrderRequest before it is placed. Zero
// Type, Trigger and Time are accepted; the request falls back to defaults
// for them.
type OrderValidator struct{}

func NewOrderValidator() Validator {
	return &OrderValidator{}
}

func (v *OrderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OrderRequest:
		return v.validateOrderRequest(ctx, value, fields...)
	case *models.OrderRequest:
		return v.validateOrderRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *OrderValidator) validateOrderRequest(_ context.Context, r models.OrderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = allOrderFields
	}

	for _, f := range fields {
		switch f {
		case FieldQuantity:
			if !r.Quantity.IsPositive() {
				return ErrInvalidQuantity
			}
		case FieldInstrument:
			if r.Instrument.URL == "" {
				return ErrEmptyInstrument
			}
			if r.Instrument.Symbol == "" {
				return ErrEmptySymbol
			}
		case FieldSide:
			if !slices.Contains(allowedSides, r.Transaction) {
				return fmt.Errorf("%w: %q", ErrInvalidSide, r.Transaction)
			}
		case FieldType:
			if r.Type != "" && !slices.Contains(allowedOrderTypes, r.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidOrderType, r.Type)
			}
		case FieldTrigger:
			if r.Trigger != "" && !slices.Contains(allowedTriggers, r.Trigger) {
				return fmt.Errorf("%w: %q", ErrInvalidTrigger, r.Trigger)
			}
		case FieldTimeInForce:
			if r.Time != "" && !slices.Contains(allowedTimesInForce, r.Time) {
				return fmt.Errorf("%w: %q", ErrInvalidTimeInForce, r.Time)
			}
		case FieldPrice:
			if r.Type == models.OrderTypeLimit && !r.BidPrice.Valid {
				return ErrMissingLimitPrice
			}
			if err := positive(r.BidPrice); err != nil {
				return err
			}
		case FieldStopPrice:
			if r.Trigger == models.TriggerStop && !r.StopPrice.Valid {
				return ErrMissingStopPrice
			}
			if err := positive(r.StopPrice); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func positive(d decimal.NullDecimal) error {
	if d.Valid && !d.Decimal.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}
