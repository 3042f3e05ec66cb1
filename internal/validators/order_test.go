// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-robinhood/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validOrder() models.OrderRequest {
	return models.OrderRequest{
		Instrument: models.Instrument{
			URL:    "https://api.robinhood.com/instruments/450dfc6d-5510-4d40-abfb-f633b7d9be3e/",
			Symbol: "AAPL",
		},
		Quantity:    decimal.NewFromInt(1),
		Transaction: models.SideBuy,
	}
}

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// ---------------------------------------------------------------------------
// TestOrderValidator_Validate
// ---------------------------------------------------------------------------

func TestOrderValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.OrderRequest)
		wantErr error
	}{
		{name: "market defaults", mutate: func(*models.OrderRequest) {}},
		{
			name: "limit with price",
			mutate: func(r *models.OrderRequest) {
				r.Type = models.OrderTypeLimit
				r.BidPrice = price("187.25")
				r.Time = models.TimeInForceGTC
			},
		},
		{
			name: "stop with stop price",
			mutate: func(r *models.OrderRequest) {
				r.Trigger = models.TriggerStop
				r.StopPrice = price("150")
			},
		},
		{name: "zero quantity", mutate: func(r *models.OrderRequest) { r.Quantity = decimal.Zero }, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", mutate: func(r *models.OrderRequest) { r.Quantity = decimal.NewFromInt(-3) }, wantErr: ErrInvalidQuantity},
		{name: "no instrument", mutate: func(r *models.OrderRequest) { r.Instrument.URL = "" }, wantErr: ErrEmptyInstrument},
		{name: "no symbol", mutate: func(r *models.OrderRequest) { r.Instrument.Symbol = "" }, wantErr: ErrEmptySymbol},
		{name: "no side", mutate: func(r *models.OrderRequest) { r.Transaction = "" }, wantErr: ErrInvalidSide},
		{name: "bad type", mutate: func(r *models.OrderRequest) { r.Type = "stop_limit" }, wantErr: ErrInvalidOrderType},
		{name: "bad trigger", mutate: func(r *models.OrderRequest) { r.Trigger = "later" }, wantErr: ErrInvalidTrigger},
		{name: "bad time in force", mutate: func(r *models.OrderRequest) { r.Time = "forever" }, wantErr: ErrInvalidTimeInForce},
		{name: "limit without price", mutate: func(r *models.OrderRequest) { r.Type = models.OrderTypeLimit }, wantErr: ErrMissingLimitPrice},
		{name: "stop without stop price", mutate: func(r *models.OrderRequest) { r.Trigger = models.TriggerStop }, wantErr: ErrMissingStopPrice},
		{name: "negative price", mutate: func(r *models.OrderRequest) { r.BidPrice = price("-1") }, wantErr: ErrInvalidPrice},
		{name: "zero stop price", mutate: func(r *models.OrderRequest) { r.StopPrice = price("0") }, wantErr: ErrInvalidPrice},
	}

	v := NewOrderValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validOrder()
			tt.mutate(&r)

			err := v.Validate(context.Background(), r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderValidator_Pointer(t *testing.T) {
	r := validOrder()
	require.NoError(t, NewOrderValidator().Validate(context.Background(), &r))
}

func TestOrderValidator_FieldScoping(t *testing.T) {
	r := validOrder()
	r.Transaction = ""
	v := NewOrderValidator()

	assert.NoError(t, v.Validate(context.Background(), r, FieldQuantity, FieldInstrument))
	assert.ErrorIs(t, v.Validate(context.Background(), r, FieldSide), ErrInvalidSide)
	assert.ErrorIs(t, v.Validate(context.Background(), r, "color"), ErrUnknownField)
}

func TestOrderValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewOrderValidator().Validate(context.Background(), "order"), ErrUnsupportedType)
}
