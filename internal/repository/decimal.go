package repository

import (
	"errors"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Costs travel as strings between decimal.Decimal and Decimal128, never
// through a float, so the stored value round-trips exactly.

func decimalToBSON(value *decimal.Decimal) (any, error) {
	if value == nil {
		return nil, nil
	}
	d128, err := primitive.ParseDecimal128(value.String())
	if err != nil {
		return nil, errors.New("converting cost to decimal128 error: " + err.Error())
	}
	return d128, nil
}

func decimalFromBSON(value *primitive.Decimal128) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(value.String())
	if err != nil {
		return nil, errors.New("converting decimal128 cost error: " + err.Error())
	}
	return &d, nil
}
