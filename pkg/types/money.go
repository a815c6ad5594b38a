package types

import (
	"fmt"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Money is a decimal amount stored as a DynamoDB number attribute.
// It marshals to JSON as a numeric string, matching decimal.Decimal.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MoneyFromString parses a decimal string into Money.
func MoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", value, err)
	}
	return Money{Decimal: d}, nil
}

// MarshalDynamoDBAttributeValue stores the amount as a number attribute.
func (m Money) MarshalDynamoDBAttributeValue() (ddbtypes.AttributeValue, error) {
	return &ddbtypes.AttributeValueMemberN{Value: m.Decimal.String()}, nil
}

// UnmarshalDynamoDBAttributeValue reads number or string attributes.
func (m *Money) UnmarshalDynamoDBAttributeValue(av ddbtypes.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *ddbtypes.AttributeValueMemberN:
		raw = v.Value
	case *ddbtypes.AttributeValueMemberS:
		raw = v.Value
	case *ddbtypes.AttributeValueMemberNULL:
		m.Decimal = decimal.Zero
		return nil
	default:
		return fmt.Errorf("money: unsupported attribute type %T", av)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("money: parse %q: %w", raw, err)
	}
	m.Decimal = d
	return nil
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}
