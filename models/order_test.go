package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderTestNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func fptr(v float64) *float64 {
	return &v
}

func validOrder() Order {
	return Order{
		ID:               1,
		ClientID:         7,
		Title:            "Bracket production run",
		Quantity:         500,
		Processes:        []string{"CNC Machining"},
		BudgetMin:        fptr(8000),
		BudgetMax:        fptr(12000),
		DeliveryDeadline: orderTestNow.AddDate(0, 0, 45),
	}
}

func TestOrderValidate(t *testing.T) {
	t.Run("valid order passes", func(t *testing.T) {
		order := validOrder()
		assert.NoError(t, order.Validate(orderTestNow))
	})

	t.Run("inverted budget range", func(t *testing.T) {
		order := validOrder()
		order.BudgetMin = fptr(15000)

		err := order.Validate(orderTestNow)
		require.Error(t, err)

		var verr *OrderValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "INVALID_BUDGET_RANGE", verr.Code)
	})

	t.Run("deadline already passed", func(t *testing.T) {
		order := validOrder()
		order.DeliveryDeadline = orderTestNow.AddDate(0, 0, -1)

		err := order.Validate(orderTestNow)
		require.Error(t, err)

		var verr *OrderValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "DEADLINE_IN_PAST", verr.Code)
	})

	t.Run("zero deadline is allowed", func(t *testing.T) {
		order := validOrder()
		order.DeliveryDeadline = time.Time{}
		assert.NoError(t, order.Validate(orderTestNow))
	})

	t.Run("negative quantity", func(t *testing.T) {
		order := validOrder()
		order.Quantity = -1

		err := order.Validate(orderTestNow)
		require.Error(t, err)

		var verr *OrderValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "INVALID_QUANTITY", verr.Code)
	})
}

func TestOrderPrimaryProcess(t *testing.T) {
	order := validOrder()
	assert.Equal(t, "CNC Machining", order.PrimaryProcess())

	order.Processes = []string{" ", "", "Sheet Metal Fabrication"}
	assert.Equal(t, "Sheet Metal Fabrication", order.PrimaryProcess())

	order.Processes = nil
	assert.Equal(t, "", order.PrimaryProcess())
}

func TestOrderHasLocationPreference(t *testing.T) {
	order := validOrder()
	assert.False(t, order.HasLocationPreference())

	order.PreferredCity = "Cleveland"
	assert.True(t, order.HasLocationPreference())

	order.PreferredCity = ""
	order.PreferredRegion = "Midwest"
	assert.True(t, order.HasLocationPreference())

	order.PreferredRegion = ""
	order.PreferredCountry = "USA"
	assert.True(t, order.HasLocationPreference())
}

func TestOrderBudgetMidpoint(t *testing.T) {
	order := validOrder()
	mid, ok := order.BudgetMidpoint()
	assert.True(t, ok)
	assert.Equal(t, 10000.0, mid)

	order.BudgetMin = nil
	mid, ok = order.BudgetMidpoint()
	assert.True(t, ok)
	assert.Equal(t, 12000.0, mid, "A single bound is used directly")

	order.BudgetMax = nil
	_, ok = order.BudgetMidpoint()
	assert.False(t, ok)
}

func TestOrderTableName(t *testing.T) {
	assert.Equal(t, "orders", Order{}.TableName())
}
