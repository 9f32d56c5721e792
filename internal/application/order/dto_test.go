package order

import (
	"encoding/json"
	"testing"

	"github.com/ecommerce/backend/internal/domain/customer"
	"github.com/ecommerce/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderResponse_NestedCustomer(t *testing.T) {
	c, err := customer.NewCustomer("Maria Silva", "52998224725")
	require.NoError(t, err)

	o, err := order.NewOrder(c.ID)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(uuid.New(), "Wireless Keyboard", 2, decimal.NewFromFloat(149.90)))

	resp := ToOrderResponse(o, c)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))

	// The detail view embeds the full customer object
	nested, ok := body["customer"].(map[string]any)
	require.True(t, ok, "expected a nested customer object")
	assert.Equal(t, c.ID.String(), nested["id"])
	assert.Equal(t, "Maria Silva", nested["name"])
	assert.Equal(t, "52998224725", nested["taxId"])

	assert.NotContains(t, body, "customerId")
	assert.NotContains(t, body, "customerName")
}
