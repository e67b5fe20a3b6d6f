package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "backend isoformat", raw: `"2026-03-04T10:20:30.123456"`, want: time.Date(2026, 3, 4, 10, 20, 30, 123456000, time.UTC)},
		{name: "without fraction", raw: `"2026-03-04T10:20:30"`, want: time.Date(2026, 3, 4, 10, 20, 30, 0, time.UTC)},
		{name: "rfc3339", raw: `"2026-03-04T10:20:30Z"`, want: time.Date(2026, 3, 4, 10, 20, 30, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, ts.Equal(tt.want), "got %v", ts.Time)
		})
	}
}

func TestTimestamp_NullAndEmpty(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestOrderStatusStep(t *testing.T) {
	awaiting, ok := OrderStatusStep(OrderStatusAwaitingPayment)
	require.True(t, ok)
	shipped, ok := OrderStatusStep(OrderStatusShipped)
	require.True(t, ok)
	assert.Less(t, awaiting, shipped)

	_, ok = OrderStatusStep(OrderStatusCancelled)
	assert.False(t, ok)

	_, ok = OrderStatusStep("lost_in_transit")
	assert.False(t, ok)
}

func TestPayment_Terminal(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{PaymentStatusPending, false},
		{PaymentStatusPaid, true},
		{PaymentStatusFailed, true},
		{PaymentStatusExpired, true},
		{PaymentStatusRefunded, true},
	}

	for _, tt := range tests {
		p := Payment{Status: tt.status}
		assert.Equal(t, tt.want, p.Terminal(), "status %q", tt.status)
	}
}

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"Ada", "", "Ada"},
		{"", "Lovelace", "Lovelace"},
		{"", "", ""},
	}

	for _, tt := range tests {
		u := User{FirstName: tt.first, LastName: tt.last}
		assert.Equal(t, tt.want, u.FullName())
	}
}
