package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeSchedule_MonthlyTotal(t *testing.T) {
	schedule := ChargeSchedule{
		"societyCharges":        float64(500),
		"repairsAndMaintenance": float64(200),
		"sinkingFund":           float64(100),
		"waterCharges":          float64(150),
		"insuranceCharges":      float64(30),
		"parkingCharges":        float64(20),
	}

	assert.True(t, schedule.MonthlyTotal().Equal(decimal.NewFromInt(1000)))
}

func TestChargeSchedule_MonthlyTotal_IgnoresNonNumeric(t *testing.T) {
	schedule := ChargeSchedule{
		"societyCharges": float64(500),
		"waterCharges":   float64(500),
		"remarks":        "includes july revision",
		"active":         true,
		"attachments":    []interface{}{"a", "b"},
	}

	assert.True(t, schedule.MonthlyTotal().Equal(decimal.NewFromInt(1000)))
}

func TestChargeSchedule_MonthlyTotal_NilSchedule(t *testing.T) {
	var schedule ChargeSchedule
	assert.True(t, schedule.MonthlyTotal().IsZero())
}

func TestChargeSchedule_ScanValue_RoundTrip(t *testing.T) {
	schedule := ChargeSchedule{
		"societyCharges": float64(750),
		"note":           "lift repair levy",
	}

	raw, err := schedule.Value()
	require.NoError(t, err)

	var scanned ChargeSchedule
	require.NoError(t, scanned.Scan(raw))

	assert.True(t, scanned.MonthlyTotal().Equal(decimal.NewFromInt(750)))
	assert.Equal(t, "lift repair levy", scanned["note"])
}

func TestChargeSchedule_Scan_Nil(t *testing.T) {
	var scanned ChargeSchedule
	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.MonthlyTotal().IsZero())
}
