package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rastreio/internal/model"
)

var statusNow = time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)

func TestDeriveStatus(t *testing.T) {
	t.Run("delivery date wins over everything", func(t *testing.T) {
		rec := model.TrackingRecord{
			ShippedDate:      "01/01/2025",
			ExpectedDelivery: "05/01/2025", // already passed
			DeliveryDate:     "08/01/2025",
		}
		info := DeriveStatus(rec, statusNow)
		assert.Equal(t, model.StatusDelivered, info.Status)
		assert.Equal(t, "Entregue", info.Label)
	})

	t.Run("past expected date beats shipped", func(t *testing.T) {
		rec := model.TrackingRecord{
			ShippedDate:      "01/01/2025",
			ExpectedDelivery: "09/01/2025", // yesterday
		}
		info := DeriveStatus(rec, statusNow)
		assert.Equal(t, model.StatusDelayed, info.Status)
		assert.Equal(t, "Atrasado", info.Label)
	})

	t.Run("delayed already on the expected day", func(t *testing.T) {
		// The expected date parses to midnight, so any time later that
		// day is strictly after it.
		rec := model.TrackingRecord{ExpectedDelivery: "10/01/2025"}
		info := DeriveStatus(rec, statusNow)
		assert.Equal(t, model.StatusDelayed, info.Status)
	})

	t.Run("shipped when expected date is ahead", func(t *testing.T) {
		rec := model.TrackingRecord{
			ShippedDate:      "08/01/2025",
			ExpectedDelivery: "15/01/2025",
		}
		info := DeriveStatus(rec, statusNow)
		assert.Equal(t, model.StatusShipped, info.Status)
		assert.Equal(t, "Em Trânsito", info.Label)
	})

	t.Run("unparseable delivery date does not mean delivered", func(t *testing.T) {
		rec := model.TrackingRecord{
			ShippedDate:  "08/01/2025",
			DeliveryDate: "N/A",
		}
		info := DeriveStatus(rec, statusNow)
		assert.Equal(t, model.StatusShipped, info.Status)
	})

	t.Run("pending when nothing parses", func(t *testing.T) {
		rec := model.TrackingRecord{
			ShippedDate:      "N/A",
			ExpectedDelivery: "N/A",
		}
		info := DeriveStatus(rec, statusNow)
		assert.Equal(t, model.StatusPending, info.Status)
		assert.Equal(t, "Processando", info.Label)
	})

	t.Run("style keys are populated", func(t *testing.T) {
		info := DeriveStatus(model.TrackingRecord{}, statusNow)
		assert.NotEmpty(t, info.Color)
		assert.NotEmpty(t, info.BgColor)
	})
}

func TestDeriveTiming(t *testing.T) {
	t.Run("delivered record reports transit days only", func(t *testing.T) {
		rec := model.TrackingRecord{
			ShippedDate:  "01/01/2025",
			DeliveryDate: "03/01/2025",
		}
		timing := DeriveTiming(rec, statusNow)
		require.NotNil(t, timing.DaysInTransit)
		assert.Equal(t, 2, *timing.DaysInTransit)
		assert.Nil(t, timing.DaysUntilDelivery)
	})

	t.Run("delivered without shipped date reports nothing", func(t *testing.T) {
		rec := model.TrackingRecord{
			ShippedDate:  "N/A",
			DeliveryDate: "03/01/2025",
		}
		timing := DeriveTiming(rec, statusNow)
		assert.Nil(t, timing.DaysInTransit)
		assert.Nil(t, timing.DaysUntilDelivery)
	})

	t.Run("undelivered record counts down to the expected date", func(t *testing.T) {
		rec := model.TrackingRecord{ExpectedDelivery: "13/01/2025"}
		timing := DeriveTiming(rec, statusNow)
		assert.Nil(t, timing.DaysInTransit)
		require.NotNil(t, timing.DaysUntilDelivery)
		assert.Equal(t, 3, *timing.DaysUntilDelivery)
	})

	t.Run("overdue keeps the negative sign", func(t *testing.T) {
		rec := model.TrackingRecord{ExpectedDelivery: "08/01/2025"}
		timing := DeriveTiming(rec, statusNow)
		require.NotNil(t, timing.DaysUntilDelivery)
		assert.Equal(t, -2, *timing.DaysUntilDelivery)
	})

	t.Run("nothing parseable yields empty timing", func(t *testing.T) {
		rec := model.TrackingRecord{
			ShippedDate:      "N/A",
			ExpectedDelivery: "N/A",
		}
		timing := DeriveTiming(rec, statusNow)
		assert.Nil(t, timing.DaysInTransit)
		assert.Nil(t, timing.DaysUntilDelivery)
	})
}
