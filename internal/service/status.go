package service

import (
	"time"

	"rastreio/internal/model"
)

// Display labels and style keys per status, as consumed by the web client.
// The style keys are Tailwind classes but the server treats them as opaque.
var statusInfo = map[model.Status]model.StatusInfo{
	model.StatusDelivered: {
		Status:  model.StatusDelivered,
		Label:   "Entregue",
		Color:   "text-green-700 dark:text-green-400",
		BgColor: "bg-green-100 dark:bg-green-900/30",
	},
	model.StatusDelayed: {
		Status:  model.StatusDelayed,
		Label:   "Atrasado",
		Color:   "text-red-700 dark:text-red-400",
		BgColor: "bg-red-100 dark:bg-red-900/30",
	},
	model.StatusShipped: {
		Status:  model.StatusShipped,
		Label:   "Em Trânsito",
		Color:   "text-blue-700 dark:text-blue-400",
		BgColor: "bg-blue-100 dark:bg-blue-900/30",
	},
	model.StatusPending: {
		Status:  model.StatusPending,
		Label:   "Processando",
		Color:   "text-yellow-700 dark:text-yellow-400",
		BgColor: "bg-yellow-100 dark:bg-yellow-900/30",
	},
}

// DeriveStatus classifies a record relative to now. First match wins:
// a parseable delivery date means delivered even when the expected date
// has passed; an expected date strictly in the past means delayed even
// when the shipped date would otherwise read as in transit.
func DeriveStatus(rec model.TrackingRecord, now time.Time) model.StatusInfo {
	if _, ok := ParseDate(rec.DeliveryDate); ok {
		return statusInfo[model.StatusDelivered]
	}
	if expected, ok := ParseDate(rec.ExpectedDelivery); ok && now.After(expected) {
		return statusInfo[model.StatusDelayed]
	}
	if _, ok := ParseDate(rec.ShippedDate); ok {
		return statusInfo[model.StatusShipped]
	}
	return statusInfo[model.StatusPending]
}

// DeriveTiming computes day counts for a record. A delivered record gets
// the shipped-to-delivered span and nothing else; everything else gets the
// days until the expected date, negative once that date has passed.
func DeriveTiming(rec model.TrackingRecord, now time.Time) model.Timing {
	if _, ok := ParseDate(rec.DeliveryDate); ok {
		if d, ok := DaysBetween(rec.ShippedDate, rec.DeliveryDate, now); ok {
			return model.Timing{DaysInTransit: &d}
		}
		return model.Timing{}
	}
	if expected, ok := ParseDate(rec.ExpectedDelivery); ok {
		d := daysApart(now, expected)
		return model.Timing{DaysUntilDelivery: &d}
	}
	return model.Timing{}
}
