package service

import (
	"strconv"
	"strings"

	"rastreio/internal/model"
)

// FindRecord looks a search term up in a snapshot. An exact match on the
// order or invoice number anywhere in the snapshot wins over a substring
// match; within each pass the first record in sheet order is returned.
// Returns nil for an empty term or when nothing matches.
func FindRecord(records []model.TrackingRecord, term string) *model.TrackingRecord {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	for i := range records {
		if idText(records[i].OrderID) == term || idText(records[i].InvoiceID) == term {
			return &records[i]
		}
	}
	for i := range records {
		if strings.Contains(idText(records[i].OrderID), term) ||
			strings.Contains(idText(records[i].InvoiceID), term) {
			return &records[i]
		}
	}
	return nil
}

// idText renders an identifier for matching. Zero is the "unassigned"
// placeholder and must never match a search term.
func idText(id int) string {
	if id <= 0 {
		return ""
	}
	return strconv.Itoa(id)
}
