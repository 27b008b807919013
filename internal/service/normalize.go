package service

import (
	"log/slog"
	"strconv"
	"strings"

	"rastreio/internal/model"
)

// Column labels as they appear in the published sheet header.
const (
	colOrder            = "Pedido"
	colShippedDate      = "Data de Envio"
	colExpectedDelivery = "Previsao de Entrega"
	colDeliveryDate     = "Data de Entrega"
	colInvoice          = "Nota Fiscal"
	colCity             = "Cidade"
	colState            = "Estado"
	colCarrier          = "Transportadora"
	colProductValue     = "Valor do Produto"
	colQuantity         = "Quantidade"
	colProductType      = "Tipo do Produto"
	colShippingValue    = "Valor do Transporte"
	colModel            = "Modelo"
)

// Fallback values for cells the sheet leaves blank or fills with garbage.
// Normalization degrades to these instead of dropping the row; only a row
// with no usable identifier at all is discarded.
const (
	defaultText     = NotProvided
	defaultCurrency = "R$ 0,00"
	defaultQuantity = 1
)

// NormalizeRows turns decoded sheet rows into tracking records. A row
// survives only if Pedido or Nota Fiscal holds a real numeric identifier;
// every other field falls back to its default when missing or malformed.
// Row order is preserved and the function is pure apart from logging, so
// the same input always yields the same records.
func NormalizeRows(rows []RawRow) []model.TrackingRecord {
	records := make([]model.TrackingRecord, 0, len(rows))
	for _, row := range rows {
		rec, ok := normalizeRow(row)
		if !ok {
			slog.Debug("dropping sheet row without identifier",
				"order", row[colOrder], "invoice", row[colInvoice])
			continue
		}
		records = append(records, rec)
	}
	return records
}

func normalizeRow(row RawRow) (model.TrackingRecord, bool) {
	orderID := parseID(row[colOrder])
	invoiceID := parseID(row[colInvoice])
	if orderID == 0 && invoiceID == 0 {
		return model.TrackingRecord{}, false
	}

	return model.TrackingRecord{
		OrderID:          orderID,
		InvoiceID:        invoiceID,
		ShippedDate:      textOr(row[colShippedDate], defaultText),
		ExpectedDelivery: textOr(row[colExpectedDelivery], defaultText),
		DeliveryDate:     strings.TrimSpace(row[colDeliveryDate]),
		City:             textOr(row[colCity], defaultText),
		State:            textOr(row[colState], defaultText),
		Carrier:          textOr(row[colCarrier], defaultText),
		ProductValue:     textOr(row[colProductValue], defaultCurrency),
		ShippingValue:    textOr(row[colShippingValue], defaultCurrency),
		Quantity:         parseQuantity(row[colQuantity]),
		ProductType:      textOr(row[colProductType], defaultText),
		Model:            textOr(row[colModel], defaultText),
	}, true
}

// parseID reads a numeric identifier. Zero is the "unassigned" placeholder,
// so anything non-numeric, negative, or zero collapses to 0.
func parseID(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	// Spreadsheet exports sometimes render integers as floats.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int(f)
	}
	return 0
}

func parseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return defaultQuantity
	}
	return n
}

func textOr(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}
