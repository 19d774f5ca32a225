package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// layout of Date.toLocaleString("pt-BR")
	LocaleDateTimeLayout = "02/01/2006, 15:04:05"
	// layout the server stamps on sales and stock movements
	RecordDateTimeLayout = "02/01/2006 15:04:05"
	RecordDateLayout     = "02/01/2006"
)

func FormatCurrency(value decimal.Decimal) string {
	return "R$ " + value.StringFixed(2)
}

func FormatLocaleDateTime(t time.Time) string {
	return t.Format(LocaleDateTimeLayout)
}

func FormatRecordDateTime(t time.Time) string {
	return t.Format(RecordDateTimeLayout)
}

func FormatRecordDate(t time.Time) string {
	return t.Format(RecordDateLayout)
}
