package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var euro = accounting.Accounting{Symbol: "€", Precision: 2, Thousand: ".", Decimal: ","}

// PriceLabel renders a price the way the storefront displays it.
func PriceLabel(amount decimal.Decimal) string {
	return euro.FormatMoneyDecimal(amount)
}
