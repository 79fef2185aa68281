package order

import (
	"github.com/kayumanis/furniture-order-service/internal/calc"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/shopspring/decimal"
)

// Summarize totals an order's lines. Every sum is rendered with two
// decimals; missing or non-numeric values count as zero, so the result does
// not depend on item order.
func Summarize(items []model.OrderItem, currency string) model.OrderSummary {
	var cbm, usd, gross, net, gw, nw decimal.Decimal
	for _, it := range items {
		cbm = calc.SafeAdd(cbm, it.CBMTotal)
		usd = calc.SafeAdd(usd, it.FOBTotalUSD)
		gross = calc.SafeAdd(gross, it.GrossWeightTotal)
		net = calc.SafeAdd(net, it.NetWeightTotal)
		gw = calc.SafeAdd(gw, it.TotalGWTotal)
		nw = calc.SafeAdd(nw, it.TotalNWTotal)
	}

	if currency == "" {
		currency = calc.DefaultCurrency
	}

	return model.OrderSummary{
		TotalCBM:          calc.Fixed(cbm, 2),
		TotalUSD:          calc.Fixed(usd, 2),
		TotalGrossWeight:  calc.Fixed(gross, 2),
		TotalNetWeight:    calc.Fixed(net, 2),
		TotalGW:           calc.Fixed(gw, 2),
		TotalNW:           calc.Fixed(nw, 2),
		Currency:          currency,
		TotalUSDFormatted: calc.FormatCurrency(usd, currency),
	}
}

// SummarizeReport totals report lines the same way Summarize does.
func SummarizeReport(items []model.ReportItem, currency string) model.OrderSummary {
	lines := make([]model.OrderItem, len(items))
	for i := range items {
		lines[i] = items[i].OrderItem
	}
	return Summarize(lines, currency)
}
