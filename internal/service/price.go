package service

import (
	"strconv"
	"strings"
)

// PriceValue извлекает число из свободнотекстовой цены: валюта, пробелы и
// разделители тысяч отбрасываются ("₹1,299" → 1299). Всё, что после этого не
// парсится как число (включая несколько точек), даёт 0.
func PriceValue(price string) float64 {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
