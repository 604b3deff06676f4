// Package money はレスポンスに出力する金額の丸めを提供します。
package money

import "github.com/shopspring/decimal"

// Places はレスポンスに出力する小数点以下の桁数です。
const Places = 2

// Round は金額を小数点以下2桁に丸めて返します（偶数丸めではなく四捨五入）。
func Round(d decimal.Decimal) float64 {
	return d.Round(Places).InexactFloat64()
}

// RoundFloat はfloat64の金額をRoundと同じ規則で丸めます。
func RoundFloat(f float64) float64 {
	return Round(decimal.NewFromFloat(f))
}
