package query

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyPrefix 金额展示前缀
const CurrencyPrefix = "KSh "

// ParseAmount 解析 "KSh 12,500" / "45 km" 这类展示字符串。
// 去掉数字和小数点以外的所有字符后按浮点解析，解析失败返回 0。
func ParseAmount(s string) float64 {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatKSh 按千分位格式化金额，整数不带小数位
func FormatKSh(amount float64) string {
	p := message.NewPrinter(language.English)
	if amount == math.Trunc(amount) {
		return CurrencyPrefix + p.Sprintf("%d", int64(amount))
	}
	return CurrencyPrefix + p.Sprintf("%.2f", amount)
}
