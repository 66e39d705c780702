package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPrice цена из копеек: "1 500 ₽", копейки показываются только если они есть ("15,50 ₽")
func FormatPrice(kopecks int) string {
	sign := ""
	if kopecks < 0 {
		sign = "-"
		kopecks = -kopecks
	}

	rubles := groupThousands(kopecks / 100)
	if rest := kopecks % 100; rest != 0 {
		return fmt.Sprintf("%s%s,%02d ₽", sign, rubles, rest)
	}
	return sign + rubles + " ₽"
}

// groupThousands "1500000" -> "1 500 000"
func groupThousands(n int) string {
	digits := strconv.Itoa(n)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(d)
	}
	return sb.String()
}
