package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMonth resolve o mês alvo a partir da linha de comando. Aceita números
// (1-12) e nomes de mês em inglês em qualquer capitalização, inclusive a
// abreviação de três letras ("jan").
func ParseMonth(input string) (time.Month, error) {
	trimmed := strings.TrimSpace(input)

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month number out of range: %d", n)
		}
		return time.Month(n), nil
	}

	lowered := strings.ToLower(trimmed)
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if lowered == name || lowered == name[:3] {
			return m, nil
		}
	}

	return 0, fmt.Errorf("invalid month: %q", input)
}
