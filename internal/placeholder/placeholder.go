// Package placeholder merges message templates with client data by
// substituting {token} placeholders.
package placeholder

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

var tokenPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Render substitutes the supported tokens plus any extra keys into tpl.
// Tokens with no corresponding non-empty value are left in the output
// unchanged. Uses the current wall clock for the derived due-date tokens.
func Render(tpl string, cliente models.Cliente, extra map[string]string) string {
	return RenderAt(tpl, cliente, extra, time.Now())
}

// RenderAt is Render with an explicit clock. Deterministic given its inputs.
func RenderAt(tpl string, cliente models.Cliente, extra map[string]string, now time.Time) string {
	values := map[string]string{
		"nome":     cliente.Nome,
		"telefone": cliente.Telefone,
		"servidor": cliente.Servidor,
	}

	if cliente.ValorPlano > 0 {
		values["valor_plano"] = FormatCurrency(cliente.ValorPlano)
	}

	// The due date always lands in the current month. A due day that already
	// passed yields a negative days-to-due; it does not roll to next month.
	if cliente.DiaVencimento >= 1 && cliente.DiaVencimento <= 31 {
		due := time.Date(now.Year(), now.Month(), cliente.DiaVencimento, 0, 0, 0, 0, now.Location())
		days := int(math.Ceil(due.Sub(now).Hours() / 24))
		values["dia_vencimento"] = strconv.Itoa(cliente.DiaVencimento)
		values["dias_para_vencer"] = strconv.Itoa(days)
		values["data_vencimento"] = due.Format("02/01/2006")
	}

	for k, v := range extra {
		if v != "" {
			values[k] = v
		}
	}

	return tokenPattern.ReplaceAllStringFunc(tpl, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := values[key]; ok && v != "" {
			return v
		}
		return match
	})
}

// Extract returns the distinct placeholder tokens found in a template body,
// in order of first occurrence. Used to derive MessageTemplate.Placeholders
// at save time.
func Extract(body string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, m := range tokenPattern.FindAllStringSubmatch(body, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		tokens = append(tokens, m[1])
	}
	return tokens
}

// FormatCurrency renders a plan value the way the billing screens show it.
func FormatCurrency(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
