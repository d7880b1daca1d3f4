package smoke

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// PrintTable writes rows as a box-drawn table. Columns in money are printed
// as currency.
func PrintTable(w io.Writer, columns []string, rows []map[string]interface{}, money map[string]bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (no rows)")
		return
	}

	cells := make([][]string, len(rows))
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = utf8.RuneCountInString(col)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i, col := range columns {
			val := formatValue(row[col], money[col])
			cells[r][i] = val
			if n := utf8.RuneCountInString(val); n > widths[i] {
				widths[i] = n
			}
		}
	}

	border(w, widths, "┌", "┬", "┐")
	line(w, widths, columns)
	border(w, widths, "├", "┼", "┤")
	for _, row := range cells {
		line(w, widths, row)
	}
	border(w, widths, "└", "┴", "┘")
}

func border(w io.Writer, widths []int, left, mid, right string) {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	fmt.Fprintln(w, sb.String())
}

func line(w io.Writer, widths []int, values []string) {
	var sb strings.Builder
	sb.WriteString("│")
	for i, val := range values {
		sb.WriteString(" ")
		sb.WriteString(val)
		sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(val)))
		sb.WriteString(" │")
	}
	fmt.Fprintln(w, sb.String())
}

func formatValue(val interface{}, money bool) string {
	if val == nil {
		return "NULL"
	}
	if money {
		if f, ok := toFloat(val); ok {
			return FormatMoney(f)
		}
	}
	return fmt.Sprintf("%v", val)
}

// FormatMoney renders an amount as $1,234.50.
func FormatMoney(amount float64) string {
	sign := ""
	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.IntPart()
	cents := d.Sub(decimal.NewFromInt(whole)).StringFixed(2)
	return sign + "$" + humanize.Comma(whole) + strings.TrimPrefix(cents, "0")
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
