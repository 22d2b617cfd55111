package printer

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/ruaburger/pos-app/models"
	"github.com/ruaburger/pos-app/utils"
)

// ESC/POS control sequences for a POS-80 class printer.
var (
	cmdInit       = []byte{0x1b, '@'}
	cmdCenter     = []byte{0x1b, 'a', 0x01}
	cmdLeft       = []byte{0x1b, 'a', 0x00}
	cmdBoldOn     = []byte{0x1b, 'E', 0x01}
	cmdBoldOff    = []byte{0x1b, 'E', 0x00}
	cmdSizeNormal = []byte{0x1d, '!', 0x00}
	cmdSizeMedium = []byte{0x1d, '!', 0x01} // double height
	cmdSizeBig    = []byte{0x1d, '!', 0x11} // double width and height
	cmdCut        = []byte{0x1d, 'V', 0x00}
)

const lineWidth = 42

// The printer firmware expects CP1252; unsupported runes are replaced.
// Encoders carry transform state, so each render gets its own.
func encodeLine(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

// RenderOrderTicket renders a kitchen/delivery ticket for an order with its
// items expanded.
func RenderOrderTicket(order *models.Order) []byte {
	var buf bytes.Buffer

	buf.Write(cmdInit)
	buf.Write(cmdCenter)
	buf.Write(cmdSizeBig)
	buf.Write(cmdBoldOn)
	buf.WriteString("THE RUA BURGUER\n")
	buf.Write(cmdSizeMedium)
	buf.WriteString("COMANDA DE PEDIDO\n\n")
	buf.Write(cmdLeft)
	buf.Write(cmdBoldOff)

	buf.Write(cmdSizeMedium)
	customer := order.CustomerName
	if customer == "" {
		customer = "N/A"
	}
	buf.Write(encodeLine(fmt.Sprintf("Pedido: #%d\n", order.ID)))
	buf.Write(encodeLine(fmt.Sprintf("Cliente: %s\n", customer)))
	buf.Write(encodeLine(fmt.Sprintf("Tipo: %s\n", strings.ToUpper(order.Type))))
	if order.Address != "" {
		buf.Write(encodeLine(fmt.Sprintf("Endereço: %s\n", order.Address)))
	}
	if order.Phone != "" {
		buf.Write(encodeLine(fmt.Sprintf("Tel: %s\n", order.Phone)))
	}
	buf.Write(encodeLine(fmt.Sprintf("Data: %s\n", order.CreatedAt.Format("2006-01-02 15:04"))))
	buf.WriteString(strings.Repeat("-", lineWidth) + "\n")

	for _, item := range order.Items {
		name := item.ProductName
		if len(name) > 25 {
			name = name[:25]
		}
		buf.Write(encodeLine(fmt.Sprintf("%s  %dx %6.2f\n", name, item.Quantity, item.Total)))
		for _, extra := range item.Extras {
			buf.Write(encodeLine("  + " + extra.Name + "\n"))
		}
		if len(item.RemovedIngredients) > 0 {
			buf.Write(encodeLine("  Sem: " + strings.Join(item.RemovedIngredients, ", ") + "\n"))
		}
		if item.Note != "" {
			buf.Write(encodeLine("  Obs: " + item.Note + "\n"))
		}
	}

	buf.WriteString(strings.Repeat("-", lineWidth) + "\n")
	buf.Write(cmdCenter)
	buf.Write(cmdSizeBig)
	buf.Write(cmdBoldOn)
	buf.Write(encodeLine(fmt.Sprintf("TOTAL: %s\n", utils.FormatCurrencyBRL(order.Total))))
	buf.Write(cmdSizeMedium)
	buf.Write(cmdBoldOff)
	buf.WriteString("\n\n")
	buf.Write(cmdCut)

	return buf.Bytes()
}

// RenderReport renders a plain-text report (one string per line) under a
// double-size title, for the cash-closing receipt.
func RenderReport(title string, lines []string) []byte {
	var buf bytes.Buffer

	buf.Write(cmdInit)
	buf.Write(cmdCenter)
	buf.Write(cmdSizeBig)
	buf.Write(encodeLine(title + "\n"))
	buf.Write(cmdSizeNormal)
	buf.WriteString("\n")

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.Write(encodeLine(line))
		buf.WriteString("\n")
	}

	buf.WriteString("\n\n")
	buf.Write(cmdCut)

	return buf.Bytes()
}
