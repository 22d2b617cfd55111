package printer

import (
	"fmt"
	"net"
	"time"

	"github.com/ruaburger/pos-app/utils"
)

// Printer sends a raw ESC/POS byte stream to a receipt printer.
type Printer interface {
	Print(data []byte) error
}

// NetworkPrinter talks to a printer listening on a raw TCP port
// (the usual port-9100 setup for POS-80 class devices).
type NetworkPrinter struct {
	Addr    string
	Timeout time.Duration
}

func NewNetworkPrinter(addr string) *NetworkPrinter {
	return &NetworkPrinter{
		Addr:    addr,
		Timeout: 5 * time.Second,
	}
}

func (p *NetworkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.Addr, p.Timeout)
	if err != nil {
		return fmt.Errorf("printer dial %s: %w", p.Addr, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(p.Timeout)); err != nil {
		return err
	}
	for len(data) > 0 {
		n, err := conn.Write(data)
		if err != nil {
			return fmt.Errorf("printer write: %w", err)
		}
		data = data[n:]
	}
	return nil
}

// NoopPrinter discards everything. Used when PRINTER_ADDR is not configured,
// so the POS keeps working on machines without a printer.
type NoopPrinter struct{}

func (NoopPrinter) Print(data []byte) error {
	utils.InfoLogger.Printf("printer not configured, discarding %d bytes", len(data))
	return nil
}
