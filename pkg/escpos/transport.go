package escpos

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Transport delivers a finished ESC/POS stream to a physical printer.
type Transport interface {
	// Send writes raw ESC/POS bytes to the printer.
	Send(data []byte) error
	// Available reports whether the printer looks reachable.
	Available() bool
}

// --- USB transport (writes to a device file, e.g. /dev/usb/lp0) ---

type usbTransport struct {
	path string
}

// NewUSBTransport writes jobs to a USB device file, opened per job.
func NewUSBTransport(devicePath string) Transport {
	return &usbTransport{path: devicePath}
}

func (t *usbTransport) Send(data []byte) error {
	f, err := os.OpenFile(t.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("escpos: open USB device %s: %w", t.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("escpos: write to USB device %s: %w", t.path, err)
	}
	return nil
}

func (t *usbTransport) Available() bool {
	_, err := os.Stat(t.path)
	return err == nil
}

// --- Network transport (raw TCP port 9100 style) ---

type networkTransport struct {
	address string
	timeout time.Duration
}

// NewNetworkTransport dials the printer per job. Address includes the port,
// e.g. "192.168.1.100:9100".
func NewNetworkTransport(address string) Transport {
	return &networkTransport{address: address, timeout: 5 * time.Second}
}

func (t *networkTransport) Send(data []byte) error {
	conn, err := net.DialTimeout("tcp", t.address, t.timeout)
	if err != nil {
		return fmt.Errorf("escpos: connect to %s: %w", t.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("escpos: write to %s: %w", t.address, err)
	}
	return nil
}

func (t *networkTransport) Available() bool {
	conn, err := net.DialTimeout("tcp", t.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null transport (no hardware configured) ---

type nullTransport struct{}

// NewNullTransport discards jobs, for terminals without a thermal printer.
func NewNullTransport() Transport {
	return &nullTransport{}
}

func (t *nullTransport) Send(data []byte) error { return nil }
func (t *nullTransport) Available() bool        { return false }

// NewTransportFromConfig builds a Transport from configuration.
//
//	printerType: "usb", "network", or "none"
//	usbPath: device path for USB printers (e.g. "/dev/usb/lp0")
//	address: TCP address for network printers (e.g. "192.168.1.100:9100")
func NewTransportFromConfig(printerType, usbPath, address string) (Transport, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("escpos: USB path is required for USB printer type")
		}
		return NewUSBTransport(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("escpos: address is required for network printer type")
		}
		return NewNetworkTransport(address), nil
	case "none", "":
		return NewNullTransport(), nil
	default:
		return nil, fmt.Errorf("escpos: unknown printer type %q (use usb, network, or none)", printerType)
	}
}
