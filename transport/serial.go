// Package transport opens the serial line to the bootloader.
package transport

import (
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"github.com/stagelight/go-dmxboot/protocol"
)

// Mode returns the line settings of the bootloader: 8 data bits, no parity,
// two stop bits, no flow control.
func Mode(baudRate int) *serial.Mode {
	return &serial.Mode{
		BaudRate: baudRate,
		DataBits: protocol.DataBits,
		Parity:   serial.NoParity,
		StopBits: serial.TwoStopBits,
	}
}

// OpenFunc opens a serial port; serial.Open in production.
type OpenFunc func(name string, mode *serial.Mode) (serial.Port, error)

// Dialer opens serial ports, retrying while the port is busy.
type Dialer struct {
	// Open defaults to serial.Open
	Open OpenFunc

	// Attempts is the total number of tries; 0 means one
	Attempts uint

	// Delay between attempts
	Delay time.Duration

	// OnRetry is called before every retry (optional)
	OnRetry func(attempt uint, err error)
}

// Dial opens name at baudRate with the bootloader line settings.
// A port that does not exist is reported at once; other failures, such as
// a port held by another program, are retried.
func (d Dialer) Dial(name string, baudRate int) (serial.Port, error) {
	open := d.Open
	if open == nil {
		open = serial.Open
	}
	attempts := d.Attempts
	if attempts == 0 {
		attempts = 1
	}

	var port serial.Port
	err := retry.Do(
		func() error {
			p, err := open(name, Mode(baudRate))
			if err != nil {
				if !retryable(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			port = p
			return nil
		},
		retry.Attempts(attempts),
		retry.Delay(d.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if d.OnRetry != nil {
				d.OnRetry(n+1, err)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", name, err)
	}

	return port, nil
}

func retryable(err error) bool {
	var portErr *serial.PortError
	if errors.As(err, &portErr) {
		switch portErr.Code() {
		case serial.PortNotFound, serial.InvalidSerialPort, serial.InvalidSpeed, serial.InvalidDataBits,
			serial.InvalidParity, serial.InvalidStopBits:
			return false
		}
	}
	return true
}

// ListPorts returns the serial ports found on the system.
func ListPorts() ([]*enumerator.PortDetails, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}
	return ports, nil
}
