package bootloader

import (
	"fmt"
	"io"
	"time"

	"github.com/stagelight/go-dmxboot/flash"
	"github.com/stagelight/go-dmxboot/ihex"
	"github.com/stagelight/go-dmxboot/protocol"
)

// State is the position of an Uploader in the upload sequence.
type State int

// Upload states. There are no backward transitions.
const (
	StateIdle State = iota
	StateTransmittingPage
	StateTransmittingTerminator
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTransmittingPage:
		return "transmitting page"
	case StateTransmittingTerminator:
		return "transmitting terminator"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Uploader sends a flash image to the bootloader, one frame per page.
//
// The protocol is open-loop: nothing is read back and the only flow control
// is the configured pacing. Uploader is not safe for concurrent use and
// owns its transport for the duration of an upload.
type Uploader struct {
	transport io.Writer
	config    Config

	state        State
	cursor       int
	bytesWritten int
}

// New creates a new Uploader writing to the given transport.
// The transport must already be opened and configured (250000 baud, 8N2).
//
// Example:
//
//	port, _ := serial.Open("/dev/ttyUSB0", mode)
//	up := bootloader.New(port,
//	    bootloader.WithProgressCallback(progressFunc),
//	)
func New(transport io.Writer, opts ...Option) *Uploader {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Uploader{
		transport: transport,
		config:    cfg,
	}
}

// State returns the current upload state.
func (u *Uploader) State() State {
	return u.state
}

// UploadFile parses an Intel HEX file, assembles it for g and uploads it.
// Parse and assembly errors are returned before anything is written.
func (u *Uploader) UploadFile(path string, g flash.Geometry, opts ...ihex.ParseOption) error {
	records, err := ihex.Parse(path, opts...)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return u.UploadRecords(records, g)
}

// UploadRecords assembles records for g and uploads the result.
// Assembly errors are returned before anything is written.
func (u *Uploader) UploadRecords(records []*ihex.Record, g flash.Geometry) error {
	img, err := flash.Assemble(records, g)
	if err != nil {
		return fmt.Errorf("assemble image: %w", err)
	}
	return u.Upload(img)
}

// Upload performs the complete transfer:
//  1. Send every page from the lowest to the highest used page, including
//     unused pages in between as zero-filled frames
//  2. Send the terminator frame numbered one past the highest page
//
// Any write failure aborts the upload with a *TransportError; there is no
// recovery and the device is left in an undefined state. Closing the
// transport from another goroutine is the only way to stop an upload early.
func (u *Uploader) Upload(img *flash.Image) error {
	minPage, maxPage, ok := img.UsedRange()
	if !ok {
		return ErrEmptyImage
	}

	u.state = StateIdle
	u.bytesWritten = 0
	startTime := time.Now()
	totalPages := maxPage - minPage + 1

	u.logInfo("starting upload",
		"first_page", minPage,
		"last_page", maxPage,
		"pages", totalPages,
	)

	for n := minPage; n <= maxPage; n++ {
		u.state = StateTransmittingPage
		u.cursor = n

		page := img.Page(n)
		frame, err := protocol.NewFrame(byte(n), page.Data)
		if err != nil {
			return u.fail(fmt.Errorf("build frame for page %d: %w", n, err))
		}

		if err := u.sendFrame(frame); err != nil {
			return u.fail(err)
		}

		u.logDebug("page sent",
			"page", n,
			"used", page.Used,
			"checksum", fmt.Sprintf("0x%04X", frame.Checksum()),
		)

		sent := n - minPage + 1
		u.reportProgress(Progress{
			Phase:        PhaseTransmitting,
			CurrentPage:  n,
			PagesSent:    sent,
			TotalPages:   totalPages,
			Percentage:   float64(sent) / float64(totalPages+1) * 100,
			BytesWritten: u.bytesWritten,
			ElapsedTime:  time.Since(startTime),
		})

		u.sleep(u.config.PageDelay)
	}

	u.state = StateTransmittingTerminator
	u.cursor = maxPage + 1

	if err := u.sendFrame(protocol.NewTerminator(byte(maxPage + 1))); err != nil {
		return u.fail(err)
	}

	u.reportProgress(Progress{
		Phase:        PhaseTerminating,
		CurrentPage:  maxPage + 1,
		PagesSent:    totalPages,
		TotalPages:   totalPages,
		Percentage:   100,
		BytesWritten: u.bytesWritten,
		ElapsedTime:  time.Since(startTime),
	})

	u.state = StateDone

	u.reportProgress(Progress{
		Phase:        PhaseComplete,
		CurrentPage:  maxPage + 1,
		PagesSent:    totalPages,
		TotalPages:   totalPages,
		Percentage:   100,
		BytesWritten: u.bytesWritten,
		ElapsedTime:  time.Since(startTime),
	})

	u.logInfo("upload complete",
		"pages", totalPages,
		"bytes", u.bytesWritten,
		"elapsed", time.Since(startTime).String(),
	)

	return nil
}

// sendFrame writes a frame one byte at a time, pausing after each payload byte.
func (u *Uploader) sendFrame(f *protocol.Frame) error {
	wire, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	payloadEnd := protocol.HeaderSize + len(f.Payload)
	for i, b := range wire {
		if err := u.writeByte(b); err != nil {
			return &TransportError{
				Page:       int(f.PageNumber),
				Offset:     i,
				Terminator: f.IsTerminator(),
				Err:        err,
			}
		}

		if i >= protocol.HeaderSize && i < payloadEnd {
			u.sleep(u.config.ByteDelay)
		}
	}

	return nil
}

func (u *Uploader) writeByte(b byte) error {
	n, err := u.transport.Write([]byte{b})
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	u.bytesWritten++
	return nil
}

func (u *Uploader) fail(err error) error {
	u.state = StateFailed
	u.logError("upload failed",
		"page", u.cursor,
		"error", err.Error(),
	)
	return err
}

func (u *Uploader) sleep(d time.Duration) {
	if d > 0 {
		u.config.Sleep(d)
	}
}

// reportProgress calls the progress callback if configured.
func (u *Uploader) reportProgress(progress Progress) {
	if u.config.ProgressCallback != nil {
		u.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (u *Uploader) logDebug(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (u *Uploader) logInfo(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (u *Uploader) logError(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Error(msg, keysAndValues...)
	}
}
