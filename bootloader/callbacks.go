package bootloader

import "time"

// Upload phases reported through Progress.Phase.
const (
	PhaseTransmitting = "transmitting"
	PhaseTerminating  = "terminating"
	PhaseComplete     = "complete"
)

// Progress contains information about the upload progress.
// Passed to ProgressCallback during an upload.
type Progress struct {
	// Phase describes the current operation phase:
	//   "transmitting" - Sending page frames
	//   "terminating"  - Sending the terminator frame
	//   "complete"     - Upload finished
	Phase string

	// CurrentPage is the page number last sent
	CurrentPage int

	// PagesSent is the number of page frames sent so far
	PagesSent int

	// TotalPages is the number of page frames in the upload
	TotalPages int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesWritten is the total number of bytes written to the transport
	BytesWritten int

	// ElapsedTime is the time elapsed since the upload started
	ElapsedTime time.Duration
}

// ProgressCallback is called after every frame to report progress.
// Implementations should return quickly; the serial line is paced by the
// uploader and a slow callback only adds to the page delay.
//
// Example:
//
//	up := bootloader.New(port,
//	    bootloader.WithProgressCallback(func(p bootloader.Progress) {
//	        fmt.Printf("[%s] %.1f%% - Page %d/%d\n",
//	            p.Phase, p.Percentage, p.PagesSent, p.TotalPages)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the uploader.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	up := bootloader.New(port, bootloader.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
