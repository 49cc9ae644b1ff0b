package bootloader

import "time"

// Default pacing of the reference bootloader.
const (
	// DefaultByteDelay follows every payload byte
	DefaultByteDelay = 10 * time.Millisecond

	// DefaultPageDelay follows every page frame while the device programs flash
	DefaultPageDelay = time.Second
)

// Config holds the uploader configuration.
type Config struct {
	// ProgressCallback is called during the upload to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ByteDelay is the pause after each payload byte
	ByteDelay time.Duration

	// PageDelay is the pause after each page frame
	PageDelay time.Duration

	// Sleep pauses the upload; replaced in tests
	Sleep func(time.Duration)
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ByteDelay: DefaultByteDelay,
		PageDelay: DefaultPageDelay,
		Sleep:     time.Sleep,
	}
}

// Option is a functional option for configuring the Uploader.
type Option func(*Config)

// WithProgressCallback sets a callback function to track upload progress.
//
// Example:
//
//	up := bootloader.New(port,
//	    bootloader.WithProgressCallback(func(p bootloader.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the uploader operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithByteDelay sets the pause after each payload byte. Zero disables it.
//
// Example:
//
//	up := bootloader.New(port, bootloader.WithByteDelay(5*time.Millisecond))
func WithByteDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.ByteDelay = d
		}
	}
}

// WithPageDelay sets the pause after each page frame. Zero disables it.
func WithPageDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.PageDelay = d
		}
	}
}

// WithNoDelay disables all pacing. Only useful with simulated devices.
func WithNoDelay() Option {
	return func(c *Config) {
		c.ByteDelay = 0
		c.PageDelay = 0
	}
}

// WithSleeper replaces time.Sleep for pacing.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(c *Config) {
		if sleep != nil {
			c.Sleep = sleep
		}
	}
}
