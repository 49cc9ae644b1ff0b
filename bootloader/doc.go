// Package bootloader uploads firmware to the DMX light bootloader.
//
// # Overview
//
// This package orchestrates the complete upload sequence:
//   - Parsing the Intel HEX image (package ihex)
//   - Assembling flash pages and rejecting images that would overwrite the
//     bootloader (package flash)
//   - Sending every page from the lowest to the highest used page as a
//     CRC-protected frame (package protocol)
//   - Sending the zero-length terminator frame
//
// # Basic Usage
//
//	// User provides the opened serial port (io.Writer)
//	port := openSerial("/dev/ttyUSB0")
//
//	up := bootloader.New(port)
//	err := up.UploadFile("firmware.hex", flash.DefaultGeometry())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Pacing
//
// The bootloader never acknowledges anything, so the uploader paces the
// line itself: a short delay after each payload byte and a long delay after
// each page while the device programs flash. Both are configurable:
//
//	up := bootloader.New(port,
//	    bootloader.WithByteDelay(10*time.Millisecond),
//	    bootloader.WithPageDelay(time.Second),
//	)
//
// Data lost on the wire cannot be detected by the host.
//
// # Progress Tracking
//
//	up := bootloader.New(port,
//	    bootloader.WithProgressCallback(func(p bootloader.Progress) {
//	        fmt.Printf("[%s] %.1f%% - Page %d/%d\n",
//	            p.Phase, p.Percentage, p.PagesSent, p.TotalPages)
//	    }),
//	)
//
// # Error Handling
//
// The package returns structured errors:
//   - ihex.MalformedRecordError: a line of the HEX file could not be parsed
//   - flash.PageOverflowError: data lies past the end of flash
//   - flash.ProtectedRegionError: data would overwrite the bootloader
//   - TransportError: a write failed mid-upload
//
// The first three happen before any byte is written. A TransportError
// leaves the device with a partial image.
//
// # Cancellation
//
// An upload cannot be cancelled. Closing the transport from another
// goroutine makes the next write fail, which aborts the upload with a
// TransportError.
package bootloader
