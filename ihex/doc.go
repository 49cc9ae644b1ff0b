// Package ihex parses Intel HEX firmware images into records.
//
// # Record Format
//
// Every record is one ASCII line starting with ':' followed by hex pairs:
//
//	:LLAAAATT[DD...]CC
//	  LL   = byte count (number of data bytes)
//	  AAAA = 16-bit load address (big-endian)
//	  TT   = record type (00 data, 01 end of file, ...)
//	  DD   = LL data bytes
//	  CC   = two's complement checksum of all preceding bytes
//
// Example:
//
//	:0400400001020304B2
//	  04 = 4 data bytes
//	  0040 = address 0x0040
//	  00 = data record
//	  01020304 = data
//	  B2 = checksum
//
// # Usage
//
// Parse a single line:
//
//	rec, err := ihex.ParseRecord(":0400400001020304B2")
//
// Parse a whole file:
//
//	records, err := ihex.Parse("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Only flat 16-bit addressing is modelled. Extended address records are
// returned like any other record and left to the caller.
//
// # Checksums
//
// The per-record checksum is not validated by default: the transfer to the
// device is protected by the frame CRC instead. Pass WithChecksumValidation
// to reject records whose checksum does not match.
//
// # Error Handling
//
// Every parse failure is a *MalformedRecordError carrying the line number
// and matches ErrMalformedRecord with errors.Is.
package ihex
