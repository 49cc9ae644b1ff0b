package ihex

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Constants for Intel HEX record parsing.
const (
	// MinimumRecordLength is the shortest valid line in characters:
	// start code(1) + count(2) + address(4) + type(2) + checksum(2)
	MinimumRecordLength = 11

	// RecordHeaderSize is the decoded size of count + address + type
	RecordHeaderSize = 4

	// RecordChecksumSize is the decoded size of the checksum field
	RecordChecksumSize = 1

	// DefaultRecordCapacity is the initial capacity for the records slice
	DefaultRecordCapacity = 256
)

// ErrNoRecords is returned when a file contains no records at all.
var ErrNoRecords = errors.New("no records found")

type parseConfig struct {
	validateChecksum bool
}

// ParseOption configures record parsing.
type ParseOption func(*parseConfig)

// WithChecksumValidation rejects records whose checksum byte does not match
// the two's complement sum of the preceding bytes.
func WithChecksumValidation() ParseOption {
	return func(c *parseConfig) {
		c.validateChecksum = true
	}
}

// Parse parses an Intel HEX file from the given path.
//
// Example:
//
//	records, err := ihex.Parse("firmware.hex")
func Parse(path string, opts ...ParseOption) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f, opts...)
}

// ParseReader parses Intel HEX records from any io.Reader.
// Blank lines are skipped and parsing stops after the end-of-file record,
// which is included in the result. Errors carry the offending line number.
func ParseReader(r io.Reader, opts ...ParseOption) ([]*Record, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(r)
	records := make([]*Record, 0, DefaultRecordCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := parseRecord(line, cfg)
		if err != nil {
			var me *MalformedRecordError
			if errors.As(err, &me) {
				me.Line = lineNum
			}
			return nil, err
		}

		records = append(records, rec)
		if rec.RecordType == RecordTypeEOF {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

// ParseRecord parses one line of Intel HEX text.
// A trailing newline is stripped. The record checksum is not validated.
//
// Example:
//
//	rec, err := ihex.ParseRecord(":0400400001020304B2\n")
//	// rec.Address == 0x0040, rec.Data == []byte{1, 2, 3, 4}
func ParseRecord(line string) (*Record, error) {
	return parseRecord(strings.TrimRight(line, "\r\n"), parseConfig{})
}

func parseRecord(line string, cfg parseConfig) (*Record, error) {
	if len(line) < MinimumRecordLength {
		return nil, malformed("record too short: got %d characters, minimum is %d", len(line), MinimumRecordLength)
	}
	if line[0] != StartCode {
		return nil, malformed("record must start with '%c', got %q", StartCode, line[0])
	}

	data, err := hex.DecodeString(line[1:])
	if err != nil {
		return nil, malformed("invalid hex data: %v", err)
	}

	byteCount := data[0]
	expectedLen := RecordHeaderSize + int(byteCount) + RecordChecksumSize
	if len(data) != expectedLen {
		return nil, malformed("byte count mismatch: declared %d data bytes, found %d",
			byteCount, len(data)-RecordHeaderSize-RecordChecksumSize)
	}

	rec := &Record{
		ByteCount:  byteCount,
		Address:    uint16(data[1])<<8 | uint16(data[2]), // big-endian
		RecordType: data[3],
		Data:       make([]byte, byteCount),
		Checksum:   data[len(data)-1],
	}
	copy(rec.Data, data[RecordHeaderSize:RecordHeaderSize+int(byteCount)])

	if cfg.validateChecksum {
		if calculated := Checksum(data[:len(data)-1]); calculated != rec.Checksum {
			return nil, malformed("checksum mismatch: got 0x%02X, expected 0x%02X", rec.Checksum, calculated)
		}
	}

	return rec, nil
}
