package ihex

// StartCode is the byte that each record's line is expected to start with.
const StartCode = ':'

// Record types.
const (
	RecordTypeData         = 0x00
	RecordTypeEOF          = 0x01
	RecordTypeExtSegAddr   = 0x02
	RecordTypeStartSegAddr = 0x03
	RecordTypeExtLinAddr   = 0x04
	RecordTypeStartLinAddr = 0x05
)

// Record is a single decoded Intel HEX record.
type Record struct {
	// ByteCount is the declared number of data bytes
	ByteCount byte

	// Address is the 16-bit load address of the first data byte
	Address uint16

	// RecordType is one of the RecordType* constants
	RecordType byte

	// Data holds exactly ByteCount bytes
	Data []byte

	// Checksum is the checksum byte as found in the source text
	Checksum byte
}

// IsData reports whether the record carries program bytes.
func (r *Record) IsData() bool {
	return r.RecordType == RecordTypeData
}

// End returns the address one past the last data byte.
// It is an int because a record may end exactly at 0x10000.
func (r *Record) End() int {
	return int(r.Address) + len(r.Data)
}

// Checksum returns the two's complement checksum of data as used by Intel HEX.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}
