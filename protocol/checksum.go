package protocol

// CRC-16/XMODEM parameters.
const (
	// CRC16Polynomial is the CCITT polynomial (0x1021)
	CRC16Polynomial = 0x1021

	// CRC16InitialValue is the XMODEM initial value
	CRC16InitialValue = 0x0000

	// CRC16HighBitMask is the high bit mask for CRC-16 calculations
	CRC16HighBitMask = 0x8000

	// BitsPerByte is the number of bits per byte
	BitsPerByte = 8
)

// Checksum computes the frame CRC over the page number, the payload length
// and the payload, in that order. The preamble is not included.
func Checksum(pageNumber, length byte, payload []byte) uint16 {
	crc := updateCRC16(CRC16InitialValue, []byte{pageNumber, length})
	return updateCRC16(crc, payload)
}

// CRC16 computes CRC-16/XMODEM: no input or output reflection, no final XOR.
func CRC16(data []byte) uint16 {
	return updateCRC16(CRC16InitialValue, data)
}

// updateCRC16 continues a CRC-16/XMODEM computation from crc.
func updateCRC16(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc ^= uint16(b) << BitsPerByte
		for i := 0; i < BitsPerByte; i++ {
			if crc&CRC16HighBitMask != 0 {
				crc = (crc << 1) ^ CRC16Polynomial
			} else {
				crc = crc << 1
			}
		}
	}

	return crc
}
