package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFrameMarshalBinary(t *testing.T) {
	tests := []struct {
		name    string
		page    byte
		payload []byte
		want    []byte
	}{
		{
			name:    "page frame",
			page:    0x10,
			payload: []byte{0x01, 0x02, 0x03, 0x04},
			want:    []byte{0xAA, 0x10, 0x04, 0x01, 0x02, 0x03, 0x04, 0x81, 0x9E},
		},
		{
			name:    "terminator omits payload",
			page:    0x0B,
			payload: nil,
			want:    []byte{0xAA, 0x0B, 0x00, 0xFA, 0xDC},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrame(tt.page, tt.payload)
			if err != nil {
				t.Fatalf("NewFrame() error = %v", err)
			}

			got, err := f.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}

			if !bytes.Equal(got, tt.want) {
				t.Errorf("MarshalBinary() = % X, want % X", got, tt.want)
			}
			if len(got) != f.Size() {
				t.Errorf("Size() = %d, encoded %d bytes", f.Size(), len(got))
			}
		})
	}
}

func TestFrameLayout(t *testing.T) {
	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(0xFF - i)
	}

	f, err := NewFrame(42, payload)
	if err != nil {
		t.Fatalf("NewFrame() error = %v", err)
	}
	wire, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	if len(wire) != 64+MinFrameSize {
		t.Fatalf("frame length = %d, want %d", len(wire), 64+MinFrameSize)
	}
	if wire[0] != Preamble {
		t.Errorf("preamble = 0x%02X, want 0x%02X", wire[0], Preamble)
	}
	if wire[1] != 42 {
		t.Errorf("page = %d, want 42", wire[1])
	}
	if wire[2] != 64 {
		t.Errorf("length = %d, want 64", wire[2])
	}
	if !bytes.Equal(wire[3:67], payload) {
		t.Error("payload not copied verbatim")
	}

	crc := Checksum(42, 64, payload)
	if wire[67] != byte(crc) || wire[68] != byte(crc>>8) {
		t.Errorf("trailer = %02X %02X, want little-endian 0x%04X", wire[67], wire[68], crc)
	}
}

func TestNewFrame(t *testing.T) {
	t.Run("payload too large", func(t *testing.T) {
		_, err := NewFrame(0, make([]byte, MaxPayloadSize+1))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Errorf("NewFrame() error = %v, want payload size error", err)
		}
	})

	t.Run("payload is copied", func(t *testing.T) {
		payload := []byte{0x01, 0x02}
		f, err := NewFrame(0, payload)
		if err != nil {
			t.Fatalf("NewFrame() error = %v", err)
		}
		payload[0] = 0xFF
		if f.Payload[0] != 0x01 {
			t.Error("frame shares payload memory with caller")
		}
	})

	t.Run("terminator", func(t *testing.T) {
		f := NewTerminator(11)
		if !f.IsTerminator() {
			t.Error("IsTerminator() = false")
		}
		if f.PageNumber != 11 {
			t.Errorf("PageNumber = %d, want 11", f.PageNumber)
		}
	})
}

func TestUnmarshalFrame(t *testing.T) {
	valid := []byte{0xAA, 0x10, 0x04, 0x01, 0x02, 0x03, 0x04, 0x81, 0x9E}

	t.Run("valid frame", func(t *testing.T) {
		f, err := UnmarshalFrame(valid)
		if err != nil {
			t.Fatalf("UnmarshalFrame() error = %v", err)
		}
		if f.PageNumber != 0x10 {
			t.Errorf("PageNumber = 0x%02X, want 0x10", f.PageNumber)
		}
		if !bytes.Equal(f.Payload, []byte{0x01, 0x02, 0x03, 0x04}) {
			t.Errorf("Payload = % X", f.Payload)
		}
	})

	t.Run("round trip terminator", func(t *testing.T) {
		wire, _ := NewTerminator(0x21).MarshalBinary()
		f, err := UnmarshalFrame(wire)
		if err != nil {
			t.Fatalf("UnmarshalFrame() error = %v", err)
		}
		if !f.IsTerminator() || f.PageNumber != 0x21 {
			t.Errorf("got page %d terminator=%v", f.PageNumber, f.IsTerminator())
		}
	})

	errTests := []struct {
		name   string
		data   []byte
		errMsg string
	}{
		{name: "too short", data: []byte{0xAA, 0x00}, errMsg: "too short"},
		{name: "bad preamble", data: []byte{0x55, 0x0B, 0x00, 0xFA, 0xDC}, errMsg: "bad preamble"},
		{name: "length mismatch", data: []byte{0xAA, 0x10, 0x05, 0x01, 0x02, 0x03, 0x04, 0x81, 0x9E}, errMsg: "length mismatch"},
		{name: "corrupted payload", data: []byte{0xAA, 0x10, 0x04, 0x01, 0x02, 0x03, 0x05, 0x81, 0x9E}, errMsg: "checksum mismatch"},
	}

	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalFrame(tt.data)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !errors.Is(err, ErrInvalidFrame) {
				t.Errorf("error %v does not match ErrInvalidFrame", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want substring %q", err, tt.errMsg)
			}
		})
	}

	t.Run("checksum error type", func(t *testing.T) {
		_, err := UnmarshalFrame([]byte{0xAA, 0x0B, 0x00, 0x00, 0x00})
		if !IsChecksumError(err) {
			t.Errorf("IsChecksumError(%v) = false", err)
		}
	})
}
