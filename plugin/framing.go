package plugin

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderLength is the size of the length prefix preceding every message
const HeaderLength = 4

// ErrMessageTooLarge is returned when header announces a payload above the configured limit
var ErrMessageTooLarge = fmt.Errorf("message too large")

// ReadMessage reads one length-prefixed message.
// Header is an unsigned 32-bit little-endian payload length.
func ReadMessage(r io.Reader, maxSize uint32) ([]byte, error) {
	header := make([]byte, HeaderLength)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	length := binary.LittleEndian.Uint32(header)
	if maxSize > 0 && length > maxSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrMessageTooLarge, length, maxSize)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read payload of %d bytes: %w", length, err)
	}
	return payload, nil
}

// WriteMessage writes one length-prefixed message
func WriteMessage(w io.Writer, payload []byte) error {
	if uint64(len(payload)) > uint64(^uint32(0)) {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(payload))
	}
	buf := make([]byte, HeaderLength+len(payload))
	binary.LittleEndian.PutUint32(buf, uint32(len(payload)))
	copy(buf[HeaderLength:], payload)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}
