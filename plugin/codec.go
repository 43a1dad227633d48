package plugin

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/LdDl/mot-postprocessor/mot"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Keys of the runtime's inference results map
const (
	KeyDeviceID  = "DeviceID"
	KeyBBoxes    = "BBoxes_xyxy"
	KeyObjectIDs = "ObjectIDs"
)

// Message is a decoded inference results map. Keys not known to the tracker are kept as is
// and travel back to the runtime untouched.
type Message struct {
	fields map[string]interface{}
}

// DecodeMessage unpacks msgpack map
func DecodeMessage(data []byte) (*Message, error) {
	var raw interface{}
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unpack message: %w", err)
	}
	fields, ok := stringMap(raw)
	if !ok {
		return nil, fmt.Errorf("unpack message: expected map at top level, got %T", raw)
	}
	return &Message{fields: fields}, nil
}

// NewMessage creates message from fields. Mostly useful for tests and tools talking to the plugin
func NewMessage(fields map[string]interface{}) *Message {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	return &Message{fields: fields}
}

// Get returns raw field
func (message *Message) Get(key string) (interface{}, bool) {
	value, ok := message.fields[key]
	return value, ok
}

// Frame extracts tracker's request from the message
func (message *Message) Frame() (mot.Frame, error) {
	frame := mot.Frame{
		Detections: make(map[string][]float64),
	}
	rawDevice, ok := message.fields[KeyDeviceID]
	if !ok {
		return mot.Frame{}, errors.Wrapf(mot.ErrMalformedInput, "field %s is absent", KeyDeviceID)
	}
	switch device := rawDevice.(type) {
	case string:
		frame.DeviceID = device
	case []byte:
		frame.DeviceID = string(device)
	default:
		return mot.Frame{}, errors.Wrapf(mot.ErrMalformedInput, "field %s has type %T", KeyDeviceID, rawDevice)
	}

	rawBoxes, ok := message.fields[KeyBBoxes]
	if !ok || rawBoxes == nil {
		return frame, nil
	}
	classes, ok := stringMap(rawBoxes)
	if !ok {
		return mot.Frame{}, errors.Wrapf(mot.ErrMalformedInput, "field %s has type %T", KeyBBoxes, rawBoxes)
	}
	for className, rawCoords := range classes {
		coords, err := coordinates(rawCoords)
		if err != nil {
			return mot.Frame{}, errors.Wrapf(err, "class %q", className)
		}
		frame.Detections[className] = coords
	}
	return frame, nil
}

// SetObjectIDs stores tracker's identifiers: class -> list of 16-byte binaries
func (message *Message) SetObjectIDs(result mot.Result) {
	objectIDs := make(map[string]interface{}, len(result.IDs))
	for className, ids := range result.IDs {
		encoded := make([]interface{}, len(ids))
		for i, id := range ids {
			encoded[i] = id.Bytes()
		}
		objectIDs[className] = encoded
	}
	message.fields[KeyObjectIDs] = objectIDs
}

// Encode packs message back with map keys sorted
func (message *Message) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(message.fields); err != nil {
		return nil, fmt.Errorf("pack message: %w", err)
	}
	return buf.Bytes(), nil
}

func stringMap(raw interface{}) (map[string]interface{}, bool) {
	switch typed := raw.(type) {
	case map[string]interface{}:
		return typed, true
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(typed))
		for key, value := range typed {
			switch k := key.(type) {
			case string:
				converted[k] = value
			case []byte:
				converted[string(k)] = value
			default:
				return nil, false
			}
		}
		return converted, true
	default:
		return nil, false
	}
}

// coordinates accepts either array of numbers or binary blob of little-endian float32
func coordinates(raw interface{}) ([]float64, error) {
	switch typed := raw.(type) {
	case nil:
		return []float64{}, nil
	case []byte:
		if len(typed)%4 != 0 {
			return nil, errors.Wrapf(mot.ErrMalformedInput, "binary coordinates of %d bytes are not float32 aligned", len(typed))
		}
		coords := make([]float64, len(typed)/4)
		for i := range coords {
			coords[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(typed[i*4:])))
		}
		return coords, nil
	case []interface{}:
		coords := make([]float64, len(typed))
		for i, value := range typed {
			number, ok := toFloat64(value)
			if !ok {
				return nil, errors.Wrapf(mot.ErrMalformedInput, "coordinate %d has type %T", i, value)
			}
			coords[i] = number
		}
		return coords, nil
	case []float64:
		return typed, nil
	default:
		return nil, errors.Wrapf(mot.ErrMalformedInput, "coordinates have type %T", raw)
	}
}

func toFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
