package plugin

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/LdDl/mot-postprocessor/mot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func packed(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := msgpack.Marshal(v)
	require.NoError(t, err)
	return data
}

func float32Blob(values ...float32) []byte {
	blob := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(blob[i*4:], math.Float32bits(v))
	}
	return blob
}

func TestMessageFrame(t *testing.T) {
	data := packed(t, map[string]interface{}{
		"DeviceID": "cam1",
		"BBoxes_xyxy": map[string]interface{}{
			"person": []interface{}{0, 0, 10, 10},
			"car":    []interface{}{1.5, 2.5, float32(3), uint16(400)},
			"face":   float32Blob(5, 6, 7, 8),
		},
		"Timestamp": uint64(1700000000),
	})
	message, err := DecodeMessage(data)
	require.NoError(t, err)

	frame, err := message.Frame()
	require.NoError(t, err)
	assert.Equal(t, "cam1", frame.DeviceID)
	assert.Equal(t, []float64{0, 0, 10, 10}, frame.Detections["person"])
	assert.Equal(t, []float64{1.5, 2.5, 3, 400}, frame.Detections["car"])
	assert.Equal(t, []float64{5, 6, 7, 8}, frame.Detections["face"])
}

func TestMessageFrameWithoutBoxes(t *testing.T) {
	message, err := DecodeMessage(packed(t, map[string]interface{}{"DeviceID": "cam1"}))
	require.NoError(t, err)
	frame, err := message.Frame()
	require.NoError(t, err)
	assert.Empty(t, frame.Detections)
}

func TestMessageFrameMalformed(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{"no device", map[string]interface{}{"BBoxes_xyxy": map[string]interface{}{}}},
		{"device is number", map[string]interface{}{"DeviceID": 7}},
		{"boxes not a map", map[string]interface{}{"DeviceID": "cam1", "BBoxes_xyxy": []interface{}{1, 2}}},
		{"coordinate is string", map[string]interface{}{"DeviceID": "cam1", "BBoxes_xyxy": map[string]interface{}{"car": []interface{}{"1", 2, 3, 4}}}},
		{"unaligned blob", map[string]interface{}{"DeviceID": "cam1", "BBoxes_xyxy": map[string]interface{}{"car": []byte{1, 2, 3}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, err := DecodeMessage(packed(t, tt.fields))
			require.NoError(t, err)
			_, err = message.Frame()
			assert.ErrorIs(t, err, mot.ErrMalformedInput)
		})
	}
}

func TestDecodeMessageNotAMap(t *testing.T) {
	_, err := DecodeMessage(packed(t, []interface{}{1, 2, 3}))
	assert.Error(t, err)

	_, err = DecodeMessage([]byte{0xc1})
	assert.Error(t, err)
}

func TestMessageSetObjectIDs(t *testing.T) {
	message := NewMessage(map[string]interface{}{
		"DeviceID": "cam1",
		"Extra":    "kept",
	})
	id, err := mot.UUIDGenerator{}.NewToken()
	require.NoError(t, err)
	message.SetObjectIDs(mot.Result{IDs: map[string][]mot.TrackID{
		"person": {id},
		"car":    {},
	}})
	data, err := message.Encode()
	require.NoError(t, err)

	var decoded struct {
		DeviceID  string              `msgpack:"DeviceID"`
		Extra     string              `msgpack:"Extra"`
		ObjectIDs map[string][][]byte `msgpack:"ObjectIDs"`
	}
	require.NoError(t, msgpack.Unmarshal(data, &decoded))
	assert.Equal(t, "cam1", decoded.DeviceID)
	assert.Equal(t, "kept", decoded.Extra)
	require.Len(t, decoded.ObjectIDs["person"], 1)
	assert.Equal(t, id.Bytes(), decoded.ObjectIDs["person"][0])
	assert.Empty(t, decoded.ObjectIDs["car"])
}
