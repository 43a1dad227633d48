package mot

import (
	"sort"
	"sync"
)

// DeviceTrackState owns class states for a single device.
// mu serializes frames of the device: at most one mutator at a time.
type DeviceTrackState struct {
	mu      sync.Mutex
	classes map[string]*ClassTrackState
}

func newDeviceTrackState() *DeviceTrackState {
	return &DeviceTrackState{
		classes: make(map[string]*ClassTrackState),
	}
}

// class returns class state or nil. Caller must hold mu
func (device *DeviceTrackState) class(name string) *ClassTrackState {
	return device.classes[name]
}

// classOrCreate returns class state creating it if needed. Caller must hold mu
func (device *DeviceTrackState) classOrCreate(name string) *ClassTrackState {
	state, ok := device.classes[name]
	if !ok {
		state = newClassTrackState()
		device.classes[name] = state
	}
	return state
}

// Snapshot returns copy of every class's tracks
func (device *DeviceTrackState) Snapshot() map[string][]TrackInfo {
	device.mu.Lock()
	defer device.mu.Unlock()
	snapshot := make(map[string][]TrackInfo, len(device.classes))
	for name, state := range device.classes {
		snapshot[name] = state.Tracks()
	}
	return snapshot
}

// Classes returns sorted names of classes seen for the device
func (device *DeviceTrackState) Classes() []string {
	device.mu.Lock()
	defer device.mu.Unlock()
	names := make([]string, 0, len(device.classes))
	for name := range device.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry maps device identifier to its track state for the process lifetime.
// No expiry, no persistence.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]*DeviceTrackState
}

// NewRegistry creates empty registry
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[string]*DeviceTrackState),
	}
}

// Device returns state for the device creating it on first use
func (registry *Registry) Device(deviceID string) *DeviceTrackState {
	registry.mu.RLock()
	device, ok := registry.devices[deviceID]
	registry.mu.RUnlock()
	if ok {
		return device
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	// Another goroutine could have created it in between
	device, ok = registry.devices[deviceID]
	if !ok {
		device = newDeviceTrackState()
		registry.devices[deviceID] = device
	}
	return device
}

// Lookup returns state for the device without creating it
func (registry *Registry) Lookup(deviceID string) (*DeviceTrackState, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	device, ok := registry.devices[deviceID]
	return device, ok
}

// Devices returns sorted identifiers of known devices
func (registry *Registry) Devices() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	ids := make([]string, 0, len(registry.devices))
	for id := range registry.devices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns number of known devices
func (registry *Registry) Len() int {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return len(registry.devices)
}

// Snapshot returns copy of device's tracks. False if device is unknown
func (registry *Registry) Snapshot(deviceID string) (map[string][]TrackInfo, bool) {
	device, ok := registry.Lookup(deviceID)
	if !ok {
		return nil, false
	}
	return device.Snapshot(), true
}
