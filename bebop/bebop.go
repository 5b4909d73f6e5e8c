// Package bebop defines the device-handle contract for a Parrot Bebop
// drone and provides a simulated implementation of it.
//
// The handle hides the vendor SDK entirely: wire protocol, command
// encoding and video decoding all live behind the Device interface.
// Implementations must provide their own synchronization; the driver
// calls into the handle both from its command-dispatch context and from
// the camera-publisher goroutine.
package bebop

// Frame is one decoded front-camera image. Data holds packed RGB
// pixels, row stride Width*3 bytes. A Frame is only valid until the
// next grab.
type Frame struct {
	Data   []byte
	Width  uint32
	Height uint32
}

// Device is the contract the driver requires from a drone.
// Every method may signal a runtime failure; see Error for how
// failures are classified.
type Device interface {
	Connect() error
	Disconnect() error
	IsConnected() bool

	StartStreaming() error
	StopStreaming() error
	IsStreamingStarted() bool

	ResetAllSettings() error
	RequestAllSettings() error
	UpdateSettings(s Settings) error

	// Move sets the four piloting axes: roll, pitch, gaz and yaw,
	// each normalized to [-1, 1].
	Move(roll, pitch, gaz, yaw float64) error
	// MoveCamera points the virtual camera gimbal, in degrees.
	MoveCamera(tilt, pan float64) error

	Takeoff() error
	Land() error
	Emergency() error

	// GetFrontCameraFrame blocks until the next decoded frame is
	// available or the stream is torn down.
	GetFrontCameraFrame() (Frame, error)
}
