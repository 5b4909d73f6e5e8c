package bebop

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tevino/abool"
)

const (
	simFrameWidth  = 856
	simFrameHeight = 480
	simFrameRate   = 30
)

// Sim is an in-process Device used when no aircraft is around. It honors
// the full handle contract, including the connect/streaming state
// machine, and produces a moving RGB test pattern at a fixed rate.
type Sim struct {
	connected *abool.AtomicBool
	streaming *abool.AtomicBool

	mu       sync.Mutex
	settings Settings
	airborne bool
	tilt     float64
	pan      float64
	seq      uint32

	log *logrus.Entry
}

// NewSim returns a disconnected simulated drone.
func NewSim() *Sim {
	return &Sim{
		connected: abool.New(),
		streaming: abool.New(),
		settings:  DefaultSettings(),
		log:       logrus.WithField("component", "bebop.sim"),
	}
}

func (s *Sim) Connect() error {
	if !s.connected.SetToIf(false, true) {
		return &Error{Kind: KindConnection, Op: "Connect", Err: errors.New("already connected")}
	}
	s.log.Info("simulated drone connected")
	return nil
}

func (s *Sim) Disconnect() error {
	if !s.connected.SetToIf(true, false) {
		return &Error{Kind: KindConnection, Op: "Disconnect", Err: errors.New("not connected")}
	}
	s.streaming.UnSet()
	s.log.Info("simulated drone disconnected")
	return nil
}

func (s *Sim) IsConnected() bool { return s.connected.IsSet() }

func (s *Sim) StartStreaming() error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindStreaming, Op: "StartStreaming", Err: errors.New("not connected")}
	}
	if !s.streaming.SetToIf(false, true) {
		return &Error{Kind: KindStreaming, Op: "StartStreaming", Err: errors.New("already streaming")}
	}
	s.log.Info("video stream enabled")
	return nil
}

func (s *Sim) StopStreaming() error {
	if !s.streaming.SetToIf(true, false) {
		return &Error{Kind: KindStreaming, Op: "StopStreaming", Err: errors.New("not streaming")}
	}
	s.log.Info("video stream disabled")
	return nil
}

func (s *Sim) IsStreamingStarted() bool { return s.streaming.IsSet() }

func (s *Sim) ResetAllSettings() error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindSettings, Op: "ResetAllSettings", Err: errors.New("not connected")}
	}
	s.mu.Lock()
	s.settings = DefaultSettings()
	s.mu.Unlock()
	s.log.Warn("all settings reset to defaults")
	return nil
}

func (s *Sim) RequestAllSettings() error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindSettings, Op: "RequestAllSettings", Err: errors.New("not connected")}
	}
	s.mu.Lock()
	cur := s.settings
	s.mu.Unlock()
	s.log.Debugf("settings requested: %+v", cur)
	return nil
}

func (s *Sim) UpdateSettings(settings Settings) error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindSettings, Op: "UpdateSettings", Err: errors.New("not connected")}
	}
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	s.log.Debugf("settings updated: %+v", settings)
	return nil
}

// Settings returns the currently applied snapshot.
func (s *Sim) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Sim) Move(roll, pitch, gaz, yaw float64) error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindCommand, Op: "Move", Err: errors.New("not connected")}
	}
	s.log.Debugf("move roll=%.3f pitch=%.3f gaz=%.3f yaw=%.3f", roll, pitch, gaz, yaw)
	return nil
}

func (s *Sim) MoveCamera(tilt, pan float64) error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindCommand, Op: "MoveCamera", Err: errors.New("not connected")}
	}
	s.mu.Lock()
	s.tilt, s.pan = tilt, pan
	s.mu.Unlock()
	s.log.Debugf("camera tilt=%.1f pan=%.1f", tilt, pan)
	return nil
}

func (s *Sim) Takeoff() error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindCommand, Op: "Takeoff", Err: errors.New("not connected")}
	}
	s.mu.Lock()
	s.airborne = true
	s.mu.Unlock()
	s.log.Info("takeoff")
	return nil
}

func (s *Sim) Land() error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindCommand, Op: "Land", Err: errors.New("not connected")}
	}
	s.mu.Lock()
	s.airborne = false
	s.mu.Unlock()
	s.log.Info("land")
	return nil
}

func (s *Sim) Emergency() error {
	if !s.connected.IsSet() {
		return &Error{Kind: KindCommand, Op: "Emergency", Err: errors.New("not connected")}
	}
	s.mu.Lock()
	s.airborne = false
	s.mu.Unlock()
	s.log.Warn("emergency cutout")
	return nil
}

// Airborne reports whether the simulated drone thinks it is flying.
func (s *Sim) Airborne() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.airborne
}

// GetFrontCameraFrame paces itself to the simulated frame rate and
// returns a synthetic test pattern: a horizontal gradient with a
// vertical sweep bar so consecutive frames are distinguishable.
func (s *Sim) GetFrontCameraFrame() (Frame, error) {
	if !s.streaming.IsSet() {
		return Frame{}, &Error{Kind: KindFrame, Op: "GetFrontCameraFrame", Err: errors.New("stream not started")}
	}
	time.Sleep(time.Second / simFrameRate)

	s.mu.Lock()
	seq := s.seq
	s.seq++
	s.mu.Unlock()

	const w, h = simFrameWidth, simFrameHeight
	data := make([]byte, w*h*3)
	bar := int(seq) % w
	for y := 0; y < h; y++ {
		row := y * w * 3
		for x := 0; x < w; x++ {
			p := row + x*3
			data[p] = byte(x * 255 / w)
			data[p+1] = byte(y * 255 / h)
			if x == bar {
				data[p+2] = 255
			}
		}
	}
	return Frame{Data: data, Width: w, Height: h}, nil
}
