package driver

import (
	"sync"
	"sync/atomic"
	"time"

	"testing"

	"github.com/pkg/errors"

	"github.com/autonomylab/bebop-driver-go/bebop"
)

// fakeDevice records every command issued to it, in order. State
// queries (IsConnected, IsStreamingStarted) are deliberately not
// recorded so tests can assert on the exact command sequence.
type fakeDevice struct {
	mu        sync.Mutex
	calls     []string
	connected bool
	streaming bool

	failConnect bool
	failReset   bool
	failRequest bool
	failStream  bool
	failMove    bool
	failCamera  bool
	failTakeoff bool

	moves    [][4]float64
	camMoves [][2]float64
	applied  []bebop.Settings

	grabs int32
	frame func() (bebop.Frame, error)
}

func (f *fakeDevice) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeDevice) callSeq() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeDevice) Connect() error {
	f.record("Connect")
	if f.failConnect {
		return &bebop.Error{Kind: bebop.KindConnection, Op: "Connect", Err: errors.New("no wifi")}
	}
	f.connected = true
	return nil
}

func (f *fakeDevice) Disconnect() error {
	f.record("Disconnect")
	f.connected = false
	return nil
}

func (f *fakeDevice) IsConnected() bool { return f.connected }

func (f *fakeDevice) StartStreaming() error {
	f.record("StartStreaming")
	if f.failStream {
		return &bebop.Error{Kind: bebop.KindStreaming, Op: "StartStreaming", Err: errors.New("no stream")}
	}
	f.streaming = true
	return nil
}

func (f *fakeDevice) StopStreaming() error {
	f.record("StopStreaming")
	f.streaming = false
	return nil
}

func (f *fakeDevice) IsStreamingStarted() bool { return f.streaming }

func (f *fakeDevice) ResetAllSettings() error {
	f.record("ResetAllSettings")
	if f.failReset {
		return &bebop.Error{Kind: bebop.KindSettings, Op: "ResetAllSettings", Err: errors.New("refused")}
	}
	return nil
}

func (f *fakeDevice) RequestAllSettings() error {
	f.record("RequestAllSettings")
	if f.failRequest {
		return &bebop.Error{Kind: bebop.KindSettings, Op: "RequestAllSettings", Err: errors.New("refused")}
	}
	return nil
}

func (f *fakeDevice) UpdateSettings(s bebop.Settings) error {
	f.record("UpdateSettings")
	f.mu.Lock()
	f.applied = append(f.applied, s)
	f.mu.Unlock()
	return nil
}

func (f *fakeDevice) Move(roll, pitch, gaz, yaw float64) error {
	f.record("Move")
	if f.failMove {
		return &bebop.Error{Kind: bebop.KindCommand, Op: "Move", Err: errors.New("link lost")}
	}
	f.mu.Lock()
	f.moves = append(f.moves, [4]float64{roll, pitch, gaz, yaw})
	f.mu.Unlock()
	return nil
}

func (f *fakeDevice) MoveCamera(tilt, pan float64) error {
	f.record("MoveCamera")
	if f.failCamera {
		return &bebop.Error{Kind: bebop.KindCommand, Op: "MoveCamera", Err: errors.New("link lost")}
	}
	f.mu.Lock()
	f.camMoves = append(f.camMoves, [2]float64{tilt, pan})
	f.mu.Unlock()
	return nil
}

func (f *fakeDevice) Takeoff() error {
	f.record("Takeoff")
	if f.failTakeoff {
		return &bebop.Error{Kind: bebop.KindCommand, Op: "Takeoff", Err: errors.New("battery low")}
	}
	return nil
}

func (f *fakeDevice) Land() error {
	f.record("Land")
	return nil
}

func (f *fakeDevice) Emergency() error {
	f.record("Emergency")
	return nil
}

func (f *fakeDevice) GetFrontCameraFrame() (bebop.Frame, error) {
	atomic.AddInt32(&f.grabs, 1)
	if f.frame != nil {
		return f.frame()
	}
	time.Sleep(time.Millisecond)
	return bebop.Frame{Data: make([]byte, 4*2*3), Width: 4, Height: 2}, nil
}

func (f *fakeDevice) grabCount() int32 { return atomic.LoadInt32(&f.grabs) }

// testLogger keeps driver logging out of test output.
type testLogger struct{}

func (testLogger) Debug(v ...interface{})                 {}
func (testLogger) Debugf(format string, v ...interface{}) {}
func (testLogger) Info(v ...interface{})                  {}
func (testLogger) Infof(format string, v ...interface{})  {}
func (testLogger) Warn(v ...interface{})                  {}
func (testLogger) Warnf(format string, v ...interface{})  {}
func (testLogger) Error(v ...interface{})                 {}
func (testLogger) Errorf(format string, v ...interface{}) {}

func newTestDriver(dev bebop.Device) *Driver {
	cfg := DefaultConfig()
	cfg.GracePeriod = time.Millisecond
	return newDriver(dev, cfg, testLogger{})
}

func sameSeq(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestInitSequenceWithReset(t *testing.T) {
	dev := &fakeDevice{}
	d := newTestDriver(dev)
	d.cfg.ResetSettings = true

	if err := d.initDevice(); err != nil {
		t.Fatalf("initDevice: %v", err)
	}
	d.startVideo()
	defer d.stopCameraLoop()

	want := []string{"Connect", "ResetAllSettings", "RequestAllSettings", "StartStreaming"}
	if got := dev.callSeq(); !sameSeq(got, want) {
		t.Errorf("call sequence = %v, want %v", got, want)
	}
}

func TestInitSequenceWithoutReset(t *testing.T) {
	dev := &fakeDevice{}
	d := newTestDriver(dev)

	if err := d.initDevice(); err != nil {
		t.Fatalf("initDevice: %v", err)
	}

	want := []string{"Connect", "RequestAllSettings"}
	if got := dev.callSeq(); !sameSeq(got, want) {
		t.Errorf("call sequence = %v, want %v", got, want)
	}
}

func TestConnectFailureIsFatal(t *testing.T) {
	dev := &fakeDevice{failConnect: true}
	d := newTestDriver(dev)

	err := d.initDevice()
	if err == nil {
		t.Fatal("expected error from failed connect")
	}
	if !bebop.IsFatal(err) {
		t.Errorf("connect failure should be fatal, got %v", err)
	}
	if got := dev.callSeq(); !sameSeq(got, []string{"Connect"}) {
		t.Errorf("no further calls expected after failed connect, got %v", got)
	}
}

func TestResetFailureAbortsInit(t *testing.T) {
	dev := &fakeDevice{failReset: true}
	d := newTestDriver(dev)
	d.cfg.ResetSettings = true

	if err := d.initDevice(); err == nil {
		t.Fatal("expected error from failed settings reset")
	}
	want := []string{"Connect", "ResetAllSettings"}
	if got := dev.callSeq(); !sameSeq(got, want) {
		t.Errorf("call sequence = %v, want %v", got, want)
	}
}

func TestStreamingFailureSkipsCameraLoop(t *testing.T) {
	dev := &fakeDevice{failStream: true}
	d := newTestDriver(dev)

	d.startVideo()
	time.Sleep(10 * time.Millisecond)

	if n := dev.grabCount(); n != 0 {
		t.Errorf("camera loop grabbed %d frames, should never have started", n)
	}
}

func TestStartVideoStartsCameraLoop(t *testing.T) {
	dev := &fakeDevice{connected: true}
	d := newTestDriver(dev)

	d.startVideo()
	deadline := time.Now().Add(time.Second)
	for dev.grabCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	d.stopCameraLoop()

	if dev.grabCount() == 0 {
		t.Error("camera loop never grabbed a frame")
	}
}

func TestStopSkipsTornDownHandle(t *testing.T) {
	dev := &fakeDevice{}
	d := newTestDriver(dev)

	d.Stop()

	for _, call := range dev.callSeq() {
		if call == "StopStreaming" || call == "Disconnect" {
			t.Errorf("Stop issued %s on an inactive handle", call)
		}
	}
}

func TestStopReversesActiveHandle(t *testing.T) {
	dev := &fakeDevice{connected: true, streaming: true}
	d := newTestDriver(dev)

	d.Stop()

	want := []string{"StopStreaming", "Disconnect"}
	if got := dev.callSeq(); !sameSeq(got, want) {
		t.Errorf("teardown sequence = %v, want %v", got, want)
	}
}
