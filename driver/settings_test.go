package driver

import (
	"testing"

	"github.com/autonomylab/bebop-driver-go/bebop"
	"github.com/autonomylab/bebop-driver-go/msgs/bebop_msgs"
)

func TestSettingsForwardedWholesale(t *testing.T) {
	dev := &fakeDevice{connected: true}
	d := newTestDriver(dev)

	msg := &bebop_msgs.Ardrone3Config{
		PilotingMaxAltitude:    25,
		PilotingMaxTilt:        35,
		PilotingMaxDistance:    500,
		PilotingBankedTurn:     true,
		SpeedMaxVerticalSpeed:  2.5,
		SpeedMaxRotationSpeed:  180,
		HullProtection:         true,
		Outdoor:                false,
		VideoStabilizationMode: 2,
		PictureFormat:          1,
		GpsHomeType:            1,
	}
	d.SettingsCallback(msg)
	d.SettingsCallback(msg)

	// Two identical events mean two wholesale forwards; the
	// synchronizer never diffs.
	if len(dev.applied) != 2 {
		t.Fatalf("got %d settings updates, want 2", len(dev.applied))
	}
	want := bebop.Settings{
		PilotingMaxAltitude:    25,
		PilotingMaxTilt:        35,
		PilotingMaxDistance:    500,
		PilotingBankedTurn:     true,
		SpeedMaxVerticalSpeed:  2.5,
		SpeedMaxRotationSpeed:  180,
		HullProtection:         true,
		Outdoor:                false,
		VideoStabilizationMode: 2,
		PictureFormat:          1,
		GPSHomeType:            1,
	}
	if dev.applied[0] != want {
		t.Errorf("applied settings = %+v, want %+v", dev.applied[0], want)
	}
}
