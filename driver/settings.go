package driver

import (
	"github.com/autonomylab/bebop-driver-go/bebop"
	"github.com/autonomylab/bebop-driver-go/msgs/bebop_msgs"
)

// SettingsCallback receives a full configuration snapshot and forwards
// it to the device unchanged. There is no per-field diffing here; the
// handle owns deciding what actually goes over the air.
func (d *Driver) SettingsCallback(msg *bebop_msgs.Ardrone3Config) {
	d.log.Infof("Settings update received")
	if err := d.dev.UpdateSettings(settingsFromMsg(msg)); err != nil {
		d.log.Error(err)
	}
}

func settingsFromMsg(m *bebop_msgs.Ardrone3Config) bebop.Settings {
	return bebop.Settings{
		PilotingMaxAltitude:    m.PilotingMaxAltitude,
		PilotingMaxTilt:        m.PilotingMaxTilt,
		PilotingMaxDistance:    m.PilotingMaxDistance,
		PilotingBankedTurn:     m.PilotingBankedTurn,
		SpeedMaxVerticalSpeed:  m.SpeedMaxVerticalSpeed,
		SpeedMaxRotationSpeed:  m.SpeedMaxRotationSpeed,
		HullProtection:         m.HullProtection,
		Outdoor:                m.Outdoor,
		VideoStabilizationMode: m.VideoStabilizationMode,
		PictureFormat:          m.PictureFormat,
		GPSHomeType:            m.GpsHomeType,
	}
}
