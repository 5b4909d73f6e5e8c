package bebop

// Settings is a full snapshot of the drone's tunable settings, mirroring
// the ARDrone3 setting groups the driver exposes. A snapshot is always
// applied wholesale; the handle decides what actually needs to go over
// the air.
type Settings struct {
	PilotingMaxAltitude   float64 // meters
	PilotingMaxTilt       float64 // degrees
	PilotingMaxDistance   float64 // meters
	PilotingBankedTurn    bool
	SpeedMaxVerticalSpeed float64 // m/s
	SpeedMaxRotationSpeed float64 // deg/s

	HullProtection bool
	Outdoor        bool

	VideoStabilizationMode int32
	PictureFormat          int32
	GPSHomeType            int32
}

// DefaultSettings are the values a factory reset leaves the drone with.
func DefaultSettings() Settings {
	return Settings{
		PilotingMaxAltitude:   10.0,
		PilotingMaxTilt:       20.0,
		PilotingMaxDistance:   100.0,
		PilotingBankedTurn:    true,
		SpeedMaxVerticalSpeed: 1.0,
		SpeedMaxRotationSpeed: 100.0,
		HullProtection:        false,
		Outdoor:               true,
		PictureFormat:         1,
	}
}
