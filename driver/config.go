package driver

import (
	"time"

	"github.com/edwinhayes/rosgo/ros"
)

// Config is the startup surface of the driver. It is read once before
// connecting; the driver never watches the parameter server afterwards.
type Config struct {
	// ResetSettings issues a full factory settings reset right after
	// connecting.
	ResetSettings bool

	// CameraInfoURL locates the camera calibration document, either a
	// plain path or a file:// URL. Empty means uncalibrated.
	CameraInfoURL string

	// FrameID is stamped on every outgoing image and camera info header.
	FrameID string

	// GracePeriod is how long the drone is left alone after a settings
	// reset or a settings request.
	GracePeriod time.Duration
}

// DefaultConfig mirrors the defaults of the original nodelet parameters.
func DefaultConfig() Config {
	return Config{
		FrameID:     "camera",
		GracePeriod: 3 * time.Second,
	}
}

// ConfigFromParams reads the driver parameters from the node's private
// namespace, falling back to defaults for anything unset or mistyped.
func ConfigFromParams(node ros.Node) Config {
	cfg := DefaultConfig()
	if v, err := node.GetParam("~reset_settings"); err == nil {
		if b, ok := v.(bool); ok {
			cfg.ResetSettings = b
		}
	}
	if v, err := node.GetParam("~camera_info_url"); err == nil {
		if s, ok := v.(string); ok {
			cfg.CameraInfoURL = s
		}
	}
	if v, err := node.GetParam("~frame_id"); err == nil {
		if s, ok := v.(string); ok && s != "" {
			cfg.FrameID = s
		}
	}
	return cfg
}
