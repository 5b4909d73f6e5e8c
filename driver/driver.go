// Package driver bridges a bebop.Device to ROS: piloting and camera
// commands in, video frames and camera info out, full settings
// snapshots forwarded wholesale. It is the Go counterpart of the
// original bebop_autonomy nodelet, with the host-plugin lifecycle
// replaced by explicit Start and Stop.
package driver

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"
	"github.com/tevino/abool"

	"github.com/autonomylab/bebop-driver-go/bebop"
	"github.com/autonomylab/bebop-driver-go/msgs/bebop_msgs"
	"github.com/autonomylab/bebop-driver-go/msgs/geometry_msgs"
	"github.com/autonomylab/bebop-driver-go/msgs/sensor_msgs"
	"github.com/autonomylab/bebop-driver-go/msgs/std_msgs"
)

// Driver owns a connected drone for the lifetime of a node. All command
// callbacks run serially on the node's dispatch context; only the camera
// publisher runs concurrently, in its own goroutine.
type Driver struct {
	dev bebop.Device
	cfg Config
	log logger

	// Last received and last applied twists; comparison against the
	// applied one suppresses redundant sends.
	bebopTwist      geometry_msgs.Twist
	prevBebopTwist  geometry_msgs.Twist
	cameraTwist     geometry_msgs.Twist
	prevCameraTwist geometry_msgs.Twist

	imagePub ros.Publisher
	cinfoPub ros.Publisher
	subCount int32

	camInfoMu sync.Mutex
	camInfo   *sensor_msgs.CameraInfo

	stopFlag *abool.AtomicBool
	loopWG   sync.WaitGroup

	subs []ros.Subscriber
}

func newDriver(dev bebop.Device, cfg Config, log logger) *Driver {
	return &Driver{
		dev:      dev,
		cfg:      cfg,
		log:      log,
		camInfo:  uncalibratedInfo(),
		stopFlag: abool.New(),
	}
}

// Start connects the drone and wires the driver to the node. It is the
// equivalent of the nodelet's onInit: a connection (or settings) failure
// aborts, a streaming failure only costs the camera topics.
func Start(node ros.Node, dev bebop.Device, cfg Config) (*Driver, error) {
	d := newDriver(dev, cfg, *node.Logger())

	if err := d.initDevice(); err != nil {
		if dev.IsConnected() {
			dev.Disconnect()
		}
		return nil, err
	}

	d.subscribe(node)
	d.advertise(node)
	d.startVideo()
	return d, nil
}

// initDevice runs the startup sequence against the handle: connect,
// optional settings reset, settings request. Each pause gives the
// firmware time to settle before the next round trip.
func (d *Driver) initDevice() error {
	d.log.Info("Connecting to Bebop ...")
	if err := d.dev.Connect(); err != nil {
		return errors.Wrap(err, "bebop driver init failed")
	}

	if d.cfg.ResetSettings {
		d.log.Warn("Resetting all settings ...")
		if err := d.dev.ResetAllSettings(); err != nil {
			return errors.Wrap(err, "bebop driver init failed")
		}
		time.Sleep(d.cfg.GracePeriod)
	}

	d.log.Info("Fetching all settings from the drone ...")
	if err := d.dev.RequestAllSettings(); err != nil {
		return errors.Wrap(err, "bebop driver init failed")
	}
	time.Sleep(d.cfg.GracePeriod)
	return nil
}

// startVideo enables the stream and, only if the handle reports it
// actually running, spawns the camera publisher loop.
func (d *Driver) startVideo() {
	d.log.Info("Enabling video stream ...")
	if err := d.dev.StartStreaming(); err != nil {
		d.log.Errorf("Enabling video stream failed: %v", err)
	}
	if d.dev.IsStreamingStarted() {
		d.startCameraLoop()
	}
}

func (d *Driver) subscribe(node ros.Node) {
	for _, s := range []struct {
		topic    string
		msgType  ros.MessageType
		callback interface{}
	}{
		{"cmd_vel", geometry_msgs.MsgTwist, d.CmdVelCallback},
		{"camera_control", geometry_msgs.MsgTwist, d.CameraMoveCallback},
		{"takeoff", std_msgs.MsgEmpty, d.TakeoffCallback},
		{"land", std_msgs.MsgEmpty, d.LandCallback},
		{"reset", std_msgs.MsgEmpty, d.EmergencyCallback},
		{"update_settings", bebop_msgs.MsgArdrone3Config, d.SettingsCallback},
	} {
		sub, err := node.NewSubscriber(s.topic, s.msgType, s.callback)
		if err != nil {
			d.log.Errorf("Subscribing to %s: %v", s.topic, err)
			continue
		}
		d.subs = append(d.subs, sub)
	}
}

func (d *Driver) advertise(node ros.Node) {
	var err error
	d.imagePub, err = node.NewPublisherWithCallbacks("image_raw", sensor_msgs.MsgImage,
		d.imageSubscriberConnected, d.imageSubscriberDisconnected)
	if err != nil {
		d.log.Errorf("Advertising image_raw: %v", err)
	}
	d.cinfoPub, err = node.NewPublisher("camera_info", sensor_msgs.MsgCameraInfo)
	if err != nil {
		d.log.Errorf("Advertising camera_info: %v", err)
	}

	ci, err := loadCameraInfo(d.cfg.CameraInfoURL)
	if err != nil {
		d.log.Errorf("Loading camera calibration: %v", err)
		ci = uncalibratedInfo()
	}
	ci.Header.FrameId = d.cfg.FrameID
	d.camInfoMu.Lock()
	d.camInfo = ci
	d.camInfoMu.Unlock()
}

func (d *Driver) imageSubscriberConnected(pub ros.SingleSubscriberPublisher) {
	n := atomic.AddInt32(&d.subCount, 1)
	d.log.Debugf("Image subscriber %s connected (%d total)", pub.GetSubscriberName(), n)
}

func (d *Driver) imageSubscriberDisconnected(pub ros.SingleSubscriberPublisher) {
	n := atomic.AddInt32(&d.subCount, -1)
	d.log.Debugf("Image subscriber %s disconnected (%d left)", pub.GetSubscriberName(), n)
}

// Stop tears the driver down in reverse: camera loop first, then the
// topics, then the stream, then the connection. The stream and
// connection steps are guarded by the handle's own state so a device
// that never fully came up is not touched.
func (d *Driver) Stop() {
	d.log.Infof("Bebop driver stopping, connected: %v", d.dev.IsConnected())

	d.stopCameraLoop()

	for _, sub := range d.subs {
		sub.Shutdown()
	}
	d.subs = nil
	if d.imagePub != nil {
		d.imagePub.Shutdown()
		d.imagePub = nil
	}
	if d.cinfoPub != nil {
		d.cinfoPub.Shutdown()
		d.cinfoPub = nil
	}

	if d.dev.IsStreamingStarted() {
		if err := d.dev.StopStreaming(); err != nil {
			d.log.Errorf("Stopping video stream: %v", err)
		}
	}
	if d.dev.IsConnected() {
		if err := d.dev.Disconnect(); err != nil {
			d.log.Errorf("Disconnecting: %v", err)
		}
	}
}
