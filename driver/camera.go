package driver

import (
	"sync/atomic"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/autonomylab/bebop-driver-go/msgs/sensor_msgs"
)

func (d *Driver) startCameraLoop() {
	d.stopFlag.UnSet()
	d.loopWG.Add(1)
	go d.cameraPublisherLoop()
}

// stopCameraLoop requests cooperative cancellation and blocks until the
// loop has observed it. The flag is only checked between frames, so
// this waits out at most one in-flight grab.
func (d *Driver) stopCameraLoop() {
	d.stopFlag.Set()
	d.loopWG.Wait()
}

// cameraPublisherLoop runs in its own goroutine for the life of the
// video stream. Each iteration grabs one frame synchronously, refreshes
// the shared camera info metadata, and publishes only when somebody is
// listening. A failed iteration is logged and the loop moves on.
func (d *Driver) cameraPublisherLoop() {
	defer d.loopWG.Done()
	d.log.Info("Camera publisher loop started")

	for !d.stopFlag.IsSet() {
		frame, err := d.dev.GetFrontCameraFrame()
		if err != nil {
			d.log.Errorf("[CameraPublisher] %v", err)
			continue
		}
		d.log.Debugf("Frame grabbed: %d x %d", frame.Width, frame.Height)

		stamp := ros.Now()
		d.camInfoMu.Lock()
		d.camInfo.Header.Stamp = stamp
		d.camInfo.Width = frame.Width
		d.camInfo.Height = frame.Height
		cinfo := *d.camInfo
		d.camInfoMu.Unlock()

		if atomic.LoadInt32(&d.subCount) <= 0 {
			continue
		}

		img := &sensor_msgs.Image{
			Height:      frame.Height,
			Width:       frame.Width,
			Encoding:    "rgb8",
			IsBigendian: 0,
			Step:        frame.Width * 3,
			Data:        frame.Data,
		}
		img.Header.FrameId = d.cfg.FrameID
		img.Header.Stamp = stamp

		d.imagePub.Publish(img)
		d.cinfoPub.Publish(&cinfo)
	}

	d.log.Info("Camera publisher loop exited")
}
