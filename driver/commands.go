package driver

import (
	"github.com/autonomylab/bebop-driver-go/msgs/geometry_msgs"
	"github.com/autonomylab/bebop-driver-go/msgs/std_msgs"
)

// CmdVelCallback applies a piloting twist. A command identical to the
// previously applied one is suppressed; the comparison is exact per
// field, matching the upstream driver, so a sender repeating a setpoint
// must repeat it bit for bit.
func (d *Driver) CmdVelCallback(msg *geometry_msgs.Twist) {
	d.bebopTwist = *msg
	if twistsEqual(&d.bebopTwist, &d.prevBebopTwist) {
		return
	}
	if err := d.dev.Move(d.bebopTwist.Linear.Y, d.bebopTwist.Linear.X,
		d.bebopTwist.Linear.Z, d.bebopTwist.Angular.Z); err != nil {
		d.log.Error(err)
		return
	}
	d.prevBebopTwist = d.bebopTwist
}

// CameraMoveCallback points the virtual camera gimbal: tilt from
// linear.y, pan from angular.z. Same suppression rule as CmdVelCallback.
func (d *Driver) CameraMoveCallback(msg *geometry_msgs.Twist) {
	d.cameraTwist = *msg
	if twistsEqual(&d.cameraTwist, &d.prevCameraTwist) {
		return
	}
	if err := d.dev.MoveCamera(d.cameraTwist.Linear.Y, d.cameraTwist.Angular.Z); err != nil {
		d.log.Error(err)
		return
	}
	d.prevCameraTwist = d.cameraTwist
}

func (d *Driver) TakeoffCallback(msg *std_msgs.Empty) {
	resetTwist(&d.bebopTwist)
	if err := d.dev.Takeoff(); err != nil {
		d.log.Error(err)
	}
}

func (d *Driver) LandCallback(msg *std_msgs.Empty) {
	resetTwist(&d.bebopTwist)
	if err := d.dev.Land(); err != nil {
		d.log.Error(err)
	}
}

// EmergencyCallback cuts the motors. Bound to the "reset" topic for
// compatibility with the original driver.
func (d *Driver) EmergencyCallback(msg *std_msgs.Empty) {
	resetTwist(&d.bebopTwist)
	if err := d.dev.Emergency(); err != nil {
		d.log.Error(err)
	}
}

func resetTwist(t *geometry_msgs.Twist) {
	*t = geometry_msgs.Twist{}
}

// twistsEqual compares the four axes the drone consumes. Exact float
// equality is deliberate, see CmdVelCallback.
func twistsEqual(a, b *geometry_msgs.Twist) bool {
	return a.Linear.X == b.Linear.X &&
		a.Linear.Y == b.Linear.Y &&
		a.Linear.Z == b.Linear.Z &&
		a.Angular.Z == b.Angular.Z
}
