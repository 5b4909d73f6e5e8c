// Package bebop_msgs is automatically generated from the message definition "bebop_msgs/Ardrone3Config.msg"
package bebop_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgArdrone3Config struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgArdrone3Config) Text() string {
	return t.text
}

func (t *_MsgArdrone3Config) Name() string {
	return t.name
}

func (t *_MsgArdrone3Config) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgArdrone3Config) NewMessage() ros.Message {
	m := new(Ardrone3Config)
	m.PilotingMaxAltitude = 0.0
	m.PilotingMaxTilt = 0.0
	m.PilotingMaxDistance = 0.0
	m.PilotingBankedTurn = false
	m.SpeedMaxVerticalSpeed = 0.0
	m.SpeedMaxRotationSpeed = 0.0
	m.HullProtection = false
	m.Outdoor = false
	m.VideoStabilizationMode = 0
	m.PictureFormat = 0
	m.GpsHomeType = 0
	return m
}

var (
	MsgArdrone3Config = &_MsgArdrone3Config{
		`# Full ARDrone3 settings snapshot, applied wholesale.
float64 piloting_max_altitude
float64 piloting_max_tilt
float64 piloting_max_distance
bool piloting_banked_turn
float64 speed_max_vertical_speed
float64 speed_max_rotation_speed
bool hull_protection
bool outdoor
int32 video_stabilization_mode
int32 picture_format
int32 gps_home_type
`,
		"bebop_msgs/Ardrone3Config",
		"8a21ec9d344b04b0a1f2d831c4a5db3f",
	}
)

type Ardrone3Config struct {
	PilotingMaxAltitude    float64 `rosmsg:"piloting_max_altitude:float64"`
	PilotingMaxTilt        float64 `rosmsg:"piloting_max_tilt:float64"`
	PilotingMaxDistance    float64 `rosmsg:"piloting_max_distance:float64"`
	PilotingBankedTurn     bool    `rosmsg:"piloting_banked_turn:bool"`
	SpeedMaxVerticalSpeed  float64 `rosmsg:"speed_max_vertical_speed:float64"`
	SpeedMaxRotationSpeed  float64 `rosmsg:"speed_max_rotation_speed:float64"`
	HullProtection         bool    `rosmsg:"hull_protection:bool"`
	Outdoor                bool    `rosmsg:"outdoor:bool"`
	VideoStabilizationMode int32   `rosmsg:"video_stabilization_mode:int32"`
	PictureFormat          int32   `rosmsg:"picture_format:int32"`
	GpsHomeType            int32   `rosmsg:"gps_home_type:int32"`
}

func (m *Ardrone3Config) Type() ros.MessageType {
	return MsgArdrone3Config
}

func (m *Ardrone3Config) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.PilotingMaxAltitude)
	binary.Write(buf, binary.LittleEndian, m.PilotingMaxTilt)
	binary.Write(buf, binary.LittleEndian, m.PilotingMaxDistance)
	binary.Write(buf, binary.LittleEndian, m.PilotingBankedTurn)
	binary.Write(buf, binary.LittleEndian, m.SpeedMaxVerticalSpeed)
	binary.Write(buf, binary.LittleEndian, m.SpeedMaxRotationSpeed)
	binary.Write(buf, binary.LittleEndian, m.HullProtection)
	binary.Write(buf, binary.LittleEndian, m.Outdoor)
	binary.Write(buf, binary.LittleEndian, m.VideoStabilizationMode)
	binary.Write(buf, binary.LittleEndian, m.PictureFormat)
	binary.Write(buf, binary.LittleEndian, m.GpsHomeType)
	return err
}

func (m *Ardrone3Config) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.PilotingMaxAltitude); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.PilotingMaxTilt); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.PilotingMaxDistance); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.PilotingBankedTurn); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.SpeedMaxVerticalSpeed); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.SpeedMaxRotationSpeed); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.HullProtection); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Outdoor); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.VideoStabilizationMode); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.PictureFormat); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.GpsHomeType); err != nil {
		return err
	}
	return err
}
