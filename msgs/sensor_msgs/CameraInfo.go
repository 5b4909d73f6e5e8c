// Package sensor_msgs is automatically generated from the message definition "sensor_msgs/CameraInfo.msg"
package sensor_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/autonomylab/bebop-driver-go/msgs/std_msgs"
)

type _MsgCameraInfo struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgCameraInfo) Text() string {
	return t.text
}

func (t *_MsgCameraInfo) Name() string {
	return t.name
}

func (t *_MsgCameraInfo) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgCameraInfo) NewMessage() ros.Message {
	m := new(CameraInfo)
	m.Header = std_msgs.Header{}
	m.Height = 0
	m.Width = 0
	m.DistortionModel = ""
	m.D = []float64{}
	m.K = [9]float64{}
	m.R = [9]float64{}
	m.P = [12]float64{}
	m.BinningX = 0
	m.BinningY = 0
	m.Roi = RegionOfInterest{}
	return m
}

var (
	MsgCameraInfo = &_MsgCameraInfo{
		`# This message defines meta information for a camera.

Header header
uint32 height
uint32 width
string distortion_model
float64[] D
float64[9] K
float64[9] R
float64[12] P
uint32 binning_x
uint32 binning_y
RegionOfInterest roi
`,
		"sensor_msgs/CameraInfo",
		"c9a58c1b0b154e0e6da7578cb991d214",
	}
)

type CameraInfo struct {
	Header          std_msgs.Header  `rosmsg:"header:Header"`
	Height          uint32           `rosmsg:"height:uint32"`
	Width           uint32           `rosmsg:"width:uint32"`
	DistortionModel string           `rosmsg:"distortion_model:string"`
	D               []float64        `rosmsg:"D:float64[]"`
	K               [9]float64       `rosmsg:"K:float64[9]"`
	R               [9]float64       `rosmsg:"R:float64[9]"`
	P               [12]float64      `rosmsg:"P:float64[12]"`
	BinningX        uint32           `rosmsg:"binning_x:uint32"`
	BinningY        uint32           `rosmsg:"binning_y:uint32"`
	Roi             RegionOfInterest `rosmsg:"roi:RegionOfInterest"`
}

func (m *CameraInfo) Type() ros.MessageType {
	return MsgCameraInfo
}

func (m *CameraInfo) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.Height)
	binary.Write(buf, binary.LittleEndian, m.Width)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.DistortionModel))))
	buf.Write([]byte(m.DistortionModel))
	binary.Write(buf, binary.LittleEndian, uint32(len(m.D)))
	for _, e := range m.D {
		binary.Write(buf, binary.LittleEndian, e)
	}
	for _, e := range m.K {
		binary.Write(buf, binary.LittleEndian, e)
	}
	for _, e := range m.R {
		binary.Write(buf, binary.LittleEndian, e)
	}
	for _, e := range m.P {
		binary.Write(buf, binary.LittleEndian, e)
	}
	binary.Write(buf, binary.LittleEndian, m.BinningX)
	binary.Write(buf, binary.LittleEndian, m.BinningY)
	if err = m.Roi.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *CameraInfo) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Height); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Width); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.DistortionModel = string(data)
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.D = make([]float64, int(size))
		for i := 0; i < int(size); i++ {
			if err = binary.Read(buf, binary.LittleEndian, &m.D[i]); err != nil {
				return err
			}
		}
	}
	for i := 0; i < 9; i++ {
		if err = binary.Read(buf, binary.LittleEndian, &m.K[i]); err != nil {
			return err
		}
	}
	for i := 0; i < 9; i++ {
		if err = binary.Read(buf, binary.LittleEndian, &m.R[i]); err != nil {
			return err
		}
	}
	for i := 0; i < 12; i++ {
		if err = binary.Read(buf, binary.LittleEndian, &m.P[i]); err != nil {
			return err
		}
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.BinningX); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.BinningY); err != nil {
		return err
	}
	if err = m.Roi.Deserialize(buf); err != nil {
		return err
	}
	return err
}
