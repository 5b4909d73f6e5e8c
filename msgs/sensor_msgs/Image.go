// Package sensor_msgs is automatically generated from the message definition "sensor_msgs/Image.msg"
package sensor_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/autonomylab/bebop-driver-go/msgs/std_msgs"
)

type _MsgImage struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgImage) Text() string {
	return t.text
}

func (t *_MsgImage) Name() string {
	return t.name
}

func (t *_MsgImage) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgImage) NewMessage() ros.Message {
	m := new(Image)
	m.Header = std_msgs.Header{}
	m.Height = 0
	m.Width = 0
	m.Encoding = ""
	m.IsBigendian = 0
	m.Step = 0
	m.Data = []uint8{}
	return m
}

var (
	MsgImage = &_MsgImage{
		`# This message contains an uncompressed image
# (0, 0) is at top-left corner of image

Header header
uint32 height
uint32 width
string encoding
uint8 is_bigendian
uint32 step
uint8[] data
`,
		"sensor_msgs/Image",
		"060021388200f6f0f447d0fcd9c64743",
	}
)

type Image struct {
	Header      std_msgs.Header `rosmsg:"header:Header"`
	Height      uint32          `rosmsg:"height:uint32"`
	Width       uint32          `rosmsg:"width:uint32"`
	Encoding    string          `rosmsg:"encoding:string"`
	IsBigendian uint8           `rosmsg:"is_bigendian:uint8"`
	Step        uint32          `rosmsg:"step:uint32"`
	Data        []uint8         `rosmsg:"data:uint8[]"`
}

func (m *Image) Type() ros.MessageType {
	return MsgImage
}

func (m *Image) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.Height)
	binary.Write(buf, binary.LittleEndian, m.Width)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Encoding))))
	buf.Write([]byte(m.Encoding))
	binary.Write(buf, binary.LittleEndian, m.IsBigendian)
	binary.Write(buf, binary.LittleEndian, m.Step)
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Data)))
	buf.Write(m.Data)
	return err
}

func (m *Image) Deserialize(buf *bytes.Reader) error {
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
		m.Encoding = string(data)
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.IsBigendian); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Step); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Data = make([]uint8, int(size))
		if err = binary.Read(buf, binary.LittleEndian, m.Data); err != nil {
			return err
		}
	}
	return err
}
