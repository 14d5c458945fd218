// Package remote mirrors the display and accepts button presses over MQTT.
//
// Topics, relative to the broker URL path:
//
//	digitpad/<id>/frame   FrameEvent, retained, published on every frame
//	digitpad/<id>/button  ButtonPress, handled as a button edge
package remote

//go:generate protoc --go_out=paths=source_relative:. digitpad.proto

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/digitpad/pkg/debounce"
	fx "github.com/robotalks/digitpad/pkg/framework"
	"github.com/robotalks/digitpad/pkg/pixelbus"
	"github.com/robotalks/digitpad/pkg/remote/mqtt"
	"github.com/robotalks/digitpad/pkg/render"
)

// TopicRoot is the first level of all topics.
const TopicRoot = "digitpad"

// ErrInvalidFrame indicates a FrameEvent without a full frame.
var ErrInvalidFrame = errors.New("invalid frame")

// Presser receives button edges from remote.
type Presser interface {
	Press(debounce.Button) (debounce.Verdict, error)
}

// PublishTimeout bounds the wait for a frame publish acknowledgement.
const PublishTimeout = 5 * time.Second

// Mirror publishes frames and forwards remote button presses.
// The last frame is kept and published again whenever the queue
// (re)connects, so the retained topic always holds the current display.
type Mirror struct {
	Queue    *mqtt.Queue
	DeviceID string
	Presser  Presser

	seq      uint64
	lastLock sync.Mutex
	last     []byte
}

// NewMirror creates a Mirror and hooks it to the connect events of q.
func NewMirror(q *mqtt.Queue, deviceID string, presser Presser) *Mirror {
	m := &Mirror{Queue: q, DeviceID: deviceID, Presser: presser}
	prev := q.OnConnect
	q.OnConnect = func(q *mqtt.Queue) {
		if prev != nil {
			prev(q)
		}
		m.publishLast()
	}
	return m
}

// FrameTopic is the topic frames of device id are published to.
func FrameTopic(id string) string {
	return TopicRoot + "/" + id + "/frame"
}

// ButtonTopic is the topic device id takes button presses from.
func ButtonTopic(id string) string {
	return TopicRoot + "/" + id + "/button"
}

// AddToLoop implements LoopAdder.
func (m *Mirror) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(fx.NamedRun("mqtt", m))
}

// Run implements Runnable.
func (m *Mirror) Run(ctx context.Context) error {
	sub := m.Queue.Sub(ButtonTopic(m.DeviceID), m.handleButton)
	defer sub.Close()
	glog.Infof("mirroring display as %q", m.DeviceID)
	return m.Queue.Run(ctx)
}

// FrameShown implements input.FrameObserver.
func (m *Mirror) FrameShown(d int, frame render.Frame) {
	payload, err := EncodeFrame(d, &frame, atomic.AddUint64(&m.seq, 1))
	if err != nil {
		glog.Errorf("encode frame error: %v", err)
		return
	}
	m.lastLock.Lock()
	m.last = payload
	m.lastLock.Unlock()
	if !m.Queue.Client.IsConnected() {
		glog.V(2).Infof("frame %d held until connected", d)
		return
	}
	m.publish(payload)
}

// LastFrame returns the payload of the most recent frame.
func (m *Mirror) LastFrame() []byte {
	m.lastLock.Lock()
	defer m.lastLock.Unlock()
	return m.last
}

func (m *Mirror) publishLast() {
	if payload := m.LastFrame(); payload != nil {
		m.publish(payload)
	}
}

func (m *Mirror) publish(payload []byte) {
	token := m.Queue.PubWith(FrameTopic(m.DeviceID), payload, 0, true)
	go checkToken(token, FrameTopic(m.DeviceID))
}

func checkToken(token paho.Token, topic string) {
	if !token.WaitTimeout(PublishTimeout) {
		glog.Warningf("publish %s: no acknowledgement after %v", topic, PublishTimeout)
		return
	}
	if err := token.Error(); err != nil {
		glog.Errorf("publish %s error: %v", topic, err)
	}
}

func (m *Mirror) handleButton(topic string, payload []byte) {
	var msg ButtonPress
	if err := proto.Unmarshal(payload, &msg); err != nil {
		glog.Warningf("%s: bad message: %v", topic, err)
		return
	}
	button := debounce.Button(msg.Button)
	verdict, err := m.Presser.Press(button)
	if err != nil {
		glog.Warningf("%s: %v", topic, err)
		return
	}
	glog.V(1).Infof("remote button %s %s", button, verdict)
}

// EncodeFrame serializes a frame of digit d.
func EncodeFrame(d int, frame *render.Frame, seq uint64) ([]byte, error) {
	return proto.Marshal(&FrameEvent{
		Digit: uint32(d),
		Words: pixelbus.PackFrame(frame),
		Seq:   seq,
	})
}

// DecodeFrame parses a payload produced by EncodeFrame.
func DecodeFrame(payload []byte) (*FrameEvent, render.Frame, error) {
	var msg FrameEvent
	if err := proto.Unmarshal(payload, &msg); err != nil {
		return nil, render.Frame{}, err
	}
	var frame render.Frame
	if len(msg.Words) != len(frame) {
		return &msg, frame, ErrInvalidFrame
	}
	return &msg, pixelbus.UnpackFrame(msg.Words), nil
}

// EncodeButton serializes a button press.
func EncodeButton(b debounce.Button) ([]byte, error) {
	return proto.Marshal(&ButtonPress{Button: uint32(b)})
}
