package remote

import (
	"testing"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/digitpad/pkg/debounce"
	"github.com/robotalks/digitpad/pkg/remote/mqtt"
	"github.com/robotalks/digitpad/pkg/render"
)

type published struct {
	topic   string
	retain  bool
	payload []byte
}

// brokerClient stands in for a paho client that may be offline.
type brokerClient struct {
	paho.Client
	connected bool
	published []published
}

func (c *brokerClient) IsConnected() bool { return c.connected }

func (c *brokerClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.published = append(c.published, published{topic: topic, retain: retained, payload: payload.([]byte)})
	return &paho.DummyToken{}
}

type pressRecorder struct {
	buttons []debounce.Button
}

func (p *pressRecorder) Press(b debounce.Button) (debounce.Verdict, error) {
	p.buttons = append(p.buttons, b)
	return debounce.Accepted, nil
}

func TestTopics(t *testing.T) {
	require.Equal(t, "digitpad/abc/frame", FrameTopic("abc"))
	require.Equal(t, "digitpad/abc/button", ButtonTopic("abc"))
}

func TestFrameCodec(t *testing.T) {
	frame := render.Render(7, render.DefaultOn)
	payload, err := EncodeFrame(7, &frame, 42)
	require.NoError(t, err)

	msg, decoded, err := DecodeFrame(payload)
	require.NoError(t, err)
	require.Equal(t, uint32(7), msg.Digit)
	require.Equal(t, uint64(42), msg.Seq)
	require.Len(t, msg.Words, len(frame))
	require.Equal(t, frame, decoded)
}

func TestDecodeShortFrame(t *testing.T) {
	payload, err := proto.Marshal(&FrameEvent{Digit: 1, Words: []uint32{1, 2, 3}})
	require.NoError(t, err)
	_, _, err = DecodeFrame(payload)
	require.Equal(t, ErrInvalidFrame, err)

	_, _, err = DecodeFrame([]byte{0xff, 0xff})
	require.Error(t, err)
}

func TestHandleButton(t *testing.T) {
	var presser pressRecorder
	m := &Mirror{DeviceID: "dev", Presser: &presser}

	payload, err := EncodeButton(debounce.ButtonB)
	require.NoError(t, err)
	m.handleButton(ButtonTopic("dev"), payload)
	payload, err = EncodeButton(debounce.ButtonA)
	require.NoError(t, err)
	m.handleButton(ButtonTopic("dev"), payload)
	m.handleButton(ButtonTopic("dev"), []byte{0xff})

	require.Equal(t, []debounce.Button{debounce.ButtonB, debounce.ButtonA}, presser.buttons)
}

func TestFrameShownBeforeConnect(t *testing.T) {
	client := &brokerClient{}
	q := &mqtt.Queue{Client: client, TopicPrefix: "home/"}
	m := NewMirror(q, "dev", &pressRecorder{})

	m.FrameShown(0, render.Render(0, render.DefaultOn))
	require.Empty(t, client.published)
	require.NotNil(t, m.LastFrame())

	client.connected = true
	q.OnConnectHandler(client)
	require.Len(t, client.published, 1)
	pub := client.published[0]
	require.Equal(t, "home/"+FrameTopic("dev"), pub.topic)
	require.True(t, pub.retain)
	msg, frame, err := DecodeFrame(pub.payload)
	require.NoError(t, err)
	require.Equal(t, uint32(0), msg.Digit)
	require.Equal(t, render.Render(0, render.DefaultOn), frame)

	m.FrameShown(1, render.Render(1, render.DefaultOn))
	require.Len(t, client.published, 2)
	msg, _, err = DecodeFrame(client.published[1].payload)
	require.NoError(t, err)
	require.Equal(t, uint32(1), msg.Digit)
	require.Equal(t, uint64(2), msg.Seq)

	// a reconnect publishes the current frame again
	client.connected = false
	m.FrameShown(2, render.Render(2, render.DefaultOn))
	require.Len(t, client.published, 2)
	client.connected = true
	q.OnConnectHandler(client)
	require.Len(t, client.published, 3)
	msg, _, err = DecodeFrame(client.published[2].payload)
	require.NoError(t, err)
	require.Equal(t, uint32(2), msg.Digit)
}

func TestConnectWithoutFrame(t *testing.T) {
	client := &brokerClient{connected: true}
	q := &mqtt.Queue{Client: client}
	var hooked bool
	q.OnConnect = func(*mqtt.Queue) { hooked = true }
	NewMirror(q, "dev", &pressRecorder{})

	q.OnConnectHandler(client)
	require.True(t, hooked)
	require.Empty(t, client.published)
}
