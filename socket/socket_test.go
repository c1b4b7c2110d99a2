package socket

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pykeio/vmc"
	"github.com/pykeio/vmc/osc"
)

func TestOptionsDefaults(t *testing.T) {
	assert := assert.New(t)

	var o *Options
	assert.NotNil(o.logger())
	assert.NotNil(o.registerer())
	assert.Equal(DefaultPerformerBind, o.bind(DefaultPerformerBind))
	assert.Equal(DefaultPerformerSend, o.send())
	assert.Equal(DefaultReadBufferSize, o.readBufferSize())

	o = &Options{Bind: "127.0.0.1:2434", Send: "10.0.0.7:39540", ReadBufferSize: 1536}
	assert.Equal("127.0.0.1:2434", o.bind(DefaultMarionetteBind))
	assert.Equal("10.0.0.7:39540", o.send())
	assert.Equal(1536, o.readBufferSize())
}

func TestLoopback(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	marionette, err := Marionette(&Options{
		Bind:       "127.0.0.1:0",
		Registerer: prometheus.NewPedanticRegistry(),
	})
	require.NoError(err)
	defer marionette.Close()

	performer, err := Performer(&Options{
		Send:       marionette.LocalAddr().String(),
		Registerer: prometheus.NewPedanticRegistry(),
	})
	require.NoError(err)
	defer performer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	received := make(chan []vmc.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- marionette.ReceiveMessages(ctx, func(messages []vmc.Message, _ net.Addr) {
			select {
			case received <- messages:
			default:
			}
		})
	}()

	require.NoError(performer.SendMessages(
		vmc.NewBlendShape(vmc.BlendShapeJoy, 1.0),
		vmc.ApplyBlendShapes{},
		vmc.NewTime(0.5),
	))

	select {
	case messages := <-received:
		require.Len(messages, 3)
		shape, ok := messages[0].(*vmc.BlendShape)
		require.True(ok)
		assert.Equal("Joy", shape.Key)
		assert.Equal(float32(1.0), shape.Value)
		assert.IsType(vmc.ApplyBlendShapes{}, messages[1])
		assert.Equal(vmc.Time(0.5), messages[2])
	case <-ctx.Done():
		require.Fail("timed out waiting for messages")
	}

	cancel()
	assert.ErrorIs(<-done, context.Canceled)
}

func TestSendTo(t *testing.T) {
	require := require.New(t)

	marionette, err := Marionette(&Options{Bind: "127.0.0.1:0"})
	require.NoError(err)
	defer marionette.Close()

	sender, err := Marionette(&Options{Bind: "127.0.0.1:0"})
	require.NoError(err)
	defer sender.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	received := make(chan osc.Packet, 1)
	go marionette.Receive(ctx, func(packet osc.Packet, _ net.Addr) {
		select {
		case received <- packet:
		default:
		}
	})

	require.NoError(sender.SendTo(
		vmc.NewState(vmc.ModelLoaded).OSC(),
		marionette.LocalAddr().(*net.UDPAddr),
	))

	select {
	case packet := <-received:
		messages, err := vmc.Parse(packet)
		require.NoError(err)
		require.Len(messages, 1)
		state, ok := messages[0].(*vmc.State)
		require.True(ok)
		assert.Equal(t, vmc.ModelLoaded, state.Model)
	case <-ctx.Done():
		require.Fail("timed out waiting for packet")
	}
}

func TestSendUnconnected(t *testing.T) {
	marionette, err := Marionette(&Options{Bind: "127.0.0.1:0"})
	require.NoError(t, err)
	defer marionette.Close()

	// An unconnected socket has no destination for Send.
	assert.Error(t, marionette.Send(vmc.NewTime(1.0).OSC()))
}

func TestShortSendError(t *testing.T) {
	err := &ShortSendError{Sent: 3, Total: 16}
	assert.Equal(t, "short send: wrote 3 of 16 bytes", err.Error())
}
