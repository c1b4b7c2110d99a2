package socket

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pykeio/vmc"
	"github.com/pykeio/vmc/osc"
)

// readPollInterval bounds how long a Receive loop can run past context
// cancellation.
const readPollInterval = 250 * time.Millisecond

// ShortSendError indicates that the OS transmitted fewer bytes than the
// encoded packet contains.
type ShortSendError struct {
	Sent  int
	Total int
}

func (e *ShortSendError) Error() string {
	return fmt.Sprintf("short send: wrote %d of %d bytes", e.Sent, e.Total)
}

// Handler consumes packets received by a Socket, along with the source
// address of the datagram that carried them.  The packet does not alias
// the socket's read buffer and may be retained.
type Handler func(packet osc.Packet, source net.Addr)

// Socket sends and receives VMC messages over UDP.
//
// Send methods are safe for concurrent use.  Receive must only be called
// from one goroutine at a time.
type Socket struct {
	conn           *net.UDPConn
	logger         *zap.Logger
	metrics        *metrics
	readBufferSize int
}

// Performer creates a socket for the performer role: it binds an ephemeral
// local port by default and connects to the marionette named by
// Options.Send.  A nil Options uses all defaults, sending to
// 127.0.0.1:39539.
func Performer(o *Options) (*Socket, error) {
	local, err := net.ResolveUDPAddr("udp", o.bind(DefaultPerformerBind))
	if err != nil {
		return nil, err
	}

	remote, err := net.ResolveUDPAddr("udp", o.send())
	if err != nil {
		return nil, err
	}

	// Connecting filters inbound datagrams to the marionette and lets
	// Send omit the destination.
	conn, err := net.DialUDP("udp", local, remote)
	if err != nil {
		return nil, err
	}

	s := newSocket(o, conn)
	s.logger.Info("performer socket ready",
		zap.Stringer("local", conn.LocalAddr()),
		zap.Stringer("remote", remote),
	)
	return s, nil
}

// Marionette creates a socket for the marionette role, listening on
// Options.Bind (127.0.0.1:39539 by default) for packets from a performer.
func Marionette(o *Options) (*Socket, error) {
	s, err := bind(o, o.bind(DefaultMarionetteBind))
	if err != nil {
		return nil, err
	}

	s.logger.Info("marionette socket ready", zap.Stringer("local", s.conn.LocalAddr()))
	return s, nil
}

func bind(o *Options, addr string) (*Socket, error) {
	local, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	conn, err := net.ListenUDP("udp", local)
	if err != nil {
		return nil, err
	}

	return newSocket(o, conn), nil
}

func newSocket(o *Options, conn *net.UDPConn) *Socket {
	return &Socket{
		conn:           conn,
		logger:         o.logger(),
		metrics:        newMetrics(o.registerer()),
		readBufferSize: o.readBufferSize(),
	}
}

// LocalAddr returns the local address this socket is bound to.  Useful
// when binding to port 0 to discover the assigned port.
func (s *Socket) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

// Close releases the underlying connection.  Any blocked Receive returns.
func (s *Socket) Close() error {
	return s.conn.Close()
}

// Send encodes a packet and transmits it to the connected remote address.
// It fails if the socket was not created with Performer.
func (s *Socket) Send(packet osc.Packet) error {
	encoded, err := osc.Encode(packet)
	if err != nil {
		return err
	}

	n, err := s.conn.Write(encoded)
	return s.sent(encoded, n, err)
}

// SendTo encodes a packet and transmits it to the given address,
// regardless of whether the socket is connected.
func (s *Socket) SendTo(packet osc.Packet, addr *net.UDPAddr) error {
	encoded, err := osc.Encode(packet)
	if err != nil {
		return err
	}

	n, err := s.conn.WriteToUDP(encoded, addr)
	return s.sent(encoded, n, err)
}

// SendMessage transmits a single VMC message to the connected remote
// address.
func (s *Socket) SendMessage(m vmc.Message) error {
	return s.Send(m.OSC())
}

// SendMessages transmits VMC messages as a single immediate bundle,
// preserving order.
func (s *Socket) SendMessages(messages ...vmc.Message) error {
	content := make([]osc.Packet, 0, len(messages))
	for _, m := range messages {
		content = append(content, m.OSC())
	}
	return s.Send(osc.NewBundle(osc.TimeTagImmediate, content...))
}

func (s *Socket) sent(encoded []byte, n int, err error) error {
	if err != nil {
		s.metrics.sendErrors.Inc()
		return err
	}
	if n != len(encoded) {
		s.metrics.sendErrors.Inc()
		return &ShortSendError{Sent: n, Total: len(encoded)}
	}

	s.metrics.packetsSent.Inc()
	s.metrics.bytesSent.Add(float64(n))
	return nil
}

// Sender returns a send-only handle on this socket, suitable for handing
// to goroutines that should not be able to receive or close it.
func (s *Socket) Sender() Sender {
	return Sender{socket: s}
}

// Sender is a copyable send-only view of a Socket.
type Sender struct {
	socket *Socket
}

// Send encodes a packet and transmits it to the connected remote address.
func (s Sender) Send(packet osc.Packet) error {
	return s.socket.Send(packet)
}

// SendTo encodes a packet and transmits it to the given address.
func (s Sender) SendTo(packet osc.Packet, addr *net.UDPAddr) error {
	return s.socket.SendTo(packet, addr)
}

// SendMessage transmits a single VMC message to the connected remote
// address.
func (s Sender) SendMessage(m vmc.Message) error {
	return s.socket.SendMessage(m)
}

// SendMessages transmits VMC messages as a single immediate bundle.
func (s Sender) SendMessages(messages ...vmc.Message) error {
	return s.socket.SendMessages(messages...)
}

// Receive reads datagrams until the context is cancelled or the socket is
// closed, decoding each into an OSC packet and passing it to the handler.
// Datagrams that fail to decode are counted and logged, and the loop
// continues.
func (s *Socket) Receive(ctx context.Context, handler Handler) error {
	buf := make([]byte, s.readBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.conn.SetReadDeadline(time.Now().Add(readPollInterval)); err != nil {
			return err
		}

		n, source, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		s.metrics.bytesReceived.Add(float64(n))

		// Decode copies string and blob contents out of the read buffer, so
		// the packet is safe to retain across reads.
		packet, rest, err := osc.Decode(buf[:n])
		if err != nil {
			s.metrics.decodeErrors.Inc()
			s.logger.Warn("discarding malformed datagram",
				zap.Stringer("source", source),
				zap.Int("length", n),
				zap.Error(err),
			)
			continue
		}
		if len(rest) > 0 {
			s.logger.Debug("datagram has trailing bytes",
				zap.Stringer("source", source),
				zap.Int("trailing", len(rest)),
			)
		}

		s.metrics.packetsReceived.Inc()
		handler(packet, source)
	}
}

// ReceiveMessages is Receive with the VMC message layer applied: each
// decoded packet is flattened and parsed, and the resulting messages are
// passed to the handler.  Packets that are not valid VMC are logged and
// skipped.
func (s *Socket) ReceiveMessages(ctx context.Context, handler func(messages []vmc.Message, source net.Addr)) error {
	return s.Receive(ctx, func(packet osc.Packet, source net.Addr) {
		messages, err := vmc.Parse(packet)
		if err != nil {
			s.logger.Warn("discarding packet with non-VMC content",
				zap.Stringer("source", source),
				zap.Error(err),
			)
			return
		}
		handler(messages, source)
	})
}
