package socket

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// SocketKey is the Viper subkey under which socket configuration should
	// be stored.  FromViper *does not* assume this key.
	SocketKey = "socket"

	// DefaultPort is the well-known VMC marionette port.
	DefaultPort = 39539

	DefaultPerformerBind  = "127.0.0.1:0"
	DefaultPerformerSend  = "127.0.0.1:39539"
	DefaultMarionetteBind = "127.0.0.1:39539"

	// DefaultReadBufferSize comfortably holds the largest UDP datagram.
	DefaultReadBufferSize = 64 * 1024
)

// Options is the configurable options for creating a Socket.
type Options struct {
	// Logger is the zap logger for socket output.  If unset, a no-op
	// logger is used.
	Logger *zap.Logger `json:"-"`

	// Registerer receives the socket's metrics.  If unset, metrics are
	// collected but not registered anywhere.
	Registerer prometheus.Registerer `json:"-"`

	// Bind is the local address to bind, in host:port form.  A port of 0
	// requests an OS-assigned port.  If unset, Performer binds
	// DefaultPerformerBind and Marionette binds DefaultMarionetteBind.
	Bind string `json:"bind"`

	// Send is the remote address transmitted packets go to.  Only
	// performers use it; if unset, DefaultPerformerSend is used.
	Send string `json:"send"`

	// ReadBufferSize is the size of the buffer datagrams are received
	// into.  Datagrams larger than this are truncated and will fail to
	// decode.  If unset, DefaultReadBufferSize is used.
	ReadBufferSize int `json:"readBufferSize"`
}

func (o *Options) logger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}

	return zap.NewNop()
}

func (o *Options) registerer() prometheus.Registerer {
	if o != nil && o.Registerer != nil {
		return o.Registerer
	}

	return discardRegisterer{}
}

func (o *Options) bind(def string) string {
	if o != nil && len(o.Bind) > 0 {
		return o.Bind
	}

	return def
}

func (o *Options) send() string {
	if o != nil && len(o.Send) > 0 {
		return o.Send
	}

	return DefaultPerformerSend
}

func (o *Options) readBufferSize() int {
	if o != nil && o.ReadBufferSize > 0 {
		return o.ReadBufferSize
	}

	return DefaultReadBufferSize
}

// Sub returns the standard child Viper, using SocketKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(SocketKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}
