// Package socket provides UDP transport for VMC messages.  A performer
// binds an ephemeral port and transmits to a marionette, which listens on
// the well-known VMC port (39539 by default).
package socket
