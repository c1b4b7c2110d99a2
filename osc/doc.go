/*
Package osc implements the Open Sound Control 1.0 wire format: a binary
message protocol of address-pattern strings with typed arguments,
optionally grouped into timestamped bundles.

The package is split into a data model (Type, Message, Bundle, Packet),
a decoder (Decode, DecodeStream, DecodeStreamAll) and an encoder
(Encode, EncodeTo).  Decoding and encoding are pure transformations over
byte slices; they hold no shared state and are safe for concurrent use.
*/
package osc
