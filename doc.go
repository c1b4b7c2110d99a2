/*
Package vmc implements the Virtual Motion Capture protocol: a set of OSC
address and argument conventions for streaming avatar bone, device, and
blend-shape transforms between a performer (the motion source) and a
marionette (the renderer).

The package converts between the generic OSC data model in
github.com/pykeio/vmc/osc and a closed union of VMC message kinds.  Parse
flattens an OSC packet and dispatches each contained message on its
address and argument shape; every message kind projects back onto OSC via
its OSC method.  Both directions are pure transformations, safe for
concurrent use.
*/
package vmc
