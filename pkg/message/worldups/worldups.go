// Package worldups holds the generated records of the World Simulator's
// world_ups protocol (proto2).
package worldups

//go:generate protoc --go_out=. --go_opt=paths=source_relative world_ups.proto

// ConnectedResult is the UConnected.result text of a successful handshake.
const ConnectedResult = "connected!"
