package models

import (
	"errors"
	"strings"
)

// Channel is a payment rail.
type Channel string

// Supported payment rails
const (
	UPI  Channel = "UPI"
	IMPS Channel = "IMPS"
	NEFT Channel = "NEFT"
	RTGS Channel = "RTGS"
)

// ErrUnknownChannel is returned when a channel name is not one of the supported rails.
var ErrUnknownChannel = errors.New("unknown payment channel")

// Channels lists every supported rail.
var Channels = []Channel{UPI, IMPS, NEFT, RTGS}

// ParseChannel converts a case-insensitive channel name into a Channel.
func ParseChannel(s string) (Channel, error) {
	ch := Channel(strings.ToUpper(strings.TrimSpace(s)))
	if !ch.Valid() {
		return "", ErrUnknownChannel
	}
	return ch, nil
}

// Valid reports whether the channel is a supported rail.
func (c Channel) Valid() bool {
	switch c {
	case UPI, IMPS, NEFT, RTGS:
		return true
	}
	return false
}

// UsesVPA reports whether parties on this rail are addressed by UPI identifier
// rather than by account number.
func (c Channel) UsesVPA() bool {
	return c == UPI
}
