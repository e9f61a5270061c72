package main

import (
	"github.com/sirupsen/logrus"

	"github.com/pumpkin-go/blockcore/internal/sound"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
	"github.com/pumpkin-go/blockcore/pkg/protocol"
)

// packetLogSink is this headless core's stand-in for the network broadcast
// a live connection would receive: it encodes every block-update and
// play_sound event to the wire shapes spec.md §6 names (pkg/protocol) and
// logs the resulting packet, the way pkg/server's broadcastBlockChange
// would have written the same bytes to a connection.
type packetLogSink struct {
	log *logrus.Logger
}

func (s *packetLogSink) BlockUpdated(pos worldstate.BlockPos, stateID uint16) {
	pkt := protocol.MarshalBlockUpdate(protocol.BlockUpdate{
		X: pos.X, Y: pos.Y, Z: pos.Z,
		StateID: stateID,
	})
	s.log.WithFields(logrus.Fields{
		"packet_id": pkt.ID,
		"bytes":     len(pkt.Data),
		"pos":       pos,
		"state_id":  stateID,
	}).Debug("block_update")
}

func (s *packetLogSink) PlaySound(pos worldstate.BlockPos, soundID uint16, category uint8, volume, pitch float32) {
	ev := sound.Event{
		SoundID:  sound.ID(soundID),
		Category: sound.Category(category),
		X:        float64(pos.X),
		Y:        float64(pos.Y),
		Z:        float64(pos.Z),
		Volume:   volume,
		Pitch:    pitch,
	}
	pkt := protocol.MarshalSoundEffect(protocol.SoundEffect{
		SoundID:  uint16(ev.SoundID),
		Category: uint8(ev.Category),
		X:        ev.X,
		Y:        ev.Y,
		Z:        ev.Z,
		Volume:   ev.Volume,
		Pitch:    ev.Pitch,
	})
	s.log.WithFields(logrus.Fields{
		"packet_id": pkt.ID,
		"bytes":     len(pkt.Data),
		"sound_id":  ev.SoundID,
	}).Debug("play_sound")
}
