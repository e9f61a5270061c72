package protocol

import (
	"bytes"
)

// Play-state packet ids these touchpoints build on. BlockUpdate reuses the
// teacher's existing Block Change id (pkg/server/broadcast.go's
// broadcastBlockChange); SoundEffect is new, grounded on spec.md §6's
// payload shape rather than the teacher's 1.8 Named Sound Effect packet.
const (
	PacketBlockUpdate = 0x23
	PacketSoundEffect = 0x29
)

// BlockUpdate is spec.md §6's block-update packet: a world position plus
// the VarInt-encoded state-id now occupying it.
type BlockUpdate struct {
	X, Y, Z int32
	StateID uint16
}

// MarshalBlockUpdate builds the wire packet for a BlockUpdate, following
// pkg/server/broadcast.go's broadcastBlockChange encoding exactly.
func MarshalBlockUpdate(u BlockUpdate) *Packet {
	return MarshalPacket(PacketBlockUpdate, func(w *bytes.Buffer) {
		WritePosition(w, u.X, u.Y, u.Z)
		WriteVarInt(w, int32(u.StateID))
	})
}

// SoundEffect is spec.md §6's sound packet: a numeric sound id, category,
// double-precision position, and float volume/pitch.
type SoundEffect struct {
	SoundID  uint16
	Category uint8
	X, Y, Z  float64
	Volume   float32
	Pitch    float32
}

// MarshalSoundEffect builds the wire packet for a SoundEffect.
func MarshalSoundEffect(ev SoundEffect) *Packet {
	return MarshalPacket(PacketSoundEffect, func(w *bytes.Buffer) {
		WriteUint16(w, ev.SoundID)
		WriteByte(w, ev.Category)
		WriteFloat64(w, ev.X)
		WriteFloat64(w, ev.Y)
		WriteFloat64(w, ev.Z)
		WriteFloat32(w, ev.Volume)
		WriteFloat32(w, ev.Pitch)
	})
}
