package protocol

import (
	"bytes"
	"testing"
)

func TestMarshalBlockUpdate(t *testing.T) {
	pkt := MarshalBlockUpdate(BlockUpdate{X: 1, Y: 64, Z: -2, StateID: 300})
	if pkt.ID != PacketBlockUpdate {
		t.Fatalf("packet id = %#x, want %#x", pkt.ID, PacketBlockUpdate)
	}

	r := bytes.NewReader(pkt.Data)
	x, y, z, err := ReadPosition(r)
	if err != nil {
		t.Fatalf("ReadPosition: %v", err)
	}
	if x != 1 || y != 64 || z != -2 {
		t.Errorf("position = (%d,%d,%d), want (1,64,-2)", x, y, z)
	}
	stateID, _, err := ReadVarInt(r)
	if err != nil {
		t.Fatalf("ReadVarInt: %v", err)
	}
	if stateID != 300 {
		t.Errorf("state id = %d, want 300", stateID)
	}
}

func TestMarshalSoundEffect(t *testing.T) {
	pkt := MarshalSoundEffect(SoundEffect{SoundID: 7, Category: 0, X: 1.5, Y: 64, Z: -2.5, Volume: 0.4, Pitch: 0.6})
	if pkt.ID != PacketSoundEffect {
		t.Fatalf("packet id = %#x, want %#x", pkt.ID, PacketSoundEffect)
	}

	r := bytes.NewReader(pkt.Data)
	soundID, err := ReadUint16(r)
	if err != nil || soundID != 7 {
		t.Fatalf("sound id = %d, err %v, want 7", soundID, err)
	}
	category, err := ReadByte(r)
	if err != nil || category != 0 {
		t.Fatalf("category = %d, err %v, want 0", category, err)
	}
	x, err := ReadFloat64(r)
	if err != nil || x != 1.5 {
		t.Fatalf("x = %v, err %v, want 1.5", x, err)
	}
	y, err := ReadFloat64(r)
	if err != nil || y != 64 {
		t.Fatalf("y = %v, err %v, want 64", y, err)
	}
	z, err := ReadFloat64(r)
	if err != nil || z != -2.5 {
		t.Fatalf("z = %v, err %v, want -2.5", z, err)
	}
	volume, err := ReadFloat32(r)
	if err != nil || volume != 0.4 {
		t.Fatalf("volume = %v, err %v, want 0.4", volume, err)
	}
	pitch, err := ReadFloat32(r)
	if err != nil || pitch != 0.6 {
		t.Fatalf("pitch = %v, err %v, want 0.6", pitch, err)
	}
}
