package worldstate

// BlockPos is a 3D integer cell key (spec.md's "World position").
type BlockPos struct {
	X, Y, Z int32
}

func (p BlockPos) Offset(d Direction) BlockPos {
	o := d.Offset()
	return BlockPos{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

func (p BlockPos) Add(dx, dy, dz int32) BlockPos {
	return BlockPos{p.X + dx, p.Y + dy, p.Z + dz}
}

// ChunkPos identifies a 16x16 chunk column.
type ChunkPos struct {
	X, Z int32
}

func (p BlockPos) Chunk() ChunkPos {
	return ChunkPos{X: p.X >> 4, Z: p.Z >> 4}
}
