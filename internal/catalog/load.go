package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// jsonProperty mirrors one entry of properties.json (spec.md §6).
type jsonProperty struct {
	HashKey        string          `json:"hash_key"`
	EnumName       string          `json:"enum_name"`
	SerializedName string          `json:"serialized_name"`
	Type           jsonPropertyType `json:"type"`
}

type jsonPropertyType struct {
	Type   string `json:"type"` // "boolean" | "int" | "enum"
	Min    *int   `json:"min,omitempty"`
	Max    *int   `json:"max,omitempty"`
	Values []string `json:"values,omitempty"`
}

type jsonShape struct {
	Min jsonVec3 `json:"min"`
	Max jsonVec3 `json:"max"`
}

type jsonVec3 struct {
	X, Y, Z float64
}

type jsonState struct {
	StateFlags      uint8    `json:"state_flags"`
	SideFlags       uint8    `json:"side_flags"`
	Luminance       uint8    `json:"luminance"`
	PistonBehavior  string   `json:"piston_behavior"`
	Hardness        float32  `json:"hardness"`
	CollisionShapes []uint16 `json:"collision_shapes"`
	OutlineShapes   []uint16 `json:"outline_shapes"`
	Opacity         *uint8   `json:"opacity"`
	BlockEntityType *string  `json:"block_entity_type"`
}

type jsonExperience struct {
	Min int32 `json:"min"`
	Max int32 `json:"max"`
}

type jsonBlock struct {
	ID                     uint16          `json:"id"`
	Name                   string          `json:"name"`
	TranslationKey         string          `json:"translation_key"`
	Hardness               float32         `json:"hardness"`
	BlastResistance        float32         `json:"blast_resistance"`
	ItemID                 int32           `json:"item_id"`
	LootTable              string          `json:"loot_table"`
	Slipperiness           float32         `json:"slipperiness"`
	VelocityMultiplier     float32         `json:"velocity_multiplier"`
	JumpVelocityMultiplier float32         `json:"jump_velocity_multiplier"`
	Properties             []string        `json:"properties"` // hash_keys, declaration order
	DefaultStateIndex      int             `json:"default_state_index"`
	Experience             *jsonExperience `json:"experience"`
	States                  []jsonState     `json:"states"`
}

type jsonRoot struct {
	Shapes           []jsonShape `json:"shapes"`
	BlockEntityTypes []string    `json:"block_entity_types"`
	Blocks           []jsonBlock `json:"blocks"`
}

// Load builds a Catalog from the raw blocks.json and properties.json
// payloads. Any malformed input aborts the build with a descriptive
// error, per spec.md §7 ("data errors: abort build").
func Load(blocksJSON, propertiesJSON []byte) (*Catalog, error) {
	var rawProps []jsonProperty
	if err := json.Unmarshal(propertiesJSON, &rawProps); err != nil {
		return nil, fmt.Errorf("catalog: parsing properties.json: %w", err)
	}
	propsByKey := make(map[string]*Property, len(rawProps))
	for _, rp := range rawProps {
		p, err := buildProperty(rp)
		if err != nil {
			return nil, err
		}
		propsByKey[rp.HashKey] = p
	}

	var root jsonRoot
	if err := json.Unmarshal(blocksJSON, &root); err != nil {
		return nil, fmt.Errorf("catalog: parsing blocks.json: %w", err)
	}

	cat := &Catalog{
		byID:     make(map[uint16]*Block),
		byKey:    make(map[string]*Block),
		byItemID: make(map[int32]*Block),
	}
	for _, s := range root.Shapes {
		cat.shapes = append(cat.shapes, Shape{
			MinX: s.Min.X, MinY: s.Min.Y, MinZ: s.Min.Z,
			MaxX: s.Max.X, MaxY: s.Max.Y, MaxZ: s.Max.Z,
		})
	}
	cat.blockEntities = append(cat.blockEntities, root.BlockEntityTypes...)

	groupSigs := make(map[string]*PropertyGroup)
	var nextStateID uint16

	for _, jb := range root.Blocks {
		key := "minecraft:" + jb.Name
		block := &Block{
			ID:                     jb.ID,
			Key:                    key,
			TranslationKey:         jb.TranslationKey,
			ItemID:                 jb.ItemID,
			Hardness:               jb.Hardness,
			BlastResistance:        jb.BlastResistance,
			Slipperiness:           jb.Slipperiness,
			VelocityMultiplier:     jb.VelocityMultiplier,
			JumpVelocityMultiplier: jb.JumpVelocityMultiplier,
			LootTable:              jb.LootTable,
		}
		if jb.Experience != nil {
			block.Experience = &ExperienceRange{Min: jb.Experience.Min, Max: jb.Experience.Max}
		}

		var props []*Property
		for _, pk := range jb.Properties {
			p, ok := propsByKey[pk]
			if !ok {
				return nil, fmt.Errorf("catalog: block %s references unknown property %q", key, pk)
			}
			props = append(props, p)
		}
		block.Properties = props

		expected := 1
		for _, p := range props {
			expected *= int(p.VariantCount())
		}
		if len(jb.States) != expected {
			return nil, fmt.Errorf("catalog: block %s declares %d states, expected %d from its properties", key, len(jb.States), expected)
		}
		if jb.DefaultStateIndex < 0 || jb.DefaultStateIndex >= len(jb.States) {
			return nil, fmt.Errorf("catalog: block %s has out-of-range default_state_index %d", key, jb.DefaultStateIndex)
		}

		block.FirstStateID = nextStateID
		block.LastStateID = nextStateID + uint16(len(jb.States)) - 1
		block.DefaultStateID = block.FirstStateID + uint16(jb.DefaultStateIndex)

		for _, js := range jb.States {
			pb, err := parsePistonBehavior(js.PistonBehavior)
			if err != nil {
				return nil, fmt.Errorf("catalog: block %s: %w", key, err)
			}
			state := &BlockState{
				ID:              nextStateID,
				StateFlags:      js.StateFlags,
				SideFlags:       js.SideFlags,
				Luminance:       js.Luminance,
				PistonBehavior:  pb,
				Hardness:        js.Hardness,
				CollisionShapes: js.CollisionShapes,
				OutlineShapes:   js.OutlineShapes,
				Opacity:         js.Opacity,
				BlockEntityType: js.BlockEntityType,
			}
			stateIdx := len(cat.states)
			cat.states = append(cat.states, state)
			block.States = append(block.States, BlockStateRef{ID: nextStateID, StateIdx: stateIdx})
			nextStateID++
		}

		if block.DefaultStateID < block.FirstStateID || block.DefaultStateID > block.LastStateID {
			return nil, fmt.Errorf("catalog: block %s default_state_id out of its own range", key)
		}

		cat.blocks = append(cat.blocks, block)
		cat.byID[block.ID] = block
		cat.byKey[block.Key] = block
		if block.ItemID >= 0 {
			if _, exists := cat.byItemID[block.ItemID]; !exists {
				cat.byItemID[block.ItemID] = block
			}
		}

		sig := propertySignature(props)
		group, ok := groupSigs[sig]
		if !ok {
			group = &PropertyGroup{Name: groupName(block.Key, props), Properties: props}
			groupSigs[sig] = group
		}
		group.BlockIDs = append(group.BlockIDs, block.ID)
	}

	sort.Slice(cat.blocks, func(i, j int) bool { return cat.blocks[i].FirstStateID < cat.blocks[j].FirstStateID })

	cat.groups = groupSigs
	return cat, nil
}

func propertySignature(props []*Property) string {
	keys := make([]string, len(props))
	for i, p := range props {
		keys[i] = p.Key
	}
	return strings.Join(keys, ",")
}

func groupName(firstBlockKey string, props []*Property) string {
	if len(props) == 0 {
		return "NoProperties"
	}
	name := strings.TrimPrefix(firstBlockKey, "minecraft:")
	return name + "_like"
}

func buildProperty(rp jsonProperty) (*Property, error) {
	p := &Property{Key: rp.HashKey, EnumName: rp.EnumName, SerializedName: rp.SerializedName}
	switch rp.Type.Type {
	case "boolean":
		p.Kind = PropertyBool
	case "enum":
		if len(rp.Type.Values) == 0 {
			return nil, fmt.Errorf("catalog: property %s: enum with no values", rp.HashKey)
		}
		p.Kind = PropertyEnum
		p.Values = rp.Type.Values
	case "int":
		if rp.Type.Min == nil || rp.Type.Max == nil || *rp.Type.Max < *rp.Type.Min {
			return nil, fmt.Errorf("catalog: property %s: invalid int range", rp.HashKey)
		}
		p.Kind = PropertyEnum // integer ranges encode as enums, per spec.md §3
		for v := *rp.Type.Min; v <= *rp.Type.Max; v++ {
			p.Values = append(p.Values, fmt.Sprintf("%d", v))
		}
	default:
		return nil, fmt.Errorf("catalog: property %s: unknown type %q", rp.HashKey, rp.Type.Type)
	}
	return p, nil
}

func parsePistonBehavior(s string) (PistonBehavior, error) {
	switch s {
	case "", "NORMAL":
		return PistonNormal, nil
	case "DESTROY":
		return PistonDestroy, nil
	case "BLOCK":
		return PistonBlock, nil
	case "IGNORE":
		return PistonIgnore, nil
	case "PUSH_ONLY":
		return PistonPushOnly, nil
	default:
		return 0, fmt.Errorf("unknown piston_behavior %q", s)
	}
}

// GroupFor returns the shared PropertyGroup covering block's property
// signature. Every block has a group, even blocks with zero properties
// (a single-state group whose ToIndex/FromIndex are trivially 0).
func (c *Catalog) GroupFor(block *Block) *PropertyGroup {
	return c.groups[propertySignature(block.Properties)]
}
