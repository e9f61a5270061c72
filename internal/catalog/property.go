package catalog

// PropertyKind distinguishes a boolean property from a finite enumeration
// (integer-range properties are modeled as enums whose values are the
// decimal string of each integer, per spec.md §6).
type PropertyKind uint8

const (
	PropertyBool PropertyKind = iota
	PropertyEnum
)

// Property is either boolean or a finite ordered enumeration. Variant
// index order is the order Values is declared in; for booleans the
// encoding is fixed by spec.md §3: true -> index 0, false -> index 1.
type Property struct {
	Key            string // generator hash_key, process-unique
	EnumName       string
	SerializedName string
	Kind           PropertyKind
	Values         []string // variant list, enum order; unused for Bool
}

// VariantCount is the property's radix in the mixed-radix state-id
// encoding: 2 for booleans, len(Values) for enums.
func (p *Property) VariantCount() uint16 {
	if p.Kind == PropertyBool {
		return 2
	}
	return uint16(len(p.Values))
}

// ToIndex converts a typed value into its variant index.
func (p *Property) ToIndex(boolValue bool, enumValue string) uint16 {
	if p.Kind == PropertyBool {
		if boolValue {
			return 0
		}
		return 1
	}
	for i, v := range p.Values {
		if v == enumValue {
			return uint16(i)
		}
	}
	fault("Property.ToIndex", "unknown value %q for property %q", enumValue, p.SerializedName)
	return 0
}

// FromIndex converts a variant index back into its string representation
// ("true"/"false" for booleans, the enum's serialized value otherwise).
func (p *Property) FromIndex(index uint16) string {
	if p.Kind == PropertyBool {
		if index == 0 {
			return "true"
		}
		return "false"
	}
	if int(index) >= len(p.Values) {
		fault("Property.FromIndex", "index %d out of range for property %q", index, p.SerializedName)
	}
	return p.Values[index]
}

// FromIndexBool is a convenience for PropertyBool groups.
func (p *Property) FromIndexBool(index uint16) bool {
	return index == 0
}

// PropertyGroup is the shared mixed-radix codec for every block sharing
// the same ordered property list (the "typed property group" of
// spec.md §3/§9). Concrete per-signature wrapper types (e.g.
// TripwireHookProps in internal/blocks) hold a *PropertyGroup
// and translate named fields to/from the []uint16 index vector this type
// operates on, instead of each duplicating the mixed-radix arithmetic.
type PropertyGroup struct {
	Name       string
	Properties []*Property // declaration order
	BlockIDs   []uint16
}

func (g *PropertyGroup) HandlesBlockID(id uint16) bool {
	for _, b := range g.BlockIDs {
		if b == id {
			return true
		}
	}
	return false
}

func (g *PropertyGroup) requireHandles(op string, block *Block) {
	if !g.HandlesBlockID(block.ID) {
		fault(op, "%s is not a valid block for %s", block.Key, g.Name)
	}
}

// ToIndex packs a property-value vector (in declaration order, matching
// Properties) into the block's 0..N property index, using properties in
// reverse declaration order as the mixed-radix digits (spec.md §3: the
// last-declared property has multiplier 1, the first-declared the
// largest).
func (g *PropertyGroup) ToIndex(values []uint16) uint16 {
	if len(values) != len(g.Properties) {
		fault("PropertyGroup.ToIndex", "%s expects %d values, got %d", g.Name, len(g.Properties), len(values))
	}
	var index uint16 = 0
	var multiplier uint16 = 1
	for i := len(g.Properties) - 1; i >= 0; i-- {
		p := g.Properties[i]
		index += values[i] * multiplier
		multiplier *= p.VariantCount()
	}
	return index
}

// FromIndex unpacks a 0..N property index back into a value vector in
// declaration order.
func (g *PropertyGroup) FromIndex(index uint16) []uint16 {
	values := make([]uint16, len(g.Properties))
	for i := len(g.Properties) - 1; i >= 0; i-- {
		p := g.Properties[i]
		radix := p.VariantCount()
		values[i] = index % radix
		index /= radix
	}
	return values
}

// ToStateID maps a value vector to the block's absolute state-id.
func (g *PropertyGroup) ToStateID(block *Block, values []uint16) uint16 {
	g.requireHandles("PropertyGroup.ToStateID", block)
	return block.FirstStateID + g.ToIndex(values)
}

// FromStateID maps an absolute state-id back to a value vector.
func (g *PropertyGroup) FromStateID(stateID uint16, block *Block) []uint16 {
	g.requireHandles("PropertyGroup.FromStateID", block)
	if stateID < block.FirstStateID || stateID > block.LastStateID {
		fault("PropertyGroup.FromStateID", "state-id %d does not exist for %s", stateID, block.Key)
	}
	return g.FromIndex(stateID - block.FirstStateID)
}

// Default returns the value vector for the block's default state.
func (g *PropertyGroup) Default(block *Block) []uint16 {
	g.requireHandles("PropertyGroup.Default", block)
	return g.FromStateID(block.DefaultStateID, block)
}

// NamedValue is one (serialized-name, serialized-value) pair, in
// declaration order, as returned by ToProps.
type NamedValue struct {
	Name  string
	Value string
}

// ToProps renders a value vector as ordered (name, value) string pairs.
func (g *PropertyGroup) ToProps(values []uint16) []NamedValue {
	out := make([]NamedValue, len(g.Properties))
	for i, p := range g.Properties {
		out[i] = NamedValue{Name: p.SerializedName, Value: p.FromIndex(values[i])}
	}
	return out
}

// FromProps parses ordered (name, value) string pairs back into a value
// vector seeded from the block's default state, so unspecified
// properties keep their default value.
func (g *PropertyGroup) FromProps(block *Block, props []NamedValue) []uint16 {
	values := g.Default(block)
	for _, nv := range props {
		found := false
		for i, p := range g.Properties {
			if p.SerializedName == nv.Name {
				values[i] = p.ToIndex(p.Kind == PropertyBool && nv.Value == "true", nv.Value)
				found = true
				break
			}
		}
		if !found {
			fault("PropertyGroup.FromProps", "invalid key: %s", nv.Name)
		}
	}
	return values
}
