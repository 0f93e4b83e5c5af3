package roommesh

// Entity is a point-placed object within a room. Every available
// variant implements this interface. The set of variants is fixed by
// the file format; the codec rejects tags outside of it.
type Entity interface {
	// Tag returns the textual tag identifying the entity variant on
	// the wire.
	Tag() string
}

// EntitiesByTag returns the entities of the root whose tag matches.
func (root *Root) EntitiesByTag(tag string) []Entity {
	var list []Entity
	for _, ent := range root.Entities {
		if ent.Tag() == tag {
			list = append(list, ent)
		}
	}
	return list
}

// Screen is an in-world display surface.
type Screen struct {
	Position [3]float32
	Name     string
}

func (*Screen) Tag() string { return "screen" }

// Waypoint is a navigation marker.
type Waypoint struct {
	Position [3]float32
}

func (*Waypoint) Tag() string { return "waypoint" }

// Light is an omnidirectional light source.
type Light struct {
	Position  [3]float32
	Range     float32
	Color     [3]uint8
	Intensity float32
}

func (*Light) Tag() string { return "light" }

// Spotlight is a cone-shaped light source.
type Spotlight struct {
	Position  [3]float32
	Range     float32
	Color     [3]uint8
	Intensity float32

	// Angles orients the cone. The format stores the three components
	// as bytes.
	Angles [3]uint8

	InnerConeAngle float32
	OuterConeAngle float32
}

func (*Spotlight) Tag() string { return "spotlight" }

// SoundEmitter marks a position that plays ambient sound. The two
// reserved fields are present in every file; their meaning is not
// known.
type SoundEmitter struct {
	Position  [3]float32
	Reserved0 uint32
	Reserved1 float32
}

func (*SoundEmitter) Tag() string { return "soundemitter" }

// PlayerStart is the player spawn point.
type PlayerStart struct {
	Position [3]float32

	// Angles is stored as free-form text; files exist where it is not
	// a well-formed numeric triple, so it is kept as written.
	Angles string
}

func (*PlayerStart) Tag() string { return "playerstart" }

// Model places an auxiliary model in the room.
type Model struct {
	Name     string
	Position [3]float32

	// Rotation is a set of XYZ Euler angles, in radians.
	Rotation [3]float32

	Scale [3]float32
}

func (*Model) Tag() string { return "model" }
