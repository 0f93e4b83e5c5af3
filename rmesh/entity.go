package rmesh

import (
	"fmt"

	"github.com/anaminus/parse"
	"github.com/scpcb/roommesh"
)

// readEntity reads one entity: a length-prefixed tag string, then the
// payload dictated by the tag. The payload has no delimiter or length
// of its own, so a tag outside the fixed table fails the decode; there
// is no way to resynchronize past an unknown payload.
func readEntity(fr *parse.BinaryReader) (ent roommesh.Entity, failed bool) {
	var tag string
	if readString(fr, &tag) {
		return nil, true
	}

	switch tag {
	case "screen":
		return readScreen(fr)
	case "waypoint":
		return readWaypoint(fr)
	case "light":
		return readLight(fr)
	case "spotlight":
		return readSpotlight(fr)
	case "soundemitter":
		return readSoundEmitter(fr)
	case "playerstart":
		return readPlayerStart(fr)
	case "model":
		return readModel(fr)
	default:
		fr.Add(0, EntityTagError{Tag: tag})
		return nil, true
	}
}

func writeEntity(fw *parse.BinaryWriter, ent roommesh.Entity) (failed bool) {
	if writeString(fw, ent.Tag()) {
		return true
	}

	switch ent := ent.(type) {
	case *roommesh.Screen:
		return writeScreen(fw, ent)
	case *roommesh.Waypoint:
		return writeVec3(fw, ent.Position)
	case *roommesh.Light:
		return writeLight(fw, ent)
	case *roommesh.Spotlight:
		return writeSpotlight(fw, ent)
	case *roommesh.SoundEmitter:
		return writeSoundEmitter(fw, ent)
	case *roommesh.PlayerStart:
		return writePlayerStart(fw, ent)
	case *roommesh.Model:
		return writeModel(fw, ent)
	default:
		return fw.Add(0, fmt.Errorf("unencodable entity type %T", ent))
	}
}

func readScreen(fr *parse.BinaryReader) (roommesh.Entity, bool) {
	ent := roommesh.Screen{}
	if readVec3(fr, &ent.Position) {
		return nil, true
	}
	if readString(fr, &ent.Name) {
		return nil, true
	}
	return &ent, false
}

func writeScreen(fw *parse.BinaryWriter, ent *roommesh.Screen) (failed bool) {
	if writeVec3(fw, ent.Position) {
		return true
	}
	return writeString(fw, ent.Name)
}

func readWaypoint(fr *parse.BinaryReader) (roommesh.Entity, bool) {
	ent := roommesh.Waypoint{}
	if readVec3(fr, &ent.Position) {
		return nil, true
	}
	return &ent, false
}

func readLight(fr *parse.BinaryReader) (roommesh.Entity, bool) {
	ent := roommesh.Light{}
	if readVec3(fr, &ent.Position) {
		return nil, true
	}
	if fr.Number(&ent.Range) {
		return nil, true
	}
	if readTriple(fr, &ent.Color) {
		return nil, true
	}
	if fr.Number(&ent.Intensity) {
		return nil, true
	}
	return &ent, false
}

func writeLight(fw *parse.BinaryWriter, ent *roommesh.Light) (failed bool) {
	if writeVec3(fw, ent.Position) {
		return true
	}
	if fw.Number(ent.Range) {
		return true
	}
	if writeTriple(fw, ent.Color) {
		return true
	}
	return fw.Number(ent.Intensity)
}

func readSpotlight(fr *parse.BinaryReader) (roommesh.Entity, bool) {
	ent := roommesh.Spotlight{}
	if readVec3(fr, &ent.Position) {
		return nil, true
	}
	if fr.Number(&ent.Range) {
		return nil, true
	}
	if readTriple(fr, &ent.Color) {
		return nil, true
	}
	if fr.Number(&ent.Intensity) {
		return nil, true
	}
	if readTriple(fr, &ent.Angles) {
		return nil, true
	}
	if fr.Number(&ent.InnerConeAngle) {
		return nil, true
	}
	if fr.Number(&ent.OuterConeAngle) {
		return nil, true
	}
	return &ent, false
}

func writeSpotlight(fw *parse.BinaryWriter, ent *roommesh.Spotlight) (failed bool) {
	if writeVec3(fw, ent.Position) {
		return true
	}
	if fw.Number(ent.Range) {
		return true
	}
	if writeTriple(fw, ent.Color) {
		return true
	}
	if fw.Number(ent.Intensity) {
		return true
	}
	if writeTriple(fw, ent.Angles) {
		return true
	}
	if fw.Number(ent.InnerConeAngle) {
		return true
	}
	return fw.Number(ent.OuterConeAngle)
}

func readSoundEmitter(fr *parse.BinaryReader) (roommesh.Entity, bool) {
	ent := roommesh.SoundEmitter{}
	if readVec3(fr, &ent.Position) {
		return nil, true
	}
	if fr.Number(&ent.Reserved0) {
		return nil, true
	}
	if fr.Number(&ent.Reserved1) {
		return nil, true
	}
	return &ent, false
}

func writeSoundEmitter(fw *parse.BinaryWriter, ent *roommesh.SoundEmitter) (failed bool) {
	if writeVec3(fw, ent.Position) {
		return true
	}
	if fw.Number(ent.Reserved0) {
		return true
	}
	return fw.Number(ent.Reserved1)
}

func readPlayerStart(fr *parse.BinaryReader) (roommesh.Entity, bool) {
	ent := roommesh.PlayerStart{}
	if readVec3(fr, &ent.Position) {
		return nil, true
	}
	if readString(fr, &ent.Angles) {
		return nil, true
	}
	return &ent, false
}

func writePlayerStart(fw *parse.BinaryWriter, ent *roommesh.PlayerStart) (failed bool) {
	if writeVec3(fw, ent.Position) {
		return true
	}
	return writeString(fw, ent.Angles)
}

func readModel(fr *parse.BinaryReader) (roommesh.Entity, bool) {
	ent := roommesh.Model{}
	if readString(fr, &ent.Name) {
		return nil, true
	}
	if readVec3(fr, &ent.Position) {
		return nil, true
	}
	if readVec3(fr, &ent.Rotation) {
		return nil, true
	}
	if readVec3(fr, &ent.Scale) {
		return nil, true
	}
	return &ent, false
}

func writeModel(fw *parse.BinaryWriter, ent *roommesh.Model) (failed bool) {
	if writeString(fw, ent.Name) {
		return true
	}
	if writeVec3(fw, ent.Position) {
		return true
	}
	if writeVec3(fw, ent.Rotation) {
		return true
	}
	return writeVec3(fw, ent.Scale)
}
