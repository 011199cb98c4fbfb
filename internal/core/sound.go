package core

// Cue identifies a discrete sound effect requested by a game.
type Cue string

const (
	CueMove   Cue = "move"
	CueRotate Cue = "rotate"
	CuePlace  Cue = "place"
	CueLine1  Cue = "line1"
	CueLine2  Cue = "line2"
	CueLine3  Cue = "line3"
	CueLine4  Cue = "line4"
)

// LineCue returns the cue for clearing n rows at once.
// Counts outside 1..4 yield an empty cue.
func LineCue(n int) Cue {
	switch n {
	case 1:
		return CueLine1
	case 2:
		return CueLine2
	case 3:
		return CueLine3
	case 4:
		return CueLine4
	default:
		return ""
	}
}

// SoundPlayer plays cues. Play is fire-and-forget and must not block.
type SoundPlayer interface {
	Play(c Cue)
}

// NopSound discards every cue.
type NopSound struct{}

// Play implements SoundPlayer.
func (NopSound) Play(Cue) {}

// SoundEmitter is implemented by games that issue sound cues.
// The platform uses it to attach its player.
type SoundEmitter interface {
	SetSoundPlayer(p SoundPlayer)
}
