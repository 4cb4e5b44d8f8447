package state

// SoundKind names a cue the store asks the audio collaborator to play.
type SoundKind int

const (
	SoundRealityShift SoundKind = iota
	SoundTimeReverse
	SoundPuzzleSolved
	MusicNormal
	MusicQuantum
)

// SoundKinds lists every cue in declaration order.
var SoundKinds = []SoundKind{
	SoundRealityShift,
	SoundTimeReverse,
	SoundPuzzleSolved,
	MusicNormal,
	MusicQuantum,
}

// String returns the cue's asset name.
func (k SoundKind) String() string {
	switch k {
	case SoundRealityShift:
		return "reality-shift"
	case SoundTimeReverse:
		return "time-reverse"
	case SoundPuzzleSolved:
		return "puzzle-solved"
	case MusicNormal:
		return "normal-ambient"
	case MusicQuantum:
		return "quantum-ambient"
	default:
		return "unknown"
	}
}

// IsMusic reports whether the cue is a looping background track.
func (k SoundKind) IsMusic() bool {
	return k == MusicNormal || k == MusicQuantum
}

// MusicFor returns the background track of a reality.
func MusicFor(r Reality) SoundKind {
	if r == RealityQuantum {
		return MusicQuantum
	}
	return MusicNormal
}

// Notifier receives fire-and-forget audio requests. Implementations must not
// block and must swallow their own failures.
type Notifier interface {
	PlaySound(kind SoundKind)
	SwitchBackgroundMusic(r Reality)
}

// NopNotifier ignores every request.
type NopNotifier struct{}

func (NopNotifier) PlaySound(SoundKind) {}
func (NopNotifier) SwitchBackgroundMusic(Reality) {}
