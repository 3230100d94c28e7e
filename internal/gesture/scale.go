package gesture

// Level is the quantized 0-5 control signal derived from inter-finger
// distance.
type Level int

const (
	MinLevel Level = 0
	MaxLevel Level = 5
)

// Default distance bounds in pixels for the level mapping.
const (
	DefaultMinDistance = 15.0
	DefaultMaxDistance = 200.0
)

var levelNames = [...]string{"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE"}

// String returns the spoken name of the level ("ZERO" through "FIVE").
func (l Level) String() string {
	if l < MinLevel || l > MaxLevel {
		return "INVALID"
	}
	return levelNames[l]
}

// Digit returns the ASCII decimal digit for the level.
func (l Level) Digit() byte {
	return '0' + byte(l)
}

// LevelForDistance linearly rescales a distance from [min, max] onto the
// level range and truncates to an integer. The input is clamped to [min, max]
// first, so the mapping saturates: distances below min yield MinLevel and
// distances above max yield MaxLevel.
func LevelForDistance(distance, min, max float64) Level {
	if max <= min {
		return MinLevel
	}

	if distance < min {
		distance = min
	}
	if distance > max {
		distance = max
	}

	scaled := (distance - min) / (max - min) * float64(MaxLevel)
	return Level(int(scaled))
}
