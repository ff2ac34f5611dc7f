// ABOUTME: Classifies raw input bytes as control or printable characters.
// ABOUTME: Control characters are ASCII 0-31 plus DEL (127); everything else is printable.

package input

// Kind distinguishes control codes from printable characters.
type Kind int

const (
	ControlCharacter Kind = iota
	PrintableCharacter
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case ControlCharacter:
		return "control"
	case PrintableCharacter:
		return "printable"
	default:
		return "unknown"
	}
}

// ClassifiedByte pairs a raw input byte with its derived kind. It
// lives for one loop iteration; nothing retains it.
type ClassifiedByte struct {
	Value byte
	Kind  Kind
}

// Classify derives the kind of b. The control range is ASCII 0-31 and
// the delete code 127; bytes 128-255 are not control codes and fall
// through to printable, matching C's iscntrl.
func Classify(b byte) ClassifiedByte {
	if b < 32 || b == 127 {
		return ClassifiedByte{Value: b, Kind: ControlCharacter}
	}
	return ClassifiedByte{Value: b, Kind: PrintableCharacter}
}
