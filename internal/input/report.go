// ABOUTME: Formats classified bytes as diagnostic lines for the terminal.
// ABOUTME: Lines end in CRLF because raw mode disables output post-processing.

package input

import "fmt"

// Format renders one diagnostic line for cb: the decimal value for a
// control character, the decimal value and literal glyph for a
// printable one. With OPOST off a bare "\n" does not return the
// carriage, so lines are CRLF-terminated.
func Format(cb ClassifiedByte) string {
	if cb.Kind == ControlCharacter {
		return fmt.Sprintf("%d\r\n", cb.Value)
	}
	return fmt.Sprintf("%d ('%c')\r\n", cb.Value, cb.Value)
}
