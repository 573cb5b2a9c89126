package aeries

import "strconv"

// Segment is one path component of an endpoint URL. A Segment is either
// present, carrying a string or numeric value, or absent. Absent segments are
// skipped entirely when a URL is built: they contribute neither a path element
// nor an empty placeholder, which lets a fixed-arity accessor omit an optional
// trailing identifier.
type Segment struct {
	value   string
	present bool
}

// Absent is the explicit omission marker. It is distinct from Seg(""): an
// empty present segment is a caller error, while Absent means "no segment
// here at all".
var Absent = Segment{}

// Seg returns a present string segment.
func Seg(value string) Segment {
	return Segment{value: value, present: true}
}

// SegInt returns a present numeric segment.
func SegInt(value int) Segment {
	return Segment{value: strconv.Itoa(value), present: true}
}

// Present reports whether the segment contributes a path element.
func (s Segment) Present() bool {
	return s.present
}

// String returns the segment's path value. Absent segments render as the
// empty string.
func (s Segment) String() string {
	return s.value
}
