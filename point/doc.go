// Package point loads and holds the immutable 3D integer points that feed the
// nearest-pair clustering engine.
//
// A point is identified by its position in a Store, never by value: two lines
// with the same coordinates produce two distinct points.
//
// Input format:
//
//	x,y,z
//
// one point per line, three base-10 integers separated by commas. Whitespace
// around each field is ignored and blank lines are skipped.
//
// Errors:
//
//	ErrWrongDimensions - a line does not contain exactly three fields.
//	ErrBadCoordinate   - a field is not an integer.
//	ErrCoordinateRange - |coordinate| exceeds MaxCoordinate.
//	ErrTooManyPoints   - the input holds more points than WithMaxPoints allows.
//	ErrOptionViolation - an invalid Option was supplied.
//
// Load reports malformed lines as *LineError wrapping one of the sentinels
// above, so callers can match with errors.Is and still print the line number.
// No partial Store is ever returned.
package point
