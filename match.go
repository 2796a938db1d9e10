package fp

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by Match if none of the patterns matched the subject
// and no catch-all pattern was supplied.
var ErrNoMatch = errors.New("no pattern matched and no fallback provided")

// --- Pattern ---------------------------------------------------------------

// Pattern is a predicate/transform pair. If the predicate holds for a subject
// value, the transform produces the result of the match.
//
// Patterns are created with When, Otherwise, Equals and IsType. The zero value
// is not a valid pattern.
type Pattern[T, R any] struct {
	predicate func(T) bool
	transform func(T) R
}

// Matches reports whether p's predicate holds for value.
func (p Pattern[T, R]) Matches(value T) bool {
	assertThat(p.predicate != nil, "pattern without predicate")
	return p.predicate(value)
}

// Apply applies p's transform to value, regardless of the predicate.
func (p Pattern[T, R]) Apply(value T) R {
	assertThat(p.transform != nil, "pattern without transform")
	return p.transform(value)
}

// When creates a pattern which matches if predicate holds.
func When[T, R any](predicate func(T) bool, transform func(T) R) Pattern[T, R] {
	return Pattern[T, R]{predicate: predicate, transform: transform}
}

// Otherwise creates a catch-all pattern. It is usually placed last.
func Otherwise[T, R any](transform func(T) R) Pattern[T, R] {
	return When(func(T) bool { return true }, transform)
}

// Equals creates a pattern which matches if the subject equals target.
func Equals[T comparable, R any](target T, transform func(T) R) Pattern[T, R] {
	return When(func(v T) bool { return v == target }, transform)
}

// IsType creates a pattern which matches if guard is able to narrow the subject
// to type S. The transform receives the narrowed value.
// guard is called once for the predicate and again for the transform, so it
// must be pure.
//
// For interface-typed subjects, As is a ready-made guard:
//
//     fp.IsType(fp.As[any, string], func(s string) int { return len(s) })
//
func IsType[T, S, R any](guard func(T) (S, bool), transform func(S) R) Pattern[T, R] {
	return Pattern[T, R]{
		predicate: func(v T) bool {
			_, ok := guard(v)
			return ok
		},
		transform: func(v T) R {
			s, _ := guard(v)
			return transform(s)
		},
	}
}

// As is a type guard performing a type assertion of v to S.
func As[T, S any](v T) (S, bool) {
	s, ok := any(v).(S)
	return s, ok
}

// --- Match -----------------------------------------------------------------

// Match scans patterns from left to right. The first pattern matching value has
// its transform applied to value, and the result is returned.
// Patterns are never re-ordered; if more than one pattern matches, the earliest
// one wins.
//
// If no pattern matches, Match returns an error wrapping ErrNoMatch.
func Match[T, R any](value T, patterns ...Pattern[T, R]) (R, error) {
	for i, p := range patterns {
		if p.Matches(value) {
			tracer().Debugf("match: pattern #%d matches %v", i, value)
			return p.Apply(value), nil
		}
	}
	var r R
	tracer().Debugf("match: none of %d patterns matches %v", len(patterns), value)
	return r, fmt.Errorf("%w: %v", ErrNoMatch, value)
}

// MustMatch is like Match, but panics if no pattern matches.
func MustMatch[T, R any](value T, patterns ...Pattern[T, R]) R {
	r, err := Match(value, patterns...)
	if err != nil {
		panic(err)
	}
	return r
}

// Matcher returns a function which matches its argument against patterns.
// The pattern sequence is copied, so later modifications by the caller do not
// affect the matcher.
func Matcher[T, R any](patterns ...Pattern[T, R]) func(T) (R, error) {
	ps := make([]Pattern[T, R], len(patterns))
	copy(ps, patterns)
	return func(value T) (R, error) {
		return Match(value, ps...)
	}
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fp: "+msg, msgargs...)
		panic(msg)
	}
}
