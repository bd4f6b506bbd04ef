// Package anim provides easing curves and periodic wave generators for
// driving operator parameters over time.
//
// Both families are closed sets of named functions looked up by tag.
// Unlike the image operators, which coerce bad input, an unknown tag is an
// error here:
//
//	v, err := anim.Ease(anim.CubicInOut, 0, 360, 1, 0.25, anim.DefaultClip)
//	if errors.Is(err, anim.ErrUnknownOperator) {
//		// handle
//	}
package anim

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownOperator is returned when an easing or wave tag has no
// registered function.
var ErrUnknownOperator = errors.New("anim: unknown operator")

// registry is a closed table of named functions indexed by tag.
type registry[T ~uint8, F any] struct {
	kind   string
	names  []string
	funcs  []F
	lookup map[string]T
}

func newRegistry[T ~uint8, F any](kind string, names []string, funcs []F, aliases map[string]T) *registry[T, F] {
	r := &registry[T, F]{kind: kind, names: names, funcs: funcs, lookup: make(map[string]T, len(names)+len(aliases))}
	for i, n := range names {
		r.lookup[normalize(n)] = T(i)
	}
	for n, v := range aliases {
		r.lookup[normalize(n)] = v
	}
	return r
}

func (r *registry[T, F]) get(v T) (F, error) {
	if int(v) < len(r.funcs) {
		return r.funcs[v], nil
	}
	var zero F
	return zero, fmt.Errorf("%w: %s", ErrUnknownOperator, r.name(v))
}

func (r *registry[T, F]) name(v T) string {
	if int(v) < len(r.names) {
		return r.names[v]
	}
	return fmt.Sprintf("%s(%d)", r.kind, uint8(v))
}

func (r *registry[T, F]) parse(s string) (T, error) {
	if v, ok := r.lookup[normalize(s)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownOperator, r.kind, s)
}

// normalize folds case and treats underscores, dashes and runs of spaces
// alike.
func normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(cases.Upper(language.Und).String(s)), " ")
}
