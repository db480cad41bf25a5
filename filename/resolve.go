/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package filename

import (
	"fmt"
	"iter"
	"slices"

	"bennypowers.dev/fptokens/internal/logger"
	"bennypowers.dev/fptokens/token"
)

// Values maps a token name to its candidate values.
type Values map[string][]string

// Binding is one token name paired with one candidate value.
type Binding struct {
	Name  string
	Value string
}

// Resolve returns every concrete Filename obtained by substituting one value
// per token, taken from the Cartesian product of values.
//
// Tokens are ordered by first appearance (folders, then base) and the last
// one varies fastest. Each yielded Filename is an independent copy; f is not
// modified. The sequence is lazy: stopping early skips the remaining copies.
//
// All preconditions are checked before the sequence is returned: f must hold
// at least one token (token.ErrNoTokens, so call Parse first) and values must
// have a key for every token (token.ErrMissingValues). Keys that match no
// token are ignored.
func (f *Filename) Resolve(values Values) (iter.Seq[*Filename], error) {
	combos, err := f.Combinations(values)
	if err != nil {
		return nil, err
	}
	return func(yield func(*Filename) bool) {
		for combo := range combos {
			if !yield(f.Apply(combo)) {
				return
			}
		}
	}, nil
}

// Combinations returns the product of candidate bindings for f's tokens
// without building any paths. Preconditions match Resolve.
func (f *Filename) Combinations(values Values) (iter.Seq[[]Binding], error) {
	names, err := f.tokenNames()
	if err != nil {
		return nil, err
	}

	candidates := make([][]string, len(names))
	total := 1
	for i, name := range names {
		vals, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", token.ErrMissingValues, name)
		}
		candidates[i] = slices.Clone(vals)
		total *= len(vals)
	}
	logger.Debug("resolving %s: %d tokens, %d combinations", f.Path(), len(names), total)

	return func(yield func([]Binding) bool) {
		product(names, candidates, yield)
	}, nil
}

// Count returns the number of combinations Resolve would yield.
func (f *Filename) Count(values Values) (int, error) {
	names, err := f.tokenNames()
	if err != nil {
		return 0, err
	}
	total := 1
	for _, name := range names {
		vals, ok := values[name]
		if !ok {
			return 0, fmt.Errorf("%w %q", token.ErrMissingValues, name)
		}
		total *= len(vals)
	}
	return total, nil
}

func (f *Filename) tokenNames() ([]string, error) {
	tokens := f.Tokens()
	if len(tokens) == 0 {
		return nil, token.ErrNoTokens
	}
	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !slices.Contains(names, t.Name()) {
			names = append(names, t.Name())
		}
	}
	return names, nil
}

// product walks the cartesian product of candidates like an odometer, the
// last position turning fastest. Each yielded slice is freshly allocated.
func product(names []string, candidates [][]string, yield func([]Binding) bool) {
	for _, c := range candidates {
		if len(c) == 0 {
			return
		}
	}

	idx := make([]int, len(candidates))
	for {
		combo := make([]Binding, len(names))
		for i, name := range names {
			combo[i] = Binding{Name: name, Value: candidates[i][idx[i]]}
		}
		if !yield(combo) {
			return
		}

		pos := len(idx) - 1
		for ; pos >= 0; pos-- {
			idx[pos]++
			if idx[pos] < len(candidates[pos]) {
				break
			}
			idx[pos] = 0
		}
		if pos < 0 {
			return
		}
	}
}

// Apply returns a copy of f with every token named in combo replaced
// by its value. Tokens not named in combo stay unresolved.
func (f *Filename) Apply(combo []Binding) *Filename {
	c := f.Clone()
	for _, segs := range [][]Segment{c.Folders, c.Base} {
		for i, s := range segs {
			t, ok := s.Token()
			if !ok {
				continue
			}
			for _, b := range combo {
				if t.Name() == b.Name {
					segs[i] = Literal(b.Value)
					break
				}
			}
		}
	}
	return c
}
