/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
)

// ErrToken is the family of all token errors. Every sentinel below wraps it,
// so errors.Is(err, ErrToken) matches any of them.
var ErrToken = errors.New("token error")

// Sentinel errors for token operations.
var (
	// ErrInvalidToken indicates a string is not of the form escape + name + escape.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrToken)

	// ErrTooManyTokens indicates a segment holds more than one token.
	ErrTooManyTokens = fmt.Errorf("%w: at most one token per segment", ErrToken)

	// ErrUnresolvedToken indicates a folder still holds a token where a
	// concrete name is required.
	ErrUnresolvedToken = fmt.Errorf("%w: unresolved token", ErrToken)

	// ErrNoTokens indicates resolution was requested on a path without tokens.
	ErrNoTokens = fmt.Errorf("%w: tokens required", ErrToken)

	// ErrMissingValues indicates no value set was supplied for a token.
	ErrMissingValues = fmt.Errorf("%w: missing values for token", ErrToken)
)
