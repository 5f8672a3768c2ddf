// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package signature

import "strings"

// ChainContextSeparator joins a base context with a chain context. The
// literal must match interoperating implementations byte for byte; a
// different separator silently produces signatures that verify under the
// wrong context.
const ChainContextSeparator = " for chain "

// Context is the domain separation context of a signature. It names the
// purpose of the signature so that a signature produced for one message type
// can never be replayed for another. A given context must only ever be used
// with one payload shape; nothing in the type system enforces that, so new
// contexts must be reviewed against the registered set.
type Context string

// WithChainContext returns the context bound to the given chain context,
// making signatures non-portable across deployments.
func (c Context) WithChainContext(chainContext string) Context {
	return c + ChainContextSeparator + Context(chainContext)
}

// SplitChainContext splits a combined context back into its base context and
// chain context. It splits on the first occurrence of the separator: a bare
// context whose name happens to contain the separator literal will be
// mis-split. That ambiguity is inherited from the deployed naming convention
// and cannot be fixed without breaking wire compatibility.
func (c Context) SplitChainContext() (base Context, chainContext string, ok bool) {
	s, rest, found := strings.Cut(string(c), ChainContextSeparator)
	if !found {
		return c, "", false
	}
	return Context(s), rest, true
}
