// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package dispatch routes verified (context, payload) pairs to handlers. It
// runs after signature verification: by the time Dispatch sees a payload,
// some lower layer has already opened the envelope. The registry replaces a
// per-message-type if/else chain with an explicit table built at startup
// from statically known context constants.
package dispatch

import (
	"fmt"

	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature"
)

// HandlerFunc handles a payload signed under a bare context.
type HandlerFunc func(value cbor.Value)

// ChainHandlerFunc handles a payload signed under a chain-bound context.
type ChainHandlerFunc func(chainContext string, value cbor.Value)

// Registry maps contexts to handlers. Handlers live in two namespaces: bare
// contexts, matched against the observed context verbatim, and chain
// contexts, matched against the base recovered by splitting on the chain
// context separator. Build the registry at startup; it is not safe to mutate
// while Dispatch is being called.
type Registry struct {
	bare  map[signature.Context]HandlerFunc
	chain map[signature.Context]ChainHandlerFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bare:  make(map[signature.Context]HandlerFunc),
		chain: make(map[signature.Context]ChainHandlerFunc),
	}
}

// RegisterBare registers a handler for a context that is never combined with
// a chain context. Registering the same context twice is an error: reusing a
// context for two payload shapes is exactly the confusion this layer exists
// to prevent.
func (r *Registry) RegisterBare(ctx signature.Context, fn HandlerFunc) error {
	if _, ok := r.bare[ctx]; ok {
		return fmt.Errorf("dispatch: context %q already registered", ctx)
	}
	r.bare[ctx] = fn
	return nil
}

// RegisterChain registers a handler for a base context that is always
// combined with a chain context before signing.
func (r *Registry) RegisterChain(base signature.Context, fn ChainHandlerFunc) error {
	if _, ok := r.chain[base]; ok {
		return fmt.Errorf("dispatch: chain context %q already registered", base)
	}
	r.chain[base] = fn
	return nil
}

// Dispatch routes a payload to the handler registered for its context.
//
// The observed context is first split on the chain context separator; if the
// recovered base matches a chain handler, the payload is decoded and the
// handler invoked with the chain context. Otherwise the full context is
// looked up among the bare handlers. No match returns (false, nil) - an
// unmatched context is not an error, the caller decides whether it is fatal.
// A matched handler with an undecodable payload returns (true, DecodeError)
// without invoking the handler.
func (r *Registry) Dispatch(ctx signature.Context, payload []byte) (bool, error) {
	if base, chainContext, ok := ctx.SplitChainContext(); ok {
		if fn, ok := r.chain[base]; ok {
			v, err := cbor.DecodeValue(payload)
			if err != nil {
				return true, err
			}
			fn(chainContext, v)
			return true, nil
		}
	}
	if fn, ok := r.bare[ctx]; ok {
		v, err := cbor.DecodeValue(payload)
		if err != nil {
			return true, err
		}
		fn(v)
		return true, nil
	}
	return false, nil
}
