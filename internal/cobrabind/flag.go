// SPDX-License-Identifier: MPL-2.0

package cobrabind

import (
	"strings"

	"github.com/invowk/argbind/pkg/argument"
	"github.com/invowk/argbind/pkg/typeconv"

	"github.com/spf13/pflag"
)

// presenceToken is the NoOptDefVal of zero-arity options. pflag hands it to
// Set when the flag appears bare; it is never recorded as a token.
const presenceToken = "true"

// tokenValue is a pflag.Value that records every token given to an option.
type tokenValue struct {
	def    *argument.Definition
	tokens []string
}

var _ pflag.Value = (*tokenValue)(nil)

func newTokenValue(def *argument.Definition) *tokenValue {
	return &tokenValue{def: def}
}

// String renders the recorded tokens for help output.
func (v *tokenValue) String() string {
	return strings.Join(v.tokens, ",")
}

// Set records token. A bare zero-arity flag records nothing.
func (v *tokenValue) Set(token string) error {
	if v.def.Arity() == argument.ArityZero && token == presenceToken {
		return nil
	}
	v.tokens = append(v.tokens, token)
	return nil
}

// Type names the value in usage lines.
func (v *tokenValue) Type() string {
	if v.def.Arity() == argument.ArityZero {
		return "bool"
	}
	if name := v.def.Help().Name; name != "" {
		return name
	}
	if t := v.def.ValueType(); t != nil {
		return typeconv.TypeName(t)
	}
	return "string"
}

// Tokens returns the recorded tokens, never nil.
func (v *tokenValue) Tokens() []string {
	if v.tokens == nil {
		return []string{}
	}
	return v.tokens
}

func (v *tokenValue) reset() {
	v.tokens = nil
}
