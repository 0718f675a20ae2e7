// SPDX-License-Identifier: MPL-2.0

// Package argument defines how the tokens bound to a command or option are
// counted, validated and converted.
//
// A caller configures a *Builder through chained calls and seals it with one
// of the arity operations (None, ExactlyOne, ZeroOrOne, ZeroOrMore,
// OneOrMore) or a conversion operation (ConvertTo, ConvertWith). Sealing
// returns an immutable *Definition that the binding engine evaluates against
// a *Symbol carrying the bound tokens.
//
// Validators report failures as message strings produced by a MessageCatalog.
// Conversions report through a tagged Result. Neither path panics; panics are
// reserved for programming errors such as sealing a builder twice.
package argument
