// SPDX-License-Identifier: MPL-2.0

// Package cobrabind adapts sealed argfile commands to cobra. Each option is a
// pflag.Value that only collects raw tokens; validation, defaults and
// conversion stay in the binding engine so cobra and the library agree on
// every message.
package cobrabind
