// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

// SetGetenv lets the external key_test package stub environment lookups.
func SetGetenv(r *Resolver, getenv func(string) string) { r.getenv = getenv }
