// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package titlecase provides Unicode title case mappings for runes and
// strings, including the multi-rune expansions defined by SpecialCasing.txt
// and the Turkish/Azerbaijani dotted I rules.
//
// Title case differs from upper case for certain digraphs and ligatures:
// the title case of 'Ǆ' is 'ǅ' (not 'Ǆ'), and the title case of 'ﬄ' is
// the three runes "Ffl".
//
// All functions are allocation free at the rune level and safe for
// concurrent use: lookups read an immutable table generated from the
// Unicode Character Database (see internal/gen).
package titlecase
