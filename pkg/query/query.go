// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses URL query and path values.
package query

import (
	"strconv"
	"strings"
)

// StringSlice splits a comma-separated value into its non-empty parts.
//
// Parts are trimmed of surrounding whitespace. Use it only for values whose
// tokens cannot themselves contain commas or meaningful edge spaces.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Uint32 parses a base-10 unsigned 32-bit integer, as Steam uses for app IDs.
// Signs, blanks and out-of-range values are errors.
func Uint32(val string) (uint32, error) {
	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
