// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"math"
	"strconv"

	"github.com/bitmark-inc/zree/fault"
)

// IntValues - convert configured keys and command line arguments to integers
//
// Lua numbers arrive as float64 and must be integral and within the
// range of int
func IntValues(keys []interface{}, args []string) ([]int, error) {
	values := make([]int, 0, len(keys)+len(args))
	for _, k := range keys {
		switch v := k.(type) {
		case float64:
			if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
				return nil, fault.ErrInvalidKey
			}
			values = append(values, int(v))
		case int:
			values = append(values, v)
		case string:
			n, err := strconv.Atoi(v)
			if nil != err {
				return nil, fault.ErrInvalidKey
			}
			values = append(values, n)
		default:
			return nil, fault.ErrInvalidKey
		}
	}
	for _, s := range args {
		n, err := ParseInt(s)
		if nil != err {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}

// StringValues - convert configured keys and command line arguments to strings
func StringValues(keys []interface{}, args []string) ([]string, error) {
	values := make([]string, 0, len(keys)+len(args))
	for _, k := range keys {
		switch v := k.(type) {
		case string:
			values = append(values, v)
		case float64:
			values = append(values, strconv.FormatFloat(v, 'f', -1, 64))
		case int:
			values = append(values, strconv.Itoa(v))
		case bool:
			values = append(values, strconv.FormatBool(v))
		default:
			return nil, fault.ErrInvalidKey
		}
	}
	return append(values, args...), nil
}

// ParseInt - decode a single integer key
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return n, nil
}
