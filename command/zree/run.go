// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/zree/configuration"
	"github.com/bitmark-inc/zree/fault"
	"github.com/bitmark-inc/zree/sortedlist"
)

// logger channel attached to the tree in verbose mode
const treeLogTag = "avl"

// a command body for one key type
//
// key reads the --key flag of the command
type handler[K cmp.Ordered] func(w io.Writer, sl *sortedlist.SortedList[K], key func() (K, error)) error

// select the handler matching the configured key type
func action(intHandler handler[int], stringHandler handler[string]) cli.ActionFunc {
	return func(c *cli.Context) error {
		m := c.App.Metadata["config"].(*metadata)
		if m.stringKeys {
			return invoke(c, m, configuration.StringValues, decodeString, stringHandler)
		}
		return invoke(c, m, configuration.IntValues, configuration.ParseInt, intHandler)
	}
}

func invoke[K cmp.Ordered](
	c *cli.Context,
	m *metadata,
	values func([]interface{}, []string) ([]K, error),
	decode func(string) (K, error),
	h handler[K],
) error {

	keys, err := values(m.config.Keys, c.Args())
	if nil != err {
		return err
	}

	sl := sortedlist.New(keys...)
	if nil != m.log {
		sl.SetLog(m.log)
	}

	key := func() (K, error) {
		s := c.String("key")
		if "" == s {
			var zero K
			return zero, fault.ErrMissingKey
		}
		return decode(s)
	}

	return h(m.w, sl, key)
}

func decodeString(s string) (string, error) {
	return s, nil
}

func runSort[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], _ func() (K, error)) error {
	for k := range sl.All() {
		fmt.Fprintf(w, "%v\n", k)
	}
	return nil
}

func runReverse[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], _ func() (K, error)) error {
	for k := range sl.Backward() {
		fmt.Fprintf(w, "%v\n", k)
	}
	return nil
}

func runDump[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], _ func() (K, error)) error {
	fmt.Fprintf(w, "%s\n", sl)
	return nil
}

func runGraph[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], _ func() (K, error)) error {
	sl.Print(w)
	return nil
}

func runOutline[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], _ func() (K, error)) error {
	fmt.Fprint(w, sl.Outline())
	return nil
}

func runMinimum[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], _ func() (K, error)) error {
	k, err := sl.Minimum()
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "%v\n", k)
	return nil
}

func runMaximum[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], _ func() (K, error)) error {
	k, err := sl.Maximum()
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "%v\n", k)
	return nil
}

func runContains[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], key func() (K, error)) error {
	k, err := key()
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "%t\n", sl.Contains(k))
	return nil
}

func runRemove[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], key func() (K, error)) error {
	k, err := key()
	if nil != err {
		return err
	}
	if err := sl.Remove(k); nil != err {
		return err
	}
	fmt.Fprintf(w, "%s\n", sl)
	return nil
}

type checkReport struct {
	Count  int     `json:"count"`
	Height int     `json:"height"`
	Widths []int   `json:"widths"`
	Bound  float64 `json:"bound"`
	Valid  bool    `json:"valid"`
	Error  string  `json:"error,omitempty"`
}

func runCheck[K cmp.Ordered](w io.Writer, sl *sortedlist.SortedList[K], _ func() (K, error)) error {
	report := checkReport{
		Count:  sl.Len(),
		Height: sl.Height(),
		Widths: sl.Widths(),
		Valid:  true,
	}
	if report.Count > 1 {
		report.Bound = math.Round(1.45*math.Log2(float64(report.Count))*100) / 100
	}
	if err := sl.Check(); nil != err {
		report.Valid = false
		report.Error = err.Error()
	}
	return printJson(w, report)
}
