/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const (
	FormatPlain = "plain"
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

var Formats = []string{FormatPlain, FormatText, FormatCSV, FormatJSON}

type Printable interface {
	Headers() []string
	Values() [][]string
}

// Plainer is implemented by values with a bare rendering for plain output.
type Plainer interface {
	Plain() string
}

type OutputWriter interface {
	Write(v Printable)
}

type PlainWriter struct {
	w io.Writer
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case FormatCSV:
		return CSVWriter{
			w,
		}
	case FormatJSON:
		return JSONWriter{
			w,
		}
	case FormatText:
		return TextWriter{
			w,
		}
	}
	return PlainWriter{
		w,
	}
}

func IsFormat(t string) bool {
	for _, f := range Formats {
		if f == t {
			return true
		}
	}
	return false
}

func (w PlainWriter) Write(v Printable) {
	if p, ok := v.(Plainer); ok {
		fmt.Fprintln(w.w, p.Plain())
		return
	}

	for _, row := range v.Values() {
		fmt.Fprintln(w.w, strings.Join(row, "\t"))
	}
}

func (w CSVWriter) Write(v Printable) {
	wtr := csv.NewWriter(w.w)
	wtr.Write(v.Headers())
	wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) {
	headers := []any{}
	for _, h := range v.Headers() {
		headers = append(headers, h)
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(headers...)
	table.Bulk(v.Values())
	table.Render()
}

// Write emits one JSON object per row, keyed by header. Values stay strings
// so that Inf and NaN survive encoding.
func (w JSONWriter) Write(v Printable) {
	enc := json.NewEncoder(w.w)
	headers := v.Headers()

	for _, row := range v.Values() {
		obj := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				obj[h] = row[i]
			}
		}
		enc.Encode(obj)
	}
}
