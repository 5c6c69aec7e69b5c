// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects how a document is written.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
	// FormatText is the console report; see TextRenderer.
	FormatText Format = "text"
)

var formats = []Format{FormatJSON, FormatYAML, FormatTable, FormatText}

// scalarKey names the single row of a table for a non-composite document.
const scalarKey = "value"

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	return !slices.Contains(formats, f)
}

// SupportedFormats lists the accepted --format values.
func SupportedFormats() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// TextRenderer is implemented by documents with a human-readable rendering.
// Documents that do not implement it are printed with %v in text format.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// Writer serializes documents to an io.Writer. File-backed writers must be
// closed.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

func checkedFormat(f Format) Format {
	if f.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", f)
		return FormatJSON
	}
	return f
}

// NewWriter returns a Writer for output, or stdout when output is nil.
// An unknown format falls back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: checkedFormat(format), output: output}
}

// NewStdoutWriter returns a Writer for stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout writes to path, truncating it. An empty path, "-",
// or a file that cannot be created selects stdout.
func NewFileWriterOrStdout(format Format, path string) Serializer {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return NewStdoutWriter(format)
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file, using stdout", "path", path, "error", err)
		return NewStdoutWriter(format)
	}

	return &Writer{format: checkedFormat(format), output: f, closer: f}
}

// Close releases the output file, if any. Safe to call more than once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// Serialize writes doc in the Writer's format.
func (w *Writer) Serialize(_ context.Context, doc any) error {
	var err error
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatTable:
		err = writeTable(w.output, doc)
	case FormatText:
		err = writeText(w.output, doc)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", w.format, err)
	}
	return nil
}

func writeText(w io.Writer, doc any) error {
	if r, ok := doc.(TextRenderer); ok {
		return r.RenderText(w)
	}
	_, err := fmt.Fprintf(w, "%v\n", doc)
	return err
}

// writeTable prints doc as sorted FIELD/VALUE rows. Keys follow the json
// field names so the rows match the JSON document.
func writeTable(w io.Writer, doc any) error {
	rows := map[string]any{}
	flatten(rows, reflect.ValueOf(doc), "")
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", k, rows[k])
	}
	return tw.Flush()
}

func flatten(rows map[string]any, v reflect.Value, prefix string) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			if prefix != "" {
				rows[prefix] = nil
			}
			return
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return
	}

	switch v.Kind() { //nolint:exhaustive // scalars share the default branch
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, inline, skip := fieldName(f)
			if skip {
				continue
			}
			if inline {
				flatten(rows, v.Field(i), prefix)
				continue
			}
			flatten(rows, v.Field(i), joinKey(prefix, name))
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			flatten(rows, iter.Value(), joinKey(prefix, fmt.Sprint(iter.Key().Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			flatten(rows, v.Index(i), prefix+fmt.Sprintf("[%d]", i))
		}
	default:
		if prefix == "" {
			prefix = scalarKey
		}
		rows[prefix] = v.Interface()
	}
}

// fieldName resolves the row key for f from its json tag. Embedded structs
// and ",inline" fields are flattened into their parent.
func fieldName(f reflect.StructField) (name string, inline, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if strings.Contains(opts, "inline") || (f.Anonymous && name == "") {
		return "", true, false
	}
	if name == "" {
		name = f.Name
	}
	return name, false, false
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "." + key
	}
}
