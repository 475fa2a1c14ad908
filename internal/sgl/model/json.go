/*******************************************************************************
* Copyright (C) 2026 the structuredgrant Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package model

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decodeDict parses JSON text into a dynamic dictionary. Dict-shaped
// parsing is the common path every type's FromJSON funnels through, so
// unknown-field tolerance only has to be implemented once, in the
// corresponding FromDict.
func decodeDict(text []byte) (map[string]any, error) {
	if len(text) == 0 {
		return nil, NewPreconditionViolation("json text must be non-empty")
	}
	var value map[string]any
	if err := json.Unmarshal(text, &value); err != nil {
		return nil, NewPreconditionViolation("invalid json: %v", err)
	}
	return value, nil
}

// encodeDict renders a dynamic dictionary to canonical JSON text. Go's
// json.Marshal (and jsoniter's compatible config) always emits map keys in
// sorted order, which happens to line up exactly with the field ordering
// spec.md's canonical examples use ("grant" before "when", "n" before
// "role"), so no custom field-ordering logic is needed here.
func encodeDict(value map[string]any) ([]byte, error) {
	return json.Marshal(value)
}

func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

func asStringSlice(value any) ([]string, bool) {
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := asString(item)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func asDictSlice(value any) ([]map[string]any, bool) {
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		d, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}

// asPositiveInt coerces a dict-decoded numeric value (float64 from JSON, or
// int if the caller built the dict in Go) into a positive int. Fractional
// values that are integer-valued (e.g. 3.0) are accepted and coerced;
// strictly fractional values (e.g. 0.5001) are rejected, per spec.md §9
// note 5 — the newer dialect's behavior, not the older one that silently
// truncated.
func asPositiveInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		if v <= 0 {
			return 0, NewPreconditionViolation(`"n" must be a positive integer.`)
		}
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, NewPreconditionViolation(`"n" must be castable to int without losing precision.`)
		}
		n := int(v)
		if n <= 0 {
			return 0, NewPreconditionViolation(`"n" must be a positive integer.`)
		}
		return n, nil
	default:
		return 0, NewPreconditionViolation(`"n" must be a positive integer.`)
	}
}
