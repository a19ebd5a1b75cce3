// Package jsonpatch computes RFC 6902 patches between two JSON documents.
// The refresh runner ships one alongside every published report so
// dashboards can patch their tiles instead of re-rendering from scratch.
package jsonpatch

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Op is a single RFC 6902 operation.
type Op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// MarshalJSON writes the value member explicitly: add and replace ops must
// carry one even when the value is JSON null, which omitempty would drop.
// Remove ops carry none.
func (o Op) MarshalJSON() ([]byte, error) {
	if o.Op == "remove" {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	return json.Marshal(struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
	}{o.Op, o.Path, o.Value})
}

// Patch transforms one JSON document into another when applied in order.
type Patch []Op

// DiffDocs diffs two marshalable values by round-tripping them through
// their JSON form, so struct tags and omitempty behave exactly as they do
// on the wire.
func DiffDocs(prev, next any) (Patch, error) {
	a, err := toDoc(prev)
	if err != nil {
		return nil, err
	}
	b, err := toDoc(next)
	if err != nil {
		return nil, err
	}
	return Diff(a, b, ""), nil
}

func toDoc(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Diff computes the patch that transforms a into b. Both must be generic
// JSON documents (the result of unmarshaling into any). Object keys are
// visited in sorted order so identical inputs always yield an identical
// patch. Path is "" for the root document.
func Diff(a, b any, path string) Patch {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return Patch{replaceOp(path, b)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	// Different types or different primitive values.
	if a != b {
		return Patch{replaceOp(path, b)}
	}
	return nil
}

func diffObjects(a, b map[string]any, path string) Patch {
	var ops Patch

	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, b[k]))
			continue
		}
		ops = append(ops, Diff(av, b[k], childPath)...)
	}

	return ops
}

func diffArrays(a, b []any, path string) Patch {
	var ops Patch

	shared := min(len(a), len(b))
	for i := 0; i < shared; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Removals run high-to-low so the surviving indices stay valid.
	for i := len(a) - 1; i >= shared; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}
	for i := shared; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}

	return ops
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func replaceOp(path string, value any) Op {
	return Op{Op: "replace", Path: path, Value: value}
}

func addOp(path string, value any) Op {
	return Op{Op: "add", Path: path, Value: value}
}

func removeOp(path string) Op {
	return Op{Op: "remove", Path: path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
