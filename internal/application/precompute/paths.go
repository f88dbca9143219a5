package precompute

import (
	"path"

	"resumemcp/internal/application"
)

// Artifact layout, relative to the output root. Paths always use forward
// slashes; stores translate them for their backend.
const (
	ManifestPath = "mcp.json"
	ToolsDir     = "tools"
	ResourcesDir = "resources"
	IndexesDir   = "indexes"
)

// Dir is the directory that holds one file per key for a keyed tool.
func (t Tool) Dir() string {
	return path.Join(ToolsDir, t.Name)
}

// Path returns the artifact path answering the tool for keys:
// tools/<tool>.json without keys, tools/<tool>/<k1>[/<k2>...].json otherwise.
func (t Tool) Path(keys ...string) (string, error) {
	if err := t.CheckKeys(keys); err != nil {
		return "", err
	}
	if !t.Keyed() {
		return path.Join(ToolsDir, t.Name+".json"), nil
	}
	for _, k := range keys {
		if !application.IsSafeKey(k) {
			return "", &application.KeyError{Tool: t.Name, Key: k}
		}
	}
	last := len(keys) - 1
	segments := append([]string{t.Dir()}, keys[:last]...)
	segments = append(segments, keys[last]+".json")
	return path.Join(segments...), nil
}

// ResourcePath is the artifact path of a named resource snapshot.
func ResourcePath(name string) string {
	return path.Join(ResourcesDir, name+".json")
}

// IndexPath is the artifact path of a named relation index.
func IndexPath(name string) string {
	return path.Join(IndexesDir, name+".json")
}
