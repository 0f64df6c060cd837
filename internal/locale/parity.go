package locale

import (
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Maps whose keys are themselves content: translated category names and skill
// names legitimately differ between languages.
var contentKeyed = map[string]bool{
	"skills":            true,
	"skillDescriptions": true,
}

// KeyPaths lists the structural key paths of a YAML document, e.g.
// "hero.cvUrl" or "experienceData[1].company". Sequences of scalars count as
// a single leaf so translations may differ in their number of lines.
func KeyPaths(doc *yaml.Node) []string {
	var out []string
	walk(doc, "", &out)
	slices.Sort(out)
	return out
}

func walk(n *yaml.Node, path string, out *[]string) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			walk(c, path, out)
		}
	case yaml.MappingNode:
		if contentKeyed[path] {
			*out = append(*out, path)
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			walk(n.Content[i+1], join(path, n.Content[i].Value), out)
		}
	case yaml.SequenceNode:
		if scalars(n) {
			*out = append(*out, path)
			return
		}
		for i, c := range n.Content {
			walk(c, path+"["+strconv.Itoa(i)+"]", out)
		}
	case yaml.AliasNode:
		walk(n.Alias, path, out)
	default:
		*out = append(*out, path)
	}
}

func scalars(n *yaml.Node) bool {
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Parity compares the key paths of two documents and returns the paths
// present only in a and only in b.
func Parity(a, b *yaml.Node) (onlyA, onlyB []string) {
	pa, pb := KeyPaths(a), KeyPaths(b)
	for _, p := range pa {
		if _, found := slices.BinarySearch(pb, p); !found {
			onlyA = append(onlyA, p)
		}
	}
	for _, p := range pb {
		if _, found := slices.BinarySearch(pa, p); !found {
			onlyB = append(onlyB, p)
		}
	}
	return onlyA, onlyB
}
