package wordgraph

import "github.com/vmihailenco/msgpack/v5"

// wireEntry is the msgpack wire shape for one stored word (spec §8.1
// round-trip serialization, §9 "exporting/importing... is a convenience
// feature, not a correctness concern"). Flattening to a word list rather
// than mirroring the node tree keeps the format stable across internal
// representation changes.
type wireEntry struct {
	Word  string   `msgpack:"w"`
	Flags []string `msgpack:"f,omitempty"`
}

// Export serializes every stored word and its flags to msgpack bytes.
func (g *WordGraph) Export() ([]byte, error) {
	entries := g.Words()
	wire := make([]wireEntry, len(entries))
	for i, e := range entries {
		wire[i] = wireEntry{Word: e.Word, Flags: e.Flags}
	}
	return msgpack.Marshal(wire)
}

// Import rebuilds a WordGraph from bytes produced by Export. The returned
// graph is a fresh, independent instance.
func Import(data []byte) (*WordGraph, error) {
	var wire []wireEntry
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	g := New()
	for _, e := range wire {
		g.Insert(e.Word, e.Flags)
	}
	return g, nil
}
