// The roommesh-stat command displays stats for a room-mesh file.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/scpcb/roommesh"
	"github.com/scpcb/roommesh/rmesh"
	"golang.org/x/crypto/blake2b"
)

const usage = `usage: roommesh-stat [INPUT] [OUTPUT]

Reads a .rmesh file from INPUT, and writes to OUTPUT statistics for the
file as JSON.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

type TextureStat struct {
	BlendType string
	Path      string `json:",omitempty"`
}

type MeshStat struct {
	Textures  [2]TextureStat
	Vertices  int
	Triangles int
}

type Stats struct {
	// Size of the input, in bytes.
	Size int

	// BLAKE2b-256 digest of the input.
	Digest string

	Meshes []MeshStat

	// Vertex and triangle totals over the visible meshes.
	Vertices  int
	Triangles int

	Colliders    int
	TriggerBoxes []string

	// Number of entities per tag.
	Entities map[string]int

	// Bounds of the visible geometry. Omitted when the file has no
	// vertices at all.
	Bounds *roommesh.Bounds `json:",omitempty"`
}

func stats(data []byte, root *roommesh.Root) Stats {
	sum := blake2b.Sum256(data)
	s := Stats{
		Size:         len(data),
		Digest:       hex.EncodeToString(sum[:]),
		TriggerBoxes: []string{},
		Entities:     map[string]int{},
	}
	for i := range root.Meshes {
		mesh := &root.Meshes[i]
		var m MeshStat
		for slot, tex := range mesh.Textures {
			m.Textures[slot] = TextureStat{
				BlendType: tex.BlendType.String(),
				Path:      tex.Path,
			}
		}
		m.Vertices = len(mesh.Vertices)
		m.Triangles = len(mesh.Triangles)
		s.Meshes = append(s.Meshes, m)
		s.Vertices += m.Vertices
		s.Triangles += m.Triangles
	}
	s.Colliders = len(root.Colliders)
	for _, box := range root.TriggerBoxes {
		s.TriggerBoxes = append(s.TriggerBoxes, box.Name)
	}
	for _, ent := range root.Entities {
		s.Entities[ent.Tag()]++
	}
	if s.Vertices > 0 {
		b := root.Bounds()
		s.Bounds = &b
	}
	return s
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			os.Exit(1)
		}
		input = in
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			os.Exit(1)
		}
		defer out.Close()
		output = out
	}

	data, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read input: %w", err))
		os.Exit(1)
	}

	root, warn, err := rmesh.Decoder{}.Decode(bytes.NewReader(data))
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode input: %w", err))
		os.Exit(1)
	}

	je := json.NewEncoder(output)
	je.SetIndent("", "\t")
	if err := je.Encode(stats(data, root)); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("encode stats: %w", err))
		os.Exit(1)
	}
}
