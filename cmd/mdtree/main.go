// Command mdtree reads a DOT subset file (package dot), computes its
// modular decomposition tree, and prints the tree as indented text or,
// with -json, as the mdtree JSON wire format.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/katalvlaran/lvlath/dot"
	"github.com/katalvlaran/lvlath/mdtree"
	"github.com/katalvlaran/lvlath/moddecomp"
)

var jsonOutput = flag.Bool("json", false, "print the MD-tree as JSON instead of indented text")

func main() {
	cli.ArgsHelp = "file.dot"
	cli.MinArgs = 1
	cli.MaxArgs = 1
	cli.Main() // Parses flags, validates args, handles version/help flags.

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}

	g, ids, err := dot.Read(string(data))
	if err != nil {
		log.Fatalf("parsing %s: %v", path, err)
	}
	log.Infof("parsed %s: %d vertices, %d edges", path, g.N(), g.EdgeCount())

	tree, err := moddecomp.Decompose(g)
	if err != nil {
		log.Fatalf("decomposing %s: %v", path, err)
	}

	if *jsonOutput {
		out, err := tree.MarshalJSON()
		if err != nil {
			log.Fatalf("marshaling tree: %v", err)
		}
		fmt.Println(string(out))

		return
	}

	printTree(tree, ids)
}

func printTree(tree *mdtree.Tree, ids []string) {
	if tree.Empty() {
		fmt.Println("(empty)")

		return
	}
	printNode(tree.Root(), ids, 0)
}

func printNode(n mdtree.Node, ids []string, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.IsLeaf() {
		fmt.Printf("%sleaf(%s)\n", indent, vertexName(ids, n.Vertex()))

		return
	}
	fmt.Printf("%s%s\n", indent, n.Label())
	for _, c := range n.Children() {
		printNode(c, ids, depth+1)
	}
}

func vertexName(ids []string, v int) string {
	if ids == nil || v < 0 || v >= len(ids) {
		return strconv.Itoa(v)
	}

	return ids[v]
}
