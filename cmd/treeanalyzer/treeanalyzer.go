/*

Analyze a file of strings or vectors.

treeanalyzer -type strings words.txt
  print the distinct words in ascending order

treeanalyzer -type vectors vectors.txt
  print the vector with the largest norm, one edn vector (e.g. [1 2.5 3])
  per input line

treeanalyzer -type strings -db bolt://trees.db -id words words.txt
  additionally save the serialized tree under the id "words"

*/
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"

	"github.com/heyLu/fressian"

	"github.com/heyLu/treeanalyzer/rbtree"
	"github.com/heyLu/treeanalyzer/store"
	_ "github.com/heyLu/treeanalyzer/store/bolt"
	_ "github.com/heyLu/treeanalyzer/store/file"
	_ "github.com/heyLu/treeanalyzer/store/memory"
	_ "github.com/heyLu/treeanalyzer/store/sqlite"
	"github.com/heyLu/treeanalyzer/strs"
	"github.com/heyLu/treeanalyzer/vector"
)

var (
	dataType = flag.String("type", "strings", "The type of the input lines (strings or vectors)")
	dbUrl    = flag.String("db", "", "An optional store url to save the tree to")
	saveId   = flag.String("id", "tree", "The id to save the tree under")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal("[treeanalyzer] open: ", err)
	}
	defer f.Close()

	switch *dataType {
	case "strings":
		tree := readStrings(f)
		buf := new(bytes.Buffer)
		if !tree.ForEach(strs.Concat, buf) {
			log.Fatal("[treeanalyzer] traversal aborted")
		}
		fmt.Print(buf.String())
		save(tree, nil)
		tree.Destroy()
	case "vectors":
		tree := readVectors(f)
		max := vector.FindMaxNorm(tree)
		if max == nil {
			log.Fatal("[treeanalyzer] traversal aborted")
		}
		fmt.Println(max)
		save(tree, vector.WriteHandler)
		tree.Destroy()
	default:
		log.Fatal("[treeanalyzer] unknown type: ", *dataType)
	}
}

func readStrings(r io.Reader) *rbtree.Tree {
	tree := rbtree.New(strs.Compare, strs.Free)
	eachLine(r, func(line string) {
		if !tree.Insert(line) {
			log.Println("[treeanalyzer] duplicate:", line)
		}
	})
	return tree
}

func readVectors(r io.Reader) *rbtree.Tree {
	tree := rbtree.New(vector.Compare, vector.Free)
	eachLine(r, func(line string) {
		v, err := vector.FromEDN(line)
		if err != nil {
			log.Fatal("[treeanalyzer] parse: ", err)
		}
		if !tree.Insert(v) {
			log.Println("[treeanalyzer] duplicate:", line)
		}
	})
	return tree
}

func eachLine(r io.Reader, each func(line string)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		each(line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("[treeanalyzer] read: ", err)
	}
}

func save(tree *rbtree.Tree, handler fressian.WriteHandler) {
	if *dbUrl == "" {
		return
	}

	u, err := url.Parse(*dbUrl)
	if err != nil {
		log.Fatal("[treeanalyzer] db url: ", err)
	}

	s, err := store.Open(u)
	if err != nil {
		log.Fatal("[treeanalyzer] open store: ", err)
	}

	buf := new(bytes.Buffer)
	if err := rbtree.Write(buf, tree, handler); err != nil {
		log.Fatal("[treeanalyzer] write tree: ", err)
	}
	if err := s.Put(*saveId, buf.Bytes()); err != nil {
		log.Fatal("[treeanalyzer] save tree: ", err)
	}
	fmt.Println("saved as", *saveId)
}
