// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/goxxh/cmd/dedup/main.go

// Inspect each file under the input path (indicated by --in-path -- by
// default, the current directory) and record the paths which contain the
// same content, keyed by the canonical 128-bit digest of the bytes.
// Matches are written in json-lines format to the path indicated by
// --out-file.  The 128-bit hash is not collision-resistant against an
// adversary, but accidental collisions are vanishingly unlikely; pass
// --paranoid to byte-compare files before reporting them as duplicates.
//
// Example usage:
//
//	dedup --in-path . --out-file ../duplicates.jsonl
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/SymbolNotFound/goxxh"
)

// Represents a path and its content's signature (canonical 128-bit
// digest, hex-encoded).
type Signature struct {
	Content  string `json:"signature"`
	Filepath string `json:"file_path"`
}

// Keeps track of all signatures seen so far and their paths, plus the
// sink the duplicate records are written to.
type ContentIndex struct {
	hasher   *goxxh.Hasher128
	index    map[goxxh.Uint128]Signature
	output   chan<- Signature
	paranoid bool
}

func main() {
	inpath := flag.String("in-path", ".", "directory tree to inspect")
	outpath := flag.String("out-file", "duplicates.jsonl",
		"path to store duplication info in json-lines format")
	paranoid := flag.Bool("paranoid", false,
		"byte-compare candidate duplicates before reporting them")

	flag.Parse()
	fmt.Println("inspecting files under " + *inpath)

	// Some examples of ignored file names, add to this if desired.
	ignored := []string{
		".gitignore",
	}

	cas := newContentIndex(*outpath, *paranoid)
	err := filepath.WalkDir(*inpath,
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			for _, ignoreName := range ignored {
				if entry.Name() == ignoreName {
					return nil
				}
			}
			return cas.addToIndex(path)
		})
	if err != nil {
		fmt.Println(err)
	}
	close(cas.output)
}

func newContentIndex(outpath string, paranoid bool) *ContentIndex {
	return &ContentIndex{
		hasher:   goxxh.New128(),
		index:    make(map[goxxh.Uint128]Signature),
		output:   newWriter(outpath),
		paranoid: paranoid,
	}
}

// Compute the signature of the contents found at path and record any
// collision with an earlier entry as a duplicate pair.
func (index *ContentIndex) addToIndex(path string) error {
	digest, err := index.digestFile(path)
	if err != nil {
		return err
	}

	prior, exists := index.index[digest]
	if !exists {
		canonical := digest.Bytes()
		index.index[digest] = Signature{fmt.Sprintf("%x", canonical[:]), path}
		return nil
	}

	if index.paranoid {
		same, err := sameContents(prior.Filepath, path)
		if err != nil {
			return err
		}
		if !same {
			// A genuine 128-bit collision; leave the first entry in
			// place and report nothing.
			return nil
		}
	}

	index.output <- prior
	index.output <- Signature{prior.Content, path}
	return nil
}

// digestFile streams the file through the index's hasher, reusing the
// same state across files.
func (index *ContentIndex) digestFile(path string) (goxxh.Uint128, error) {
	file, err := os.Open(path)
	if err != nil {
		return goxxh.Uint128{}, err
	}
	defer file.Close()

	index.hasher.Reset()
	if _, err := io.Copy(index.hasher, file); err != nil {
		return goxxh.Uint128{}, err
	}
	return index.hasher.Sum128(), nil
}

func sameContents(a, b string) (bool, error) {
	da, err := os.ReadFile(a)
	if err != nil {
		return false, err
	}
	db, err := os.ReadFile(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(da, db), nil
}

// Creates a signature writer in json-lines format (goroutine-safe).
func newWriter(outpath string) chan<- Signature {
	file, err := os.Create(outpath)
	if err != nil {
		log.Fatal(err)
	}
	channel := make(chan Signature)
	go func() {
		defer file.Close()
		writer := bufio.NewWriter(file)

		for sig := range channel {
			line, err := json.Marshal(sig)
			if err != nil {
				fmt.Printf("%s error:\n   %s\n", sig.Filepath, err)
				continue
			}
			writer.Write(line)
			writer.WriteByte('\n')
			writer.Flush()
		}
		writer.Flush()
	}()

	return channel
}
