// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements wordshare, a tool listing the words shared between
text files.

wordshare reads between 2 and 64 files, counts for every word in how many
files it occurs and how many times overall, and prints the most shared ones.

# Usage

	wordshare [OPTION]... FILES

Print the ten most shared words of three files:

	wordshare a.txt b.txt c.txt

Print every shared word, ignoring case and punctuation, reading the second
source from the standard input:

	cat b.txt | wordshare -t 0 -u -p a.txt -

# Output

One line per word, with three tab separated fields:

	x-x	12	word

The first field has one character per file, in the order of the command
line: 'x' when the word occurs in that file, '-' otherwise. The second is
the total number of occurrences, or "many" once it no longer fits the
counter. The third is the word.

Words are ranked by number of files, then by number of occurrences, both
descending, then in lexicographic order. Words seen in a single file are
never printed.

With -s, words tied with the last printed word on both counts keep being
printed past the -t limit.

# Words

A word is a run of bytes between white space characters, or between white
space and punctuation characters with -p. Only the first 63 bytes are kept,
see -i. A warning names every word that was cut and the file it came from.

# Configuration

Defaults can be changed with a TOML file, read from the user config
directory or from the path given with -c:

	[scan]
	initial = 63
	punctuation_like_space = false
	uppercasing = false

	[report]
	top = 10
	same_numbers = false
	format = "text"

	[dict]
	max_words = 0

Flags given on the command line override the file. --init-config writes a
file with the defaults.

# Formats

With -f msgpack, one MessagePack map is written per word instead of a text
line:

	{"p": "x-x", "f": 2, "o": 12, "m": false, "w": "word"}

# Exit Status

0 on success, 1 on any error: bad options, a file that cannot be read, too
many distinct words for max_words, or a failure to write the report.
*/
package main

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordshare/internal/cli"
)

const Version = "0.1.0"

func main() {
	os.Exit(cli.Execute(cli.App{
		Name:    filepath.Base(os.Args[0]),
		Version: Version,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}, os.Args[1:]))
}
