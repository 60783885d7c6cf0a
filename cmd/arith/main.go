// Command arith encodes and decodes lower-case latin text with exact
// arithmetic coding.
//
//	$ printf '3\nabacaba\n' | arith encode
//	4 2 1
//	0110100101
//
//	$ printf '3\n4 2 1\n0110100101\n' | arith decode
//	abacaba
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/arith"
	"github.com/arloliu/arith/format"
	"github.com/arloliu/arith/frame"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("arith", "Exact arithmetic coding of lower-case latin text")
	verbose = app.Flag("verbose", "Log sizes to stderr").Short('v').Bool()

	encodeCmd = app.Command("encode", "Read n and a text from stdin, print the frequencies and the bitstring")

	decodeCmd = app.Command("decode", "Read n, n frequencies and a bitstring from stdin, print the text")

	packCmd         = app.Command("pack", "Read n and a text from stdin, write a binary frame")
	packCompression = packCmd.Flag("compression", "Frequency table compression").Default("none").Enum("none", "zstd", "s2", "lz4")
	packBigEndian   = packCmd.Flag("big-endian", "Write header fields in big-endian byte order").Bool()
	packOut         = packCmd.Flag("out", "Output file (default stdout)").Short('o').String()

	unpackCmd  = app.Command("unpack", "Read a binary frame, print the text")
	unpackFile = unpackCmd.Arg("file", "Frame file").Required().ExistingFile()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("arith: ")

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	var err error
	switch cmd {
	case encodeCmd.FullCommand():
		err = runEncode(os.Stdin, os.Stdout)
	case decodeCmd.FullCommand():
		err = runDecode(os.Stdin, os.Stdout)
	case packCmd.FullCommand():
		err = runPack(os.Stdin)
	case unpackCmd.FullCommand():
		err = runUnpack(os.Stdout)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func runEncode(r io.Reader, w io.Writer) error {
	in := newScanner(r)

	n, err := in.int("alphabet size")
	if err != nil {
		return err
	}
	text, err := in.word("text")
	if err != nil {
		return err
	}

	res, err := arith.EncodeText(n, text)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("encoded %d symbols into %d bits", len(text), len(res.Bits))
	}

	freqs := make([]string, len(res.Frequencies))
	for i, f := range res.Frequencies {
		freqs[i] = strconv.Itoa(f)
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", strings.Join(freqs, " "), res.Bits)

	return err
}

func runDecode(r io.Reader, w io.Writer) error {
	in := newScanner(r)

	n, err := in.int("alphabet size")
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("invalid alphabet size %d", n)
	}

	freqs := make([]int, n)
	for i := range freqs {
		if freqs[i], err = in.int("frequency"); err != nil {
			return err
		}
	}

	bits, err := in.word("bitstring")
	if err != nil {
		return err
	}

	text, err := arith.DecodeText(n, freqs, bits)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("decoded %d bits into %d symbols", len(bits), len(text))
	}
	_, err = fmt.Fprintln(w, text)

	return err
}

func runPack(r io.Reader) error {
	in := newScanner(r)

	n, err := in.int("alphabet size")
	if err != nil {
		return err
	}
	text, err := in.word("text")
	if err != nil {
		return err
	}

	compression, ok := format.ParseCompression(*packCompression)
	if !ok {
		return fmt.Errorf("unknown compression %q", *packCompression)
	}

	opts := []frame.Option{frame.WithTableCompression(compression)}
	if *packBigEndian {
		opts = append(opts, frame.WithBigEndian())
	}

	data, err := arith.Pack(n, text, opts...)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("packed %d symbols into a %d byte frame (%s table)", len(text), len(data), compression)
	}

	if *packOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(*packOut, data, 0o644) //nolint:gosec
}

func runUnpack(w io.Writer) error {
	data, err := os.ReadFile(*unpackFile)
	if err != nil {
		return err
	}

	header, err := frame.ParseHeader(data)
	if err != nil {
		return err
	}

	text, err := arith.UnpackText(int(header.AlphabetSize), data)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("unpacked %d bits into %d symbols (%s table)", header.BitLength, len(text), header.Flag.Compression())
	}
	_, err = fmt.Fprintln(w, text)

	return err
}

// scanner reads whitespace-separated tokens.
type scanner struct {
	s *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	s.Split(bufio.ScanWords)

	return &scanner{s: s}
}

func (s *scanner) word(what string) (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}

		return "", fmt.Errorf("reading %s: unexpected end of input", what)
	}

	return s.s.Text(), nil
}

func (s *scanner) int(what string) (int, error) {
	tok, err := s.word(what)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}

	return v, nil
}
