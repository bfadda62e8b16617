// Command nanosha3sum is a small demonstration and verification CLI over
// the nanosha3 library surface. It is an external collaborator per
// spec.md's Non-goals ("CI verification tooling... NIST vector runner"),
// not part of the CORE: it only consumes the library's public API.
//
// Usage:
//
//	nanosha3sum file.bin               print the SHA3-256 checksum of a file
//	nanosha3sum                        checksum stdin
//	nanosha3sum -rsp ShortMsgKAT.rsp   verify against a NIST CAVS .rsp file
package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	nanosha3 "github.com/CoreLathe/nano-sha3"
)

var rspPath string

func init() {
	flag.StringVar(&rspPath, "rsp", "", "verify against a NIST CAVS SHA3-256 .rsp response file")
}

func sumReader(r io.Reader) (string, error) {
	h := nanosha3.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	d := h.Finalize()
	return hex.EncodeToString(d[:]), nil
}

func sumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return sumReader(f)
}

// rspKAT is one "Len = ... / Msg = ... / MD = ..." triple from a NIST
// CAVS SHA3-256 ShortMsg/LongMsg response file.
type rspKAT struct {
	bitLen uint64
	msg    []byte
	digest []byte
}

var rspLineRe = regexp.MustCompile(`^\s*([A-Za-z]+)\s*=\s*([0-9A-Fa-f]+)\s*$`)

// parseRSP reads CAVS-format "Key = Value" triples (Len, Msg, MD) from r,
// grounded on the teacher's rsp/rsp.go regex-split technique, generalized
// from its positional line-index assumption to a key-driven parse that
// tolerates blank lines and comments interleaved in the file.
func parseRSP(r io.Reader) ([]rspKAT, error) {
	var kats []rspKAT
	var cur rspKAT
	have := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := rspLineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		key, val := m[1], m[2]
		switch key {
		case "Len":
			n, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("parsing Len: %w", err)
			}
			cur = rspKAT{bitLen: n}
			have = 1
		case "Msg":
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, fmt.Errorf("parsing Msg: %w", err)
			}
			cur.msg = b
			have++
		case "MD":
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, fmt.Errorf("parsing MD: %w", err)
			}
			cur.digest = b
			have++
			if have == 3 {
				kats = append(kats, cur)
			}
			have = 0
		}
	}
	return kats, scanner.Err()
}

// runRSP verifies every KAT in path against nanosha3.Sum256, returning the
// count of vectors checked and the first mismatch found, if any.
func runRSP(path string) (checked int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	kats, err := parseRSP(f)
	if err != nil {
		return 0, err
	}
	for _, k := range kats {
		// CAVS bit lengths that aren't a multiple of 8 don't apply to a
		// byte-oriented hasher; skip them rather than truncating silently.
		if k.bitLen%8 != 0 {
			continue
		}
		msg := k.msg[:k.bitLen/8]
		got := nanosha3.Sum256(msg)
		checked++
		if !bytes.Equal(got[:], k.digest) {
			return checked, fmt.Errorf("mismatch at Len=%d: got %x, want %x", k.bitLen, got, k.digest)
		}
	}
	return checked, nil
}

func main() {
	flag.Parse()

	if rspPath != "" {
		n, err := runRSP(rspPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nanosha3sum: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("nanosha3sum: %d vectors OK\n", n)
		return
	}

	if flag.NArg() == 0 {
		sum, err := sumReader(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nanosha3sum: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(sum)
		return
	}

	for _, path := range flag.Args() {
		sum, err := sumFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nanosha3sum: %s: %s\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s  %s\n", sum, path)
	}
}
