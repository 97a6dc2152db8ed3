package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/routelens/bgpls/linkstate"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a file with raw payload bytes")
		hexStr      = flag.String("hex", "", "Payload as a hex string (colons and spaces allowed)")
		tlvStream   = flag.Bool("tlv", false, "Input is a TLV stream with type/length headers")
		jsonOut     = flag.Bool("json", false, "Structured JSON output")
		debugLog    = flag.Bool("debug", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *debugLog {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		linkstate.SetLogger(l)
	}

	data, err := loadInput(*inFile, *hexStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if data == nil {
		fmt.Fprintln(os.Stderr, "Usage: lsdump -in <file> [-tlv] [-json]")
		fmt.Fprintln(os.Stderr, "       lsdump -hex 01:07:00:02:10:05 -tlv")
		fmt.Fprintln(os.Stderr, "       lsdump -hex 10:05 -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(data, *tlvStream, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadInput reads payload bytes from a file or a hex string. Returns nil
// when neither source was given, which sends the caller to usage or to the
// interactive prompt.
func loadInput(inFile, hexStr string) ([]byte, error) {
	if inFile != "" && hexStr != "" {
		return nil, fmt.Errorf("-in and -hex are mutually exclusive")
	}
	if inFile != "" {
		data, err := os.ReadFile(inFile)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}
	if hexStr != "" {
		return parseHex(hexStr)
	}
	return nil, nil
}

// parseHex decodes a hex string, tolerating the colon and space separators
// the library's own text rendering produces.
func parseHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', ' ', '\n', '\t':
			return -1
		}
		return r
	}, s)
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return data, nil
}

func run(data []byte, tlvStream, jsonOut bool) error {
	if !tlvStream {
		mtid, err := linkstate.DecodeMTID(data)
		if err != nil {
			return err
		}
		printMTID(mtid, jsonOut)
		return nil
	}

	tlvs, err := linkstate.ScanTLVs(data)
	if err != nil {
		return err
	}

	fmt.Printf("TLVs: %d (%d bytes)\n", len(tlvs), len(data))
	for i, tlv := range tlvs {
		fmt.Printf("\n[%d] type %d (%s), %d bytes\n", i, tlv.Type, tlv.Name(), len(tlv.Value))

		decoded, err := linkstate.DecodeTLV(tlv)
		if err != nil {
			fmt.Printf("    %s\n", wrapHex(tlv.Value, "    "))
			continue
		}
		if mtid, ok := decoded.(*linkstate.MTID); ok {
			printMTID(mtid, jsonOut)
		}
	}
	return nil
}

func printMTID(m *linkstate.MTID, jsonOut bool) {
	if jsonOut {
		fmt.Println(m.JSON())
		return
	}

	fmt.Printf("    %s\n", m)
	for _, topo := range m.Topologies {
		fmt.Printf("    R=%04b  mt-id=%d\n", topo.Reserved, topo.ID)
	}
}

// wrapHex renders data as colon-separated hex, wrapped to the terminal
// width when stdout is a terminal.
func wrapHex(data []byte, indent string) string {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w
	}
	perLine := (width - len(indent)) / 3
	if perLine < 1 {
		perLine = 1
	}

	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			if i%perLine == 0 {
				b.WriteString("\n")
				b.WriteString(indent)
			} else {
				b.WriteByte(':')
			}
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}
