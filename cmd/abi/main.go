package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/evm-abi/abi"
)

func main() {
	var (
		sig         = flag.String("sig", "", "Function signature, e.g. transfer(address,uint256)")
		typeList    = flag.String("types", "", "Bare type list, e.g. uint256,bytes (alternative to -sig)")
		dataHex     = flag.String("data", "", "Hex calldata to decode (0x prefix optional)")
		encodeArgs  = flag.String("encode", "", "Comma-separated values to encode")
		modeName    = flag.String("mode", "strict", "Decode mode: strict or lenient")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		abi.SetLogger(l)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*sig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *sig == "" && *typeList == "" {
		fmt.Fprintln(os.Stderr, "Usage: abi -sig 'name(type,...)' -data <hex> [-mode strict|lenient]")
		fmt.Fprintln(os.Stderr, "       abi -sig 'name(type,...)' -encode 'value,...'")
		fmt.Fprintln(os.Stderr, "       abi -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*sig, *typeList, *dataHex, *encodeArgs, *modeName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sig, typeList, dataHex, encodeArgs, modeName string) error {
	name, coder, err := buildCoder(sig, typeList)
	if err != nil {
		return err
	}

	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}

	if name != "" {
		fmt.Printf("Function: %s%s\n", name, coder)
	} else {
		fmt.Printf("Schema: %s\n", coder)
	}

	switch {
	case encodeArgs != "":
		values, err := parseArgList(coder.Types(), encodeArgs)
		if err != nil {
			return err
		}
		data, err := coder.EncodeAll(values...)
		if err != nil {
			return err
		}
		fmt.Printf("\nEncoded (%d bytes):\n", len(data))
		printWords(data)
		return nil

	case dataHex != "":
		data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(dataHex), "0x"))
		if err != nil {
			return fmt.Errorf("decode hex: %w", err)
		}
		values, err := coder.DecodeAll(data, mode)
		if err != nil {
			return err
		}
		fmt.Printf("\nDecoded (%s mode):\n", mode)
		for i, v := range values {
			fmt.Printf("  arg%d %s = %s\n", i, coder.Types()[i], formatValue(v))
		}
		return nil

	default:
		return fmt.Errorf("nothing to do: pass -data or -encode")
	}
}

func buildCoder(sig, typeList string) (string, *abi.Coder, error) {
	if sig != "" {
		return abi.ParseSignature(sig)
	}
	var ts []*abi.Type
	for _, s := range splitTop(typeList) {
		t, err := abi.ParseType(s)
		if err != nil {
			return "", nil, err
		}
		ts = append(ts, t)
	}
	coder, err := abi.NewCoder(ts...)
	return "", coder, err
}

func parseMode(name string) (abi.Mode, error) {
	switch name {
	case "strict":
		return abi.ModeStrict, nil
	case "lenient":
		return abi.ModeLenient, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want strict or lenient)", name)
	}
}

// printWords renders a buffer one 32-byte slot per line with offsets.
func printWords(data []byte) {
	for off := 0; off < len(data); off += abi.WordSize {
		end := off + abi.WordSize
		if end > len(data) {
			end = len(data)
		}
		fmt.Printf("  %04x: %x\n", off, data[off:end])
	}
}
