// Package evmabi provides contract ABI encoding and decoding for Go.
//
// This library converts between Go values and the 32-byte-word binary
// encoding used for contract call data and return data, with a strict mode
// that validates canonical encodings and a lenient mode compatible with
// legacy decoders.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	evm-abi/             Root package (this documentation)
//	├── abi/             Type descriptors, parser, Encoder/Decoder/Coder
//	│   └── internal/
//	│       ├── types/   Structural type descriptor tree
//	│       ├── layout/  Head/tail layout computation
//	│       └── word/    32-byte slot arithmetic
//	├── errors/          Structured error types for debugging
//	└── cmd/abi/         Command line encode/decode tool
//
// # Quick Start
//
// Parse a signature and decode return data:
//
//	name, coder, err := abi.ParseSignature("balances(address,uint256[])")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := coder.DecodeAll(data, abi.ModeStrict)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(name, values)
//
// Encode call arguments:
//
//	data, err := coder.EncodeAll(addr, []any{big.NewInt(1)})
//
// See the abi package documentation for the wire format, the value mapping,
// and the exact strict/lenient semantics.
package evmabi
