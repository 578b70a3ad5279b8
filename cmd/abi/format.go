package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/wippyai/evm-abi/abi"
)

// parseArgList parses one comma-separated literal per schema type. Nested
// lists and tuples use [a,b] and (a,b); commas inside them do not split.
func parseArgList(ts []*abi.Type, s string) ([]any, error) {
	parts := splitTop(s)
	if len(parts) == 1 && parts[0] == "" {
		parts = nil
	}
	if len(parts) != len(ts) {
		return nil, fmt.Errorf("expected %d values, got %d", len(ts), len(parts))
	}
	values := make([]any, len(parts))
	for i, p := range parts {
		v, err := parseLiteral(ts[i], p)
		if err != nil {
			return nil, fmt.Errorf("arg%d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

func parseLiteral(t *abi.Type, s string) (any, error) {
	s = strings.TrimSpace(s)

	switch t.Kind {
	case abi.KindUint, abi.KindInt, abi.KindEnum:
		v, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return v, nil

	case abi.KindBool:
		switch s {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %q", s)

	case abi.KindAddress:
		raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil || len(raw) != abi.AddressLength {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		var a abi.Address
		copy(a[:], raw)
		return a, nil

	case abi.KindFixedBytes, abi.KindBytes:
		if strings.HasPrefix(s, "0x") {
			raw, err := hex.DecodeString(s[2:])
			if err != nil {
				return nil, fmt.Errorf("invalid hex %q", s)
			}
			return raw, nil
		}
		return []byte(s), nil

	case abi.KindString:
		return strings.Trim(s, `"`), nil

	case abi.KindArray, abi.KindSlice:
		inner, err := unwrap(s, '[', ']')
		if err != nil {
			return nil, err
		}
		var vals []any
		if inner != "" {
			for i, p := range splitTop(inner) {
				v, err := parseLiteral(t.Elem, p)
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", i, err)
				}
				vals = append(vals, v)
			}
		}
		if vals == nil {
			vals = []any{}
		}
		return vals, nil

	case abi.KindTuple:
		inner, err := unwrap(s, '(', ')')
		if err != nil {
			return nil, err
		}
		parts := splitTop(inner)
		if inner == "" {
			parts = nil
		}
		if len(parts) != len(t.Fields) {
			return nil, fmt.Errorf("tuple of %d fields, got %d values", len(t.Fields), len(parts))
		}
		vals := make([]any, len(parts))
		for i, p := range parts {
			v, err := parseLiteral(t.Fields[i].Type, p)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return vals, nil

	default:
		return nil, fmt.Errorf("cannot parse literal for %s", t)
	}
}

func unwrap(s string, open, shut byte) (string, error) {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != shut {
		return "", fmt.Errorf("expected %c...%c, got %q", open, shut, s)
	}
	return strings.TrimSpace(s[1 : len(s)-1]), nil
}

// splitTop splits on commas outside brackets, parentheses, and quotes.
func splitTop(s string) []string {
	var parts []string
	depth := 0
	quoted := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case '[', '(':
			if !quoted {
				depth++
			}
		case ']', ')':
			if !quoted {
				depth--
			}
		case ',':
			if depth == 0 && !quoted {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}

// formatValue renders a decoded value for display: hex for byte data,
// decimal for numbers, bracketed lists for composites.
func formatValue(v any) string {
	switch x := v.(type) {
	case []byte:
		return "0x" + hex.EncodeToString(x)
	case abi.Address:
		return x.String()
	case string:
		return fmt.Sprintf("%q", x)
	case []any:
		items := make([]string, len(x))
		for i, e := range x {
			items[i] = formatValue(e)
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%v", x)
	}
}
