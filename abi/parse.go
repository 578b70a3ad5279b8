package abi

import (
	"strconv"
	"strings"

	"github.com/wippyai/evm-abi/errors"
)

// ParseType parses a canonical type string such as "uint256", "bytes3",
// "uint16[2][]", or "(uint256,bytes)[3]" into a descriptor. Enum types have
// no source-level spelling; they are built programmatically by the type
// system.
func ParseType(s string) (*Type, error) {
	t, err := parseType(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidType).
			Cause(err).
			Build()
	}
	return t, nil
}

// MustType is ParseType for known-good literals; it panics on error.
func MustType(s string) *Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseSignature splits a function signature like "transfer(address,uint256)"
// into its name and a Coder over the parameter list.
func ParseSignature(sig string) (string, *Coder, error) {
	sig = strings.TrimSpace(sig)
	open := strings.IndexByte(sig, '(')
	if open < 0 || !strings.HasSuffix(sig, ")") {
		return "", nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Detail("signature %q must have the form name(type,...)", sig).
			Build()
	}
	name := strings.TrimSpace(sig[:open])
	if name == "" {
		return "", nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Detail("signature %q has no function name", sig).
			Build()
	}

	inner := sig[open+1 : len(sig)-1]
	var ts []*Type
	if strings.TrimSpace(inner) != "" {
		for _, part := range splitTopLevel(inner) {
			t, err := ParseType(part)
			if err != nil {
				return "", nil, err
			}
			ts = append(ts, t)
		}
	}

	coder, err := NewCoder(ts...)
	if err != nil {
		return "", nil, err
	}
	return name, coder, nil
}

func parseType(s string) (*Type, error) {
	if s == "" {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Detail("empty type").
			Build()
	}

	var base *Type
	var rest string

	if s[0] == '(' {
		end := matchParen(s)
		if end < 0 {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Detail("unbalanced parentheses in %q", s).
				Build()
		}
		tuple := &Type{Kind: KindTuple}
		inner := s[1:end]
		if strings.TrimSpace(inner) != "" {
			for _, part := range splitTopLevel(inner) {
				ft, err := parseType(strings.TrimSpace(part))
				if err != nil {
					return nil, err
				}
				tuple.Fields = append(tuple.Fields, Field{Type: ft})
			}
		}
		base = tuple
		rest = s[end+1:]
	} else {
		cut := strings.IndexByte(s, '[')
		name := s
		if cut >= 0 {
			name = s[:cut]
			rest = s[cut:]
		}
		var err error
		base, err = parseElementary(name)
		if err != nil {
			return nil, err
		}
	}

	return applyArraySuffix(base, rest)
}

func parseElementary(name string) (*Type, error) {
	switch name {
	case "address":
		return &Type{Kind: KindAddress}, nil
	case "bool":
		return &Type{Kind: KindBool}, nil
	case "bytes":
		return &Type{Kind: KindBytes}, nil
	case "string":
		return &Type{Kind: KindString}, nil
	case "uint":
		return &Type{Kind: KindUint, Bits: 256}, nil
	case "int":
		return &Type{Kind: KindInt, Bits: 256}, nil
	}

	for _, prefix := range []string{"uint", "int", "bytes"} {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		n, err := strconv.Atoi(name[len(prefix):])
		if err != nil {
			break
		}
		switch prefix {
		case "uint":
			return &Type{Kind: KindUint, Bits: n}, nil
		case "int":
			return &Type{Kind: KindInt, Bits: n}, nil
		case "bytes":
			return &Type{Kind: KindFixedBytes, Size: n}, nil
		}
	}

	return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
		Detail("unknown type %q", name).
		Build()
}

// applyArraySuffix folds "[n]" and "[]" suffixes left to right, so
// "uint16[2][]" is a dynamic array of uint16[2].
func applyArraySuffix(t *Type, rest string) (*Type, error) {
	for rest != "" {
		if rest[0] != '[' {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Detail("unexpected %q after type", rest).
				Build()
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Detail("unterminated array suffix %q", rest).
				Build()
		}
		dim := rest[1:end]
		if dim == "" {
			t = &Type{Kind: KindSlice, Elem: t}
		} else {
			n, err := strconv.Atoi(dim)
			if err != nil || n < 0 {
				return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
					Detail("invalid array length %q", dim).
					Build()
			}
			t = &Type{Kind: KindArray, Elem: t, Size: n}
		}
		rest = rest[end+1:]
	}
	return t, nil
}

// matchParen returns the index of the parenthesis closing s[0], or -1.
func matchParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits on commas not nested inside parentheses or brackets.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}
