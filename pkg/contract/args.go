// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
)

// ParseConstructorArgs converts command line values into the go types the
// constructor inputs of [contractABI] pack from. Arrays are written as [a,b].
func ParseConstructorArgs(contractABI abi.ABI, raw []string) ([]interface{}, error) {
	inputs := contractABI.Constructor.Inputs
	if len(raw) != len(inputs) {
		return nil, fmt.Errorf("%w: constructor expects %d, got %d", ErrArgumentCount, len(inputs), len(raw))
	}
	params := make([]interface{}, 0, len(raw))
	for i, input := range inputs {
		v, err := parseArg(input.Type, raw[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("constructor argument %s (%s): %w", name, input.Type.String(), err)
		}
		params = append(params, v)
	}
	return params, nil
}

func parseArg(t abi.Type, s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.IntTy, abi.UintTy:
		return parseInteger(t, s)
	case abi.BytesTy:
		return hexutil.Decode(s)
	case abi.FixedBytesTy:
		bs, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(bs) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(bs))
		}
		v := reflect.New(t.GetType()).Elem()
		reflect.Copy(v, reflect.ValueOf(bs))
		return v.Interface(), nil
	case abi.SliceTy, abi.ArrayTy:
		return parseList(t, s)
	default:
		return nil, ErrUnsupportedArgument
	}
}

func parseInteger(t abi.Type, s string) (interface{}, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for unsigned type", s)
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s overflows uint%d", s, t.Size)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("value %s overflows int%d", s, t.Size)
		}
	}
	goType := t.GetType()
	if goType == reflect.TypeOf(&big.Int{}) {
		return n, nil
	}
	// 8, 16, 32 and 64 bit integers pack from the matching native go type
	v := reflect.New(goType).Elem()
	if t.T == abi.UintTy {
		v.SetUint(n.Uint64())
	} else {
		v.SetInt(n.Int64())
	}
	return v.Interface(), nil
}

func parseList(t abi.Type, s string) (interface{}, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("expected a list like [a,b], got %q", s)
	}
	items := splitList(s[1 : len(s)-1])
	if t.T == abi.ArrayTy && len(items) != t.Size {
		return nil, fmt.Errorf("expected %d elements, got %d", t.Size, len(items))
	}
	var v reflect.Value
	if t.T == abi.SliceTy {
		v = reflect.MakeSlice(t.GetType(), len(items), len(items))
	} else {
		v = reflect.New(t.GetType()).Elem()
	}
	for i, item := range items {
		elem, err := parseArg(*t.Elem, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		v.Index(i).Set(reflect.ValueOf(elem))
	}
	return v.Interface(), nil
}

// splitList splits on top level commas only
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	items := []string{}
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				items = append(items, s[start:i])
				start = i + 1
			}
		}
	}
	return append(items, s[start:])
}
