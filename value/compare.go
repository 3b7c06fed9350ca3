/*
File    : jqmix/value/compare.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "sort"

// typeRank gives each Kind its position in the jq total order:
// null < false < true < numbers < strings < arrays < objects.
func typeRank(v Value) int {
	switch x := v.(type) {
	case Null:
		return 0
	case Bool:
		if bool(x) {
			return 2
		}
		return 1
	case Number:
		return 3
	case Str:
		return 4
	case Array:
		return 5
	case Object:
		return 6
	default:
		return 7
	}
}

// Compare implements the jq total order across every value, used by sort,
// unique, min, max, and the ordering operators. It returns a negative
// number if a < b, zero if a == b under this order, and a positive number
// if a > b.
func Compare(a, b Value) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return ra - rb
	}

	switch x := a.(type) {
	case Null:
		return 0
	case Bool:
		return 0 // same rank implies same boolean value (true/true or false/false)
	case Number:
		y := b.(Number)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case Str:
		y := b.(Str)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case Array:
		y := b.(Array)
		n := len(x)
		if len(y) < n {
			n = len(y)
		}
		for i := 0; i < n; i++ {
			if c := Compare(x[i], y[i]); c != 0 {
				return c
			}
		}
		return len(x) - len(y)
	case Object:
		y := b.(Object)
		return compareObjects(x, y)
	default:
		return 0
	}
}

// compareObjects orders objects by their sorted key sequence, then by the
// corresponding values in that sorted-key order.
func compareObjects(x, y Object) int {
	xk := sortedKeys(x)
	yk := sortedKeys(y)

	n := len(xk)
	if len(yk) < n {
		n = len(yk)
	}
	for i := 0; i < n; i++ {
		if xk[i] != yk[i] {
			if xk[i] < yk[i] {
				return -1
			}
			return 1
		}
	}
	if len(xk) != len(yk) {
		return len(xk) - len(yk)
	}
	for _, k := range xk {
		xv, _ := x.Get(k)
		yv, _ := y.Get(k)
		if c := Compare(xv, yv); c != 0 {
			return c
		}
	}
	return 0
}

func sortedKeys(o Object) []string {
	keys := append([]string(nil), o.Keys()...)
	sort.Strings(keys)
	return keys
}

// Equal reports deep structural equality: numbers by value, strings by
// codepoint sequence, arrays/objects elementwise, with differing Kinds
// always unequal.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Null:
		return true
	case Bool:
		return x == b.(Bool)
	case Number:
		return x == b.(Number)
	case Str:
		return x == b.(Str)
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y := b.(Object)
		if x.Len() != y.Len() {
			return false
		}
		for _, k := range x.Keys() {
			xv, _ := x.Get(k)
			yv, ok := y.Get(k)
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
