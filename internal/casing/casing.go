// Package casing renames record keys between the store/wire convention
// (leading capital: "EmployeeName") and the client convention (leading
// lowercase: "employeeName").
//
// Known fields are mapped through a static table. Any other key falls
// back to changing the case of its first letter, which keeps
// Convert(Convert(r, Store), Client) == r for every record that started
// in client casing.
package casing

import (
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Casing names one of the two key conventions.
type Casing int

const (
	// Client is the leading-lowercase convention used by view state.
	Client Casing = iota
	// Store is the leading-capital convention used by the table and the wire.
	Store
)

// Record is a flat key/value record in either casing.
type Record map[string]any

// Field pairs the two spellings of one attribute.
type Field struct {
	Store  string
	Client string
}

// Fields is the static field-name table for the Employee record.
var Fields = []Field{
	{Store: "EmployeeID", Client: "employeeID"},
	{Store: "EmployeeName", Client: "employeeName"},
	{Store: "MobileNumber", Client: "mobileNumber"},
	{Store: "Department", Client: "department"},
	{Store: "Salary", Client: "salary"},
}

var (
	toClient = make(map[string]string, len(Fields))
	toStore  = make(map[string]string, len(Fields))
)

func init() {
	for _, f := range Fields {
		toClient[f.Store] = f.Client
		toStore[f.Client] = f.Store
	}
}

// Key renames a single key into the target casing.
func Key(key string, to Casing) string {
	switch to {
	case Store:
		if k, ok := toStore[key]; ok {
			return k
		}
		return mapFirst(key, unicode.ToUpper)
	default:
		if k, ok := toClient[key]; ok {
			return k
		}
		return mapFirst(key, unicode.ToLower)
	}
}

// Convert returns a new record with every key renamed into the target
// casing. Values are copied as-is. A nil record converts to nil.
//
// When two keys land on the same name ("employeeName" and
// "EmployeeName"), the value of the higher-ranked key is kept: a table
// spelling beats a key already in the target casing, which beats a
// first-letter fallback. Equal ranks keep the lexically smallest key.
func Convert(r Record, to Casing) Record {
	if r == nil {
		return nil
	}

	out := make(Record, len(r))
	ranks := make(map[string]int, len(r))

	for _, k := range slices.Sorted(maps.Keys(r)) {
		target, rank := Key(k, to), keyRank(k, to)
		if prev, seen := ranks[target]; seen && prev <= rank {
			continue
		}
		out[target] = r[k]
		ranks[target] = rank
	}

	return out
}

// keyRank orders colliding source keys; lower wins.
func keyRank(key string, to Casing) int {
	table := toClient
	if to == Store {
		table = toStore
	}

	switch {
	case table[key] != "":
		return 0
	case Key(key, to) == key:
		return 1
	default:
		return 2
	}
}

// ConvertAll converts every record in rs.
func ConvertAll(rs []Record, to Casing) []Record {
	out := make([]Record, 0, len(rs))
	for _, r := range rs {
		out = append(out, Convert(r, to))
	}

	return out
}

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(fn(r)) + s[size:]
}
