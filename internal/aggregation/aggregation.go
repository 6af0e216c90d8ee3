// Package aggregation describes the metrics an aggregation engine can compute
// over stored records. It holds no execution logic.
package aggregation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"example.com/healthrecords/internal/records"
	"example.com/healthrecords/internal/units"
)

// ID identifies a metric. IDs are stored externally and are never reused or
// renumbered.
type ID int32

// Operation is the reduction a metric applies.
type Operation int

const (
	OperationMax Operation = iota + 1
	OperationMin
	OperationAvg
	OperationSum
	OperationCount
)

var operationNames = map[Operation]string{
	OperationMax:   "max",
	OperationMin:   "min",
	OperationAvg:   "avg",
	OperationSum:   "sum",
	OperationCount: "count",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// MarshalText encodes the operation by name.
func (o Operation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// ResultType tags the Go type a metric produces.
type ResultType int

const (
	ResultInt64 ResultType = iota + 1
	ResultFloat64
	ResultDuration
	ResultMass
	ResultEnergy
	ResultLength
	ResultPower
	ResultVelocity
	ResultVolume
	ResultPressure
)

var resultTypeNames = map[ResultType]string{
	ResultInt64:    "int64",
	ResultFloat64:  "float64",
	ResultDuration: "duration",
	ResultMass:     "mass",
	ResultEnergy:   "energy",
	ResultLength:   "length",
	ResultPower:    "power",
	ResultVelocity: "velocity",
	ResultVolume:   "volume",
	ResultPressure: "pressure",
}

func (r ResultType) String() string {
	if name, ok := resultTypeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ResultType(%d)", int(r))
}

// MarshalText encodes the result type by name.
func (r ResultType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func resultTypeOf[T any]() ResultType {
	var zero T
	switch any(zero).(type) {
	case int64:
		return ResultInt64
	case float64:
		return ResultFloat64
	case time.Duration:
		return ResultDuration
	case units.Mass:
		return ResultMass
	case units.Energy:
		return ResultEnergy
	case units.Length:
		return ResultLength
	case units.Power:
		return ResultPower
	case units.Velocity:
		return ResultVelocity
	case units.Volume:
		return ResultVolume
	case units.Pressure:
		return ResultPressure
	default:
		return 0
	}
}

// Descriptor is the registry entry for one metric.
type Descriptor struct {
	ID          ID                   `json:"id"`
	Name        string               `json:"name"`
	Operation   Operation            `json:"operation"`
	RecordTypes []records.RecordType `json:"record_types"`
	ResultType  ResultType           `json:"result_type"`
}

// AppliesTo reports whether records of type rt feed the metric.
func (d Descriptor) AppliesTo(rt records.RecordType) bool {
	return slices.Contains(d.RecordTypes, rt)
}

func (d Descriptor) clone() Descriptor {
	d.RecordTypes = slices.Clone(d.RecordTypes)
	return d
}

// Type is a typed key for a metric whose result is a T.
type Type[T any] struct {
	id ID
}

// ID returns the metric identifier.
func (t Type[T]) ID() ID { return t.id }

// Descriptor returns the registry entry for t.
func (t Type[T]) Descriptor() Descriptor {
	d, _ := Lookup(t.id)
	return d
}

var (
	table    []Descriptor
	registry map[ID]Descriptor
)

func define[T any](id ID, name string, op Operation, types ...records.RecordType) Type[T] {
	table = append(table, Descriptor{
		ID:          id,
		Name:        name,
		Operation:   op,
		RecordTypes: types,
		ResultType:  resultTypeOf[T](),
	})
	return Type[T]{id: id}
}

func init() {
	idx, err := index(table)
	if err != nil {
		panic(err)
	}
	registry = idx
}

var errInconsistent = errors.New("aggregation: inconsistent registry")

// index checks every descriptor and builds the lookup map.
func index(descs []Descriptor) (map[ID]Descriptor, error) {
	idx := make(map[ID]Descriptor, len(descs))
	names := make(map[string]ID, len(descs))
	for _, d := range descs {
		if d.ID <= 0 {
			return nil, fmt.Errorf("%w: %s has non-positive id %d", errInconsistent, d.Name, d.ID)
		}
		if prev, dup := idx[d.ID]; dup {
			return nil, fmt.Errorf("%w: id %d used by %s and %s", errInconsistent, d.ID, prev.Name, d.Name)
		}
		if other, dup := names[d.Name]; dup {
			return nil, fmt.Errorf("%w: name %s used by ids %d and %d", errInconsistent, d.Name, other, d.ID)
		}
		if len(d.RecordTypes) == 0 {
			return nil, fmt.Errorf("%w: %s has no record types", errInconsistent, d.Name)
		}
		for _, rt := range d.RecordTypes {
			if !rt.Valid() {
				return nil, fmt.Errorf("%w: %s references %s", errInconsistent, d.Name, rt)
			}
		}
		if _, ok := resultTypeNames[d.ResultType]; !ok {
			return nil, fmt.Errorf("%w: %s has unsupported result type", errInconsistent, d.Name)
		}
		if _, ok := operationNames[d.Operation]; !ok {
			return nil, fmt.Errorf("%w: %s has unknown operation %s", errInconsistent, d.Name, d.Operation)
		}
		if d.Operation == OperationCount && d.ResultType != ResultInt64 {
			return nil, fmt.Errorf("%w: count metric %s must produce int64, got %s", errInconsistent, d.Name, d.ResultType)
		}
		idx[d.ID] = d
		names[d.Name] = d.ID
	}
	return idx, nil
}

// Lookup returns the descriptor registered under id.
func Lookup(id ID) (Descriptor, bool) {
	d, ok := registry[id]
	if !ok {
		return Descriptor{}, false
	}
	return d.clone(), true
}

// LookupName finds a descriptor by its name, ignoring case.
func LookupName(name string) (Descriptor, bool) {
	for _, d := range table {
		if strings.EqualFold(d.Name, name) {
			return d.clone(), true
		}
	}
	return Descriptor{}, false
}

// All returns every descriptor ordered by ID.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d.clone())
	}
	slices.SortFunc(out, func(a, b Descriptor) int { return int(a.ID) - int(b.ID) })
	return out
}

// ForRecordType returns the metrics fed by records of type rt, ordered by ID.
func ForRecordType(rt records.RecordType) []Descriptor {
	var out []Descriptor
	for _, d := range All() {
		if d.AppliesTo(rt) {
			out = append(out, d)
		}
	}
	return out
}
