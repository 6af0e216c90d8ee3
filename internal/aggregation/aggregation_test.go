package aggregation

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/healthrecords/internal/records"
	"example.com/healthrecords/internal/units"
)

func TestRegistryIsOrderedAndComplete(t *testing.T) {
	all := All()
	require.Len(t, all, len(table))
	for i, d := range all {
		assert.Equal(t, ID(i+1), d.ID, "ids are dense and append-only")
		got, ok := Lookup(d.ID)
		require.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := Lookup(0)
	assert.False(t, ok)
	_, ok = Lookup(ID(len(table) + 1))
	assert.False(t, ok)
}

func TestTypedKeysCarryTheirResultType(t *testing.T) {
	d := StepsCountTotal.Descriptor()
	assert.Equal(t, ID(35), StepsCountTotal.ID())
	assert.Equal(t, OperationSum, d.Operation)
	assert.Equal(t, ResultInt64, d.ResultType)
	assert.Equal(t, []records.RecordType{records.TypeSteps}, d.RecordTypes)

	assert.Equal(t, ResultMass, WeightAvg.Descriptor().ResultType)
	assert.Equal(t, ResultDuration, SleepDurationTotal.Descriptor().ResultType)
	assert.Equal(t, ResultEnergy, resultTypeOf[units.Energy]())
	assert.Equal(t, ResultType(0), resultTypeOf[string]())
}

func TestCountMetricsProduceIntegers(t *testing.T) {
	for _, d := range All() {
		if d.Operation == OperationCount {
			assert.Equal(t, ResultInt64, d.ResultType, d.Name)
		}
	}
}

func TestIndexRejectsInconsistentTables(t *testing.T) {
	valid := Descriptor{ID: 1, Name: "a", Operation: OperationSum, RecordTypes: []records.RecordType{records.TypeSteps}, ResultType: ResultInt64}

	cases := map[string][]Descriptor{
		"duplicate id":   {valid, {ID: 1, Name: "b", Operation: OperationMax, RecordTypes: valid.RecordTypes, ResultType: ResultInt64}},
		"duplicate name": {valid, {ID: 2, Name: "a", Operation: OperationMax, RecordTypes: valid.RecordTypes, ResultType: ResultInt64}},
		"zero id":        {{ID: 0, Name: "z", Operation: OperationSum, RecordTypes: valid.RecordTypes, ResultType: ResultInt64}},
		"no types":       {{ID: 1, Name: "a", Operation: OperationSum, ResultType: ResultInt64}},
		"unknown type":   {{ID: 1, Name: "a", Operation: OperationSum, RecordTypes: []records.RecordType{records.TypeUnknown}, ResultType: ResultInt64}},
		"count float":    {{ID: 1, Name: "a", Operation: OperationCount, RecordTypes: valid.RecordTypes, ResultType: ResultFloat64}},
		"bad result":     {{ID: 1, Name: "a", Operation: OperationSum, RecordTypes: valid.RecordTypes}},
		"bad operation":  {{ID: 1, Name: "a", RecordTypes: valid.RecordTypes, ResultType: ResultInt64}},
	}
	for name, descs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := index(descs)
			require.ErrorIs(t, err, errInconsistent)
		})
	}

	idx, err := index([]Descriptor{valid})
	require.NoError(t, err)
	assert.Len(t, idx, 1)
}

func TestLookupReturnsCopies(t *testing.T) {
	d, ok := Lookup(TotalCaloriesTotal.ID())
	require.True(t, ok)
	require.Len(t, d.RecordTypes, 3)
	d.RecordTypes[0] = records.TypeSteps

	again, _ := Lookup(TotalCaloriesTotal.ID())
	assert.Equal(t, records.TypeTotalCaloriesBurned, again.RecordTypes[0])
}

func TestForRecordTypeAndLookupName(t *testing.T) {
	active := ForRecordType(records.TypeActiveCaloriesBurned)
	require.Len(t, active, 2)
	assert.Equal(t, ActiveCaloriesTotal.ID(), active[0].ID)
	assert.Equal(t, TotalCaloriesTotal.ID(), active[1].ID)

	assert.Empty(t, ForRecordType(records.TypeCervicalMucus))

	d, ok := LookupName("HEART_RATE_MAX")
	require.True(t, ok)
	assert.Equal(t, HeartRateMax.ID(), d.ID)
	_, ok = LookupName("mood_avg")
	assert.False(t, ok)
}

func TestDescriptorJSON(t *testing.T) {
	data, err := json.Marshal(HeartRateMeasurementsCount.Descriptor())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 16,
		"name": "heart_rate_measurements_count",
		"operation": "count",
		"record_types": ["HeartRate"],
		"result_type": "int64"
	}`, string(data))
}
