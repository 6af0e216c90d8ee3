package records

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/healthrecords/internal/interval"
	"example.com/healthrecords/internal/units"
	"example.com/healthrecords/internal/validation"
)

func TestEveryRecordTypeHasADecoderOfTheRightShape(t *testing.T) {
	types := AllRecordTypes()
	require.Len(t, types, len(recordTypeNames))
	for _, rt := range types {
		payload, err := decodePayload(rt, []byte(`{}`), false)
		require.NoError(t, err, rt.String())
		assert.Equal(t, rt, payload.RecordType())

		_, isInstant := payload.(InstantPayload)
		_, isInterval := payload.(IntervalPayload)
		assert.Equal(t, rt.IsInstant(), isInstant, rt.String())
		assert.NotEqual(t, isInstant, isInterval, rt.String())

		parsed, err := ParseRecordType(rt.String())
		require.NoError(t, err)
		assert.Equal(t, rt, parsed)
	}
}

func TestParseRecordTypeRejectsUnknownNames(t *testing.T) {
	_, err := ParseRecordType("Mood")
	require.ErrorIs(t, err, validation.ErrInvalidEnumValue)
	assert.False(t, TypeUnknown.Valid())
	assert.Equal(t, "RecordType(0)", TypeUnknown.String())
}

func TestDecodePayloadChecksEnumsAtTheBoundary(t *testing.T) {
	_, err := DecodePayload(TypeBloodGlucose, []byte(`{"level":5.5,"meal_type":9}`))
	require.ErrorIs(t, err, validation.ErrInvalidEnumValue)

	payload, err := DecodePayload(TypeBloodGlucose, []byte(`{"level":5.5,"meal_type":2,"relation_to_meal":3}`))
	require.NoError(t, err)
	glucose := payload.(BloodGlucose)
	assert.Equal(t, MealTypeLunch, glucose.MealType)
	assert.Equal(t, RelationToMealBeforeMeal, glucose.RelationToMeal)
	assert.Equal(t, 5.5, glucose.Level.InMillimolesPerLiter())

	_, err = DecodePayload(TypeUnknown, []byte(`{}`))
	require.ErrorIs(t, err, ErrUnknownRecordType)

	_, err = DecodePayload(TypeWeight, []byte(`null`))
	require.ErrorIs(t, err, validation.ErrMissingField)
}

func TestDecodeRunsTheBuildPipeline(t *testing.T) {
	body := []byte(`{
		"record_type": "SleepSession",
		"metadata": {"data_origin": {"package_name": "com.example.sleep"}, "recording_method": 2},
		"start_time": "2024-05-04T22:00:00Z",
		"start_zone_offset": 3600,
		"end_time": "2024-05-05T01:00:00Z",
		"payload": {"stages": [
			{"interval": {"start_time": "2024-05-04T23:00:00Z", "end_time": "2024-05-05T00:00:00Z"}, "stage": 5},
			{"interval": {"start_time": "2024-05-04T22:00:00Z", "end_time": "2024-05-04T23:00:00Z"}, "stage": 4}
		]}
	}`)
	rec, err := Decode(body)
	require.NoError(t, err)

	session, ok := rec.(IntervalRecord)
	require.True(t, ok)
	assert.Equal(t, TypeSleepSession, session.RecordType())
	assert.Equal(t, OffsetHours(1), session.StartZoneOffset())
	assert.Equal(t, "com.example.sleep", session.Metadata().DataOrigin().PackageName)
	stages := session.Payload().(SleepSession).Stages
	assert.Equal(t, SleepStageLight, stages[0].Stage)

	overlapping := []byte(`{
		"record_type": "SleepSession",
		"start_time": "2024-05-04T22:00:00Z",
		"end_time": "2024-05-05T01:00:00Z",
		"payload": {"stages": [
			{"interval": {"start_time": "2024-05-04T22:00:00Z", "end_time": "2024-05-05T00:00:00Z"}, "stage": 5},
			{"interval": {"start_time": "2024-05-04T23:00:00Z", "end_time": "2024-05-05T01:00:00Z"}, "stage": 4}
		]}
	}`)
	_, err = Decode(overlapping)
	require.ErrorIs(t, err, validation.ErrOverlappingSubIntervals)

	unchecked, err := DecodeUnchecked(overlapping)
	require.NoError(t, err)
	assert.Equal(t, TypeSleepSession, unchecked.RecordType())

	missingTime := []byte(`{"record_type": "Weight", "payload": {"weight": 1000}}`)
	_, err = Decode(missingTime)
	require.ErrorIs(t, err, validation.ErrMissingField)
}

func TestMarshalThenDecodeUncheckedPreservesEquality(t *testing.T) {
	originals := []Record{}

	weight, err := NewInstantBuilder(testMetadata(), t0, Weight{Weight: units.Kilograms(82.5)}).ZoneOffset(OffsetHours(-5)).Build()
	require.NoError(t, err)
	originals = append(originals, weight)

	nutrition, err := NewIntervalBuilder(testMetadata(), t0, t1, Nutrition{
		Name:     strptr("porridge"),
		MealType: MealTypeBreakfast,
		Energy:   ptr(units.Kilocalories(320)),
		Protein:  ptr(units.Grams(11)),
		Sodium:   ptr(units.Milligrams(140)),
	}).Build()
	require.NoError(t, err)
	originals = append(originals, nutrition)

	session, err := NewIntervalBuilder(testMetadata(), t0, t3, ExerciseSession{
		ExerciseType: ExerciseTypeRunning,
		Segments:     []ExerciseSegment{{Span: interval.MustNew(t0, t1), SegmentType: SegmentRunning}},
		Route:        &ExerciseRoute{Locations: []Location{{Time: t1, Latitude: 1, Longitude: 2, Altitude: ptr(units.Meters(5))}}},
	}).Build()
	require.NoError(t, err)
	originals = append(originals, session)

	for _, original := range originals {
		data, err := json.Marshal(original)
		require.NoError(t, err)

		decoded, err := DecodeUnchecked(data)
		require.NoError(t, err)
		assert.True(t, original.Equal(decoded), original.RecordType().String())
		assert.Equal(t, original.Hash(), decoded.Hash())
		assert.Equal(t, original.ToInternal(), decoded.ToInternal())
	}
}

func TestNutritionOptionalFieldsStayAbsent(t *testing.T) {
	rec, err := NewIntervalBuilder(testMetadata(), t0, t1, Nutrition{
		Energy:   ptr(units.Kilocalories(1)),
		Caffeine: ptr(units.Milligrams(95)),
	}).Build()
	require.NoError(t, err)

	internal := rec.ToInternal()
	energy, ok := internal.Value("energy")
	require.True(t, ok)
	assert.Equal(t, 1000.0, energy)
	caffeine, ok := internal.Value("caffeine")
	require.True(t, ok)
	assert.InDelta(t, 0.095, caffeine, 1e-12)

	for _, absent := range []string{"energyFromFat", "protein", "zinc"} {
		_, ok := internal.Value(absent)
		assert.False(t, ok, absent)
	}
	_, ok = internal.Text("name")
	assert.False(t, ok)
}

func TestDecodePayloadRequiresMeasurements(t *testing.T) {
	stage := `{"interval": {"start_time": "2024-05-04T22:00:00Z", "end_time": "2024-05-04T23:00:00Z"}, "stage": 4}`
	cases := []struct {
		recordType RecordType
		body       string
		field      string
	}{
		{TypeWeight, `{}`, "weight"},
		{TypeWeight, `{"weight": null}`, "weight"},
		{TypeBodyFat, `{}`, "percentage"},
		{TypeDistance, `{}`, "distance"},
		{TypeSteps, `{"count": null}`, "count"},
		{TypeBloodPressure, `{"systolic": 120}`, "diastolic"},
		{TypeRestingHeartRate, `{}`, "beatsPerMinute"},
		{TypeVo2Max, `{"measurement_method": 1}`, "vo2MillilitersPerMinuteKilogram"},
		{TypeOvulationTest, `{}`, "result"},
		{TypeHeartRate, `{"samples": [{"time": "2024-05-04T22:30:00Z"}]}`, "samples[0].beatsPerMinute"},
		{TypeSpeed, `{"samples": [{"speed": 3}]}`, "samples[0].time"},
		{TypeSkinTemperature, `{"deltas": [{"time": "2024-05-04T22:30:00Z"}]}`, "deltas[0].delta"},
		{TypeSleepSession, `{"stages": [` + stage + `, {"stage": 5}]}`, "stages[1].interval"},
		{TypeSleepSession, `{"stages": [null]}`, "stages[0].interval"},
		{TypeExerciseSession, `{"segments": [{"segment_type": 56}]}`, "segments[0].interval"},
		{TypeExerciseSession, `{"laps": [{"length": 400}]}`, "laps[0].interval"},
		{TypeExerciseSession, `{"route": {"locations": [{"latitude": 1, "longitude": 2}]}}`, "route.locations[0].time"},
	}
	for _, c := range cases {
		t.Run(c.field, func(t *testing.T) {
			_, err := DecodePayload(c.recordType, []byte(c.body))
			require.ErrorIs(t, err, validation.ErrMissingField)
			var verr *validation.Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, c.field, verr.Field)
		})
	}

	// optional collections and fields may be left out
	for rt, body := range map[RecordType]string{
		TypeSleepSession:           `{}`,
		TypeExerciseSession:        `{"exercise_type": 56}`,
		TypeNutrition:              `{"meal_type": 1}`,
		TypeIntermenstrualBleeding: `{}`,
		TypeSkinTemperature:        `{"deltas": []}`,
		TypeSteps:                  `{"count": 0}`,
	} {
		_, err := DecodePayload(rt, []byte(body))
		require.NoError(t, err, rt.String())
	}
}

func TestDecodeReportsMissingPayloadFields(t *testing.T) {
	body := []byte(`{"record_type": "Weight", "time": "2024-05-04T22:00:00Z", "payload": {}}`)
	_, err := Decode(body)
	require.ErrorIs(t, err, validation.ErrMissingField)
	assert.Equal(t, "missing_field", validation.KindName(err))

	// storage reads keep the zero value
	rec, err := DecodeUnchecked(body)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rec.(InstantRecord).Payload().(Weight).Weight.InGrams())
}

func TestUncheckedRecordsWithOutOfSetEnumsReadBack(t *testing.T) {
	rec := NewIntervalBuilder(testMetadata(), t0, t1, Nutrition{MealType: MealType(42)}).BuildUnchecked()
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	decoded, err := DecodeUnchecked(data)
	require.NoError(t, err)
	assert.True(t, rec.Equal(decoded))
	assert.Equal(t, MealType(42), decoded.(IntervalRecord).Payload().(Nutrition).MealType)

	_, err = Decode(data)
	require.ErrorIs(t, err, validation.ErrInvalidEnumValue)
}

func TestZeroLengthStageOrderDoesNotChangeTheRecord(t *testing.T) {
	zero := SleepStage{Span: interval.MustNew(t1, t1), Stage: SleepStageAwake}
	long := SleepStage{Span: interval.MustNew(t1, t2), Stage: SleepStageDeep}

	a, err := NewIntervalBuilder(testMetadata(), t0, t3, SleepSession{Stages: []SleepStage{zero, long}}).Build()
	require.NoError(t, err)
	b, err := NewIntervalBuilder(testMetadata(), t0, t3, SleepSession{Stages: []SleepStage{long, zero}}).Build()
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, SleepStageAwake, b.Payload().(SleepSession).Stages[0].Stage)
}
