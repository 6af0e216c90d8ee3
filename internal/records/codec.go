package records

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	json "github.com/goccy/go-json"

	"example.com/healthrecords/internal/validation"
)

// ErrUnknownRecordType is returned when decoding a payload of an unregistered type.
var ErrUnknownRecordType = errors.New("unknown record type")

type payloadDecoder func(data []byte, checked bool) (Payload, error)

// decodeAs decodes a payload of type P. Checked decoding also requires every
// field tagged as required and rejects enum values outside their closed sets.
func decodeAs[P Payload](data []byte, checked bool) (Payload, error) {
	var p P
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if !checked {
		return p, nil
	}
	if err := checkPresence(reflect.TypeFor[P](), data, ""); err != nil {
		return nil, err
	}
	if err := firstEnumError(p.schema(span{})); err != nil {
		return nil, err
	}
	return p, nil
}

func firstEnumError(s schema) error {
	for _, group := range [][]error{s.required, s.rules, s.holders, s.samples} {
		for _, err := range group {
			if errors.Is(err, validation.ErrInvalidEnumValue) {
				return err
			}
		}
	}
	return nil
}

var payloadDecoders = map[RecordType]payloadDecoder{
	TypeActiveCaloriesBurned:      decodeAs[ActiveCaloriesBurned],
	TypeBasalBodyTemperature:      decodeAs[BasalBodyTemperature],
	TypeBasalMetabolicRate:        decodeAs[BasalMetabolicRate],
	TypeBloodGlucose:              decodeAs[BloodGlucose],
	TypeBloodPressure:             decodeAs[BloodPressure],
	TypeBodyFat:                   decodeAs[BodyFat],
	TypeBodyTemperature:           decodeAs[BodyTemperature],
	TypeBodyWaterMass:             decodeAs[BodyWaterMass],
	TypeBoneMass:                  decodeAs[BoneMass],
	TypeCervicalMucus:             decodeAs[CervicalMucus],
	TypeCyclingPedalingCadence:    decodeAs[CyclingPedalingCadence],
	TypeDistance:                  decodeAs[Distance],
	TypeElevationGained:           decodeAs[ElevationGained],
	TypeExerciseSession:           decodeAs[ExerciseSession],
	TypeFloorsClimbed:             decodeAs[FloorsClimbed],
	TypeHeartRate:                 decodeAs[HeartRate],
	TypeHeartRateVariabilityRmssd: decodeAs[HeartRateVariabilityRmssd],
	TypeHeight:                    decodeAs[Height],
	TypeHydration:                 decodeAs[Hydration],
	TypeIntermenstrualBleeding:    decodeAs[IntermenstrualBleeding],
	TypeLeanBodyMass:              decodeAs[LeanBodyMass],
	TypeMenstruationFlow:          decodeAs[MenstruationFlow],
	TypeMenstruationPeriod:        decodeAs[MenstruationPeriod],
	TypeNutrition:                 decodeAs[Nutrition],
	TypeOvulationTest:             decodeAs[OvulationTest],
	TypeOxygenSaturation:          decodeAs[OxygenSaturation],
	TypePower:                     decodeAs[Power],
	TypeRespiratoryRate:           decodeAs[RespiratoryRate],
	TypeRestingHeartRate:          decodeAs[RestingHeartRate],
	TypeSexualActivity:            decodeAs[SexualActivity],
	TypeSkinTemperature:           decodeAs[SkinTemperature],
	TypeSleepSession:              decodeAs[SleepSession],
	TypeSpeed:                     decodeAs[Speed],
	TypeStepsCadence:              decodeAs[StepsCadence],
	TypeSteps:                     decodeAs[Steps],
	TypeTotalCaloriesBurned:       decodeAs[TotalCaloriesBurned],
	TypeVo2Max:                    decodeAs[Vo2Max],
	TypeWeight:                    decodeAs[Weight],
	TypeWheelchairPushes:          decodeAs[WheelchairPushes],
}

// DecodePayload decodes the JSON body of a payload of type t. Required fields
// must be present and enum fields must hold members of their closed sets.
func DecodePayload(t RecordType, data []byte) (Payload, error) {
	return decodePayload(t, data, true)
}

func decodePayload(t RecordType, data []byte, checked bool) (Payload, error) {
	decode, ok := payloadDecoders[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecordType, t)
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, validation.MissingField("payload")
	}
	return decode(data, checked)
}

// Decode parses a record envelope and runs the full build pipeline on it.
func Decode(data []byte) (Record, error) {
	return decodeRecord(data, true)
}

// DecodeUnchecked parses a record envelope without validating it. It is meant
// for records read back from storage, so missing fields decode to zero values
// and out-of-set enum values are kept as they are.
func DecodeUnchecked(data []byte) (Record, error) {
	return decodeRecord(data, false)
}

func decodeRecord(data []byte, checked bool) (Record, error) {
	env := envelope{Metadata: NewMetadata()}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	payload, err := decodePayload(env.RecordType, env.Payload, checked)
	if err != nil {
		return nil, err
	}

	if env.RecordType.IsInstant() {
		builder := NewInstantBuilder(env.Metadata, deref(env.Time), payload.(InstantPayload))
		if env.ZoneOffset != nil {
			builder.ZoneOffset(*env.ZoneOffset)
		}
		if !checked {
			return builder.BuildUnchecked(), nil
		}
		rec, err := builder.Build()
		if err != nil {
			return nil, err
		}
		return rec, nil
	}

	builder := NewIntervalBuilder(env.Metadata, deref(env.StartTime), deref(env.EndTime), payload.(IntervalPayload))
	if env.StartZoneOffset != nil {
		builder.StartZoneOffset(*env.StartZoneOffset)
	}
	if env.EndZoneOffset != nil {
		builder.EndZoneOffset(*env.EndZoneOffset)
	}
	if !checked {
		return builder.BuildUnchecked(), nil
	}
	rec, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
