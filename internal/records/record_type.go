package records

import (
	"fmt"

	"example.com/healthrecords/internal/validation"
)

// RecordType identifies a record variant. Values are stable integers shared
// with storage and the aggregation registry; new types are appended.
type RecordType int

const (
	TypeUnknown RecordType = iota
	TypeActiveCaloriesBurned
	TypeBasalBodyTemperature
	TypeBasalMetabolicRate
	TypeBloodGlucose
	TypeBloodPressure
	TypeBodyFat
	TypeBodyTemperature
	TypeBodyWaterMass
	TypeBoneMass
	TypeCervicalMucus
	TypeCyclingPedalingCadence
	TypeDistance
	TypeElevationGained
	TypeExerciseSession
	TypeFloorsClimbed
	TypeHeartRate
	TypeHeartRateVariabilityRmssd
	TypeHeight
	TypeHydration
	TypeIntermenstrualBleeding
	TypeLeanBodyMass
	TypeMenstruationFlow
	TypeMenstruationPeriod
	TypeNutrition
	TypeOvulationTest
	TypeOxygenSaturation
	TypePower
	TypeRespiratoryRate
	TypeRestingHeartRate
	TypeSexualActivity
	TypeSkinTemperature
	TypeSleepSession
	TypeSpeed
	TypeStepsCadence
	TypeSteps
	TypeTotalCaloriesBurned
	TypeVo2Max
	TypeWeight
	TypeWheelchairPushes
)

var recordTypeNames = map[RecordType]string{
	TypeActiveCaloriesBurned:      "ActiveCaloriesBurned",
	TypeBasalBodyTemperature:      "BasalBodyTemperature",
	TypeBasalMetabolicRate:        "BasalMetabolicRate",
	TypeBloodGlucose:              "BloodGlucose",
	TypeBloodPressure:             "BloodPressure",
	TypeBodyFat:                   "BodyFat",
	TypeBodyTemperature:           "BodyTemperature",
	TypeBodyWaterMass:             "BodyWaterMass",
	TypeBoneMass:                  "BoneMass",
	TypeCervicalMucus:             "CervicalMucus",
	TypeCyclingPedalingCadence:    "CyclingPedalingCadence",
	TypeDistance:                  "Distance",
	TypeElevationGained:           "ElevationGained",
	TypeExerciseSession:           "ExerciseSession",
	TypeFloorsClimbed:             "FloorsClimbed",
	TypeHeartRate:                 "HeartRate",
	TypeHeartRateVariabilityRmssd: "HeartRateVariabilityRmssd",
	TypeHeight:                    "Height",
	TypeHydration:                 "Hydration",
	TypeIntermenstrualBleeding:    "IntermenstrualBleeding",
	TypeLeanBodyMass:              "LeanBodyMass",
	TypeMenstruationFlow:          "MenstruationFlow",
	TypeMenstruationPeriod:        "MenstruationPeriod",
	TypeNutrition:                 "Nutrition",
	TypeOvulationTest:             "OvulationTest",
	TypeOxygenSaturation:          "OxygenSaturation",
	TypePower:                     "Power",
	TypeRespiratoryRate:           "RespiratoryRate",
	TypeRestingHeartRate:          "RestingHeartRate",
	TypeSexualActivity:            "SexualActivity",
	TypeSkinTemperature:           "SkinTemperature",
	TypeSleepSession:              "SleepSession",
	TypeSpeed:                     "Speed",
	TypeStepsCadence:              "StepsCadence",
	TypeSteps:                     "Steps",
	TypeTotalCaloriesBurned:       "TotalCaloriesBurned",
	TypeVo2Max:                    "Vo2Max",
	TypeWeight:                    "Weight",
	TypeWheelchairPushes:          "WheelchairPushes",
}

var recordTypesByName = func() map[string]RecordType {
	out := make(map[string]RecordType, len(recordTypeNames))
	for rt, name := range recordTypeNames {
		out[name] = rt
	}
	return out
}()

var instantTypes = toSet(
	TypeBasalBodyTemperature, TypeBasalMetabolicRate, TypeBloodGlucose, TypeBloodPressure,
	TypeBodyFat, TypeBodyTemperature, TypeBodyWaterMass, TypeBoneMass, TypeCervicalMucus,
	TypeHeartRateVariabilityRmssd, TypeHeight, TypeIntermenstrualBleeding, TypeLeanBodyMass,
	TypeMenstruationFlow, TypeOvulationTest, TypeOxygenSaturation, TypeRespiratoryRate,
	TypeRestingHeartRate, TypeSexualActivity, TypeVo2Max, TypeWeight,
)

func toSet(types ...RecordType) map[RecordType]struct{} {
	set := make(map[RecordType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("RecordType(%d)", int(t))
}

// Valid reports whether t names a known record variant.
func (t RecordType) Valid() bool {
	_, ok := recordTypeNames[t]
	return ok
}

// IsInstant reports whether records of type t describe a single point in time.
func (t RecordType) IsInstant() bool {
	_, ok := instantTypes[t]
	return ok
}

// ParseRecordType resolves a record type by its name.
func ParseRecordType(name string) (RecordType, error) {
	if rt, ok := recordTypesByName[name]; ok {
		return rt, nil
	}
	return TypeUnknown, validation.InvalidEnumValue("recordType", name)
}

// AllRecordTypes lists every known record type in ID order.
func AllRecordTypes() []RecordType {
	out := make([]RecordType, 0, len(recordTypeNames))
	for rt := TypeActiveCaloriesBurned; rt <= TypeWheelchairPushes; rt++ {
		out = append(out, rt)
	}
	return out
}

func (t RecordType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *RecordType) UnmarshalText(data []byte) error {
	parsed, err := ParseRecordType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
