package records

import (
	"example.com/healthrecords/internal/internalrecord"
	"example.com/healthrecords/internal/units"
	"example.com/healthrecords/internal/validation"
)

const (
	maxBodyMassGrams   = 1_000_000.0
	maxTemperatureC    = 100.0
	maxPercentage      = 100.0
	maxHeightMeters    = 3.0
	maxRestingBpm      = 300
	maxBasalWatts      = 10_000.0
	maxGlucoseMmolL    = 50.0
	maxRespiratoryRate = 1000.0
	maxVo2Max          = 100.0
)

func rules(errs ...error) schema { return schema{rules: errs} }

// BasalBodyTemperature is body temperature at rest.
type BasalBodyTemperature struct {
	Temperature         units.Temperature                  `json:"temperature" required:"true"`
	MeasurementLocation BodyTemperatureMeasurementLocation `json:"measurement_location"`
}

func (BasalBodyTemperature) RecordType() RecordType { return TypeBasalBodyTemperature }
func (BasalBodyTemperature) instant()               {}
func (p BasalBodyTemperature) normalize() Payload   { return p }

func (p BasalBodyTemperature) schema(span) schema {
	return rules(
		validation.RequireInRange(p.Temperature.InCelsius(), 0, maxTemperatureC, "temperature"),
		validateEnum(p.MeasurementLocation, validBodyTemperatureLocations, "measurementLocation"),
	)
}

func (p BasalBodyTemperature) fill(r *internalrecord.Record) {
	r.SetValue("temperature", p.Temperature.InCelsius())
	r.SetInt("measurementLocation", int64(p.MeasurementLocation))
}

// BasalMetabolicRate is the energy used at rest.
type BasalMetabolicRate struct {
	BasalMetabolicRate units.Power `json:"basal_metabolic_rate" required:"true"`
}

func (BasalMetabolicRate) RecordType() RecordType { return TypeBasalMetabolicRate }
func (BasalMetabolicRate) instant()               {}
func (p BasalMetabolicRate) normalize() Payload   { return p }

func (p BasalMetabolicRate) schema(span) schema {
	return rules(validation.RequireInRange(p.BasalMetabolicRate.InWatts(), 0, maxBasalWatts, "basalMetabolicRate"))
}

func (p BasalMetabolicRate) fill(r *internalrecord.Record) {
	r.SetValue("basalMetabolicRate", p.BasalMetabolicRate.InWatts())
}

// BloodGlucose is a single blood glucose reading.
type BloodGlucose struct {
	Level          units.BloodGlucose `json:"level" required:"true"`
	SpecimenSource SpecimenSource     `json:"specimen_source"`
	MealType       MealType           `json:"meal_type"`
	RelationToMeal RelationToMeal     `json:"relation_to_meal"`
}

func (BloodGlucose) RecordType() RecordType { return TypeBloodGlucose }
func (BloodGlucose) instant()               {}
func (p BloodGlucose) normalize() Payload   { return p }

func (p BloodGlucose) schema(span) schema {
	return rules(
		validation.RequireInRange(p.Level.InMillimolesPerLiter(), 0, maxGlucoseMmolL, "level"),
		validateEnum(p.SpecimenSource, validSpecimenSources, "specimenSource"),
		validateEnum(p.MealType, validMealTypes, "mealType"),
		validateEnum(p.RelationToMeal, validRelationsToMeal, "relationToMeal"),
	)
}

func (p BloodGlucose) fill(r *internalrecord.Record) {
	r.SetValue("level", p.Level.InMillimolesPerLiter())
	r.SetInt("specimenSource", int64(p.SpecimenSource))
	r.SetInt("mealType", int64(p.MealType))
	r.SetInt("relationToMeal", int64(p.RelationToMeal))
}

// BloodPressure is a systolic/diastolic pair.
type BloodPressure struct {
	Systolic            units.Pressure                   `json:"systolic" required:"true"`
	Diastolic           units.Pressure                   `json:"diastolic" required:"true"`
	BodyPosition        BodyPosition                     `json:"body_position"`
	MeasurementLocation BloodPressureMeasurementLocation `json:"measurement_location"`
}

func (BloodPressure) RecordType() RecordType { return TypeBloodPressure }
func (BloodPressure) instant()               {}
func (p BloodPressure) normalize() Payload   { return p }

func (p BloodPressure) schema(span) schema {
	return rules(
		validation.RequireInRange(p.Systolic.InMillimetersOfMercury(), 20, 200, "systolic"),
		validation.RequireInRange(p.Diastolic.InMillimetersOfMercury(), 10, 180, "diastolic"),
		validateEnum(p.BodyPosition, validBodyPositions, "bodyPosition"),
		validateEnum(p.MeasurementLocation, validBloodPressureLocations, "measurementLocation"),
	)
}

func (p BloodPressure) fill(r *internalrecord.Record) {
	r.SetValue("systolic", p.Systolic.InMillimetersOfMercury())
	r.SetValue("diastolic", p.Diastolic.InMillimetersOfMercury())
	r.SetInt("bodyPosition", int64(p.BodyPosition))
	r.SetInt("measurementLocation", int64(p.MeasurementLocation))
}

// BodyFat is body fat as a percentage of body mass.
type BodyFat struct {
	Percentage units.Percentage `json:"percentage" required:"true"`
}

func (BodyFat) RecordType() RecordType { return TypeBodyFat }
func (BodyFat) instant()               {}
func (p BodyFat) normalize() Payload   { return p }

func (p BodyFat) schema(span) schema {
	return rules(validation.RequireInRange(p.Percentage.Value(), 0, maxPercentage, "percentage"))
}

func (p BodyFat) fill(r *internalrecord.Record) { r.SetValue("percentage", p.Percentage.Value()) }

// BodyTemperature is core body temperature.
type BodyTemperature struct {
	Temperature         units.Temperature                  `json:"temperature" required:"true"`
	MeasurementLocation BodyTemperatureMeasurementLocation `json:"measurement_location"`
}

func (BodyTemperature) RecordType() RecordType { return TypeBodyTemperature }
func (BodyTemperature) instant()               {}
func (p BodyTemperature) normalize() Payload   { return p }

func (p BodyTemperature) schema(span) schema {
	return rules(
		validation.RequireInRange(p.Temperature.InCelsius(), 0, maxTemperatureC, "temperature"),
		validateEnum(p.MeasurementLocation, validBodyTemperatureLocations, "measurementLocation"),
	)
}

func (p BodyTemperature) fill(r *internalrecord.Record) {
	r.SetValue("temperature", p.Temperature.InCelsius())
	r.SetInt("measurementLocation", int64(p.MeasurementLocation))
}

// BodyWaterMass is the mass of water in the body.
type BodyWaterMass struct {
	Mass units.Mass `json:"mass" required:"true"`
}

func (BodyWaterMass) RecordType() RecordType { return TypeBodyWaterMass }
func (BodyWaterMass) instant()               {}
func (p BodyWaterMass) normalize() Payload   { return p }

func (p BodyWaterMass) schema(span) schema {
	return rules(validation.RequireInRange(p.Mass.InGrams(), 0, maxBodyMassGrams, "mass"))
}

func (p BodyWaterMass) fill(r *internalrecord.Record) { r.SetValue("mass", p.Mass.InGrams()) }

// BoneMass is the mass of bone in the body.
type BoneMass struct {
	Mass units.Mass `json:"mass" required:"true"`
}

func (BoneMass) RecordType() RecordType { return TypeBoneMass }
func (BoneMass) instant()               {}
func (p BoneMass) normalize() Payload   { return p }

func (p BoneMass) schema(span) schema {
	return rules(validation.RequireInRange(p.Mass.InGrams(), 0, maxBodyMassGrams, "mass"))
}

func (p BoneMass) fill(r *internalrecord.Record) { r.SetValue("mass", p.Mass.InGrams()) }

// CervicalMucus is an observation of cervical mucus.
type CervicalMucus struct {
	Appearance CervicalMucusAppearance `json:"appearance"`
	Sensation  CervicalMucusSensation  `json:"sensation"`
}

func (CervicalMucus) RecordType() RecordType { return TypeCervicalMucus }
func (CervicalMucus) instant()               {}
func (p CervicalMucus) normalize() Payload   { return p }

func (p CervicalMucus) schema(span) schema {
	return rules(
		validateEnum(p.Appearance, validCervicalMucusAppearances, "appearance"),
		validateEnum(p.Sensation, validCervicalMucusSensations, "sensation"),
	)
}

func (p CervicalMucus) fill(r *internalrecord.Record) {
	r.SetInt("appearance", int64(p.Appearance))
	r.SetInt("sensation", int64(p.Sensation))
}

// HeartRateVariabilityRmssd is heart rate variability in milliseconds.
type HeartRateVariabilityRmssd struct {
	HeartRateVariabilityMillis float64 `json:"heart_rate_variability_millis" required:"true"`
}

func (HeartRateVariabilityRmssd) RecordType() RecordType { return TypeHeartRateVariabilityRmssd }
func (HeartRateVariabilityRmssd) instant()               {}
func (p HeartRateVariabilityRmssd) normalize() Payload   { return p }

func (p HeartRateVariabilityRmssd) schema(span) schema {
	return rules(validation.RequireInRange(p.HeartRateVariabilityMillis, 1, 200, "heartRateVariabilityMillis"))
}

func (p HeartRateVariabilityRmssd) fill(r *internalrecord.Record) {
	r.SetValue("heartRateVariabilityMillis", p.HeartRateVariabilityMillis)
}

// Height is body height.
type Height struct {
	Height units.Length `json:"height" required:"true"`
}

func (Height) RecordType() RecordType { return TypeHeight }
func (Height) instant()               {}
func (p Height) normalize() Payload   { return p }

func (p Height) schema(span) schema {
	return rules(validation.RequireInRange(p.Height.InMeters(), 0, maxHeightMeters, "height"))
}

func (p Height) fill(r *internalrecord.Record) { r.SetValue("height", p.Height.InMeters()) }

// IntermenstrualBleeding marks spotting outside a period. It has no fields.
type IntermenstrualBleeding struct{}

func (IntermenstrualBleeding) RecordType() RecordType      { return TypeIntermenstrualBleeding }
func (IntermenstrualBleeding) instant()                    {}
func (p IntermenstrualBleeding) normalize() Payload        { return p }
func (IntermenstrualBleeding) schema(span) schema          { return schema{} }
func (IntermenstrualBleeding) fill(*internalrecord.Record) {}

// LeanBodyMass is body mass excluding fat.
type LeanBodyMass struct {
	Mass units.Mass `json:"mass" required:"true"`
}

func (LeanBodyMass) RecordType() RecordType { return TypeLeanBodyMass }
func (LeanBodyMass) instant()               {}
func (p LeanBodyMass) normalize() Payload   { return p }

func (p LeanBodyMass) schema(span) schema {
	return rules(validation.RequireInRange(p.Mass.InGrams(), 0, maxBodyMassGrams, "mass"))
}

func (p LeanBodyMass) fill(r *internalrecord.Record) { r.SetValue("mass", p.Mass.InGrams()) }

// MenstruationFlow is menstrual flow intensity at a point in time.
type MenstruationFlow struct {
	Flow Flow `json:"flow"`
}

func (MenstruationFlow) RecordType() RecordType { return TypeMenstruationFlow }
func (MenstruationFlow) instant()               {}
func (p MenstruationFlow) normalize() Payload   { return p }

func (p MenstruationFlow) schema(span) schema {
	return rules(validateEnum(p.Flow, validFlows, "flow"))
}

func (p MenstruationFlow) fill(r *internalrecord.Record) { r.SetInt("flow", int64(p.Flow)) }

// OvulationTest is the result of an ovulation test.
type OvulationTest struct {
	Result OvulationResult `json:"result" required:"true"`
}

func (OvulationTest) RecordType() RecordType { return TypeOvulationTest }
func (OvulationTest) instant()               {}
func (p OvulationTest) normalize() Payload   { return p }

func (p OvulationTest) schema(span) schema {
	return rules(validateEnum(p.Result, validOvulationResults, "result"))
}

func (p OvulationTest) fill(r *internalrecord.Record) { r.SetInt("result", int64(p.Result)) }

// OxygenSaturation is blood oxygen saturation.
type OxygenSaturation struct {
	Percentage units.Percentage `json:"percentage" required:"true"`
}

func (OxygenSaturation) RecordType() RecordType { return TypeOxygenSaturation }
func (OxygenSaturation) instant()               {}
func (p OxygenSaturation) normalize() Payload   { return p }

func (p OxygenSaturation) schema(span) schema {
	return rules(validation.RequireInRange(p.Percentage.Value(), 0, maxPercentage, "percentage"))
}

func (p OxygenSaturation) fill(r *internalrecord.Record) {
	r.SetValue("percentage", p.Percentage.Value())
}

// RespiratoryRate is breaths per minute.
type RespiratoryRate struct {
	Rate float64 `json:"rate" required:"true"`
}

func (RespiratoryRate) RecordType() RecordType { return TypeRespiratoryRate }
func (RespiratoryRate) instant()               {}
func (p RespiratoryRate) normalize() Payload   { return p }

func (p RespiratoryRate) schema(span) schema {
	return rules(validation.RequireInRange(p.Rate, 0, maxRespiratoryRate, "rate"))
}

func (p RespiratoryRate) fill(r *internalrecord.Record) { r.SetValue("rate", p.Rate) }

// RestingHeartRate is heart rate at rest.
type RestingHeartRate struct {
	BeatsPerMinute int64 `json:"beats_per_minute" required:"true"`
}

func (RestingHeartRate) RecordType() RecordType { return TypeRestingHeartRate }
func (RestingHeartRate) instant()               {}
func (p RestingHeartRate) normalize() Payload   { return p }

func (p RestingHeartRate) schema(span) schema {
	return rules(validation.RequireInRange(p.BeatsPerMinute, 0, maxRestingBpm, "beatsPerMinute"))
}

func (p RestingHeartRate) fill(r *internalrecord.Record) {
	r.SetInt("beatsPerMinute", p.BeatsPerMinute)
}

// SexualActivity records sexual activity and whether protection was used.
type SexualActivity struct {
	ProtectionUsed Protection `json:"protection_used"`
}

func (SexualActivity) RecordType() RecordType { return TypeSexualActivity }
func (SexualActivity) instant()               {}
func (p SexualActivity) normalize() Payload   { return p }

func (p SexualActivity) schema(span) schema {
	return rules(validateEnum(p.ProtectionUsed, validProtections, "protectionUsed"))
}

func (p SexualActivity) fill(r *internalrecord.Record) {
	r.SetInt("protectionUsed", int64(p.ProtectionUsed))
}

// Vo2Max is maximal oxygen uptake in ml/min/kg.
type Vo2Max struct {
	Vo2MillilitersPerMinuteKilogram float64                 `json:"vo2_milliliters_per_minute_kilogram" required:"true"`
	MeasurementMethod               Vo2MaxMeasurementMethod `json:"measurement_method"`
}

func (Vo2Max) RecordType() RecordType { return TypeVo2Max }
func (Vo2Max) instant()               {}
func (p Vo2Max) normalize() Payload   { return p }

func (p Vo2Max) schema(span) schema {
	return rules(
		validation.RequireInRange(p.Vo2MillilitersPerMinuteKilogram, 0, maxVo2Max, "vo2MillilitersPerMinuteKilogram"),
		validateEnum(p.MeasurementMethod, validVo2MaxMethods, "measurementMethod"),
	)
}

func (p Vo2Max) fill(r *internalrecord.Record) {
	r.SetValue("vo2MillilitersPerMinuteKilogram", p.Vo2MillilitersPerMinuteKilogram)
	r.SetInt("measurementMethod", int64(p.MeasurementMethod))
}

// Weight is body weight.
type Weight struct {
	Weight units.Mass `json:"weight" required:"true"`
}

func (Weight) RecordType() RecordType { return TypeWeight }
func (Weight) instant()               {}
func (p Weight) normalize() Payload   { return p }

func (p Weight) schema(span) schema {
	return rules(validation.RequireInRange(p.Weight.InGrams(), 0, maxBodyMassGrams, "weight"))
}

func (p Weight) fill(r *internalrecord.Record) { r.SetValue("weight", p.Weight.InGrams()) }
