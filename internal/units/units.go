// Package units provides typed scalar wrappers for the measurements carried by
// health records. Each wrapper stores a single canonical value and exposes it
// through an In<Unit> accessor; JSON encodes the canonical value as a bare number.
package units

import (
	json "github.com/goccy/go-json"
)

const (
	gramsPerPound    = 453.59237
	gramsPerOunce    = 28.349523125
	metersPerMile    = 1609.344
	metersPerFoot    = 0.3048
	metersPerInch    = 0.0254
	joulesPerCalorie = 4.184
	litersPerFlOzUS  = 0.0295735295625
	mgdlPerMmoll     = 18.0
)

// Mass is stored in grams.
type Mass struct{ grams float64 }

// Grams returns a Mass of v grams.
func Grams(v float64) Mass { return Mass{grams: v} }

// Kilograms returns a Mass of v kilograms.
func Kilograms(v float64) Mass { return Mass{grams: v * 1000} }

// Milligrams returns a Mass of v milligrams.
func Milligrams(v float64) Mass { return Mass{grams: v / 1000} }

// Micrograms returns a Mass of v micrograms.
func Micrograms(v float64) Mass { return Mass{grams: v / 1_000_000} }

// Pounds returns a Mass of v pounds.
func Pounds(v float64) Mass { return Mass{grams: v * gramsPerPound} }

// Ounces returns a Mass of v ounces.
func Ounces(v float64) Mass { return Mass{grams: v * gramsPerOunce} }

func (m Mass) InGrams() float64     { return m.grams }
func (m Mass) InKilograms() float64 { return m.grams / 1000 }
func (m Mass) InPounds() float64    { return m.grams / gramsPerPound }

func (m Mass) MarshalJSON() ([]byte, error)     { return json.Marshal(m.grams) }
func (m *Mass) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &m.grams) }

// Length is stored in meters.
type Length struct{ meters float64 }

// Meters returns a Length of v meters.
func Meters(v float64) Length { return Length{meters: v} }

// Kilometers returns a Length of v kilometers.
func Kilometers(v float64) Length { return Length{meters: v * 1000} }

// Miles returns a Length of v miles.
func Miles(v float64) Length { return Length{meters: v * metersPerMile} }

// Feet returns a Length of v feet.
func Feet(v float64) Length { return Length{meters: v * metersPerFoot} }

// Inches returns a Length of v inches.
func Inches(v float64) Length { return Length{meters: v * metersPerInch} }

func (l Length) InMeters() float64     { return l.meters }
func (l Length) InKilometers() float64 { return l.meters / 1000 }
func (l Length) InMiles() float64      { return l.meters / metersPerMile }

func (l Length) MarshalJSON() ([]byte, error)     { return json.Marshal(l.meters) }
func (l *Length) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &l.meters) }

// Energy is stored in small calories.
type Energy struct{ calories float64 }

// Calories returns an Energy of v calories.
func Calories(v float64) Energy { return Energy{calories: v} }

// Kilocalories returns an Energy of v kilocalories.
func Kilocalories(v float64) Energy { return Energy{calories: v * 1000} }

// Joules returns an Energy of v joules.
func Joules(v float64) Energy { return Energy{calories: v / joulesPerCalorie} }

// Kilojoules returns an Energy of v kilojoules.
func Kilojoules(v float64) Energy { return Energy{calories: v * 1000 / joulesPerCalorie} }

func (e Energy) InCalories() float64     { return e.calories }
func (e Energy) InKilocalories() float64 { return e.calories / 1000 }
func (e Energy) InJoules() float64       { return e.calories * joulesPerCalorie }

func (e Energy) MarshalJSON() ([]byte, error)     { return json.Marshal(e.calories) }
func (e *Energy) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &e.calories) }

// Power is stored in watts.
type Power struct{ watts float64 }

// Watts returns a Power of v watts.
func Watts(v float64) Power { return Power{watts: v} }

// KilocaloriesPerDay returns a Power equivalent to v kcal/day.
func KilocaloriesPerDay(v float64) Power {
	return Power{watts: v * 1000 * joulesPerCalorie / 86400}
}

func (p Power) InWatts() float64              { return p.watts }
func (p Power) InKilocaloriesPerDay() float64 { return p.watts * 86400 / (1000 * joulesPerCalorie) }

func (p Power) MarshalJSON() ([]byte, error)     { return json.Marshal(p.watts) }
func (p *Power) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &p.watts) }

// Velocity is stored in meters per second.
type Velocity struct{ mps float64 }

// MetersPerSecond returns a Velocity of v m/s.
func MetersPerSecond(v float64) Velocity { return Velocity{mps: v} }

// KilometersPerHour returns a Velocity of v km/h.
func KilometersPerHour(v float64) Velocity { return Velocity{mps: v / 3.6} }

func (v Velocity) InMetersPerSecond() float64   { return v.mps }
func (v Velocity) InKilometersPerHour() float64 { return v.mps * 3.6 }

func (v Velocity) MarshalJSON() ([]byte, error)     { return json.Marshal(v.mps) }
func (v *Velocity) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &v.mps) }

// Volume is stored in liters.
type Volume struct{ liters float64 }

// Liters returns a Volume of v liters.
func Liters(v float64) Volume { return Volume{liters: v} }

// Milliliters returns a Volume of v milliliters.
func Milliliters(v float64) Volume { return Volume{liters: v / 1000} }

// FluidOuncesUS returns a Volume of v US fluid ounces.
func FluidOuncesUS(v float64) Volume { return Volume{liters: v * litersPerFlOzUS} }

func (v Volume) InLiters() float64      { return v.liters }
func (v Volume) InMilliliters() float64 { return v.liters * 1000 }

func (v Volume) MarshalJSON() ([]byte, error)     { return json.Marshal(v.liters) }
func (v *Volume) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &v.liters) }

// Pressure is stored in millimeters of mercury.
type Pressure struct{ mmHg float64 }

// MillimetersOfMercury returns a Pressure of v mmHg.
func MillimetersOfMercury(v float64) Pressure { return Pressure{mmHg: v} }

func (p Pressure) InMillimetersOfMercury() float64 { return p.mmHg }

func (p Pressure) MarshalJSON() ([]byte, error)     { return json.Marshal(p.mmHg) }
func (p *Pressure) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &p.mmHg) }

// Temperature is stored in degrees Celsius.
type Temperature struct{ celsius float64 }

// Celsius returns a Temperature of v °C.
func Celsius(v float64) Temperature { return Temperature{celsius: v} }

// Fahrenheit returns a Temperature of v °F.
func Fahrenheit(v float64) Temperature { return Temperature{celsius: (v - 32) * 5 / 9} }

func (t Temperature) InCelsius() float64    { return t.celsius }
func (t Temperature) InFahrenheit() float64 { return t.celsius*9/5 + 32 }

func (t Temperature) MarshalJSON() ([]byte, error)     { return json.Marshal(t.celsius) }
func (t *Temperature) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &t.celsius) }

// TemperatureDelta is a temperature difference stored in Celsius degrees.
type TemperatureDelta struct{ celsius float64 }

// CelsiusDelta returns a TemperatureDelta of v °C.
func CelsiusDelta(v float64) TemperatureDelta { return TemperatureDelta{celsius: v} }

// FahrenheitDelta returns a TemperatureDelta of v °F.
func FahrenheitDelta(v float64) TemperatureDelta { return TemperatureDelta{celsius: v * 5 / 9} }

func (t TemperatureDelta) InCelsius() float64 { return t.celsius }

func (t TemperatureDelta) MarshalJSON() ([]byte, error)     { return json.Marshal(t.celsius) }
func (t *TemperatureDelta) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &t.celsius) }

// Percentage is a value in percent (50 means 50%).
type Percentage struct{ value float64 }

// Percent returns a Percentage of v percent.
func Percent(v float64) Percentage { return Percentage{value: v} }

func (p Percentage) Value() float64 { return p.value }

func (p Percentage) MarshalJSON() ([]byte, error)     { return json.Marshal(p.value) }
func (p *Percentage) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &p.value) }

// BloodGlucose is stored in millimoles per liter.
type BloodGlucose struct{ mmoll float64 }

// MillimolesPerLiter returns a BloodGlucose of v mmol/L.
func MillimolesPerLiter(v float64) BloodGlucose { return BloodGlucose{mmoll: v} }

// MilligramsPerDeciliter returns a BloodGlucose of v mg/dL.
func MilligramsPerDeciliter(v float64) BloodGlucose { return BloodGlucose{mmoll: v / mgdlPerMmoll} }

func (g BloodGlucose) InMillimolesPerLiter() float64     { return g.mmoll }
func (g BloodGlucose) InMilligramsPerDeciliter() float64 { return g.mmoll * mgdlPerMmoll }

func (g BloodGlucose) MarshalJSON() ([]byte, error)     { return json.Marshal(g.mmoll) }
func (g *BloodGlucose) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &g.mmoll) }
