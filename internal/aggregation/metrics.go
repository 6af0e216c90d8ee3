package aggregation

import (
	"time"

	"example.com/healthrecords/internal/records"
	"example.com/healthrecords/internal/units"
)

// Registered metrics. New entries take the next free ID.
var (
	ActiveCaloriesTotal = define[units.Energy](1, "active_calories_total", OperationSum, records.TypeActiveCaloriesBurned)
	BasalCaloriesTotal  = define[units.Energy](2, "basal_calories_total", OperationSum, records.TypeBasalMetabolicRate)

	BloodPressureSystolicAvg  = define[units.Pressure](3, "blood_pressure_systolic_avg", OperationAvg, records.TypeBloodPressure)
	BloodPressureSystolicMin  = define[units.Pressure](4, "blood_pressure_systolic_min", OperationMin, records.TypeBloodPressure)
	BloodPressureSystolicMax  = define[units.Pressure](5, "blood_pressure_systolic_max", OperationMax, records.TypeBloodPressure)
	BloodPressureDiastolicAvg = define[units.Pressure](6, "blood_pressure_diastolic_avg", OperationAvg, records.TypeBloodPressure)
	BloodPressureDiastolicMin = define[units.Pressure](7, "blood_pressure_diastolic_min", OperationMin, records.TypeBloodPressure)
	BloodPressureDiastolicMax = define[units.Pressure](8, "blood_pressure_diastolic_max", OperationMax, records.TypeBloodPressure)

	DistanceTotal         = define[units.Length](9, "distance_total", OperationSum, records.TypeDistance)
	ElevationGainedTotal  = define[units.Length](10, "elevation_gained_total", OperationSum, records.TypeElevationGained)
	ExerciseDurationTotal = define[time.Duration](11, "exercise_duration_total", OperationSum, records.TypeExerciseSession)
	FloorsClimbedTotal    = define[float64](12, "floors_climbed_total", OperationSum, records.TypeFloorsClimbed)

	HeartRateAvg               = define[int64](13, "heart_rate_avg", OperationAvg, records.TypeHeartRate)
	HeartRateMin               = define[int64](14, "heart_rate_min", OperationMin, records.TypeHeartRate)
	HeartRateMax               = define[int64](15, "heart_rate_max", OperationMax, records.TypeHeartRate)
	HeartRateMeasurementsCount = define[int64](16, "heart_rate_measurements_count", OperationCount, records.TypeHeartRate)

	HeightAvg = define[units.Length](17, "height_avg", OperationAvg, records.TypeHeight)
	HeightMin = define[units.Length](18, "height_min", OperationMin, records.TypeHeight)
	HeightMax = define[units.Length](19, "height_max", OperationMax, records.TypeHeight)

	HydrationVolumeTotal = define[units.Volume](20, "hydration_volume_total", OperationSum, records.TypeHydration)

	NutritionEnergyTotal  = define[units.Energy](21, "nutrition_energy_total", OperationSum, records.TypeNutrition)
	NutritionProteinTotal = define[units.Mass](22, "nutrition_protein_total", OperationSum, records.TypeNutrition)
	NutritionFatTotal     = define[units.Mass](23, "nutrition_fat_total", OperationSum, records.TypeNutrition)
	NutritionCarbsTotal   = define[units.Mass](24, "nutrition_carbs_total", OperationSum, records.TypeNutrition)

	PowerAvg = define[units.Power](25, "power_avg", OperationAvg, records.TypePower)
	PowerMin = define[units.Power](26, "power_min", OperationMin, records.TypePower)
	PowerMax = define[units.Power](27, "power_max", OperationMax, records.TypePower)

	RestingHeartRateAvg = define[int64](28, "resting_heart_rate_avg", OperationAvg, records.TypeRestingHeartRate)
	RestingHeartRateMin = define[int64](29, "resting_heart_rate_min", OperationMin, records.TypeRestingHeartRate)
	RestingHeartRateMax = define[int64](30, "resting_heart_rate_max", OperationMax, records.TypeRestingHeartRate)

	SleepDurationTotal = define[time.Duration](31, "sleep_duration_total", OperationSum, records.TypeSleepSession)

	SpeedAvg = define[units.Velocity](32, "speed_avg", OperationAvg, records.TypeSpeed)
	SpeedMin = define[units.Velocity](33, "speed_min", OperationMin, records.TypeSpeed)
	SpeedMax = define[units.Velocity](34, "speed_max", OperationMax, records.TypeSpeed)

	StepsCountTotal     = define[int64](35, "steps_count_total", OperationSum, records.TypeSteps)
	StepsCadenceRateAvg = define[float64](36, "steps_cadence_rate_avg", OperationAvg, records.TypeStepsCadence)
	StepsCadenceRateMin = define[float64](37, "steps_cadence_rate_min", OperationMin, records.TypeStepsCadence)
	StepsCadenceRateMax = define[float64](38, "steps_cadence_rate_max", OperationMax, records.TypeStepsCadence)

	// total calories fall back to active plus basal when no total records exist
	TotalCaloriesTotal = define[units.Energy](39, "total_calories_total", OperationSum,
		records.TypeTotalCaloriesBurned, records.TypeActiveCaloriesBurned, records.TypeBasalMetabolicRate)

	WeightAvg = define[units.Mass](40, "weight_avg", OperationAvg, records.TypeWeight)
	WeightMin = define[units.Mass](41, "weight_min", OperationMin, records.TypeWeight)
	WeightMax = define[units.Mass](42, "weight_max", OperationMax, records.TypeWeight)

	WheelchairPushesCountTotal = define[int64](43, "wheelchair_pushes_count_total", OperationSum, records.TypeWheelchairPushes)

	CyclingPedalingCadenceRpmAvg = define[float64](44, "cycling_pedaling_cadence_rpm_avg", OperationAvg, records.TypeCyclingPedalingCadence)
	CyclingPedalingCadenceRpmMin = define[float64](45, "cycling_pedaling_cadence_rpm_min", OperationMin, records.TypeCyclingPedalingCadence)
	CyclingPedalingCadenceRpmMax = define[float64](46, "cycling_pedaling_cadence_rpm_max", OperationMax, records.TypeCyclingPedalingCadence)

	ExerciseSessionsCount = define[int64](47, "exercise_sessions_count", OperationCount, records.TypeExerciseSession)
)
