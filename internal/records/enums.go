package records

// BodyTemperatureMeasurementLocation is where a body temperature was taken.
type BodyTemperatureMeasurementLocation int

const (
	BodyTemperatureLocationUnknown BodyTemperatureMeasurementLocation = iota
	BodyTemperatureLocationArmpit
	BodyTemperatureLocationFinger
	BodyTemperatureLocationForehead
	BodyTemperatureLocationMouth
	BodyTemperatureLocationRectum
	BodyTemperatureLocationTemporalArtery
	BodyTemperatureLocationToe
	BodyTemperatureLocationEar
	BodyTemperatureLocationWrist
	BodyTemperatureLocationVagina
)

var validBodyTemperatureLocations = []BodyTemperatureMeasurementLocation{
	BodyTemperatureLocationUnknown, BodyTemperatureLocationArmpit, BodyTemperatureLocationFinger,
	BodyTemperatureLocationForehead, BodyTemperatureLocationMouth, BodyTemperatureLocationRectum,
	BodyTemperatureLocationTemporalArtery, BodyTemperatureLocationToe, BodyTemperatureLocationEar,
	BodyTemperatureLocationWrist, BodyTemperatureLocationVagina,
}

func ParseBodyTemperatureMeasurementLocation(raw int) (BodyTemperatureMeasurementLocation, error) {
	return parseEnum(raw, validBodyTemperatureLocations, "measurementLocation")
}

func (l *BodyTemperatureMeasurementLocation) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, l)
}

// SpecimenSource is the fluid a blood glucose reading was taken from.
type SpecimenSource int

const (
	SpecimenSourceUnknown SpecimenSource = iota
	SpecimenSourceInterstitialFluid
	SpecimenSourceCapillaryBlood
	SpecimenSourcePlasma
	SpecimenSourceSerum
	SpecimenSourceTears
	SpecimenSourceWholeBlood
)

var validSpecimenSources = []SpecimenSource{
	SpecimenSourceUnknown, SpecimenSourceInterstitialFluid, SpecimenSourceCapillaryBlood,
	SpecimenSourcePlasma, SpecimenSourceSerum, SpecimenSourceTears, SpecimenSourceWholeBlood,
}

func ParseSpecimenSource(raw int) (SpecimenSource, error) {
	return parseEnum(raw, validSpecimenSources, "specimenSource")
}

func (s *SpecimenSource) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s)
}

// MealType is the meal a reading or intake is associated with.
type MealType int

const (
	MealTypeUnknown MealType = iota
	MealTypeBreakfast
	MealTypeLunch
	MealTypeDinner
	MealTypeSnack
)

var validMealTypes = []MealType{MealTypeUnknown, MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

func ParseMealType(raw int) (MealType, error) {
	return parseEnum(raw, validMealTypes, "mealType")
}

func (m *MealType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, m)
}

// RelationToMeal places a blood glucose reading relative to a meal.
type RelationToMeal int

const (
	RelationToMealUnknown RelationToMeal = iota
	RelationToMealGeneral
	RelationToMealFasting
	RelationToMealBeforeMeal
	RelationToMealAfterMeal
)

var validRelationsToMeal = []RelationToMeal{
	RelationToMealUnknown, RelationToMealGeneral, RelationToMealFasting,
	RelationToMealBeforeMeal, RelationToMealAfterMeal,
}

func ParseRelationToMeal(raw int) (RelationToMeal, error) {
	return parseEnum(raw, validRelationsToMeal, "relationToMeal")
}

func (r *RelationToMeal) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r)
}

// BodyPosition is the user's posture during a blood pressure reading.
type BodyPosition int

const (
	BodyPositionUnknown BodyPosition = iota
	BodyPositionStandingUp
	BodyPositionSittingDown
	BodyPositionLyingDown
	BodyPositionReclining
)

var validBodyPositions = []BodyPosition{
	BodyPositionUnknown, BodyPositionStandingUp, BodyPositionSittingDown,
	BodyPositionLyingDown, BodyPositionReclining,
}

func ParseBodyPosition(raw int) (BodyPosition, error) {
	return parseEnum(raw, validBodyPositions, "bodyPosition")
}

func (p *BodyPosition) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, p)
}

// BloodPressureMeasurementLocation is the arm and site of a blood pressure reading.
type BloodPressureMeasurementLocation int

const (
	BloodPressureLocationUnknown BloodPressureMeasurementLocation = iota
	BloodPressureLocationLeftWrist
	BloodPressureLocationRightWrist
	BloodPressureLocationLeftUpperArm
	BloodPressureLocationRightUpperArm
)

var validBloodPressureLocations = []BloodPressureMeasurementLocation{
	BloodPressureLocationUnknown, BloodPressureLocationLeftWrist, BloodPressureLocationRightWrist,
	BloodPressureLocationLeftUpperArm, BloodPressureLocationRightUpperArm,
}

func ParseBloodPressureMeasurementLocation(raw int) (BloodPressureMeasurementLocation, error) {
	return parseEnum(raw, validBloodPressureLocations, "measurementLocation")
}

func (l *BloodPressureMeasurementLocation) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, l)
}

// CervicalMucusAppearance describes cervical mucus consistency.
type CervicalMucusAppearance int

const (
	CervicalMucusAppearanceUnknown CervicalMucusAppearance = iota
	CervicalMucusAppearanceDry
	CervicalMucusAppearanceSticky
	CervicalMucusAppearanceCreamy
	CervicalMucusAppearanceWatery
	CervicalMucusAppearanceEggWhite
	CervicalMucusAppearanceUnusual
)

var validCervicalMucusAppearances = []CervicalMucusAppearance{
	CervicalMucusAppearanceUnknown, CervicalMucusAppearanceDry, CervicalMucusAppearanceSticky,
	CervicalMucusAppearanceCreamy, CervicalMucusAppearanceWatery, CervicalMucusAppearanceEggWhite,
	CervicalMucusAppearanceUnusual,
}

func ParseCervicalMucusAppearance(raw int) (CervicalMucusAppearance, error) {
	return parseEnum(raw, validCervicalMucusAppearances, "appearance")
}

func (a *CervicalMucusAppearance) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, a)
}

// CervicalMucusSensation describes the sensation reported with cervical mucus.
type CervicalMucusSensation int

const (
	CervicalMucusSensationUnknown CervicalMucusSensation = iota
	CervicalMucusSensationLight
	CervicalMucusSensationMedium
	CervicalMucusSensationHeavy
)

var validCervicalMucusSensations = []CervicalMucusSensation{
	CervicalMucusSensationUnknown, CervicalMucusSensationLight,
	CervicalMucusSensationMedium, CervicalMucusSensationHeavy,
}

func ParseCervicalMucusSensation(raw int) (CervicalMucusSensation, error) {
	return parseEnum(raw, validCervicalMucusSensations, "sensation")
}

func (s *CervicalMucusSensation) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s)
}

// Flow is menstrual flow intensity.
type Flow int

const (
	FlowUnknown Flow = iota
	FlowLight
	FlowMedium
	FlowHeavy
)

var validFlows = []Flow{FlowUnknown, FlowLight, FlowMedium, FlowHeavy}

func ParseFlow(raw int) (Flow, error) {
	return parseEnum(raw, validFlows, "flow")
}

func (f *Flow) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, f)
}

// OvulationResult is the outcome of an ovulation test. Positive is the zero value.
type OvulationResult int

const (
	OvulationResultPositive OvulationResult = iota
	OvulationResultHigh
	OvulationResultNegative
	OvulationResultInconclusive
)

var validOvulationResults = []OvulationResult{
	OvulationResultPositive, OvulationResultHigh, OvulationResultNegative, OvulationResultInconclusive,
}

func ParseOvulationResult(raw int) (OvulationResult, error) {
	return parseEnum(raw, validOvulationResults, "result")
}

func (r *OvulationResult) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r)
}

// Protection records whether protection was used during sexual activity.
type Protection int

const (
	ProtectionUnknown Protection = iota
	ProtectionProtected
	ProtectionUnprotected
)

var validProtections = []Protection{ProtectionUnknown, ProtectionProtected, ProtectionUnprotected}

func ParseProtection(raw int) (Protection, error) {
	return parseEnum(raw, validProtections, "protectionUsed")
}

func (p *Protection) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, p)
}

// Vo2MaxMeasurementMethod is how a VO2 max value was obtained.
type Vo2MaxMeasurementMethod int

const (
	Vo2MaxMethodOther Vo2MaxMeasurementMethod = iota
	Vo2MaxMethodMetabolicCart
	Vo2MaxMethodHeartRateRatio
	Vo2MaxMethodCooperTest
	Vo2MaxMethodMultistageFitnessTest
	Vo2MaxMethodRockportFitnessTest
)

var validVo2MaxMethods = []Vo2MaxMeasurementMethod{
	Vo2MaxMethodOther, Vo2MaxMethodMetabolicCart, Vo2MaxMethodHeartRateRatio,
	Vo2MaxMethodCooperTest, Vo2MaxMethodMultistageFitnessTest, Vo2MaxMethodRockportFitnessTest,
}

func ParseVo2MaxMeasurementMethod(raw int) (Vo2MaxMeasurementMethod, error) {
	return parseEnum(raw, validVo2MaxMethods, "measurementMethod")
}

func (m *Vo2MaxMeasurementMethod) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, m)
}

// SleepStageType is the phase of a sleep stage.
type SleepStageType int

const (
	SleepStageUnknown SleepStageType = iota
	SleepStageAwake
	SleepStageSleeping
	SleepStageOutOfBed
	SleepStageLight
	SleepStageDeep
	SleepStageREM
	SleepStageAwakeInBed
)

var validSleepStages = []SleepStageType{
	SleepStageUnknown, SleepStageAwake, SleepStageSleeping, SleepStageOutOfBed,
	SleepStageLight, SleepStageDeep, SleepStageREM, SleepStageAwakeInBed,
}

func ParseSleepStageType(raw int) (SleepStageType, error) {
	return parseEnum(raw, validSleepStages, "stageType")
}

func (s *SleepStageType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s)
}

// SkinTemperatureMeasurementLocation is where skin temperature was sensed.
type SkinTemperatureMeasurementLocation int

const (
	SkinTemperatureLocationUnknown SkinTemperatureMeasurementLocation = iota
	SkinTemperatureLocationFinger
	SkinTemperatureLocationToe
	SkinTemperatureLocationWrist
)

var validSkinTemperatureLocations = []SkinTemperatureMeasurementLocation{
	SkinTemperatureLocationUnknown, SkinTemperatureLocationFinger,
	SkinTemperatureLocationToe, SkinTemperatureLocationWrist,
}

func ParseSkinTemperatureMeasurementLocation(raw int) (SkinTemperatureMeasurementLocation, error) {
	return parseEnum(raw, validSkinTemperatureLocations, "measurementLocation")
}

func (l *SkinTemperatureMeasurementLocation) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, l)
}
