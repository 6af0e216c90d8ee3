package records

import "example.com/healthrecords/internal/validation"

// ExerciseType is the activity performed during an exercise session. Values
// are stable and not contiguous.
type ExerciseType int

const (
	ExerciseTypeOtherWorkout                  ExerciseType = 0
	ExerciseTypeBadminton                     ExerciseType = 2
	ExerciseTypeBaseball                      ExerciseType = 4
	ExerciseTypeBasketball                    ExerciseType = 5
	ExerciseTypeBiking                        ExerciseType = 8
	ExerciseTypeBikingStationary              ExerciseType = 9
	ExerciseTypeBootCamp                      ExerciseType = 10
	ExerciseTypeBoxing                        ExerciseType = 11
	ExerciseTypeCalisthenics                  ExerciseType = 13
	ExerciseTypeCricket                       ExerciseType = 14
	ExerciseTypeDancing                       ExerciseType = 16
	ExerciseTypeElliptical                    ExerciseType = 25
	ExerciseTypeExerciseClass                 ExerciseType = 26
	ExerciseTypeFencing                       ExerciseType = 27
	ExerciseTypeFootballAmerican              ExerciseType = 28
	ExerciseTypeFootballAustralian            ExerciseType = 29
	ExerciseTypeFrisbeeDisc                   ExerciseType = 31
	ExerciseTypeGolf                          ExerciseType = 32
	ExerciseTypeGuidedBreathing               ExerciseType = 33
	ExerciseTypeGymnastics                    ExerciseType = 34
	ExerciseTypeHandball                      ExerciseType = 35
	ExerciseTypeHighIntensityIntervalTraining ExerciseType = 36
	ExerciseTypeHiking                        ExerciseType = 37
	ExerciseTypeIceHockey                     ExerciseType = 38
	ExerciseTypeIceSkating                    ExerciseType = 39
	ExerciseTypeMartialArts                   ExerciseType = 44
	ExerciseTypePaddling                      ExerciseType = 46
	ExerciseTypeParagliding                   ExerciseType = 47
	ExerciseTypePilates                       ExerciseType = 48
	ExerciseTypeRacquetball                   ExerciseType = 50
	ExerciseTypeRockClimbing                  ExerciseType = 51
	ExerciseTypeRollerHockey                  ExerciseType = 52
	ExerciseTypeRowing                        ExerciseType = 53
	ExerciseTypeRowingMachine                 ExerciseType = 54
	ExerciseTypeRugby                         ExerciseType = 55
	ExerciseTypeRunning                       ExerciseType = 56
	ExerciseTypeRunningTreadmill              ExerciseType = 57
	ExerciseTypeSailing                       ExerciseType = 58
	ExerciseTypeScubaDiving                   ExerciseType = 59
	ExerciseTypeSkating                       ExerciseType = 60
	ExerciseTypeSkiing                        ExerciseType = 61
	ExerciseTypeSnowboarding                  ExerciseType = 62
	ExerciseTypeSnowshoeing                   ExerciseType = 63
	ExerciseTypeSoccer                        ExerciseType = 64
	ExerciseTypeSoftball                      ExerciseType = 65
	ExerciseTypeSquash                        ExerciseType = 66
	ExerciseTypeStairClimbing                 ExerciseType = 68
	ExerciseTypeStairClimbingMachine          ExerciseType = 69
	ExerciseTypeStrengthTraining              ExerciseType = 70
	ExerciseTypeStretching                    ExerciseType = 71
	ExerciseTypeSurfing                       ExerciseType = 72
	ExerciseTypeSwimmingOpenWater             ExerciseType = 73
	ExerciseTypeSwimmingPool                  ExerciseType = 74
	ExerciseTypeTableTennis                   ExerciseType = 75
	ExerciseTypeTennis                        ExerciseType = 76
	ExerciseTypeVolleyball                    ExerciseType = 78
	ExerciseTypeWalking                       ExerciseType = 79
	ExerciseTypeWaterPolo                     ExerciseType = 80
	ExerciseTypeWeightlifting                 ExerciseType = 81
	ExerciseTypeWheelchair                    ExerciseType = 82
	ExerciseTypeYoga                          ExerciseType = 83
)

var validExerciseTypes = []ExerciseType{
	ExerciseTypeOtherWorkout, ExerciseTypeBadminton, ExerciseTypeBaseball, ExerciseTypeBasketball,
	ExerciseTypeBiking, ExerciseTypeBikingStationary, ExerciseTypeBootCamp, ExerciseTypeBoxing,
	ExerciseTypeCalisthenics, ExerciseTypeCricket, ExerciseTypeDancing, ExerciseTypeElliptical,
	ExerciseTypeExerciseClass, ExerciseTypeFencing, ExerciseTypeFootballAmerican,
	ExerciseTypeFootballAustralian, ExerciseTypeFrisbeeDisc, ExerciseTypeGolf,
	ExerciseTypeGuidedBreathing, ExerciseTypeGymnastics, ExerciseTypeHandball,
	ExerciseTypeHighIntensityIntervalTraining, ExerciseTypeHiking, ExerciseTypeIceHockey,
	ExerciseTypeIceSkating, ExerciseTypeMartialArts, ExerciseTypePaddling, ExerciseTypeParagliding,
	ExerciseTypePilates, ExerciseTypeRacquetball, ExerciseTypeRockClimbing, ExerciseTypeRollerHockey,
	ExerciseTypeRowing, ExerciseTypeRowingMachine, ExerciseTypeRugby, ExerciseTypeRunning,
	ExerciseTypeRunningTreadmill, ExerciseTypeSailing, ExerciseTypeScubaDiving, ExerciseTypeSkating,
	ExerciseTypeSkiing, ExerciseTypeSnowboarding, ExerciseTypeSnowshoeing, ExerciseTypeSoccer,
	ExerciseTypeSoftball, ExerciseTypeSquash, ExerciseTypeStairClimbing,
	ExerciseTypeStairClimbingMachine, ExerciseTypeStrengthTraining, ExerciseTypeStretching,
	ExerciseTypeSurfing, ExerciseTypeSwimmingOpenWater, ExerciseTypeSwimmingPool,
	ExerciseTypeTableTennis, ExerciseTypeTennis, ExerciseTypeVolleyball, ExerciseTypeWalking,
	ExerciseTypeWaterPolo, ExerciseTypeWeightlifting, ExerciseTypeWheelchair, ExerciseTypeYoga,
}

func ParseExerciseType(raw int) (ExerciseType, error) {
	return parseEnum(raw, validExerciseTypes, "exerciseType")
}

func (t *ExerciseType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t)
}

// ExerciseSegmentType is the movement performed during an exercise segment.
type ExerciseSegmentType int

const (
	SegmentUnknown ExerciseSegmentType = iota
	SegmentArmCurl
	SegmentBackExtension
	SegmentBallSlam
	SegmentBarbellShoulderPress
	SegmentBenchPress
	SegmentBenchSitUp
	SegmentBiking
	SegmentBikingStationary
	SegmentBurpee
	SegmentCrunch
	SegmentDeadlift
	SegmentDoubleArmTricepsExtension
	SegmentDumbbellCurlLeftArm
	SegmentDumbbellCurlRightArm
	SegmentDumbbellFrontRaise
	SegmentDumbbellLateralRaise
	SegmentDumbbellRow
	SegmentDumbbellTricepsExtensionLeftArm
	SegmentDumbbellTricepsExtensionRightArm
	SegmentDumbbellTricepsExtensionTwoArm
	SegmentElliptical
	SegmentForwardTwist
	SegmentFrontRaise
	SegmentHighIntensityIntervalTraining
	SegmentHipThrust
	SegmentHulaHoop
	SegmentJumpingJack
	SegmentJumpRope
	SegmentKettlebellSwing
	SegmentLateralRaise
	SegmentLatPullDown
	SegmentLegCurl
	SegmentLegExtension
	SegmentLegPress
	SegmentLegRaise
	SegmentLunge
	SegmentMountainClimber
	SegmentOtherWorkout
	SegmentPause
	SegmentPilates
	SegmentPlank
	SegmentPullUp
	SegmentPunch
	SegmentRest
	SegmentRowingMachine
	SegmentRunning
	SegmentRunningTreadmill
	SegmentShoulderPress
	SegmentSingleArmTricepsExtension
	SegmentSitUp
	SegmentSquat
	SegmentStairClimbing
	SegmentStairClimbingMachine
	SegmentStretching
	SegmentSwimmingBackstroke
	SegmentSwimmingBreaststroke
	SegmentSwimmingButterfly
	SegmentSwimmingFreestyle
	SegmentSwimmingMixed
	SegmentSwimmingOpenWater
	SegmentSwimmingOther
	SegmentSwimmingPool
	SegmentUpperTwist
	SegmentWalking
	SegmentWaterPolo
	SegmentWeightlifting
	SegmentWheelchair
	SegmentYoga
)

func ParseExerciseSegmentType(raw int) (ExerciseSegmentType, error) {
	if raw < int(SegmentUnknown) || raw > int(SegmentYoga) {
		return SegmentUnknown, validation.InvalidEnumValue("segmentType", raw)
	}
	return ExerciseSegmentType(raw), nil
}

func (t *ExerciseSegmentType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t)
}

func validateSegmentType(t ExerciseSegmentType) error {
	_, err := ParseExerciseSegmentType(int(t))
	return err
}

// Segments allowed in any session.
var universalSegments = segmentSet(SegmentUnknown, SegmentOtherWorkout, SegmentPause, SegmentRest)

var strengthSegments = segmentSet(
	SegmentArmCurl, SegmentBackExtension, SegmentBallSlam, SegmentBarbellShoulderPress,
	SegmentBenchPress, SegmentBenchSitUp, SegmentBurpee, SegmentCrunch, SegmentDeadlift,
	SegmentDoubleArmTricepsExtension, SegmentDumbbellCurlLeftArm, SegmentDumbbellCurlRightArm,
	SegmentDumbbellFrontRaise, SegmentDumbbellLateralRaise, SegmentDumbbellRow,
	SegmentDumbbellTricepsExtensionLeftArm, SegmentDumbbellTricepsExtensionRightArm,
	SegmentDumbbellTricepsExtensionTwoArm, SegmentForwardTwist, SegmentFrontRaise, SegmentHipThrust,
	SegmentHulaHoop, SegmentJumpingJack, SegmentJumpRope, SegmentKettlebellSwing, SegmentLateralRaise,
	SegmentLatPullDown, SegmentLegCurl, SegmentLegExtension, SegmentLegPress, SegmentLegRaise,
	SegmentLunge, SegmentMountainClimber, SegmentPlank, SegmentPullUp, SegmentPunch,
	SegmentShoulderPress, SegmentSingleArmTricepsExtension, SegmentSitUp, SegmentSquat,
	SegmentUpperTwist, SegmentWeightlifting,
)

var swimmingSegments = segmentSet(
	SegmentSwimmingBackstroke, SegmentSwimmingBreaststroke, SegmentSwimmingButterfly,
	SegmentSwimmingFreestyle, SegmentSwimmingMixed, SegmentSwimmingOther,
)

// segmentsByExercise restricts the segments of the listed session types.
// Session types without an entry accept every segment.
var segmentsByExercise = map[ExerciseType]map[ExerciseSegmentType]struct{}{
	ExerciseTypeBiking:                        segmentSet(SegmentBiking),
	ExerciseTypeBikingStationary:              segmentSet(SegmentBikingStationary),
	ExerciseTypeBootCamp:                      strengthSegments,
	ExerciseTypeCalisthenics:                  strengthSegments,
	ExerciseTypeElliptical:                    segmentSet(SegmentElliptical),
	ExerciseTypeExerciseClass:                 strengthSegments,
	ExerciseTypeHighIntensityIntervalTraining: union(strengthSegments, segmentSet(SegmentHighIntensityIntervalTraining)),
	ExerciseTypePilates:                       segmentSet(SegmentPilates),
	ExerciseTypeRowingMachine:                 segmentSet(SegmentRowingMachine),
	ExerciseTypeRunning:                       segmentSet(SegmentRunning, SegmentWalking),
	ExerciseTypeRunningTreadmill:              segmentSet(SegmentRunningTreadmill),
	ExerciseTypeStairClimbing:                 segmentSet(SegmentStairClimbing),
	ExerciseTypeStairClimbingMachine:          segmentSet(SegmentStairClimbingMachine),
	ExerciseTypeStrengthTraining:              strengthSegments,
	ExerciseTypeStretching:                    segmentSet(SegmentStretching),
	ExerciseTypeSwimmingOpenWater:             union(swimmingSegments, segmentSet(SegmentSwimmingOpenWater)),
	ExerciseTypeSwimmingPool:                  union(swimmingSegments, segmentSet(SegmentSwimmingPool)),
	ExerciseTypeWalking:                       segmentSet(SegmentWalking),
	ExerciseTypeWaterPolo:                     segmentSet(SegmentWaterPolo),
	ExerciseTypeWeightlifting:                 strengthSegments,
	ExerciseTypeWheelchair:                    segmentSet(SegmentWheelchair),
	ExerciseTypeYoga:                          segmentSet(SegmentYoga),
}

func segmentSet(types ...ExerciseSegmentType) map[ExerciseSegmentType]struct{} {
	set := make(map[ExerciseSegmentType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

func union(sets ...map[ExerciseSegmentType]struct{}) map[ExerciseSegmentType]struct{} {
	out := make(map[ExerciseSegmentType]struct{})
	for _, set := range sets {
		for t := range set {
			out[t] = struct{}{}
		}
	}
	return out
}

// SegmentCompatible reports whether a segment of type segment may appear in a
// session of type exercise.
func SegmentCompatible(exercise ExerciseType, segment ExerciseSegmentType) bool {
	if _, ok := universalSegments[segment]; ok {
		return true
	}
	allowed, restricted := segmentsByExercise[exercise]
	if !restricted {
		return true
	}
	_, ok := allowed[segment]
	return ok
}
