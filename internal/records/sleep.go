package records

import (
	"example.com/healthrecords/internal/internalrecord"
	"example.com/healthrecords/internal/interval"
)

// SleepStage is one phase within a sleep session.
type SleepStage struct {
	Span  interval.TimeInterval `json:"interval" required:"true"`
	Stage SleepStageType        `json:"stage"`
}

func (s SleepStage) Interval() interval.TimeInterval { return s.Span }

// SleepSession is a period of sleep with optional stages. Stages are kept
// sorted by start time.
type SleepSession struct {
	Title  *string      `json:"title,omitempty"`
	Notes  *string      `json:"notes,omitempty"`
	Stages []SleepStage `json:"stages"`
}

func (SleepSession) RecordType() RecordType { return TypeSleepSession }
func (SleepSession) interval()              {}

func (p SleepSession) normalize() Payload {
	stages := mapSlice(p.Stages, func(s SleepStage) SleepStage {
		s.Span = s.Span.UTC()
		return s
	})
	return SleepSession{
		Title:  clonePtr(p.Title),
		Notes:  clonePtr(p.Notes),
		Stages: interval.Sort(stages),
	}
}

func (p SleepSession) schema(s span) schema {
	return schema{
		required: requireSpans(p.Stages, "stages"),
		rules: sampleRules(p.Stages, func(stage SleepStage) error {
			return validateEnum(stage.Stage, validSleepStages, "stageType")
		}),
		holders: []error{interval.ValidateSorted(s.start, s.end, p.Stages, "stages")},
	}
}

func (p SleepSession) fill(r *internalrecord.Record) {
	r.SetOptionalString("title", p.Title)
	r.SetOptionalString("notes", p.Notes)
	r.SetSpans("stages", mapSlice(p.Stages, func(s SleepStage) internalrecord.Span {
		return internalrecord.Span{
			StartMillis: s.Span.Start().UnixMilli(),
			EndMillis:   s.Span.End().UnixMilli(),
			Type:        int(s.Stage),
		}
	}))
}
