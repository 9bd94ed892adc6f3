// Package core implements the SEG-Y field-access layer: two process-wide
// field-size tables (one per header kind) plus typed accessors built on
// top of internal/codec's raw big-endian primitives. Nothing here touches
// a file; it operates purely on 240-byte trace-header and 400-byte
// binary-header buffers, the way the teacher's internal/core datatype and
// dataspace parsers work only on message buffers handed to them.
package core

import "github.com/scigolib/segy/internal/codec"

// TraceHeaderSize and BinaryHeaderSize are the fixed sizes of the two
// header kinds this package understands.
const (
	TraceHeaderSize  = 240
	BinaryHeaderSize = 400
)

type fieldSpec struct {
	offset int // 1-based SEG-Y byte offset
	width  codec.Width
}

// buildTable turns a sparse list of (offset, width) specs into a dense
// width-by-offset array sized [1:size], leaving every unlisted offset at
// WidthNone so the accessors in access.go can surface InvalidField for it.
func buildTable(size int, specs []fieldSpec) []codec.Width {
	table := make([]codec.Width, size+1)
	for _, s := range specs {
		table[s.offset] = s.width
	}
	return table
}

// traceFieldTable maps the standard SEG-Y rev.1 trace header layout (byte
// offsets 1..240) to field widths. This is the "two static field-size
// tables" Design Note 9.1 calls for declared as immutable package-level
// state rather than recomputed per access.
var traceFieldTable = buildTable(TraceHeaderSize, []fieldSpec{
	{1, codec.WidthI32},  // TraceSequenceLine
	{5, codec.WidthI32},  // TraceSequenceFile
	{9, codec.WidthI32},  // FieldRecordNumber
	{13, codec.WidthI32}, // TraceNumberInField
	{17, codec.WidthI32}, // EnergySourcePointNumber
	{21, codec.WidthI32}, // EnsembleNumber (CDP)
	{25, codec.WidthI32}, // TraceNumberInEnsemble
	{29, codec.WidthI16}, // TraceIdentificationCode
	{31, codec.WidthI16}, // NumVerticallySummedTraces
	{33, codec.WidthI16}, // NumHorizontallyStackedTraces
	{35, codec.WidthI16}, // DataUse
	{37, codec.WidthI32}, // SourceToReceiverDistance (offset)
	{41, codec.WidthI32}, // ReceiverGroupElevation
	{45, codec.WidthI32}, // SurfaceElevationAtSource
	{49, codec.WidthI32}, // SourceDepthBelowSurface
	{53, codec.WidthI32}, // DatumElevationAtReceiverGroup
	{57, codec.WidthI32}, // DatumElevationAtSource
	{61, codec.WidthI32}, // WaterDepthAtSource
	{65, codec.WidthI32}, // WaterDepthAtGroup
	{69, codec.WidthI16}, // ScalarElevation
	{71, codec.WidthI16}, // ScalarCoordinate
	{73, codec.WidthI32}, // SourceX
	{77, codec.WidthI32}, // SourceY
	{81, codec.WidthI32}, // GroupX
	{85, codec.WidthI32}, // GroupY
	{89, codec.WidthI16}, // CoordinateUnits
	{91, codec.WidthI16}, // WeatheringVelocity
	{93, codec.WidthI16}, // SubWeatheringVelocity
	{95, codec.WidthI16}, // UpholeTimeAtSource
	{97, codec.WidthI16}, // UpholeTimeAtGroup
	{99, codec.WidthI16}, // SourceStaticCorrection
	{101, codec.WidthI16}, // GroupStaticCorrection
	{103, codec.WidthI16}, // TotalStaticApplied
	{105, codec.WidthI16}, // LagTimeA
	{107, codec.WidthI16}, // LagTimeB
	{109, codec.WidthI16}, // DelayRecordingTime
	{111, codec.WidthI16}, // MuteTimeStart
	{113, codec.WidthI16}, // MuteTimeEnd
	{115, codec.WidthI16}, // SampleCount
	{117, codec.WidthI16}, // SampleInterval
	{119, codec.WidthI16}, // GainType
	{121, codec.WidthI16}, // InstrumentGainConstant
	{123, codec.WidthI16}, // InstrumentInitialGain
	{125, codec.WidthI16}, // Correlated
	{127, codec.WidthI16}, // SweepFrequencyStart
	{129, codec.WidthI16}, // SweepFrequencyEnd
	{131, codec.WidthI16}, // SweepLength
	{133, codec.WidthI16}, // SweepType
	{135, codec.WidthI16}, // SweepTraceTaperLengthStart
	{137, codec.WidthI16}, // SweepTraceTaperLengthEnd
	{139, codec.WidthI16}, // TaperType
	{141, codec.WidthI16}, // AliasFilterFrequency
	{143, codec.WidthI16}, // AliasFilterSlope
	{145, codec.WidthI16}, // NotchFilterFrequency
	{147, codec.WidthI16}, // NotchFilterSlope
	{149, codec.WidthI16}, // LowCutFrequency
	{151, codec.WidthI16}, // HighCutFrequency
	{153, codec.WidthI16}, // LowCutSlope
	{155, codec.WidthI16}, // HighCutSlope
	{157, codec.WidthI16}, // YearDataRecorded
	{159, codec.WidthI16}, // DayOfYear
	{161, codec.WidthI16}, // Hour
	{163, codec.WidthI16}, // Minute
	{165, codec.WidthI16}, // Second
	{167, codec.WidthI16}, // TimeBasisCode
	{169, codec.WidthI16}, // TraceWeightingFactor
	{171, codec.WidthI16}, // GeophoneGroupNumberRoll1
	{173, codec.WidthI16}, // GeophoneGroupNumberFirstTraceOrigField
	{175, codec.WidthI16}, // GeophoneGroupNumberLastTraceOrigField
	{177, codec.WidthI16}, // GapSize
	{179, codec.WidthI16}, // OverTravel
	{181, codec.WidthI32}, // CDP_X
	{185, codec.WidthI32}, // CDP_Y
	{189, codec.WidthI32}, // Inline3D (default inline byte)
	{193, codec.WidthI32}, // Crossline3D (default crossline byte)
	{197, codec.WidthI32}, // ShotPoint
	{201, codec.WidthI16}, // ScalarShotPoint
	{203, codec.WidthI16}, // TraceValueMeasurementUnit
	{205, codec.WidthI32}, // TransductionConstantMantissa
	{209, codec.WidthI16}, // TransductionConstantExponent
	{211, codec.WidthI16}, // TransductionUnits
	{213, codec.WidthI16}, // DeviceTraceIdentifier
	{215, codec.WidthI16}, // ScalarTimeToQuantize
	{217, codec.WidthI16}, // SourceOrientation
	{219, codec.WidthI32}, // SourceMeasurementMantissa
	{223, codec.WidthI16}, // SourceMeasurementExponent
	{225, codec.WidthI16}, // SourceMeasurementUnit
	// 227..240 unassigned: width stays WidthNone.
})

// binaryFieldTable maps the standard SEG-Y rev.1 binary header layout,
// biased so a file-absolute offset (3201..3600) indexes in by subtracting
// 3200, per §4.1 and Design Note 9.1.
var binaryFieldTable = buildTable(BinaryHeaderSize, []fieldSpec{
	{1, codec.WidthI32},  // JobID
	{5, codec.WidthI32},  // LineNumber
	{9, codec.WidthI32},  // ReelNumber
	{13, codec.WidthI16}, // DataTracesPerEnsemble
	{15, codec.WidthI16}, // AuxTracesPerEnsemble
	{17, codec.WidthI16}, // SampleInterval
	{19, codec.WidthI16}, // SampleIntervalOriginal
	{21, codec.WidthI16}, // SamplesPerTrace
	{23, codec.WidthI16}, // SamplesPerTraceOriginal
	{25, codec.WidthI16}, // DataSampleFormatCode
	{27, codec.WidthI16}, // EnsembleFold
	{29, codec.WidthI16}, // TraceSortingCode
	{31, codec.WidthI16}, // VerticalSumCode
	{33, codec.WidthI16}, // SweepFrequencyStart
	{35, codec.WidthI16}, // SweepFrequencyEnd
	{37, codec.WidthI16}, // SweepLength
	{39, codec.WidthI16}, // SweepTypeCode
	{41, codec.WidthI16}, // TraceNumberOfSweepChannel
	{43, codec.WidthI16}, // SweepTraceTaperLengthStart
	{45, codec.WidthI16}, // SweepTraceTaperLengthEnd
	{47, codec.WidthI16}, // TaperType
	{49, codec.WidthI16}, // CorrelatedDataTraces
	{51, codec.WidthI16}, // BinaryGainRecovered
	{53, codec.WidthI16}, // AmplitudeRecoveryMethod
	{55, codec.WidthI16}, // MeasurementSystem
	{57, codec.WidthI16}, // ImpulseSignalPolarity
	{59, codec.WidthI16}, // VibratoryPolarityCode
	// 61..300 unassigned: width stays WidthNone.
	{301, codec.WidthI16}, // SEGYRevisionNumber
	{303, codec.WidthI16}, // FixedLengthTraceFlag
	{305, codec.WidthI16}, // NumExtendedTextHeaders
	// 307..400 unassigned: width stays WidthNone.
})

// TraceFieldWidth returns the width of the trace-header field at the
// 1-based SEG-Y byte offset off, or WidthNone if off names no recognized
// field or falls outside [1, TraceHeaderSize].
func TraceFieldWidth(off int) codec.Width {
	if off < 1 || off > TraceHeaderSize {
		return codec.WidthNone
	}
	return traceFieldTable[off]
}

// BinaryFieldWidth returns the width of the binary-header field at the
// 1-based file-absolute byte offset off (3201..3600), or WidthNone if off
// names no recognized field or falls outside that range.
func BinaryFieldWidth(off int) codec.Width {
	biased := off - 3200
	if biased < 1 || biased > BinaryHeaderSize {
		return codec.WidthNone
	}
	return binaryFieldTable[biased]
}
