package core

// File-absolute byte offsets of the binary header fields the geometry and
// file-handle layers need directly (§3, §6). Field widths for these are
// already registered in binaryFieldTable.
const (
	BinarySampleIntervalByte     = 3217
	BinarySampleCountByte        = 3221
	BinaryFormatCodeByte         = 3225
	BinaryTraceSortingCodeByte   = 3229
	BinaryRevisionByte           = 3501
	BinaryExtendedHeadersByte    = 3505
	BinaryDataTracesPerEnsemble  = 3213
	BinaryFixedLengthTraceFlag   = 3503
)

// SampleInterval reads the binary header's sample interval in
// microseconds.
func SampleInterval(buf []byte) (int32, error) {
	return GetBinaryField(buf, BinarySampleIntervalByte)
}

// SampleCount reads the binary header's samples-per-trace field.
func SampleCount(buf []byte) (int32, error) {
	return GetBinaryField(buf, BinarySampleCountByte)
}

// FormatCode reads the data sample format code (§6): 1=IBM float, 2=int32,
// 3=int16, 4=fixed-point-gain (obsolete), 5=IEEE float, 6,7=unused,
// 8=int8.
func FormatCode(buf []byte) (int32, error) {
	return GetBinaryField(buf, BinaryFormatCodeByte)
}

// SortCode reads the trace sorting code binary-header field.
func SortCode(buf []byte) (int32, error) {
	return GetBinaryField(buf, BinaryTraceSortingCodeByte)
}

// ExtendedTextHeaderCount reads the number of 3200-byte extended text
// headers following the binary header.
func ExtendedTextHeaderCount(buf []byte) (int32, error) {
	return GetBinaryField(buf, BinaryExtendedHeadersByte)
}

// SampleSize returns the on-wire width in bytes of one sample for the
// given format code. Samples are always stored in 4 bytes regardless of
// format per §3 ("Sample width is fixed at 4 bytes"). Nothing is widened
// on read: ReadTraceSamples returns each 4-byte slot raw, whatever the
// format code.
func SampleSize(_ int32) int {
	return 4
}

// IsFormatSupported reports whether code is one of the eight SEG-Y rev.1
// data sample format codes (§6).
func IsFormatSupported(code int32) bool {
	return code >= 1 && code <= 8
}
