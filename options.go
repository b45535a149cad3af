package jtrim

// DuplicateKeyPolicy selects how decodeObject resolves repeated keys in a
// single JSON object.
type DuplicateKeyPolicy uint8

const (
	// LastKeyWins keeps only the final occurrence of each key, discarding
	// earlier ones. This is the default mapping semantics.
	LastKeyWins DuplicateKeyPolicy = iota
	// KeepDuplicates preserves insertion order and every duplicate,
	// recording them in Object.Entries in addition to the last-wins Map.
	KeepDuplicates
)

// StringScanMode selects the string fast-path scanner.
type StringScanMode uint8

const (
	// ScanByte advances one input byte per step. This is the baseline
	// scanner.
	ScanByte StringScanMode = iota
	// ScanUTF8Run advances 1-4 input bytes per step using UTF-8 lead/
	// continuation-byte predicates. Produces byte-identical output to
	// ScanByte; it only changes how many input bytes are inspected per
	// scanner iteration on multi-byte-heavy input.
	ScanUTF8Run
)

// DecodeOptions configures a single DecodeWithOptions call; Decode,
// DecodeStrict, Get and GetPath always use the zero value. The zero value is the
// default: LastKeyWins duplicate-key policy, byte-at-a-time string
// scanning. Options are read once at the start of a call and never mutated
// afterward, so a DecodeOptions value may be shared and reused concurrently
// across calls.
type DecodeOptions struct {
	DuplicateKeys DuplicateKeyPolicy
	StringScan    StringScanMode
}

var defaultOptions = DecodeOptions{}
