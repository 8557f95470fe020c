package domain

// Fingerprint computes the classic 31-multiplier polynomial rolling hash of s
// with 32-bit signed wraparound: h = (h<<5) - h + c for each code point.
//
// It is pure and stable across processes. It has no cryptographic properties;
// collisions are expected and fine. The availability engine consumes the
// absolute value as a deterministic pseudo-random selector.
func Fingerprint(s string) int32 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	return h
}

// fingerprintAbs returns |Fingerprint(s)| widened to int64 so the minimum
// int32 value does not overflow on negation.
func fingerprintAbs(s string) int64 {
	h := int64(Fingerprint(s))
	if h < 0 {
		h = -h
	}
	return h
}
