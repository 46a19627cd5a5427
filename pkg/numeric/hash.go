package numeric

import "math"

// HashMultiplier is the odd constant applied left to right when combining
// field hashes. Hashes are persisted by callers, so it must not change.
const HashMultiplier int32 = -1521134295

// CombineHash folds hashes left to right as hash = hash*HashMultiplier + h,
// wrapping on overflow.
func CombineHash(hashes ...int32) int32 {
	var hash int32
	for _, h := range hashes {
		hash = hash*HashMultiplier + h
	}
	return hash
}

// SeededHash is CombineHash starting from seed instead of zero.
func SeededHash(seed int32, hashes ...int32) int32 {
	hash := seed
	for _, h := range hashes {
		hash = hash*HashMultiplier + h
	}
	return hash
}

// Float64Hash folds the bit pattern of value into 32 bits. +0 and -0 hash
// alike.
func Float64Hash(value float64) int32 {
	if value == 0 {
		return 0
	}
	bits := math.Float64bits(value)
	return int32(uint32(bits) ^ uint32(bits>>32))
}

// BoolHash is 1 for true and 0 for false.
func BoolHash(value bool) int32 {
	if value {
		return 1
	}
	return 0
}
