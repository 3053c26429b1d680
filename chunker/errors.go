package chunker

import "errors"

// ErrInvalidStripes indicates numStripes was not a positive integer.
var ErrInvalidStripes = errors.New("chunker: numStripes must be positive")

// ErrInvalidSubStripes indicates numSubStripesPerStripe was not a
// positive integer.
var ErrInvalidSubStripes = errors.New("chunker: numSubStripesPerStripe must be positive")

// ErrInvalidChunkID indicates a chunk or sub-chunk ID outside the range
// produced by this Chunker's configuration.
var ErrInvalidChunkID = errors.New("chunker: chunk id out of range")
