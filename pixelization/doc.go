// Package pixelization implements the two hierarchical sky tilings of
// spec.md §4.H: HtmPixelization (triangular, 8 root trixels) and
// Mq3cPixelization (quadrilateral, 6 cube faces with a Hilbert-ordered
// grid). Both share the adaptive envelope/interior pixel-finder of
// §4.H.3, parameterized over a small internal node abstraction so the
// recursive subdivision logic lives in one place.
package pixelization
