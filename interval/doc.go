// Package interval implements closed interval arithmetic over reals
// (Interval1d), angles (AngleInterval), and the circular topology of
// normalized angles (NormalizedAngleInterval).
//
// Each flavor is a distinct concrete struct rather than a single generic
// template, because AngleInterval is ordinary linear interval logic while
// NormalizedAngleInterval is genuinely circular — sharing one generic
// implementation would either leak circularity into the linear case or
// require a type-parameterized "wraps" hook that is harder to read than
// three concrete files.
package interval
