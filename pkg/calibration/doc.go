// Package calibration holds the touchscreen calibration constants for every
// supported PiTFT rotation.
//
// The constants were measured offline for the 320x240 PiTFT with an STMPE610
// touch controller (reported to X.Org as "stmpe-ts"). Each rotation has two
// halves:
//
//   - a tslib pointercal matrix: seven integers a b c d e f s mapping raw touch
//     coordinates to screen coordinates (x' = (a*x + b*y + c) / s, and so on)
//   - an X.Org InputClass stanza with the evdev calibration bounds
//     (min-x max-x min-y max-y) and an axis swap flag
//
// Both are written verbatim; nothing here is computed at runtime.
package calibration
