// Package debugio turns intermediate buffers into images a person can look at.
//
// Float images are stretched to [0, 255] by Normalize, label maps get one
// pseudorandom color per label from ColorizeLabels, and the Dump helpers write
// the result to disk, creating directories on the way.
//
// # Void Values
//
// Both float and label visualizations take a void value marking "no data".
// Void pixels are excluded from scaling and drawn in a fixed color: green for
// Normalize, black for ColorizeLabels.
//
// # Logging
//
// Dump logs each file it writes through the package logger, which is silent
// until SetLogger is called.
package debugio
