// Package vision renders a photographed object the way an aquatic species
// would register it underwater.
//
// Every pixel goes through the same fixed sequence: sRGB decode,
// double-pass Beer-Lambert attenuation with salinity-scaled coefficients,
// projection into the species' cone space and back, rod/cone blend,
// saturation around Rec. 601 luma, optional backscatter, sRGB encode.
// Alpha is copied untouched.
//
// Two engines implement the sequence. Reference follows it literally in
// float64, one pixel at a time. Parallel fuses the linear middle of the
// pipeline into one 3×3 matrix and processes row bands concurrently in
// float32. They agree to within one 8-bit step per channel.
//
// Depth, salinity and light parameters are not validated: out-of-range
// values produce a wrong-looking image, never a panic.
package vision
