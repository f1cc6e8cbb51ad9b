// Package orient estimates pitch and roll of a rigid body from paired
// accelerometer and gyroscope series using a recursive complementary
// filter.
//
// Two per-sample estimators feed the filter: the gravity-vector direction
// from the accelerometer (trustworthy at low frequencies, when the body is
// near-static) and the integrated gyroscope rate (trustworthy at high
// frequencies, but drifting). A fixed weight blends them, and a per-sample
// validity gate falls back to pure gyro integration or to holding the last
// estimate when either sensor's data is unusable.
//
// All estimation is batch: one call consumes a complete trial and produces
// complete pitch and roll sequences in degrees. Calls are deterministic
// and carry no state between invocations, so independent trials (for
// example the thigh and shank segments of one motion capture) can be
// processed concurrently.
package orient
