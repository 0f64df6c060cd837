// Package particles simulates the decorative page backgrounds: a drifting
// particle network with proximity links, a pointer-reactive field, a
// rotating lidar-style point cloud and slow floating orbs.
//
// Everything here is single-threaded per scene. A Scene is stepped once per
// frame and turned into a Frame, which any Surface can paint. Only the
// pointer Tracker is shared across goroutines.
package particles
