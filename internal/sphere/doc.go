// Package sphere is the animated node sphere component.
//
// A [Sphere] owns its geometry, rotation state, audio level and animation
// loop. Each tick runs update then draw while holding the component lock,
// so pointer and audio setters called from other goroutines are observed
// at most one tick late.
//
// Lifecycle:
//
//	s, err := sphere.New(config.Large, surface, loop.NewTimerScheduler(60))
//	s.Mount()
//	defer s.Unmount()
//
// A nil surface is not an error: the sphere mounts, logs once, and never
// draws.
package sphere
