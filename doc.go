// Package longpress detects long presses for [Ebitengine] games and other
// single-threaded UI hosts.
//
// A long press is a pointer or touch contact held for longer than a
// threshold (400ms by default). The package turns raw down, move and
// up/leave signals into a callback, plus optional observers for the start,
// movement, finish and cancellation of each press.
//
// # Quick start
//
// Create a [Detector] and attach its handlers to an interactive region with
// a [Surface], then call [Surface.Update] from your game's Update:
//
//	det := longpress.NewDetector(func(e longpress.Event, m longpress.Meta) {
//		openContextMenu(m.Context)
//	}, longpress.Options{
//		Threshold:        500 * time.Millisecond,
//		CancelOnMovement: longpress.CancelOnMovement(),
//	})
//	surface := longpress.NewSurface(det, longpress.Rect{X: 40, Y: 40, Width: 120, Height: 48})
//	surface.Context = "save-button"
//
//	func (g *Game) Update() error { g.surface.Update(); return nil }
//
// Hosts with their own event dispatch bind the handler mapping directly:
//
//	h := det.Producer().Bind(itemID)
//	h.Dispatch(longpress.PointerDown, &longpress.PointerEvent{X: x, Y: y})
//
// [Detector.Producer] returns the same producer until the configuration
// changes, so hosts can compare producers to decide whether their bindings
// need replacing. With a nil callback the mapping is empty.
//
// # Press cycle
//
// A start signal is ignored while a press is in progress, which keeps a
// single physical contact reported by both the pointer and the touch family
// from starting twice. When the threshold elapses the callback installed at
// that moment (see [Detector.SetCallback]) runs. The terminal signal then
// calls OnFinish if the callback fired, or OnCancel with
// [CanceledByTimeout] if it did not. With [Options.CancelOnMovement] set, a
// move outside the tolerance box on either axis ends the press at once with
// [CanceledByMovement].
//
// Events that are neither pointer nor touch contacts are discarded; no
// transition panics or returns an error.
//
// # Timers
//
// The threshold timer runs on a [Scheduler]. The default is a [Timeline]
// owned by the detector and advanced one tick per [Detector.Update]. Pass
// your own Timeline in [Options.Scheduler] to share one clock between
// detectors or to drive time explicitly in tests.
//
// # Extras
//
// [Progress] eases a 0..1 hold indicator over the threshold (via [gween]).
// [Options.Sink] forwards transitions as [Notice] values; the
// ECS adapter in longpress/ecs publishes them to a [Donburi] world.
// [LoadScript] replays JSON gesture scripts through a Surface.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package longpress
