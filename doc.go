// Package pixelhover animates a grid of small squares over a UI element
// while the pointer hovers it.
//
// # Overview
//
// An Animator lays out one Cell per grid point of its element, spaced by a
// configurable gap. While hovered, cells wait for an activation delay
// proportional to their distance from the center, grow to a random maximum
// size and then shimmer; when the pointer leaves, they shrink back to zero
// and the frame loop stops by itself.
//
// # Quick Start
//
//	canvas := pixelhover.NewCanvas()
//	el := myHost.Element(canvas) // implements pixelhover.Element
//
//	a := pixelhover.Attach(el, scheduler,
//	    pixelhover.WithGap(6),
//	    pixelhover.WithColors("#f8fafc", "#cbd5e1"),
//	)
//	defer a.Detach()
//
// # Host Integration
//
// The animator has no dependency on a UI framework. A host provides:
//   - an Element: logical bounds, pixel ratio, a drawable Surface and
//     pointer enter/leave plus resize notifications;
//   - a Scheduler: a requestAnimationFrame-style callback queue.
//
// Canvas implements Surface over a gg.Context. internal/frameloop provides
// a Scheduler for hosts that tick on their own clock, and
// integration/termhost hosts animators in a terminal.
//
// # Determinism
//
// Appear and Disappear are pure functions of a Cell, and per-cell random
// parameters come from an injectable Rand (see WithRand), so frame
// sequences can be replayed exactly.
package pixelhover

// Version is the current version of the module.
const Version = "0.1.0"
