// Package sheet contains the presentation lifecycle of modal bottom sheets.
//
// Allowed here:
// - the per-instance presentation state machine (Controller)
// - the stack registry ordering concurrently mounted sheets
// - the detached-render host (Portal) and the frame scheduler
// - collaborator contracts (Surface, View, Handle)
//
// Not allowed here:
// - gesture handling, animation curves, snap-point geometry (sheetview)
// - rendering and ANSI compositing (widgets)
package sheet
