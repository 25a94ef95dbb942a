// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termhost hosts pixelhover animators in a terminal.
//
// The screen is split into a grid of persona tiles. Each tile is a
// pixelhover.Element backed by its own Canvas; mouse motion produces
// pointer enter/leave, terminal resizes produce relayouts, and a ticker
// drives a frameloop.Queue as the repaint scheduler.
//
// Architecture:
//
//	tcell events → Host → Tile observers → pixelhover.Animator
//	ticker → frameloop.Queue → Animator frames → Canvas → half-block cells
//
// A terminal cell shows two stacked samples using '▀' with the upper
// sample as foreground and the lower as background.
package termhost
