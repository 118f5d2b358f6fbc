package screen

// Package screen implements lazy screen loading and navigation. A Registry maps
// screen names to implementation references, a Catalog maps references to
// constructors, and a Navigator builds each screen on first visit, attaches it
// to a Surface and switches the active screen.
