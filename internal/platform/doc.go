package platform

// Package platform contains OS integration: asset path resolution for the
// frog media, file checks and opening a call video in the system player.
