package model

// Package model defines the quiz domain data: the frog dataset and mystery
// quiz rounds. Structures are plain values so screens can bind them directly.
