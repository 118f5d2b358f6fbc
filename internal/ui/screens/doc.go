// Package screens holds the quiz screens and registers their constructors in
// a screen.Catalog under the "screens" package name. Screens are built lazily
// by the navigator the first time they are shown.
package screens
