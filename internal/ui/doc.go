package ui

// Package ui contains the Fyne user interface shell for the frog quiz: the
// stack surface screens are attached to, the window with its menu and
// notification bar, the theme and localized texts. Screens themselves live in
// the screens subpackage.
