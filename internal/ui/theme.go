package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Wetland palette
var (
	ColorWetlandGreen = color.RGBA{R: 46, G: 139, B: 87, A: 255}  // #2E8B57 window background
	ColorTileGreen    = color.RGBA{R: 76, G: 176, B: 79, A: 255}  // answer buttons
	ColorGold         = color.RGBA{R: 255, G: 214, B: 0, A: 255}  // correct answer, try again
	ColorCorrect      = color.RGBA{R: 0, G: 178, B: 0, A: 255}    // correct result text
	ColorWrong        = color.RGBA{R: 230, G: 0, B: 0, A: 255}    // wrong result text
	ColorText         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// FrogTheme is a large-text green theme for the exhibition kiosk
type FrogTheme struct{}

// NewFrogTheme creates the frog quiz theme
func NewFrogTheme() fyne.Theme {
	return &FrogTheme{}
}

// Color returns theme colors. The kiosk always uses the light green look.
func (t *FrogTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorWetlandGreen
	case theme.ColorNameForeground:
		return ColorText
	case theme.ColorNameButton:
		return ColorTileGreen
	case theme.ColorNamePrimary:
		return ColorGold
	case theme.ColorNameSuccess:
		return ColorCorrect
	case theme.ColorNameError:
		return ColorWrong
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *FrogTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *FrogTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, enlarged for touch and reading at a distance
func (t *FrogTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameText:
		return 22
	case theme.SizeNameHeadingText:
		return 36
	case theme.SizeNameSubHeadingText:
		return 28
	case theme.SizeNameCaptionText:
		return 16
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
