package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconBack     = "←"
	IconClose    = "×"
	IconError    = "❌"
	IconInfo     = "ℹ"
	IconMystery  = "?"
)

// Window sizing
const (
	WindowWidth  float32 = 1600
	WindowHeight float32 = 720
)

// Grid columns
const (
	HomeGridColumns         = 5
	HomeGridColumnsPortrait = 3
	AnswerGridColumns       = 4
)

// Layout sizing
const (
	TileMinSize        float32 = 180
	MobileTileMinSize  float32 = 140
	BackButtonWidth    float32 = 160
	PlayButtonWidth    float32 = 220
	PreviewMinHeight   float32 = 240
	PhotoMinHeight     float32 = 300
	MinTouchTargetSize float32 = 44
)

// Notification bar behavior
const (
	NotificationAutoHide = 4 * time.Second
)

// Exit hot zone: triple tap in the top-left corner within the window
const (
	ExitHotZoneSize float32 = 100
	ExitTapCount            = 3
	ExitTapWindow           = 5 * time.Second
)
