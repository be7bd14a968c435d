package cli

import (
	"github.com/leonelquinteros/gotext"
)

// Message catalogue keys, translated from locales/<lang>/LC_MESSAGES/default.po
const (
	msgGenerated      = "GENERATED"
	msgDegenerate     = "DEGENERATE"
	msgVerified       = "VERIFIED"
	msgSaved          = "SAVED"
	msgLoaded         = "LOADED"
	msgNoMazes        = "NO_MAZES"
	msgMazeRow        = "MAZE_ROW"
	msgDumped         = "DUMPED"
	msgTooWide        = "TOO_WIDE"
	msgBrowseHeader   = "BROWSE_HEADER"
	msgBrowseHelp     = "BROWSE_HELP"
	msgNoHistory      = "NO_HISTORY"
	msgSaveNeedsDB    = "SAVE_NEEDS_DB"
	msgLegendSpawn    = "LEGEND_SPAWN"
	msgLegendDeadEnd  = "LEGEND_DEAD_END"
	msgLegendCorridor = "LEGEND_CORRIDOR"
	msgLegendJunction = "LEGEND_JUNCTION"
)

// tr is swapped in tests
var tr = gotext.Get
