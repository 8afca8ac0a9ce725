package config

import "strings"

// AppVersion is the version of the application, set at build time.
var AppVersion string

// AppName is the name of the application.
const AppName = "Wallhavener"

// AppID is the unique application id used by fyne for preferences and notifications.
const AppID = "com.dixieflatline76.wallhavener"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// FileName is the name of the settings file, resolved against the working directory.
const FileName = "config.json"

// Sorting modes accepted by the search API.
const (
	SortRandom    = "random"
	SortToplist   = "toplist"
	SortDateAdded = "date_added"
)

// SortModes lists the sorting modes offered in settings.
var SortModes = []string{SortRandom, SortToplist, SortDateAdded}

// Sort orders.
const (
	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// Orders lists the sort orders offered in settings.
var Orders = []string{OrderDesc, OrderAsc}

// Toplist time ranges, only sent when sorting is toplist.
const (
	Range1Day    = "1d"
	Range3Days   = "3d"
	Range1Week   = "1w"
	Range1Month  = "1M"
	Range3Months = "3M"
	Range6Months = "6M"
	Range1Year   = "1y"
)

// TopRanges lists the toplist ranges offered in settings.
var TopRanges = []string{Range1Day, Range3Days, Range1Week, Range1Month, Range3Months, Range6Months, Range1Year}

// Default values for a fresh configuration.
const (
	DefaultCategories     = "111" // general, anime, people
	DefaultPurity         = "100" // sfw only
	DefaultResolutions    = "1920x1080"
	DefaultRatios         = "16x9"
	DefaultChangeInterval = 60 // minutes
	flagWidth             = 3
)
