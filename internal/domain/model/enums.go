package model

// SubtitleMode is the user's preferred subtitle selection behavior.
type SubtitleMode string

const (
	SubtitleModeDefault    SubtitleMode = "Default"
	SubtitleModeAlways     SubtitleMode = "Always"
	SubtitleModeOnlyForced SubtitleMode = "OnlyForced"
	SubtitleModeNone       SubtitleMode = "None"
	SubtitleModeSmart      SubtitleMode = "Smart"
)

// SyncPlayAccess controls whether a user may create or join SyncPlay groups.
type SyncPlayAccess string

const (
	SyncPlayAccessCreateAndJoinGroups SyncPlayAccess = "CreateAndJoinGroups"
	SyncPlayAccessJoinGroups          SyncPlayAccess = "JoinGroups"
	SyncPlayAccessNone                SyncPlayAccess = "None"
)

// DayOfWeek as serialized by the server inside access schedules.
type DayOfWeek string

const (
	DayOfWeekSunday    DayOfWeek = "Sunday"
	DayOfWeekMonday    DayOfWeek = "Monday"
	DayOfWeekTuesday   DayOfWeek = "Tuesday"
	DayOfWeekWednesday DayOfWeek = "Wednesday"
	DayOfWeekThursday  DayOfWeek = "Thursday"
	DayOfWeekFriday    DayOfWeek = "Friday"
	DayOfWeekSaturday  DayOfWeek = "Saturday"
)

// UnratedItem names an item category that can be blocked when it carries no rating.
type UnratedItem string

const (
	UnratedItemMovie          UnratedItem = "Movie"
	UnratedItemTrailer        UnratedItem = "Trailer"
	UnratedItemSeries         UnratedItem = "Series"
	UnratedItemMusic          UnratedItem = "Music"
	UnratedItemBook           UnratedItem = "Book"
	UnratedItemLiveTvChannel  UnratedItem = "LiveTvChannel"
	UnratedItemLiveTvProgram  UnratedItem = "LiveTvProgram"
	UnratedItemChannelContent UnratedItem = "ChannelContent"
	UnratedItemOther          UnratedItem = "Other"
)

// GeneralCommandType is a remote-control command a session can accept.
type GeneralCommandType string

const (
	CommandMoveUp                 GeneralCommandType = "MoveUp"
	CommandMoveDown               GeneralCommandType = "MoveDown"
	CommandMoveLeft               GeneralCommandType = "MoveLeft"
	CommandMoveRight              GeneralCommandType = "MoveRight"
	CommandPageUp                 GeneralCommandType = "PageUp"
	CommandPageDown               GeneralCommandType = "PageDown"
	CommandPreviousLetter         GeneralCommandType = "PreviousLetter"
	CommandNextLetter             GeneralCommandType = "NextLetter"
	CommandToggleOsd              GeneralCommandType = "ToggleOsd"
	CommandToggleContextMenu      GeneralCommandType = "ToggleContextMenu"
	CommandSelect                 GeneralCommandType = "Select"
	CommandBack                   GeneralCommandType = "Back"
	CommandTakeScreenshot         GeneralCommandType = "TakeScreenshot"
	CommandSendKey                GeneralCommandType = "SendKey"
	CommandSendString             GeneralCommandType = "SendString"
	CommandGoHome                 GeneralCommandType = "GoHome"
	CommandGoToSettings           GeneralCommandType = "GoToSettings"
	CommandVolumeUp               GeneralCommandType = "VolumeUp"
	CommandVolumeDown             GeneralCommandType = "VolumeDown"
	CommandMute                   GeneralCommandType = "Mute"
	CommandUnmute                 GeneralCommandType = "Unmute"
	CommandToggleMute             GeneralCommandType = "ToggleMute"
	CommandSetVolume              GeneralCommandType = "SetVolume"
	CommandSetAudioStreamIndex    GeneralCommandType = "SetAudioStreamIndex"
	CommandSetSubtitleStreamIndex GeneralCommandType = "SetSubtitleStreamIndex"
	CommandToggleFullscreen       GeneralCommandType = "ToggleFullscreen"
	CommandDisplayContent         GeneralCommandType = "DisplayContent"
	CommandGoToSearch             GeneralCommandType = "GoToSearch"
	CommandDisplayMessage         GeneralCommandType = "DisplayMessage"
	CommandSetRepeatMode          GeneralCommandType = "SetRepeatMode"
	CommandChannelUp              GeneralCommandType = "ChannelUp"
	CommandChannelDown            GeneralCommandType = "ChannelDown"
	CommandGuide                  GeneralCommandType = "Guide"
	CommandToggleStats            GeneralCommandType = "ToggleStats"
	CommandPlayMediaSource        GeneralCommandType = "PlayMediaSource"
	CommandPlayTrailers           GeneralCommandType = "PlayTrailers"
	CommandSetShuffleQueue        GeneralCommandType = "SetShuffleQueue"
	CommandPlayState              GeneralCommandType = "PlayState"
	CommandPlayNext               GeneralCommandType = "PlayNext"
	CommandToggleOsdMenu          GeneralCommandType = "ToggleOsdMenu"
	CommandPlay                   GeneralCommandType = "Play"
	CommandSetMaxStreamingBitrate GeneralCommandType = "SetMaxStreamingBitrate"
)
