package model

// UserDto is the user profile returned by the media server.
type UserDto struct {
	Name                      *string            `json:"Name"`
	ServerID                  *string            `json:"ServerId"`
	ServerName                *string            `json:"ServerName"`
	ID                        string             `json:"Id" validate:"required"`
	PrimaryImageTag           *string            `json:"PrimaryImageTag"`
	HasPassword               bool               `json:"HasPassword"`
	HasConfiguredPassword     bool               `json:"HasConfiguredPassword"`
	HasConfiguredEasyPassword bool               `json:"HasConfiguredEasyPassword"`
	EnableAutoLogin           *bool              `json:"EnableAutoLogin"`
	LastLoginDate             *string            `json:"LastLoginDate"`
	LastActivityDate          *string            `json:"LastActivityDate"`
	Configuration             *UserConfiguration `json:"Configuration"`
	Policy                    *UserPolicy        `json:"Policy"`
	PrimaryImageAspectRatio   *float64           `json:"PrimaryImageAspectRatio"`
}

// DisplayName returns the user's name, or "" when the server omitted it.
func (u *UserDto) DisplayName() string {
	if u == nil || u.Name == nil {
		return ""
	}
	return *u.Name
}

// UserConfiguration holds per-user playback and library display preferences.
type UserConfiguration struct {
	AudioLanguagePreference    *string      `json:"AudioLanguagePreference"`
	PlayDefaultAudioTrack      bool         `json:"PlayDefaultAudioTrack"`
	SubtitleLanguagePreference *string      `json:"SubtitleLanguagePreference"`
	DisplayMissingEpisodes     bool         `json:"DisplayMissingEpisodes"`
	GroupedFolders             []string     `json:"GroupedFolders"`
	SubtitleMode               SubtitleMode `json:"SubtitleMode"`
	DisplayCollectionsView     bool         `json:"DisplayCollectionsView"`
	EnableLocalPassword        bool         `json:"EnableLocalPassword"`
	OrderedViews               []string     `json:"OrderedViews"`
	LatestItemsExcludes        []string     `json:"LatestItemsExcludes"`
	MyMediaExcludes            []string     `json:"MyMediaExcludes"`
	HidePlayedInLatest         bool         `json:"HidePlayedInLatest"`
	RememberAudioSelections    bool         `json:"RememberAudioSelections"`
	RememberSubtitleSelections bool         `json:"RememberSubtitleSelections"`
	EnableNextEpisodeAutoPlay  bool         `json:"EnableNextEpisodeAutoPlay"`
}

// UserPolicy is the permission set the server applies to a user.
type UserPolicy struct {
	IsAdministrator                  bool             `json:"IsAdministrator"`
	IsHidden                         bool             `json:"IsHidden"`
	IsDisabled                       bool             `json:"IsDisabled"`
	MaxParentalRating                *int             `json:"MaxParentalRating"`
	BlockedTags                      []string         `json:"BlockedTags"`
	EnableUserPreferenceAccess       bool             `json:"EnableUserPreferenceAccess"`
	AccessSchedules                  []AccessSchedule `json:"AccessSchedules"`
	BlockUnratedItems                []UnratedItem    `json:"BlockUnratedItems"`
	EnableRemoteControlOfOtherUsers  bool             `json:"EnableRemoteControlOfOtherUsers"`
	EnableSharedDeviceControl        bool             `json:"EnableSharedDeviceControl"`
	EnableRemoteAccess               bool             `json:"EnableRemoteAccess"`
	EnableLiveTvManagement           bool             `json:"EnableLiveTvManagement"`
	EnableLiveTvAccess               bool             `json:"EnableLiveTvAccess"`
	EnableMediaPlayback              bool             `json:"EnableMediaPlayback"`
	EnableAudioPlaybackTranscoding   bool             `json:"EnableAudioPlaybackTranscoding"`
	EnableVideoPlaybackTranscoding   bool             `json:"EnableVideoPlaybackTranscoding"`
	EnablePlaybackRemuxing           bool             `json:"EnablePlaybackRemuxing"`
	ForceRemoteSourceTranscoding     bool             `json:"ForceRemoteSourceTranscoding"`
	EnableContentDeletion            bool             `json:"EnableContentDeletion"`
	EnableContentDeletionFromFolders []string         `json:"EnableContentDeletionFromFolders"`
	EnableContentDownloading         bool             `json:"EnableContentDownloading"`
	EnableSyncTranscoding            bool             `json:"EnableSyncTranscoding"`
	EnableMediaConversion            bool             `json:"EnableMediaConversion"`
	EnabledDevices                   []string         `json:"EnabledDevices"`
	EnableAllDevices                 bool             `json:"EnableAllDevices"`
	EnabledChannels                  []string         `json:"EnabledChannels"`
	EnableAllChannels                bool             `json:"EnableAllChannels"`
	EnabledFolders                   []string         `json:"EnabledFolders"`
	EnableAllFolders                 bool             `json:"EnableAllFolders"`
	InvalidLoginAttemptCount         int64            `json:"InvalidLoginAttemptCount"`
	LoginAttemptsBeforeLockout       int64            `json:"LoginAttemptsBeforeLockout"`
	MaxActiveSessions                int64            `json:"MaxActiveSessions"`
	EnablePublicSharing              bool             `json:"EnablePublicSharing"`
	BlockedMediaFolders              []string         `json:"BlockedMediaFolders"`
	BlockedChannels                  []string         `json:"BlockedChannels"`
	RemoteClientBitrateLimit         int64            `json:"RemoteClientBitrateLimit"`
	AuthenticationProviderID         *string          `json:"AuthenticationProviderId"`
	PasswordResetProviderID          *string          `json:"PasswordResetProviderId"`
	SyncPlayAccess                   SyncPlayAccess   `json:"SyncPlayAccess"`
}

// AccessSchedule restricts when a user may use the server.
type AccessSchedule struct {
	ID        int       `json:"Id"`
	UserID    string    `json:"UserId"`
	DayOfWeek DayOfWeek `json:"DayOfWeek"`
	StartHour float64   `json:"StartHour"`
	EndHour   float64   `json:"EndHour"`
}
