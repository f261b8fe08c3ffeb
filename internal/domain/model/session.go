package model

import "encoding/json"

// AuthenticationResult is the decoded body of a successful
// /users/AuthenticateByName call. It is treated as read-only after decode.
type AuthenticationResult struct {
	User        *UserDto     `json:"User" validate:"required"`
	SessionInfo *SessionInfo `json:"SessionInfo" validate:"required"`
	AccessToken *string      `json:"AccessToken"`
	ServerID    *string      `json:"ServerId"`
}

// Token returns the access token, or "" when the server did not issue one.
func (r *AuthenticationResult) Token() string {
	if r == nil || r.AccessToken == nil {
		return ""
	}
	return *r.AccessToken
}

// Server returns the server identifier, falling back to the user's ServerId.
func (r *AuthenticationResult) Server() string {
	if r == nil {
		return ""
	}
	if r.ServerID != nil && *r.ServerID != "" {
		return *r.ServerID
	}
	if r.User != nil && r.User.ServerID != nil {
		return *r.User.ServerID
	}
	return ""
}

// SessionInfo describes the session the server opened for this login.
// Item-shaped fields the client never inspects are kept as raw JSON.
type SessionInfo struct {
	PlayState                *PlayerStateInfo     `json:"PlayState"`
	AdditionalUsers          []SessionUserInfo    `json:"AdditionalUsers"`
	Capabilities             *ClientCapabilities  `json:"Capabilities"`
	RemoteEndPoint           *string              `json:"RemoteEndPoint"`
	PlayableMediaTypes       []string             `json:"PlayableMediaTypes"`
	ID                       *string              `json:"Id"`
	UserID                   string               `json:"UserId" validate:"required"`
	UserName                 *string              `json:"UserName"`
	Client                   *string              `json:"Client"`
	LastActivityDate         string               `json:"LastActivityDate"`
	LastPlaybackCheckIn      string               `json:"LastPlaybackCheckIn"`
	DeviceName               *string              `json:"DeviceName"`
	DeviceType               *string              `json:"DeviceType"`
	NowPlayingItem           json.RawMessage      `json:"NowPlayingItem,omitempty"`
	FullNowPlayingItem       json.RawMessage      `json:"FullNowPlayingItem,omitempty"`
	NowViewingItem           json.RawMessage      `json:"NowViewingItem,omitempty"`
	DeviceID                 *string              `json:"DeviceId"`
	ApplicationVersion       *string              `json:"ApplicationVersion"`
	TranscodingInfo          json.RawMessage      `json:"TranscodingInfo,omitempty"`
	IsActive                 bool                 `json:"IsActive"`
	SupportsMediaControl     bool                 `json:"SupportsMediaControl"`
	SupportsRemoteControl    bool                 `json:"SupportsRemoteControl"`
	NowPlayingQueue          []json.RawMessage    `json:"NowPlayingQueue"`
	NowPlayingQueueFullItems []json.RawMessage    `json:"NowPlayingQueueFullItems"`
	HasCustomDeviceName      bool                 `json:"HasCustomDeviceName"`
	PlaylistItemID           *string              `json:"PlaylistItemId"`
	ServerID                 *string              `json:"ServerId"`
	UserPrimaryImageTag      *string              `json:"UserPrimaryImageTag"`
	SupportedCommands        []GeneralCommandType `json:"SupportedCommands"`
}

// PlayerStateInfo is the playback state of a session.
type PlayerStateInfo struct {
	CanSeek    bool   `json:"CanSeek"`
	IsPaused   bool   `json:"IsPaused"`
	IsMuted    bool   `json:"IsMuted"`
	RepeatMode string `json:"RepeatMode"`
}

// ClientCapabilities are the features the session's client advertised.
type ClientCapabilities struct {
	PlayableMediaTypes           []string             `json:"PlayableMediaTypes"`
	SupportedCommands            []GeneralCommandType `json:"SupportedCommands"`
	SupportsMediaControl         bool                 `json:"SupportsMediaControl"`
	SupportsContentUploading     bool                 `json:"SupportsContentUploading"`
	MessageCallbackURL           *string              `json:"MessageCallbackUrl"`
	SupportsSync                 bool                 `json:"SupportsSync"`
	SupportsPersistentIdentifier bool                 `json:"SupportsPersistentIdentifier"`
	DeviceProfile                json.RawMessage      `json:"DeviceProfile,omitempty"`
	AppStoreURL                  *string              `json:"AppStoreUrl"`
	IconURL                      *string              `json:"IconUrl"`
}

// SessionUserInfo identifies an additional user attached to a session.
type SessionUserInfo struct {
	UserID   string  `json:"UserId"`
	UserName *string `json:"UserName"`
}
