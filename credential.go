package waypoint

import (
	"strings"

	"gorm.io/datatypes"
)

const (
	// GoogleMeetType is the Credential.Type of a Google Meet integration.
	GoogleMeetType = "google_video"

	// VideoTypeSuffix ends the Credential.Type of every conferencing integration.
	VideoTypeSuffix = "_video"
)

// A Credential is a stored third-party integration owned by either a User or a team.
//
// Key holds the integration's secrets and is never rendered to clients.
type Credential struct {
	ID      int64          `gorm:"primaryKey"`
	Type    string         `gorm:"column:type"`
	Key     datatypes.JSON `gorm:"column:key"`
	UserID  *int64         `gorm:"column:userId"`
	TeamID  *int64         `gorm:"column:teamId"`
	AppID   *string        `gorm:"column:appId"`
	Invalid bool           `gorm:"column:invalid"`
}

func (Credential) TableName() string { return "Credential" }

// IsVideo asserts whether the Credential is for a conferencing app.
func (c Credential) IsVideo() bool { return strings.HasSuffix(c.Type, VideoTypeSuffix) }
