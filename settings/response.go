package settings

import (
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
)

// A Response is the public shape of a user's settings.
type Response struct {
	CalcomUserID   int64              `json:"calcomUserId"`
	SupabaseUserID string             `json:"supabaseUserId"`
	Username       *string            `json:"username"`
	Email          string             `json:"email"`
	Name           *string            `json:"name"`
	TimeZone       string             `json:"timeZone"`
	WeekStart      string             `json:"weekStart"`
	TimeFormat     *int               `json:"timeFormat"`
	HideBranding   bool               `json:"hideBranding"`
	Schedules      []ScheduleResponse `json:"schedules"`
}

// A ScheduleResponse is the public shape of a Schedule.
type ScheduleResponse struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	TimeZone     *string                `json:"timeZone"`
	Availability []AvailabilityResponse `json:"availability"`
}

// An AvailabilityResponse is the public shape of an Availability.
type AvailabilityResponse struct {
	ID        int64              `json:"id"`
	Days      []int64            `json:"days"`
	StartTime waypoint.TimeOfDay `json:"startTime"`
	EndTime   waypoint.TimeOfDay `json:"endTime"`
}

// NewResponse maps u into its public shape,
// identifying the user within the identity provider by the subject of claims.
func NewResponse(u *waypoint.User, claims auth.Claims) Response {
	res := Response{
		CalcomUserID:   u.ID,
		SupabaseUserID: claims.Subject,
		Username:       u.Username,
		Email:          u.Email,
		Name:           u.Name,
		TimeZone:       u.TimeZone,
		WeekStart:      u.WeekStart,
		TimeFormat:     u.TimeFormat,
		HideBranding:   u.HideBranding,
		Schedules:      make([]ScheduleResponse, len(u.Schedules)),
	}

	for i, s := range u.Schedules {
		sr := ScheduleResponse{
			ID:           s.ID,
			Name:         s.Name,
			TimeZone:     s.TimeZone,
			Availability: make([]AvailabilityResponse, len(s.Availability)),
		}

		for j, a := range s.Availability {
			days := make([]int64, len(a.Days))
			copy(days, a.Days)

			sr.Availability[j] = AvailabilityResponse{
				ID:        a.ID,
				Days:      days,
				StartTime: a.StartTime,
				EndTime:   a.EndTime,
			}
		}

		res.Schedules[i] = sr
	}

	return res
}
