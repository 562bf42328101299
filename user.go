package waypoint

// A User is a scheduling platform account.
//
// A User has many Schedules.
type User struct {
	ID           int64   `gorm:"primaryKey"`
	Username     *string `gorm:"column:username"`
	Email        string  `gorm:"column:email"`
	Name         *string `gorm:"column:name"`
	TimeZone     string  `gorm:"column:timeZone"`
	WeekStart    string  `gorm:"column:weekStart"`
	TimeFormat   *int    `gorm:"column:timeFormat"`
	HideBranding bool    `gorm:"column:hideBranding"`

	// Associations
	Schedules []Schedule `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }

// A Schedule is a named set of Availability windows belonging to a User.
type Schedule struct {
	ID       int64   `gorm:"primaryKey"`
	UserID   int64   `gorm:"column:userId"`
	Name     string  `gorm:"column:name"`
	TimeZone *string `gorm:"column:timeZone"`

	// Associations
	Availability []Availability `gorm:"foreignKey:ScheduleID"`
}

func (Schedule) TableName() string { return "Schedule" }
