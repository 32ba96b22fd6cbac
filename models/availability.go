package models

// WeeklyInterval is one open block of recurring weekly availability,
// expressed in minutes from midnight. Invariant: 0 <= Start < End <= 1440.
type WeeklyInterval struct {
	DayOfWeek int `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	Start     int `bson:"start" json:"start"`
	End       int `bson:"end" json:"end"`
}

// ConsumerSlot is the wire encoding of a recurring availability entry
// as submitted by clients ("HH:MM" times).
type ConsumerSlot struct {
	DayOfWeek int    `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// ScheduleDay is one row of a provider's weekly schedule. A row either
// carries a single legacy interval (StartTime/EndTime) or an explicit
// TimeSlots list; TimeSlots wins when both are present.
type ScheduleDay struct {
	DayOfWeek   int            `bson:"dayOfWeek" json:"dayOfWeek"`
	IsAvailable bool           `bson:"isAvailable" json:"isAvailable"`
	StartTime   string         `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime     string         `bson:"endTime,omitempty" json:"endTime,omitempty"`
	TimeSlots   []ConsumerSlot `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`
}
