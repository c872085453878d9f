package persistence

import (
	"time"
)

// BookmarkGroupModel represents the bookmark_groups table
type BookmarkGroupModel struct {
	ID        string    `gorm:"column:id;primaryKey;not null"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	Items     string    `gorm:"column:items;type:text"`   // JSON array as text
	Recipes   string    `gorm:"column:recipes;type:text"` // JSON array as text
	Entries   string    `gorm:"column:entries;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (BookmarkGroupModel) TableName() string {
	return "bookmark_groups"
}

// ResolutionRunModel represents the resolution_runs table
type ResolutionRunModel struct {
	ID              int       `gorm:"column:id;primaryKey;autoIncrement"`
	GroupName       string    `gorm:"column:group_name;index;not null"`
	SkipCalculation bool      `gorm:"column:skip_calculation;not null;default:false"`
	TotalCrafts     int       `gorm:"column:total_crafts;not null;default:0"`
	Inputs          string    `gorm:"column:inputs;type:text"`    // JSON array as text
	Remaining       string    `gorm:"column:remaining;type:text"` // JSON array as text
	DurationMs      int64     `gorm:"column:duration_ms;not null;default:0"`
	ResolvedAt      time.Time `gorm:"column:resolved_at;not null"`
}

func (ResolutionRunModel) TableName() string {
	return "resolution_runs"
}
