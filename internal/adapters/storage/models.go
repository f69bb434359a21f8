package storage

import "time"

// WorkspaceModel is the GORM model for workspaces table
type WorkspaceModel struct {
	ActiveDocumentID string `gorm:"not null;default:''"`
	CreatedAt        time.Time
	Documents        []CaddyModel `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Height           float64      `gorm:"not null"`
	ID               string       `gorm:"primaryKey"`
	LastModified     time.Time    `gorm:"not null;index:idx_last_modified"`
	LayoutMode       string       `gorm:"not null;default:'stacked';check:layout_mode IN ('stacked','grid','freeform')"`
	Name             string       `gorm:"not null;uniqueIndex:idx_workspace_name"`
	UpdatedAt        time.Time
	Width            float64 `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (WorkspaceModel) TableName() string { return "workspaces" }

// CaddyModel is the GORM model for the document caddies of a workspace
type CaddyModel struct {
	CreatedAt    time.Time
	ErrorMessage string  `gorm:"not null;default:''"`
	FilePath     string  `gorm:"not null;uniqueIndex:idx_caddy_path"`
	Height       float64 `gorm:"not null"`
	ID           string  `gorm:"primaryKey"`
	IsActive     bool `gorm:"not null;default:false"`
	LastModified time.Time
	Position     int    `gorm:"not null;default:0;index:idx_caddy_position"`
	State        string `gorm:"not null;default:'loading';check:state IN ('loading','ready','error','closing')"`
	Title        string `gorm:"not null;default:''"`
	UpdatedAt    time.Time
	Width        float64 `gorm:"not null"`
	WorkspaceID  string  `gorm:"not null;index;uniqueIndex:idx_caddy_path"`
	X            float64 `gorm:"not null;default:0"`
	Y            float64 `gorm:"not null;default:0"`
	ZIndex       int     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (CaddyModel) TableName() string { return "caddies" }
