package models

// BimModel represents an uploaded building information model
type BimModel struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:128;not null"`
	FilePath string `json:"filePath"` // path to the IFC file served to the viewer
}

// TableName sets the table name for BimModel model
func (BimModel) TableName() string {
	return "bim_models"
}
