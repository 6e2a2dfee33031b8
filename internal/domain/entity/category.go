package entity

import "time"

// Category is a named tag. Events reference categories by free-text name only.
type Category struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SystemSetting is an administrator-editable key/value pair.
type SystemSetting struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	SettingName  string    `bson:"setting_name" json:"setting_name"`
	SettingValue string    `bson:"setting_value" json:"setting_value"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
