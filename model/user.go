package model

type User struct {
	ID          uint   `json:"id"          gorm:"primary_key"`
	Username    string `json:"username"    gorm:"uniqueIndex;not null"`
	Password    []byte `json:"-"           gorm:"not null"`
	CalorieGoal int    `json:"calorieGoal" gorm:"default:2000"`
}
