package model

type User struct {
	Model
	FirstName string `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(50);not null" json:"last_name"`
	MobileNo  string `gorm:"type:varchar(20)" json:"mobile_no"`
	Username  string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"` // 邮箱，全局唯一
	Password  string `gorm:"type:varchar(255);not null" json:"-"`                    // bcrypt 哈希
	Role      string `gorm:"type:varchar(20);not null;default:participant" json:"role"`
}
