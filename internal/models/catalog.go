package models

// Справочные сущности. Используются только для классификации
// профилей и заказов, собственного жизненного цикла не имеют.

type ServiceCategory struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;not null"`
	Slug     string `gorm:"uniqueIndex;not null"`
	IsActive bool   `gorm:"default:true"`
}

type Expertise struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;not null"`
	Slug     string `gorm:"uniqueIndex;not null"`
	IsActive bool   `gorm:"default:true"`
}

type EventType struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;not null"`
	Slug     string `gorm:"uniqueIndex;not null"`
	IsActive bool   `gorm:"default:true"`
}
