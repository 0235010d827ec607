package model

// WishlistItem — единственная сущность хранилища: одна позиция вишлиста.
// ID назначается при создании (unix-миллисекунды) и после этого не меняется.
// Price хранится как свободный текст: пользователь вводит цену вместе с
// валютой и разделителями ("₹1,299", "$10"), число извлекается только для статистики.
type WishlistItem struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null;check:chk_items_name,name <> ''" json:"name"`
	Link   string `gorm:"not null" json:"link"`
	Price  string `gorm:"not null" json:"price"`
	Bought bool   `gorm:"not null;default:false;index" json:"bought"`
}

// TableName фиксирует имя таблицы, чтобы не зависеть от плюрализации gorm.
func (WishlistItem) TableName() string { return "wishlist_items" }
