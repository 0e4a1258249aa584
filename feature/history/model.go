package history

import "time"

// ValidationRun is one persisted deck validation.
type ValidationRun struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Player     string    `gorm:"column:player;type:varchar(64);index" json:"player"`
	Owner      string    `gorm:"column:owner;type:varchar(64)" json:"owner"`
	Deck       string    `gorm:"column:deck;type:varchar(128);index" json:"deck"`
	Format     string    `gorm:"column:format;type:varchar(64)" json:"format"`
	Mode       string    `gorm:"column:mode;type:varchar(16)" json:"mode"`
	Verdict    string    `gorm:"column:verdict;type:varchar(16)" json:"verdict"`
	TotalCards int       `gorm:"column:total_cards;type:int" json:"total_cards"`
	NotOwned   int       `gorm:"column:not_owned;type:int" json:"not_owned"`
	Issues     int       `gorm:"column:issues;type:int" json:"issues"`
	Report     string    `gorm:"column:report;type:text" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName pins the table name.
func (ValidationRun) TableName() string {
	return "validation_runs"
}
