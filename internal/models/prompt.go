package models

// PostPrompt is a writing prompt surfaced to users when composing a post.
type PostPrompt struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	PromptText     string `json:"prompt_text" gorm:"not null"`
	Category       string `json:"category" gorm:"size:50"`
	TargetAgeGroup string `json:"target_age_group" gorm:"size:20;default:'both'"` // youth, senior, both
	Difficulty     string `json:"difficulty" gorm:"size:20;default:'easy'"`
}
