package repositories

import (
	"github.com/bondbuddies/backend/internal/models"
	"gorm.io/gorm"
)

func criteria(a models.ActionType) *models.ActionType { return &a }

// SeedDefaultBadges inserts the default badge set when the table is empty.
func SeedDefaultBadges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Badge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Badge{
		{Name: "Talking is fun!", Description: "Comment on a post", BadgeType: "social", Criteria: criteria(models.ActionCommentPost), ProgressRequired: 1, ProgressType: models.ProgressCount},
		{Name: "Like a lover!", Description: "Like a post", BadgeType: "social", Criteria: criteria(models.ActionLikePost), ProgressRequired: 1, ProgressType: models.ProgressCount},
		{Name: "Friends", Description: "Follow a user", BadgeType: "social", Criteria: criteria(models.ActionFollowUser), ProgressRequired: 1, ProgressType: models.ProgressCount},
		{Name: "Sharing is caring", Description: "Share a post", BadgeType: "social", Criteria: criteria(models.ActionSharePost), ProgressRequired: 1, ProgressType: models.ProgressCount},
		{Name: "Event Enthusiast", Description: "Host or attend 5 events", BadgeType: "event", Criteria: criteria(models.ActionParticipateEvent), ProgressRequired: 5, ProgressType: models.ProgressCount},
		{Name: "Weekly Interaction", Description: "Interact with 5 different users this week", BadgeType: "social", Criteria: criteria(models.ActionWeeklyInteraction), ProgressRequired: 5, ProgressType: models.ProgressCount},
		{Name: "Story Sharer", Description: "Share 3 stories this month", BadgeType: "content", Criteria: criteria(models.ActionShareStory), ProgressRequired: 3, ProgressType: models.ProgressCount},
		{Name: "Community Builder", Description: "Organize 2 community events", BadgeType: "event", Criteria: criteria(models.ActionOrganizeEvent), ProgressRequired: 2, ProgressType: models.ProgressCount},
	}
	return db.Create(&defaults).Error
}

// SeedDefaultPrompts inserts the default post prompts when the table is empty.
func SeedDefaultPrompts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PostPrompt{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.PostPrompt{
		{PromptText: "Share a fond memory from your youth", Category: "memory", TargetAgeGroup: "senior"},
		{PromptText: "What was your first job like?", Category: "work", TargetAgeGroup: "senior"},
		{PromptText: "Tell us about your favorite hobby", Category: "hobbies", TargetAgeGroup: "senior"},
		{PromptText: "Share a recipe from your family", Category: "food", TargetAgeGroup: "senior"},
		{PromptText: "What is the most beautiful place you have visited?", Category: "travel", TargetAgeGroup: "senior"},
		{PromptText: "What advice would you give to your younger self?", Category: "advice", TargetAgeGroup: "senior"},
		{PromptText: "Share a photo of your pet or favorite animal", Category: "pets", TargetAgeGroup: "both"},
		{PromptText: "What is your favorite book or movie?", Category: "entertainment", TargetAgeGroup: "both"},
		{PromptText: "What skill are you currently learning?", Category: "learning", TargetAgeGroup: "youth"},
		{PromptText: "Share your favorite study spot", Category: "education", TargetAgeGroup: "youth"},
		{PromptText: "What are your career aspirations?", Category: "career", TargetAgeGroup: "youth"},
		{PromptText: "Tell us about a recent achievement", Category: "achievement", TargetAgeGroup: "both"},
	}
	return db.Create(&defaults).Error
}
