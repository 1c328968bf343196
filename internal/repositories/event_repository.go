package repositories

import (
	"github.com/bondbuddies/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepository defines the interface for event data operations
type EventRepository interface {
	CreateEvent(event *models.Event) error
	GetEventByID(id uint) (*models.Event, error)
	ListEvents(gameType string) ([]models.Event, error)
	CountByOrganizer(userID uint) (int64, error)
	AddParticipantIfAbsent(p *models.EventParticipant) (bool, error)
	CountParticipants(eventID uint) (int64, error)
	ListParticipantIDs(eventID uint) ([]uint, error)
}

// PostgresEventRepository implements EventRepository for PostgreSQL
type PostgresEventRepository struct {
	db *gorm.DB
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) CreateEvent(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *PostgresEventRepository) GetEventByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *PostgresEventRepository) ListEvents(gameType string) ([]models.Event, error) {
	var events []models.Event
	q := r.db.Order("date")
	if gameType != "" {
		q = q.Where("game_type = ?", gameType)
	}
	err := q.Find(&events).Error
	return events, err
}

func (r *PostgresEventRepository) CountByOrganizer(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("organizer_id = ?", userID).Count(&count).Error
	return count, err
}

// AddParticipantIfAbsent registers the user unless already registered,
// resolving the duplicate at the database so concurrent joins cannot race.
func (r *PostgresEventRepository) AddParticipantIfAbsent(p *models.EventParticipant) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresEventRepository) CountParticipants(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventParticipant{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *PostgresEventRepository) ListParticipantIDs(eventID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.EventParticipant{}).Where("event_id = ?", eventID).Pluck("user_id", &ids).Error
	return ids, err
}
