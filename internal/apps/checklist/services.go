package checklist

import (
	"errors"
	"strings"

	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListNotFound       = errors.New("list not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrDuplicateListName  = errors.New("a list with this name already exists")
	ErrDuplicateTopicName = errors.New("a topic with this name already exists in this list")
	ErrInvalidName        = errors.New("name must have between 1 and 100 characters")
)

type ChecklistService struct {
	db *gorm.DB
}

func NewChecklistService(db *gorm.DB) *ChecklistService {
	return &ChecklistService{db: db}
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func (s *ChecklistService) CreateList(userID uuid.UUID, req CreateListRequest) (*List, error) {
	name := normalizeName(req.Name)
	if name == "" || len(name) > 100 {
		return nil, ErrInvalidName
	}

	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&List{}).
		Scopes(ownership.ForClient(client.ID)).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateListName
	}

	list := List{
		ID:       uuid.New(),
		ClientID: client.ID,
		Name:     name,
	}
	if err := s.db.Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *ChecklistService) GetLists(userID uuid.UUID) ([]List, error) {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	var lists []List
	err = s.db.Scopes(ownership.ForClient(client.ID)).
		Order("created_at ASC").
		Find(&lists).Error
	return lists, err
}

func (s *ChecklistService) getOwnedList(userID, listID uuid.UUID) (*List, error) {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	var list List
	if err := s.db.Scopes(ownership.ForClient(client.ID)).First(&list, "id = ?", listID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (s *ChecklistService) RenameList(userID, listID uuid.UUID, req RenameRequest) (*List, error) {
	name := normalizeName(req.Name)
	if name == "" || len(name) > 100 {
		return nil, ErrInvalidName
	}

	list, err := s.getOwnedList(userID, listID)
	if err != nil {
		return nil, err
	}

	// Sibling probe excludes the list being renamed.
	var count int64
	if err := s.db.Model(&List{}).
		Scopes(ownership.ForClient(list.ClientID)).
		Where("name = ? AND id <> ?", name, list.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateListName
	}

	if err := s.db.Model(list).Update("name", name).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteList removes a list and every topic in it, leaf first, in one
// transaction.
func (s *ChecklistService) DeleteList(userID, listID uuid.UUID) error {
	list, err := s.getOwnedList(userID, listID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", list.ID).Delete(&Topic{}).Error; err != nil {
			return err
		}
		return tx.Delete(list).Error
	})
}

func (s *ChecklistService) CreateTopic(userID uuid.UUID, req CreateTopicRequest) (*Topic, error) {
	name := normalizeName(req.Name)
	if name == "" || len(name) > 100 {
		return nil, ErrInvalidName
	}

	list, err := s.getOwnedList(userID, req.ListID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&Topic{}).
		Where("list_id = ? AND name = ?", list.ID, name).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateTopicName
	}

	topic := Topic{
		ID:     uuid.New(),
		ListID: list.ID,
		Name:   name,
	}
	if err := s.db.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (s *ChecklistService) GetTopics(userID, listID uuid.UUID) ([]Topic, error) {
	list, err := s.getOwnedList(userID, listID)
	if err != nil {
		return nil, err
	}

	var topics []Topic
	err = s.db.Where("list_id = ?", list.ID).Order("created_at ASC").Find(&topics).Error
	return topics, err
}

func (s *ChecklistService) getOwnedTopic(userID, topicID uuid.UUID) (*Topic, error) {
	client, err := ownership.ResolveClient(s.db, userID)
	if err != nil {
		return nil, err
	}

	var topic Topic
	err = s.db.
		Joins("JOIN lists ON lists.id = topics.list_id").
		Where("topics.id = ? AND lists.client_id = ?", topicID, client.ID).
		First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return &topic, nil
}

func (s *ChecklistService) RenameTopic(userID, topicID uuid.UUID, req RenameRequest) (*Topic, error) {
	name := normalizeName(req.Name)
	if name == "" || len(name) > 100 {
		return nil, ErrInvalidName
	}

	topic, err := s.getOwnedTopic(userID, topicID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&Topic{}).
		Where("list_id = ? AND name = ? AND id <> ?", topic.ListID, name, topic.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateTopicName
	}

	if err := s.db.Model(topic).Update("name", name).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *ChecklistService) CheckTopic(userID, topicID uuid.UUID, checked bool) (*Topic, error) {
	topic, err := s.getOwnedTopic(userID, topicID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(topic).Update("checked", checked).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *ChecklistService) DeleteTopic(userID, topicID uuid.UUID) error {
	topic, err := s.getOwnedTopic(userID, topicID)
	if err != nil {
		return err
	}
	return s.db.Delete(topic).Error
}
