package repository

import (
	"github.com/quizdeck/quizdeck/internal/model"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(group *model.Group) error
	FindByID(id uint) (*model.Group, error)
	FindAll() ([]model.Group, error)
	Update(group *model.Group) error
	Delete(id uint) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(group *model.Group) error {
	return r.db.Create(group).Error
}

func (r *groupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.Preload("Students").First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindAll() ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.Order("name asc").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) Update(group *model.Group) error {
	return r.db.Save(group).Error
}

func (r *groupRepository) Delete(id uint) error {
	return r.db.Delete(&model.Group{}, id).Error
}
