package database

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// Store wraps the month-keyed record tables with typed load/save helpers.
// It reproduces the key-value layout the reference data used, so the same
// JSON shapes round-trip unchanged.
type Store struct {
	DB *gorm.DB
}

// LoadSchedule returns the stored schedule for a month key, or (nil, nil)
// when none has been saved yet.
func (s *Store) LoadSchedule(monthKey string) (models.Schedule, error) {
	var rec ScheduleRecord
	if err := s.DB.Where("month_key = ?", monthKey).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var schedule models.Schedule
	if err := json.Unmarshal([]byte(rec.Payload), &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SaveSchedule upserts a month's schedule
func (s *Store) SaveSchedule(monthKey string, schedule models.Schedule) error {
	payload, err := json.Marshal(schedule)
	if err != nil {
		return err
	}
	return s.upsert(&ScheduleRecord{MonthKey: monthKey, Payload: string(payload)}, "month_key", map[string]interface{}{
		"payload": string(payload),
	})
}

// LoadSpecialDates returns the stored special-date sets for a month key.
// Months with no saved record get empty sets, not an error.
func (s *Store) LoadSpecialDates(monthKey string) (*models.SpecialDates, error) {
	var rec SpecialDateRecord
	if err := s.DB.Where("month_key = ?", monthKey).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.SpecialDates{
				Holidays: []string{},
				Closed:   []string{},
				Adjusted: map[string]string{},
			}, nil
		}
		return nil, err
	}
	var sd models.SpecialDates
	if err := json.Unmarshal([]byte(rec.Payload), &sd); err != nil {
		return nil, err
	}
	return &sd, nil
}

// SaveSpecialDates upserts a month's special-date sets
func (s *Store) SaveSpecialDates(monthKey string, sd *models.SpecialDates) error {
	payload, err := json.Marshal(sd)
	if err != nil {
		return err
	}
	return s.upsert(&SpecialDateRecord{MonthKey: monthKey, Payload: string(payload)}, "month_key", map[string]interface{}{
		"payload": string(payload),
	})
}

// LoadEmployees returns the stored employee set, or (nil, nil) when the set
// has never been saved.
func (s *Store) LoadEmployees() ([]models.Employee, error) {
	var rec EmployeeRecord
	if err := s.DB.Where("set_key = ?", EmployeeSetKey).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var employees []models.Employee
	if err := json.Unmarshal([]byte(rec.Payload), &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// SaveEmployees upserts the employee set, preserving list order
func (s *Store) SaveEmployees(employees []models.Employee) error {
	payload, err := json.Marshal(employees)
	if err != nil {
		return err
	}
	return s.upsert(&EmployeeRecord{SetKey: EmployeeSetKey, Payload: string(payload)}, "set_key", map[string]interface{}{
		"payload": string(payload),
	})
}

func (s *Store) upsert(record interface{}, conflictColumn string, updates map[string]interface{}) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: conflictColumn}},
		DoUpdates: clause.Assignments(updates),
	}).Create(record).Error
}
