package repository

import (
	"bytes"
	"fmt"
	"os"

	"activities-service/internal/model"

	"gopkg.in/yaml.v3"
)

// seedFile описывает формат YAML-файла с начальными активностями.
type seedFile struct {
	Activities []model.ActivityEntry `yaml:"activities"`
}

// DefaultSeed возвращает встроенный набор активностей, с которым стартует сервис.
func DefaultSeed() []model.ActivityEntry {
	return []model.ActivityEntry{
		{
			Name: "Chess Club",
			Activity: model.Activity{
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
		},
		{
			Name: "Programming Class",
			Activity: model.Activity{
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
		},
		{
			Name: "Gym Class",
			Activity: model.Activity{
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
		},
	}
}

// LoadSeedFile читает начальные активности из YAML-файла, сохраняя порядок записей.
func LoadSeedFile(path string) ([]model.ActivityEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed разбирает YAML-документ с ключом activities. Неизвестные поля считаются ошибкой.
func ParseSeed(raw []byte) ([]model.ActivityEntry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if len(f.Activities) == 0 {
		return nil, fmt.Errorf("%w: no activities defined", ErrInvalidSeed)
	}
	return f.Activities, nil
}
