package main

import (
	"context"
	"os"
	"strings"

	"github.com/Luismorlan/tribe/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeedUser struct {
	Name   string `yaml:"name"`
	ApiKey string `yaml:"api_key"`
}

type SeedFile struct {
	Users []SeedUser `yaml:"users"`
}

// LoadSeedFile reads and validates the users file at path.
func LoadSeedFile(path string) ([]SeedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to read seed file %s", path)
	}
	file := SeedFile{}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "fail to parse seed file %s", path)
	}

	seen := map[string]bool{}
	for i, user := range file.Users {
		if strings.TrimSpace(user.Name) == "" || user.ApiKey == "" {
			return nil, errors.Errorf("user #%d needs both name and api_key", i+1)
		}
		if seen[user.ApiKey] {
			return nil, errors.Errorf("api_key of user %q is listed twice", user.Name)
		}
		seen[user.ApiKey] = true
	}
	return file.Users, nil
}

// SeedUsers inserts users in one transaction. A user whose api key is already
// taken is left untouched. It returns how many rows were created.
func SeedUsers(ctx context.Context, db *gorm.DB, users []SeedUser) (int64, error) {
	var created int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range users {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "api_key"}},
				DoNothing: true,
			}).Create(&model.User{Name: u.Name, ApiKey: u.ApiKey})
			if res.Error != nil {
				return errors.Wrapf(res.Error, "fail to create user %s", u.Name)
			}
			created += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
