package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

type Secrets struct {
	Db *DbSecrets `json:"db,omitempty"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

// LoadSecrets reads the deployment secrets file. The db block is
// optional - without it the price store tier is disabled and prices
// are served straight from the provider caches.
func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("FINCONTROL_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("FINCONTROL_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if os.IsNotExist(err) {
		return &Secrets{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}
