package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	digits       = "0123456789"
)

// GenerateID gera um identificador curto alfanumérico
func GenerateID() (string, error) {
	return gonanoid.Generate(alphanumeric, 6)
}

// GenerateMetaAccountID gera um ID no formato das contas do Meta (act_<15 dígitos>)
func GenerateMetaAccountID() (string, error) {
	id, err := gonanoid.Generate(digits, 15)
	if err != nil {
		return "", err
	}
	return "act_" + id, nil
}

// GenerateGoogleCustomerID gera um ID no formato de cliente do Google Ads (123-456-7890)
func GenerateGoogleCustomerID() (string, error) {
	id, err := gonanoid.Generate(digits, 10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", id[:3], id[3:6], id[6:]), nil
}
