package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// UsernamePattern определяет допустимый формат username (как у Django):
// буквы, цифры и символы @ . + - _
var UsernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// MaxUsernameLen максимальная длина username
const MaxUsernameLen = 150

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len([]rune(username)) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers and @ . + - _")
	}

	return nil
}

// ValidateEmail проверяет адрес электронной почты
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address")
	}

	return nil
}

// ValidatePassword проверяет, что пароль задан.
// Требования к сложности проверяет сервер
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidatePasswordConfirmation проверяет совпадение пароля и подтверждения
func ValidatePasswordConfirmation(password, confirmation string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirmation {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

// NormalizeMessage обрезает пробелы и проверяет, что сообщение не пустое
func NormalizeMessage(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", fmt.Errorf("message cannot be empty")
	}
	return trimmed, nil
}
