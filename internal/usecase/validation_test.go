package usecase

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ivan@example.ru",
		"Иван.Петров@почта.рф",
		"user+tag@mail-host.com",
	}
	invalid := []string{
		"",
		"no-at-sign",
		"@example.ru",
		"ivan@",
		"ivan@example",
		"ivan@example.toolongtld1",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+79001234567",
		"8(900)123-45-67",
		"79001234567",
	}
	invalid := []string{
		"",
		"12345",
		"телефон",
		"+7 900 123 45 67",
		"1234567890123456",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}
