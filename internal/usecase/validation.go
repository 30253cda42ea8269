package usecase

import "regexp"

// Formats follow the registration checks of the desktop client's API.
var (
	emailPattern = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё0-9._%+-]+@[A-Za-zА-Яа-яЁё-]+\.[A-Za-zА-Яа-яЁё-]{2,10}$`)
	phonePattern = regexp.MustCompile(`^[0-9+()\-#]{10,15}$`)
)

// ValidateEmail checks the address format.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone checks the phone number format.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
