package validators

// CheckOrderNumber проверяет формат номера заказа: непустая строка из цифр
func CheckOrderNumber(number string) bool {
	if number == "" {
		return false
	}
	for _, c := range number {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
