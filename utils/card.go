package utils

// MaskCardNumber irreversibly reduces a payment card number to its last four
// digits behind a masking prefix. This is the only form that is ever stored.
func MaskCardNumber(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return "****" + cardNumber
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
