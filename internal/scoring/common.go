package scoring

// defaultCommonPasswords lists known-weak passwords that score 0 outright.
// Matched case-insensitively.
var defaultCommonPasswords = []string{
	"password", "123456", "12345678", "qwerty", "abc123",
	"password1", "admin", "letmein", "welcome", "monkey",
	"sunshine", "password123", "football", "iloveyou",
	"1234567", "1234567890", "123123", "12345", "1234",
	"111111", "000000", "passw0rd",
}
