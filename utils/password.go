package utils

import "golang.org/x/crypto/bcrypt"

func CheckPassword(hashed []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}
