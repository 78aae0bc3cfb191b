package bank

import (
	"fmt"
	"unicode"
)

// pesos del checksum ABA para números de ruta bancaria (EE.UU.).
// Se aplican a los 9 dígitos en grupos de tres: 3, 7, 1.
var abaWeights = [9]int{3, 7, 1, 3, 7, 1, 3, 7, 1}

// ValidateRoutingNumber valida que el número de ruta ACH (con o sin guiones
// o espacios) tenga exactamente 9 dígitos y checksum ABA correcto:
// (3·d1 + 7·d2 + 1·d3 + 3·d4 + ... + 1·d9) mod 10 == 0.
func ValidateRoutingNumber(routing string) error {
	digits := extractDigits(routing)
	if len(digits) != 9 {
		return fmt.Errorf("bank: el número de ruta debe tener 9 dígitos, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * abaWeights[i]
	}
	if sum%10 != 0 {
		return fmt.Errorf("bank: checksum ABA inválido para el número de ruta")
	}
	return nil
}

// ValidateAccountNumber valida el número de cuenta bancaria: solo dígitos,
// entre 4 y 17 (rango que aceptan las redes ACH).
func ValidateAccountNumber(account string) error {
	digits := extractDigits(account)
	if len(digits) != len(account) {
		return fmt.Errorf("bank: el número de cuenta solo admite dígitos")
	}
	if len(digits) < 4 || len(digits) > 17 {
		return fmt.Errorf("bank: el número de cuenta debe tener entre 4 y 17 dígitos, se encontraron %d", len(digits))
	}
	return nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
