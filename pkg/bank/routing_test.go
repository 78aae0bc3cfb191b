package bank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pagos-api/pkg/bank"
)

// Números de ruta reales con checksum ABA válido.
var validRoutingNumbers = []string{
	"011000015", // Federal Reserve Bank of Boston
	"021000021", // JPMorgan Chase
	"121000358", // Bank of America (California)
	"091000019", // Wells Fargo (Minnesota)
}

func TestValidateRoutingNumber_Validos(t *testing.T) {
	for _, rn := range validRoutingNumbers {
		assert.NoError(t, bank.ValidateRoutingNumber(rn), "el número %s debe pasar el checksum ABA", rn)
	}
}

func TestValidateRoutingNumber_AdmiteSeparadores(t *testing.T) {
	assert.NoError(t, bank.ValidateRoutingNumber("0110-0001-5"))
	assert.NoError(t, bank.ValidateRoutingNumber("021 000 021"))
}

func TestValidateRoutingNumber_ChecksumInvalido(t *testing.T) {
	// un dígito alterado rompe el checksum
	assert.Error(t, bank.ValidateRoutingNumber("011000016"))
	assert.Error(t, bank.ValidateRoutingNumber("123456789"))
}

func TestValidateRoutingNumber_LongitudIncorrecta(t *testing.T) {
	assert.Error(t, bank.ValidateRoutingNumber("01100001"))
	assert.Error(t, bank.ValidateRoutingNumber("0110000155"))
	assert.Error(t, bank.ValidateRoutingNumber(""))
}

func TestValidateAccountNumber(t *testing.T) {
	assert.NoError(t, bank.ValidateAccountNumber("123456789"))
	assert.NoError(t, bank.ValidateAccountNumber("1234"))
	assert.Error(t, bank.ValidateAccountNumber("123"), "muy corto")
	assert.Error(t, bank.ValidateAccountNumber("123456789012345678"), "muy largo")
	assert.Error(t, bank.ValidateAccountNumber("12-3456"), "no admite separadores")
	assert.Error(t, bank.ValidateAccountNumber("12a456"), "no admite letras")
}
