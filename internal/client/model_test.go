package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskAllButLast4(t *testing.T) {
	require.Equal(t, "********9012", MaskAllButLast4("123456789012"))
	require.Equal(t, "**3456", MaskAllButLast4("123456"))
	require.Equal(t, "1234", MaskAllButLast4("1234"))
	require.Equal(t, "12", MaskAllButLast4("12"))
	require.Equal(t, "", MaskAllButLast4(""))
}

func TestMarshalJSONMasksSensitiveFields(t *testing.T) {
	c := Client{
		FirstName:    "Asha",
		LastName:     "Rao",
		Email:        "asha@x.com",
		AadharNumber: "123456789012",
		BankDetails: BankDetails{
			AccountNumber: "000111222333",
			IFSCCode:      "HDFC0001234",
		},
	}

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	require.Equal(t, "********9012", out["aadharNumber"])
	bank := out["bankDetails"].(map[string]any)
	require.Equal(t, "********2333", bank["accountNumber"])
	require.Equal(t, "HDFC0001234", bank["ifscCode"], "IFSC is not sensitive")

	// The stored struct keeps the raw values.
	require.Equal(t, "123456789012", c.AadharNumber)
	require.Equal(t, "000111222333", c.BankDetails.AccountNumber)
}

func TestFullName(t *testing.T) {
	c := Client{FirstName: "Asha", LastName: "Rao"}
	require.Equal(t, "Asha Rao", c.FullName())

	c = Client{FirstName: "Asha"}
	require.Equal(t, "Asha", c.FullName())
}
