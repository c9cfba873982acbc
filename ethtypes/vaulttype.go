package ethtypes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// VaultTypeVariant is the discriminant of the enum returned by a vault's get_vault_type() method.
type VaultTypeVariant uint8

const (
	VaultTypeInTheMoney VaultTypeVariant = iota
	VaultTypeAtTheMoney
	VaultTypeOutOfTheMoney
)

var ErrUnknownVaultVariant = errors.New("unknown vault type variant")

const vaultAbiJson = `[
	{
		"type": "function",
		"name": "get_vault_type",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{ "name": "", "type": "uint8", "internalType": "enum VaultType" }]
	}
]`

// VaultABI holds the read-only part of the vault contract interface.
var VaultABI = mustParseVaultABI()

const VaultTypeMethod = "get_vault_type"

func mustParseVaultABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(vaultAbiJson))
	if err != nil {
		panic(fmt.Sprintf("invalid vault abi: %v", err))
	}
	return parsed
}

// VaultType is the decoded vault type enum. Only variants known to DecodeVaultType can be constructed.
type VaultType struct {
	variant VaultTypeVariant
}

func DecodeVaultType(index uint8) (*VaultType, error) {
	variant := VaultTypeVariant(index)
	switch variant {
	case VaultTypeInTheMoney, VaultTypeAtTheMoney, VaultTypeOutOfTheMoney:
		return &VaultType{variant: variant}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVaultVariant, index)
	}
}

// UnpackVaultType decodes the raw return data of a get_vault_type() call.
func UnpackVaultType(data []byte) (*VaultType, error) {
	values, err := VaultABI.Unpack(VaultTypeMethod, data)
	if err != nil {
		return nil, fmt.Errorf("could not unpack vault type: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("could not unpack vault type: unexpected value count %v", len(values))
	}

	index, ok := values[0].(uint8)
	if !ok {
		return nil, fmt.Errorf("could not unpack vault type: unexpected value type %T", values[0])
	}

	return DecodeVaultType(index)
}

func (vt *VaultType) Variant() VaultTypeVariant {
	return vt.variant
}

// ActiveVariant returns the short tag of the active variant (ITM, ATM or OTM).
func (vt *VaultType) ActiveVariant() string {
	switch vt.variant {
	case VaultTypeInTheMoney:
		return "ITM"
	case VaultTypeAtTheMoney:
		return "ATM"
	case VaultTypeOutOfTheMoney:
		return "OTM"
	}
	panic(fmt.Sprintf("vault type with unknown variant %v", uint8(vt.variant)))
}

func (v VaultTypeVariant) String() string {
	switch v {
	case VaultTypeInTheMoney:
		return "InTheMoney"
	case VaultTypeAtTheMoney:
		return "AtTheMoney"
	case VaultTypeOutOfTheMoney:
		return "OutOfTheMoney"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(v))
	}
}
