package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber parses a decimal, 0x-prefixed hex, 0o octal or 0b binary integer
func ParseNumber(text string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", text, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid number %q: must not be negative", text)
	}
	return int(value), nil
}

// ParseByteList parses a comma-separated list of byte values ("0xde,0xad,7")
func ParseByteList(text string) ([]byte, error) {
	fields := strings.Split(text, ",")
	values := make([]byte, 0, len(fields))
	for _, field := range fields {
		number, err := ParseNumber(field)
		if err != nil {
			return nil, err
		}
		value, err := SafeIntToUint8(number)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// HexDump formats data as rows of 16 bytes prefixed with their offset
func HexDump(data []byte, baseOffset int) string {
	var sb strings.Builder
	for row := 0; row < len(data); row += 16 {
		end := row + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&sb, "%04X: % X\n", baseOffset+row, data[row:end])
	}
	return sb.String()
}
