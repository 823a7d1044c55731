package gen3

import "strings"

// TextDecoder converts the game's proprietary text encoding to a string.
type TextDecoder interface {
	Decode(raw []byte) string
}

// Charset maps single encoded bytes to runes.
type Charset map[byte]rune

const textTerminator = 0xFF

// Decode converts raw up to the first terminator byte. Unmapped bytes become U+FFFD.
func (c Charset) Decode(raw []byte) string {
	var sb strings.Builder
	for _, b := range raw {
		if b == textTerminator {
			break
		}
		r, ok := c[b]
		if !ok {
			r = '\uFFFD'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// WesternCharset is the character table of the English and European releases.
// Glyphs drawn as two letters in one tile (Lv, PK, MN, ʳᵉ, ᵉʳ) and the control
// codes 0xF7-0xFE have no single rune and decode to U+FFFD.
var WesternCharset = buildWesternCharset()

func buildWesternCharset() Charset {
	c := Charset{
		0x00: ' ',
		0x2A: 'º',
		0x2B: 'ª',
		0x2D: '&',
		0x2E: '+',
		0x35: '=',
		0x36: ';',
		0x51: '¿',
		0x52: '¡',
		0x5A: 'Í',
		0x5B: '%',
		0x5C: '(',
		0x5D: ')',
		0x68: 'â',
		0x6F: 'í',
		0x79: '↑',
		0x7A: '↓',
		0x7B: '←',
		0x7C: '→',
		0x85: '<',
		0x86: '>',
		0xAB: '!',
		0xAC: '?',
		0xAD: '.',
		0xAE: '-',
		0xAF: '·',
		0xB0: '…',
		0xB1: '“',
		0xB2: '”',
		0xB3: '‘',
		0xB4: '’',
		0xB5: '♂',
		0xB6: '♀',
		0xB7: '$', // Pokédollar
		0xB8: ',',
		0xB9: '×',
		0xBA: '/',
		0xEF: '►',
		0xF0: ':',
		0xF1: 'Ä',
		0xF2: 'Ö',
		0xF3: 'Ü',
		0xF4: 'ä',
		0xF5: 'ö',
		0xF6: 'ü',
	}
	// accented Latin letters from 0x01; zero marks an unused code
	accented := []rune{
		'À', 'Á', 'Â', 'Ç', 'È', 'É', 'Ê', 'Ë', 'Ì', 0, 'Î', 'Ï', 'Ò', 'Ó', 'Ô',
		'Œ', 'Ù', 'Ú', 'Û', 'Ñ', 'ß', 'à', 'á', 0, 'ç', 'è', 'é', 'ê', 'ë', 'ì', 0,
		'î', 'ï', 'ò', 'ó', 'ô', 'œ', 'ù', 'ú', 'û', 'ñ',
	}
	for i, r := range accented {
		if r != 0 {
			c[byte(0x01+i)] = r
		}
	}
	for i := 0; i < 10; i++ {
		c[byte(0xA1+i)] = rune('0' + i)
	}
	for i := 0; i < 26; i++ {
		c[byte(0xBB+i)] = rune('A' + i)
		c[byte(0xD5+i)] = rune('a' + i)
	}
	return c
}
