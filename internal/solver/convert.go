package solver

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/chain"
	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"go.trai.ch/zerr"
)

// ErrMalformedCode is returned for a code with a symbol outside 0-9 and A.
var ErrMalformedCode = zerr.New("malformed code")

// convertCodeIn validates code and returns its numeric value: the leading run of digits.
func convertCodeIn(code string) (uint64, error) {
	if code == "" {
		return 0, zerr.With(ErrMalformedCode, "code", code)
	}

	var value uint64
	digits := true
	for i := 0; i < len(code); i++ {
		s := keypad.Symbol(code[i])
		switch {
		case s.IsDigit():
			if !digits {
				continue
			}
			var err error
			if value, err = chain.CheckedMul(value, 10); err == nil {
				value, err = chain.CheckedAdd(value, uint64(s-'0'))
			}
			if err != nil {
				return 0, zerr.With(err, "code", code)
			}
		case s == keypad.Activate:
			digits = false
		default:
			return 0, zerr.With(zerr.With(ErrMalformedCode, "code", code), "position", i)
		}
	}
	return value, nil
}

// ReadCodes reads one code per line. Surrounding blanks are trimmed and empty lines skipped.
func ReadCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			codes = append(codes, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read codes")
	}
	return codes, nil
}
