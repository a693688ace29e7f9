package util

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/qiniu/iconv"
	log "github.com/sirupsen/logrus"
)

const defaultEncoding = "UTF-8"

func sameEncoding(enc1, enc2 string) bool {
	enc1 = strings.Replace(strings.ToLower(enc1), "-", "", -1)
	enc2 = strings.Replace(strings.ToLower(enc2), "-", "", -1)
	return enc1 == enc2
}

// ConvertToUTF8 converts catalog data saved in encoding to UTF-8.
// An empty encoding means UTF-8.
func ConvertToUTF8(data []byte, encoding string) ([]byte, error) {
	if encoding == "" || sameEncoding(defaultEncoding, encoding) {
		if !utf8.Valid(data) {
			log.Warnf("catalog has bad UTF-8 characters, set the encoding if it was saved in another one")
		}
		return data, nil
	}

	cd, err := iconv.Open(defaultEncoding, encoding)
	if err != nil {
		return nil, fmt.Errorf("iconv.Open failed for %s: %w", encoding, err)
	}
	defer cd.Close()

	var (
		result bytes.Buffer
		out    = make([]byte, 4096)
		nLeft  = len(data)
	)
	for nLeft > 0 {
		n, left, err := cd.Do(data[len(data)-nLeft:], nLeft, out)
		result.Write(out[:n])
		if err != nil {
			// output buffer full, go on with the rest of the input
			if errors.Is(err, syscall.E2BIG) && left < nLeft {
				nLeft = left
				continue
			}
			return nil, fmt.Errorf("bad %s characters at byte %d: %w",
				encoding, len(data)-left, err)
		}
		nLeft = left
	}
	return result.Bytes(), nil
}
