package extract

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// extractPlainText treats the bytes as UTF-8 text, dropping a leading BOM
// and replacing invalid sequences
func extractPlainText(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	return strings.ToValidUTF8(string(data), "�")
}
