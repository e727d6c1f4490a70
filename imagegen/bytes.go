package imagegen

// BytesPerLine is the number of byte tokens per line of a generated array.
const BytesPerLine = 16

const (
	indent    = "    "
	hexDigits = "0123456789abcdef"
)

// AppendBytes appends the array body for data to dst: one `0x%02x,` token per
// byte in input order, BytesPerLine tokens per line, each line indented and
// terminated by a newline.
func AppendBytes(dst, data []byte) []byte {
	for i, b := range data {
		switch {
		case i == 0:
			dst = append(dst, indent...)
		case i%BytesPerLine == 0:
			dst = append(dst, '\n')
			dst = append(dst, indent...)
		default:
			dst = append(dst, ' ')
		}
		dst = append(dst, '0', 'x', hexDigits[b>>4], hexDigits[b&0xf], ',')
	}
	if len(data) > 0 {
		dst = append(dst, '\n')
	}
	return dst
}
