package core

import "fmt"

func HashContent(content []byte) string {
	result := 0
	for _, b := range content {
		result = (result*31 + int(b)) % 1000000007
	}
	return fmt.Sprintf("%d", result)
}

// FingerprintName inserts the content hash before the extension:
// prism.css -> prism.123456.css.
func FingerprintName(name string, content []byte) string {
	hash := HashContent(content)
	for i := len(name) - 1; i >= 0 && name[i] != '/'; i-- {
		if name[i] == '.' {
			return name[:i] + "." + hash + name[i:]
		}
	}
	return name + "." + hash
}
