// Package bench compares jtrim's decode and path-extraction throughput
// against several other JSON libraries. It is a separate Go module so
// that these third-party dependencies never appear in the core decoder's
// go.mod.
package bench

import "fmt"

// GenerateUsers builds a JSON array of n user records.
func GenerateUsers(n int) []byte {
	buf := make([]byte, 0, n*160)
	buf = append(buf, '[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, fmt.Sprintf(
			`{"id":%d,"name":"user-%d","email":"user%d@example.com","age":%d,"active":%t,`+
				`"score":%f,"profile":{"bio":"bio-%d","address":{"city":"City%d","zip":"%05d"}}}`,
			i, i, i, 18+(i%60), i%2 == 0, float64(i)*1.5, i, i%100, i%99999,
		)...)
	}
	buf = append(buf, ']')
	return buf
}
