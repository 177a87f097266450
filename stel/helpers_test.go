package stel_test

import (
	"testing"

	"github.com/joshuapare/stelkit/internal/testutil"
)

var (
	magicA  = []byte("Stella BINARY ")
	headerA = testutil.DefaultHeaderA
	magicB  = []byte{0xB8, 0xA5, 0xA9, 0x6A}
)

// sample returns a STEL buffer with every metadata field present.
func sample() []byte {
	return testutil.Builder{
		HeaderB: []byte{0x01, 0x02},
		Fields: [][]byte{
			testutil.Field(testutil.TagName, "Ode to Joy"),
			testutil.Field(testutil.TagDescription, "A tricky level"),
			testutil.Field(testutil.TagField3A, "v2"),
			testutil.Field(testutil.TagWebsiteLink, "https://example.invalid/ode"),
		},
		Tail: []byte{0xCA, 0xFE},
	}.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	return testutil.WriteFile(t, dir, name, data)
}
