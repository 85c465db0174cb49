package encode

import (
	"bytes"
	"strings"

	"github.com/docpatch-format/go-docpatch/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeIndent(0)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
