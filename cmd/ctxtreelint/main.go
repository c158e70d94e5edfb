// Command ctxtreelint is a linter that checks ctxtree cancellation hygiene.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/NetPo4ki/go-ctxtree/ctxtreelint"
)

func main() {
	singlechecker.Main(ctxtreelint.Analyzer)
}
