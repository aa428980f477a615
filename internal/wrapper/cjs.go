package wrapper

import (
	"fmt"
	"strings"
)

const useStrict = "'use strict';\n\n"

func cjsIntro(imports []Import) string {
	if len(imports) == 0 {
		return useStrict
	}
	requires := make([]string, len(imports))
	for i, imp := range imports {
		requires[i] = fmt.Sprintf("var %s = require( '%s' );", imp.Name, imp.Source)
	}
	return useStrict + strings.Join(requires, "\n\n") + "\n\n"
}
