package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativeImportPath(t *testing.T) {
	const target = "apps/api-gateway/src/lib/prisma.ts"

	tests := []struct {
		name string
		from string
		want string
	}{
		{name: "sibling_directory", from: "apps/api-gateway/src/routes/users.ts", want: "../lib/prisma"},
		{name: "services_directory", from: "apps/api-gateway/src/services/foo.ts", want: "../lib/prisma"},
		{name: "two_levels_down", from: "apps/api-gateway/src/services/billing/invoice.ts", want: "../../lib/prisma"},
		{name: "source_root", from: "apps/api-gateway/src/main.ts", want: "./lib/prisma"},
		{name: "same_directory", from: "apps/api-gateway/src/lib/other.ts", want: "./prisma"},
		{name: "below_target", from: "apps/api-gateway/src/lib/db/extra.ts", want: "../prisma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeImportPath(tt.from, target, "../lib/prisma"))
		})
	}
}

func TestAlreadyMigrated(t *testing.T) {
	specs := []string{"../lib/prisma", "../../lib/prisma", "../../../lib/prisma"}

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "one_level", content: "import { prisma } from '../lib/prisma';\n", want: true},
		{name: "two_levels", content: "import { prisma } from '../../lib/prisma';", want: true},
		{name: "three_levels", content: "import { prisma } from '../../../lib/prisma'", want: true},
		{name: "four_levels_not_recognised", content: "import { prisma } from '../../../../lib/prisma';", want: false},
		{name: "double_quotes_not_recognised", content: `import { prisma } from "../lib/prisma";`, want: false},
		{name: "same_directory_not_recognised", content: "import { prisma } from './lib/prisma';", want: false},
		{name: "no_import", content: "const prisma = new PrismaClient();", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AlreadyMigrated(tt.content, specs))
		})
	}
}
